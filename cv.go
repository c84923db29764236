package decisiontree

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/tree"
)

/*
CVResult holds the held-out deviance of every candidate tree size over the
folds of a cross-validation.
*/
type CVResult struct {
	// Candidate sizes, ascending
	Sizes []int
	// Mean held-out deviance per size over the folds
	Deviance map[int]float64
	// Standard error of the mean held-out deviance per size
	StdErr map[int]float64
	// Held-out deviance per size and fold
	FoldDeviance map[int][]float64
	Folds        int
	// Size of the tree grown on the whole matrix
	RootSize int
}

/*
Best takes a selection rule and returns the size it picks. With MinDeviance
it is the smallest size with the minimum mean deviance. With
OneStandardError it is the smallest size whose mean deviance does not exceed
that minimum plus its standard error.
*/
func (r *CVResult) Best(rule SelectionRule) int {
	if len(r.Sizes) == 0 {
		return 0
	}
	best := r.Sizes[0]
	for _, s := range r.Sizes[1:] {
		if r.Deviance[s] < r.Deviance[best] {
			best = s
		}
	}
	if rule != OneStandardError {
		return best
	}
	limit := r.Deviance[best] + r.StdErr[best]
	for _, s := range r.Sizes {
		if r.Deviance[s] <= limit {
			return s
		}
	}
	return best
}

/*
CrossValidate takes a context.Context, a matrix, a configuration, a number
of folds, candidate tree sizes and a random number generator and estimates
the held-out deviance of pruned trees of every candidate size.

The rows are divided into folds of sizes differing at most by one, assigned
by a permutation drawn from rng or contiguously when rng is nil. For every
fold a tree is grown with cfg on the other folds, its pruned sequence is
computed, and the rows of the fold are predicted with the tree of the
sequence chosen by SelectBySize for every candidate size. Folds are trained
concurrently. When sizes is empty, the candidates are all sizes from 1 to
the size of the tree grown with cfg on the whole matrix.

An *InvalidConfigError is returned if folds < 2, if there are more folds than
rows or if a candidate size is not positive.
*/
func CrossValidate(ctx context.Context, m *dataset.Matrix, cfg Config, folds int, sizes []int, rng *rand.Rand) (*CVResult, error) {
	if err := validateMatrix(m); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateFolds(m, folds); err != nil {
		return nil, err
	}
	full, err := Build(ctx, m, cfg)
	if err != nil {
		return nil, fmt.Errorf("building tree on all rows: %w", err)
	}
	return crossValidate(ctx, m, cfg, folds, sizes, rng, full.Size())
}

func validateFolds(m *dataset.Matrix, folds int) error {
	if folds < 2 {
		return invalidConfig("at least 2 folds are needed, got %d", folds)
	}
	if folds > m.Len() {
		return invalidConfig("%d folds would leave some empty with %d rows", folds, m.Len())
	}
	return nil
}

// crossValidate is CrossValidate for a validated matrix and configuration
// whose tree grown on all rows has rootSize leaves.
func crossValidate(ctx context.Context, m *dataset.Matrix, cfg Config, folds int, sizes []int, rng *rand.Rand, rootSize int) (*CVResult, error) {
	sizes, err := candidateSizes(sizes, rootSize)
	if err != nil {
		return nil, err
	}
	assignment, err := m.Folds(folds, rng)
	if err != nil {
		return nil, invalidConfig("%v", err)
	}
	logger := cfg.logger()
	foldCfg := cfg
	foldCfg.Concurrency = 1
	deviances := make([][]float64, folds)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency())
	for f, heldOut := range assignment {
		g.Go(func() error {
			start := time.Now()
			d, err := foldDeviance(gctx, m, foldCfg, heldOut, sizes)
			if err != nil {
				return fmt.Errorf("cross-validating fold %d: %w", f, err)
			}
			deviances[f] = d
			elapsed := time.Since(start)
			cvFoldDuration.Observe(elapsed.Seconds())
			logger.Debug("fold cross-validated", "fold", f, "rows", len(heldOut), "duration", elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	result := &CVResult{
		Sizes:        sizes,
		Deviance:     make(map[int]float64, len(sizes)),
		StdErr:       make(map[int]float64, len(sizes)),
		FoldDeviance: make(map[int][]float64, len(sizes)),
		Folds:        folds,
		RootSize:     rootSize,
	}
	for i, s := range sizes {
		values := make([]float64, folds)
		for f := range deviances {
			values[f] = deviances[f][i]
		}
		mean, sd := stat.MeanStdDev(values, nil)
		result.Deviance[s] = mean
		result.StdErr[s] = sd / math.Sqrt(float64(folds))
		result.FoldDeviance[s] = values
	}
	logger.Debug("cross-validation done", "folds", folds, "sizes", len(sizes), "best", result.Best(MinDeviance))
	return result, nil
}

func candidateSizes(sizes []int, rootSize int) ([]int, error) {
	if len(sizes) == 0 {
		sizes = make([]int, rootSize)
		for i := range sizes {
			sizes[i] = i + 1
		}
		return sizes, nil
	}
	sorted := append([]int{}, sizes...)
	sort.Ints(sorted)
	if sorted[0] < 1 {
		return nil, invalidConfig("tree sizes must be positive, got %d", sorted[0])
	}
	unique := sorted[:1]
	for _, s := range sorted[1:] {
		if s != unique[len(unique)-1] {
			unique = append(unique, s)
		}
	}
	return unique, nil
}

// foldDeviance grows and prunes a tree without the held-out rows and
// returns the deviance of the held-out rows for every size.
func foldDeviance(ctx context.Context, m *dataset.Matrix, cfg Config, heldOut []int, sizes []int) ([]float64, error) {
	train := m.Subset(m.Complement(heldOut))
	test := m.Subset(heldOut)
	t, err := Build(ctx, train, cfg)
	if err != nil {
		return nil, err
	}
	seq, err := PruneSequence(t)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(sizes))
	for i, s := range sizes {
		pruned, err := SelectBySize(seq, s)
		if err != nil {
			return nil, err
		}
		result[i], err = deviance(pruned, test)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// deviance returns the sum of squared prediction errors of t over m.
func deviance(t *tree.Tree, m *dataset.Matrix) (float64, error) {
	var d float64
	for i := 0; i < m.Len(); i++ {
		p, err := t.Predict(m.Row(i))
		if err != nil {
			return 0, err
		}
		e := m.TargetValue(i) - p
		d += e * e
	}
	return d, nil
}
