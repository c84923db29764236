package decisiontree

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/tree"
)

type builder struct {
	features     []string
	x            [][]float64
	y            []float64
	minNodeSize  int
	maxDepth     int
	concurrency  int
	pruner       Pruner
	rootDeviance float64
	left         []bool
	nodes        []tree.Node
}

/*
Build takes a context.Context, a matrix and a configuration and grows a
regression tree predicting the matrix target from its features.

Starting with all rows at the root, a node becomes a leaf when it holds
less than cfg.MinNodeSize rows, when all its target values are equal or when
it sits at cfg.MaxDepth. Otherwise the split with the lowest residual sum of
squares over every feature and threshold is chosen, ties going to the lowest
feature index and then to the lowest threshold. The node remains a leaf if
the split does not reduce the deviance or if the configured Pruner discards
it; else both sides are grown the same way.

Build is deterministic. An *InvalidInputError is returned for a nil or empty
matrix and an *InvalidConfigError for an invalid configuration. The context
error is returned if the context is done before the tree is complete.
*/
func Build(ctx context.Context, m *dataset.Matrix, cfg Config) (*tree.Tree, error) {
	if err := validateMatrix(m); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	b := newBuilder(m, cfg)
	if _, err := b.grow(ctx, b.sortedRows(), 0); err != nil {
		buildsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	t, err := tree.New(b.features, m.Target(), b.nodes, 0)
	if err != nil {
		buildsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("building tree: %w", err)
	}
	elapsed := time.Since(start)
	buildsTotal.WithLabelValues("ok").Inc()
	buildDuration.Observe(elapsed.Seconds())
	treeSize.Observe(float64(t.Size()))
	cfg.logger().Debug("tree built",
		"rows", m.Len(),
		"nodes", t.Len(),
		"size", t.Size(),
		"deviance", t.Deviance(),
		"duration", elapsed)
	return t, nil
}

func newBuilder(m *dataset.Matrix, cfg Config) *builder {
	features := m.Features()
	x := make([][]float64, len(features))
	for j := range features {
		x[j] = m.Column(j)
	}
	return &builder{
		features:    features,
		x:           x,
		y:           m.TargetValues(),
		minNodeSize: cfg.MinNodeSize,
		maxDepth:    cfg.MaxDepth,
		concurrency: cfg.concurrency(),
		pruner:      cfg.pruner(),
		left:        make([]bool, m.Len()),
	}
}

// sortedRows returns the row indices sorted by every feature, ties in
// matrix order, followed by the row indices in matrix order.
func (b *builder) sortedRows() [][]int {
	n := len(b.y)
	sorted := make([][]int, len(b.x)+1)
	for j := range sorted {
		rows := make([]int, n)
		for i := range rows {
			rows[i] = i
		}
		if j < len(b.x) {
			x := b.x[j]
			sort.SliceStable(rows, func(a, c int) bool { return x[rows[a]] < x[rows[c]] })
		}
		sorted[j] = rows
	}
	return sorted
}

func (b *builder) grow(ctx context.Context, sorted [][]int, depth int) (tree.NodeID, error) {
	if err := ctx.Err(); err != nil {
		return tree.NoNode, err
	}
	rows := sorted[len(b.x)]
	mean, deviance := meanDeviance(b.y, rows)
	if depth == 0 {
		b.rootDeviance = deviance
	}
	id := tree.NodeID(len(b.nodes))
	n := tree.Leaf(mean, len(rows), deviance)
	n.ID = id
	n.Depth = depth
	b.nodes = append(b.nodes, n)
	if b.terminal(rows, depth) {
		return id, nil
	}
	p, err := b.bestPartition(ctx, sorted, mean, deviance, depth)
	if err != nil || p == nil {
		return id, err
	}
	pruned, err := b.pruner.Prune(ctx, p)
	if err != nil {
		return tree.NoNode, fmt.Errorf("pruning split of node %d: %w", id, err)
	}
	if pruned {
		return id, nil
	}
	leftRows, rightRows := b.split(p, sorted)
	left, err := b.grow(ctx, leftRows, depth+1)
	if err != nil {
		return tree.NoNode, err
	}
	right, err := b.grow(ctx, rightRows, depth+1)
	if err != nil {
		return tree.NoNode, err
	}
	b.nodes[id].Feature = p.Feature
	b.nodes[id].Threshold = p.Threshold
	b.nodes[id].Left = left
	b.nodes[id].Right = right
	return id, nil
}

func (b *builder) terminal(rows []int, depth int) bool {
	if len(rows) < b.minNodeSize {
		return true
	}
	if b.maxDepth > 0 && depth >= b.maxDepth {
		return true
	}
	for _, r := range rows[1:] {
		if b.y[r] != b.y[rows[0]] {
			return false
		}
	}
	return true
}

// meanDeviance returns the mean of the target over the given rows and the
// sum of squared deviations from it.
func meanDeviance(y []float64, rows []int) (float64, float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	var sum float64
	for _, r := range rows {
		sum += y[r]
	}
	mean := sum / float64(len(rows))
	var deviance float64
	for _, r := range rows {
		d := y[r] - mean
		deviance += d * d
	}
	return mean, deviance
}
