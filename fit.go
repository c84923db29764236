package decisiontree

import (
	"context"
	"fmt"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/tree"
)

/*
FitResult holds every artifact of a Fit.
*/
type FitResult struct {
	// Tree grown on the whole matrix
	Full     *tree.Tree
	Sequence PrunedSequence
	CV       *CVResult
	// Size picked by the cross-validation
	Size int
	// Tree of Sequence selected for Size
	Tree *tree.Tree
}

/*
Fit takes a context.Context, a matrix, a configuration and a
cross-validation configuration, grows a tree on the matrix, computes its
pruned sequence, cross-validates the candidate sizes and returns the tree
of the sequence selected for the size picked by cv.Rule.
*/
func Fit(ctx context.Context, m *dataset.Matrix, cfg Config, cv CVConfig) (*FitResult, error) {
	full, err := Build(ctx, m, cfg)
	if err != nil {
		return nil, err
	}
	if err := validateFolds(m, cv.folds()); err != nil {
		return nil, err
	}
	seq, err := PruneSequence(full)
	if err != nil {
		return nil, err
	}
	cvr, err := crossValidate(ctx, m, cfg, cv.folds(), cv.Sizes, cv.Rand, full.Size())
	if err != nil {
		return nil, err
	}
	size := cvr.Best(cv.Rule)
	t, err := SelectBySize(seq, size)
	if err != nil {
		return nil, fmt.Errorf("selecting tree of size %d: %w", size, err)
	}
	cfg.logger().Debug("tree fitted", "full_size", full.Size(), "size", t.Size(), "rule", cv.Rule.String())
	return &FitResult{Full: full, Sequence: seq, CV: cvr, Size: size, Tree: t}, nil
}
