package decisiontree

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	m := athletes(t, 61, 200)
	train, test, err := m.Split(rand.New(rand.NewSource(1)), 0.7)
	require.NoError(t, err)

	r, err := Fit(context.Background(), train, testConfig(t), CVConfig{Folds: 5, Rand: rand.New(rand.NewSource(2))})
	require.NoError(t, err)
	assert.Equal(t, r.Full.Size(), r.Sequence[0].Size)
	assert.Equal(t, r.Full.Size(), r.CV.RootSize)
	assert.Contains(t, r.CV.Sizes, r.Size)
	assert.LessOrEqual(t, r.Tree.Size(), r.Full.Size())
	assert.GreaterOrEqual(t, r.Tree.Size(), r.Size)

	var inSequence bool
	for _, pt := range r.Sequence {
		inSequence = inSequence || pt.Tree == r.Tree
	}
	assert.True(t, inSequence)

	e, err := Evaluate(r.Tree, test)
	require.NoError(t, err)
	// noise has a standard deviation of 0.5
	assert.Less(t, e.RMSE, 1.5)
}

func TestFit_OneStandardError(t *testing.T) {
	m := athletes(t, 67, 150)
	cv := CVConfig{Folds: 5, Rule: OneStandardError, Rand: rand.New(rand.NewSource(3))}
	r, err := Fit(context.Background(), m, testConfig(t), cv)
	require.NoError(t, err)
	assert.Equal(t, r.CV.Best(OneStandardError), r.Size)
}

func TestFit_GrowsFullTreeOnce(t *testing.T) {
	m := athletes(t, 71, 120)
	cfg := testConfig(t)
	var mu sync.Mutex
	roots := 0
	cfg.Pruner = PrunerFunc(func(ctx context.Context, p *Partition) (bool, error) {
		if p.Depth == 0 && p.Count == m.Len() {
			mu.Lock()
			roots++
			mu.Unlock()
		}
		return MinImprovementPruner(cfg.MinSplitImprovement).Prune(ctx, p)
	})
	r, err := Fit(context.Background(), m, cfg, CVConfig{Folds: 4, Rand: rand.New(rand.NewSource(5))})
	require.NoError(t, err)
	assert.Equal(t, 1, roots)
	assert.Equal(t, r.Full.Size(), r.CV.RootSize)
}

func TestFit_InvalidFolds(t *testing.T) {
	_, err := Fit(context.Background(), athletes(t, 73, 30), testConfig(t), CVConfig{Folds: 1})
	var ice *InvalidConfigError
	assert.True(t, errors.As(err, &ice))
}

func TestFit_WrapsCauses(t *testing.T) {
	boom := errors.New("boom")
	cfg := testConfig(t)
	calls := 0
	cfg.Pruner = PrunerFunc(func(context.Context, *Partition) (bool, error) {
		calls++
		if calls > 1 {
			return false, boom
		}
		return false, nil
	})
	_, err := Fit(context.Background(), athletes(t, 79, 60), cfg, CVConfig{Folds: 3, Rand: rand.New(rand.NewSource(1))})
	assert.ErrorIs(t, err, boom)
}
