package decisiontree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruners(t *testing.T) {
	ctx := context.Background()
	p := &Partition{
		Count:         10,
		LeftCount:     2,
		RightCount:    8,
		Deviance:      50,
		LeftDeviance:  10,
		RightDeviance: 15,
		RootDeviance:  200,
	}
	assert.Equal(t, 25.0, p.Improvement())

	tests := []struct {
		name   string
		pruner Pruner
		want   bool
	}{
		{"improvement above minimum", MinImprovementPruner(0.1), false},
		{"improvement below minimum", MinImprovementPruner(0.2), true},
		{"children large enough", MinChildSizePruner(2), false},
		{"child too small", MinChildSizePruner(3), true},
		{"any pruning", AnyPruner(NoPruner(), MinChildSizePruner(3)), true},
		{"none pruning", AnyPruner(NoPruner(), MinImprovementPruner(0.1)), false},
		{"no pruner", NoPruner(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pruner.Prune(ctx, p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	cfg := DefaultConfig()
	assert.Equal(t, 10, cfg.MinNodeSize)
	assert.Equal(t, 0.01, cfg.MinSplitImprovement)
	assert.Greater(t, cfg.concurrency(), 0)
	assert.NotNil(t, cfg.logger())
	assert.NotNil(t, cfg.pruner())
}
