package decisiontree

import (
	"log/slog"
	"math/rand"
	"runtime"
)

/*
Config holds the options to grow a tree.
*/
type Config struct {
	// MinNodeSize is the minimum number of rows a node must hold for a
	// split to be attempted on it.
	MinNodeSize int
	// MinSplitImprovement is the minimum deviance reduction a split must
	// achieve, as a fraction of the deviance at the root, to be kept.
	// It is ignored when a Pruner is set.
	MinSplitImprovement float64
	// MaxDepth caps the depth of the tree when positive. The root has
	// depth 0.
	MaxDepth int
	// Concurrency is the number of goroutines used to search splits and
	// to train cross-validation folds. GOMAXPROCS when not positive.
	Concurrency int
	// Pruner decides whether the best split of a node is discarded.
	// Defaults to MinImprovementPruner(MinSplitImprovement).
	Pruner Pruner
	// Logger receives progress at debug level. Nothing is logged when nil.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with a minimum node size of 10 and a
// minimum split improvement of 1% of the root deviance.
func DefaultConfig() Config {
	return Config{
		MinNodeSize:         10,
		MinSplitImprovement: 0.01,
	}
}

// Validate returns an *InvalidConfigError if any option is out of range.
func (c Config) Validate() error {
	if c.MinNodeSize < 1 {
		return invalidConfig("minimum node size must be positive, got %d", c.MinNodeSize)
	}
	if c.MinSplitImprovement < 0 {
		return invalidConfig("minimum split improvement cannot be negative, got %v", c.MinSplitImprovement)
	}
	if c.MaxDepth < 0 {
		return invalidConfig("maximum depth cannot be negative, got %d", c.MaxDepth)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

func (c Config) concurrency() int {
	if c.Concurrency < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Concurrency
}

func (c Config) pruner() Pruner {
	if c.Pruner == nil {
		return MinImprovementPruner(c.MinSplitImprovement)
	}
	return c.Pruner
}

/*
SelectionRule picks a tree size from the results of a cross-validation.
*/
type SelectionRule int

const (
	// MinDeviance selects the smallest size with the minimum mean
	// cross-validated deviance.
	MinDeviance SelectionRule = iota
	// OneStandardError selects the smallest size whose mean
	// cross-validated deviance is within one standard error of the
	// minimum.
	OneStandardError
)

func (r SelectionRule) String() string {
	switch r {
	case MinDeviance:
		return "min"
	case OneStandardError:
		return "1se"
	}
	return "unknown"
}

// ParseSelectionRule returns the SelectionRule named by s ("min" or "1se").
func ParseSelectionRule(s string) (SelectionRule, error) {
	switch s {
	case "min", "":
		return MinDeviance, nil
	case "1se":
		return OneStandardError, nil
	}
	return MinDeviance, invalidConfig("unknown selection rule %q", s)
}

/*
CVConfig holds the options of the cross-validation run by Fit.
*/
type CVConfig struct {
	// Folds is the number of folds, 10 when zero.
	Folds int
	// Sizes are the candidate tree sizes. When empty, every size from 1
	// to the size of the tree grown on the whole matrix is evaluated.
	Sizes []int
	// Rule picks the final size.
	Rule SelectionRule
	// Rand assigns rows to folds. Folds are contiguous when nil.
	Rand *rand.Rand
}

func (c CVConfig) folds() int {
	if c.Folds == 0 {
		return 10
	}
	return c.Folds
}
