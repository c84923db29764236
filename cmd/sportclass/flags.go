package main

import (
	"fmt"
	"strconv"
	"strings"

	decisiontree "github.com/billylozowski/PitchClassification-decisiontree"
	"github.com/spf13/pflag"
)

// addTreeFlags registers the flags controlling how trees are grown. Their
// values reach commands through the loaded Config.
func addTreeFlags(fs *pflag.FlagSet) {
	dc := decisiontree.DefaultConfig()
	fs.Int("min-node-size", dc.MinNodeSize, "minimum number of samples a node must hold to be split")
	fs.Float64("min-split-improvement", dc.MinSplitImprovement, "minimum deviance reduction of a split, as a fraction of the deviance of the root")
	fs.Int("max-depth", 0, "maximum depth of the tree (defaults to 0: no limit)")
	fs.Int("concurrency", 0, "number of goroutines searching splits and training folds (defaults to 0: GOMAXPROCS)")
	fs.String("split-pruner", "default", "comma separated strategies discarding splits, the following are valid: default, none, min-improvement:[FRACTION], min-child-size:[SIZE]")
}

// addCVFlags registers the flags controlling cross-validation.
func addCVFlags(fs *pflag.FlagSet) {
	fs.Int("folds", 10, "number of cross-validation folds")
	fs.String("rule", decisiontree.MinDeviance.String(), "rule picking the tree size from the cross-validation, min or 1se")
}

/*
splitPruner parses a comma separated list of strategies and returns a
Pruner discarding a split when any of them does. It returns nil for
"default", leaving the minimum split improvement in charge.
*/
func splitPruner(strategies string) (decisiontree.Pruner, error) {
	if strategies == "" || strategies == "default" {
		return nil, nil
	}
	var pruners []decisiontree.Pruner
	for _, ps := range strings.Split(strategies, ",") {
		name, param, _ := strings.Cut(strings.TrimSpace(ps), ":")
		switch name {
		case "none":
			pruners = append(pruners, decisiontree.NoPruner())
		case "min-improvement":
			fraction, err := strconv.ParseFloat(param, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing min-improvement parameter: %v", err)
			}
			pruners = append(pruners, decisiontree.MinImprovementPruner(fraction))
		case "min-child-size":
			size, err := strconv.Atoi(param)
			if err != nil {
				return nil, fmt.Errorf("parsing min-child-size parameter: %v", err)
			}
			pruners = append(pruners, decisiontree.MinChildSizePruner(size))
		default:
			return nil, fmt.Errorf("unknown split pruning strategy %q", name)
		}
	}
	if len(pruners) == 1 {
		return pruners[0], nil
	}
	return decisiontree.AnyPruner(pruners...), nil
}
