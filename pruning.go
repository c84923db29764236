package decisiontree

import (
	"context"
)

/*
Pruner is an interface wrapping the Prune method, that can be used
to decide whether the best split of a node is good enough to become part
of a tree or if the node must remain a leaf instead.

The Prune method takes a context and a partition and returns a boolean:
true to indicate the partition must be discarded, false to allow its adding
to the tree and further development.
*/
type Pruner interface {
	Prune(ctx context.Context, p *Partition) (bool, error)
}

/*
PrunerFunc wraps a function with the Prune method signature to implement
the Pruner interface
*/
type PrunerFunc func(ctx context.Context, p *Partition) (bool, error)

/*
Prune takes a context.Context and a partition and invokes the PrunerFunc
with those parameters to return its boolean result.
*/
func (pf PrunerFunc) Prune(ctx context.Context, p *Partition) (bool, error) {
	return pf(ctx, p)
}

/*
MinImprovementPruner takes a fraction and returns a Pruner whose Prune
method returns true when the deviance reduction of the partition is lower
than that fraction of the deviance at the root of the tree.
*/
func MinImprovementPruner(fraction float64) Pruner {
	return PrunerFunc(func(ctx context.Context, p *Partition) (bool, error) {
		return p.Improvement() < fraction*p.RootDeviance, nil
	})
}

/*
MinChildSizePruner takes a size and returns a Pruner whose Prune method
returns true when either side of the partition holds less rows than size.
*/
func MinChildSizePruner(size int) Pruner {
	return PrunerFunc(func(ctx context.Context, p *Partition) (bool, error) {
		return p.LeftCount < size || p.RightCount < size, nil
	})
}

/*
AnyPruner returns a Pruner that discards a partition as soon as one of the
given pruners does.
*/
func AnyPruner(pruners ...Pruner) Pruner {
	return PrunerFunc(func(ctx context.Context, p *Partition) (bool, error) {
		for _, pr := range pruners {
			ok, err := pr.Prune(ctx, p)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	})
}

/*
NoPruner returns a Pruner whose Prune method always returns false, that is,
never prunes.
*/
func NoPruner() Pruner {
	return PrunerFunc(func(ctx context.Context, p *Partition) (bool, error) {
		return false, nil
	})
}
