/*
Package decisiontree grows regression trees from a dataset.Matrix, prunes
them by cost-complexity and picks their size by k-fold cross-validation.

The usual flow is:

	t, err := decisiontree.Build(ctx, train, decisiontree.DefaultConfig())
	seq, err := decisiontree.PruneSequence(t)
	cv, err := decisiontree.CrossValidate(ctx, train, cfg, 10, nil, rand.New(rand.NewSource(1)))
	pruned, err := decisiontree.SelectBySize(seq, cv.Best(decisiontree.MinDeviance))
	eval, err := decisiontree.Evaluate(pruned, test)

Fit runs the first four steps at once.
*/
package decisiontree
