package decisiontree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "decisiontree_builds_total",
		Help: "Total tree builds by result",
	}, []string{"result"})

	buildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "decisiontree_build_duration_seconds",
		Help:    "Tree build duration",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	treeSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "decisiontree_tree_size",
		Help:    "Number of terminal nodes of built trees",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200},
	})

	pruneSteps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "decisiontree_prune_steps_total",
		Help: "Total weakest-link collapses",
	})

	cvFoldDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "decisiontree_cv_fold_duration_seconds",
		Help:    "Duration of the training and evaluation of a cross-validation fold",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
)
