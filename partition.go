package decisiontree

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// nodes holding fewer cells than this are searched on a single goroutine
const parallelSearchThreshold = 4096

// splits must reduce the deviance of a node by more than this fraction of it
const splitTolerance = 1e-12

/*
Partition is the best split found for a node: rows whose value for the
feature is lower than or equal to the threshold go left, the rest go right.
*/
type Partition struct {
	// Index of the feature in the matrix
	Feature     int
	FeatureName string
	Threshold   float64
	// Depth of the node being split
	Depth int
	// Number of rows of the node and on each side of the split
	Count      int
	LeftCount  int
	RightCount int
	// Deviance of the node, of each side of the split and of the root
	// of the tree
	Deviance      float64
	LeftDeviance  float64
	RightDeviance float64
	RootDeviance  float64
}

// Improvement returns the deviance reduction achieved by the split.
func (p *Partition) Improvement() float64 {
	return p.Deviance - p.LeftDeviance - p.RightDeviance
}

type candidate struct {
	found     bool
	threshold float64
	leftCount int
	leftRSS   float64
	rightRSS  float64
}

func (c *candidate) rss() float64 {
	return c.leftRSS + c.rightRSS
}

/*
bestSplitOn takes the column of a feature, the target column, the rows of
a node sorted by their value in that column and the mean target of those
rows and returns the split on the feature with the lowest residual sum of
squares. Candidate thresholds are the midpoints between consecutive distinct
values, tried in ascending order so the lowest threshold wins ties.
*/
func bestSplitOn(x, y []float64, rows []int, mean float64) candidate {
	var best candidate
	n := len(rows)
	if n < 2 {
		return best
	}
	var total1, total2 float64
	for _, r := range rows {
		d := y[r] - mean
		total1 += d
		total2 += d * d
	}
	var s1, s2 float64
	for k := 0; k < n-1; k++ {
		d := y[rows[k]] - mean
		s1 += d
		s2 += d * d
		a, b := x[rows[k]], x[rows[k+1]]
		if a == b {
			continue
		}
		nl, nr := float64(k+1), float64(n-k-1)
		l := nonNegative(s2 - s1*s1/nl)
		r := nonNegative((total2 - s2) - (total1-s1)*(total1-s1)/nr)
		if best.found && l+r >= best.rss() {
			continue
		}
		best = candidate{
			found:     true,
			threshold: midpoint(a, b),
			leftCount: k + 1,
			leftRSS:   l,
			rightRSS:  r,
		}
	}
	return best
}

// midpoint returns a threshold t with a <= t < b for a < b.
func midpoint(a, b float64) float64 {
	t := a/2 + b/2
	if !(t >= a && t < b) {
		return a
	}
	return t
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

/*
bestPartition searches the best split of a node among all features and
returns it, or nil if no split reduces its deviance. sorted holds the rows
of the node sorted by each feature followed by the rows in matrix order. Features are searched
concurrently on large nodes and the results reduced in feature order, so
the feature with the lowest index wins ties.
*/
func (b *builder) bestPartition(ctx context.Context, sorted [][]int, mean, deviance float64, depth int) (*Partition, error) {
	results := make([]candidate, len(b.x))
	n := len(sorted[len(b.x)])
	if b.concurrency > 1 && len(b.x) > 1 && n*len(b.x) >= parallelSearchThreshold {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(b.concurrency)
		for j := range b.x {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[j] = bestSplitOn(b.x[j], b.y, sorted[j], mean)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for j := range b.x {
			results[j] = bestSplitOn(b.x[j], b.y, sorted[j], mean)
		}
	}
	best := -1
	for j := range results {
		if results[j].found && (best < 0 || results[j].rss() < results[best].rss()) {
			best = j
		}
	}
	if best < 0 {
		return nil, nil
	}
	c := results[best]
	if deviance-c.rss() <= splitTolerance*deviance {
		return nil, nil
	}
	return &Partition{
		Feature:       best,
		FeatureName:   b.features[best],
		Threshold:     c.threshold,
		Depth:         depth,
		Count:         n,
		LeftCount:     c.leftCount,
		RightCount:    n - c.leftCount,
		Deviance:      deviance,
		LeftDeviance:  c.leftRSS,
		RightDeviance: c.rightRSS,
		RootDeviance:  b.rootDeviance,
	}, nil
}

/*
split takes a partition and the rows of a node sorted by every feature,
followed by the rows in matrix order, and returns the rows of each side
in the same layout.
*/
func (b *builder) split(p *Partition, sorted [][]int) (left, right [][]int) {
	x := b.x[p.Feature]
	for _, r := range sorted[p.Feature] {
		b.left[r] = x[r] <= p.Threshold
	}
	left = make([][]int, len(sorted))
	right = make([][]int, len(sorted))
	for j, rows := range sorted {
		l := make([]int, 0, p.LeftCount)
		r := make([]int, 0, p.RightCount)
		for _, row := range rows {
			if b.left[row] {
				l = append(l, row)
			} else {
				r = append(r, row)
			}
		}
		left[j], right[j] = l, r
	}
	return left, right
}
