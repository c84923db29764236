package decisiontree

import (
	"fmt"
	"math"

	"github.com/billylozowski/PitchClassification-decisiontree/tree"
)

// relative tolerance under which two link strengths are considered equal
const linkTolerance = 1e-12

/*
PrunedTree is an entry of a PrunedSequence.
*/
type PrunedTree struct {
	Tree *tree.Tree
	// Number of terminal nodes of Tree
	Size int
	// Training deviance of Tree
	Deviance float64
	// Strength of the link collapsed to obtain Tree from the previous
	// entry, 0 for the first entry.
	Alpha float64
}

/*
PrunedSequence is a sequence of nested trees ordered by decreasing size.
Its first entry is an unpruned tree and its last entry has a single leaf.
*/
type PrunedSequence []PrunedTree

// Sizes returns the size of every entry of the sequence.
func (ps PrunedSequence) Sizes() []int {
	sizes := make([]int, len(ps))
	for i, pt := range ps {
		sizes[i] = pt.Size
	}
	return sizes
}

/*
PruneSequence takes a tree and returns its cost-complexity pruning sequence.

Each entry is obtained from the previous one by collapsing into a leaf the
internal node t with the weakest link, that is, the lowest

	g(t) = (R(t) - R(T_t)) / (|T_t| - 1)

where R(t) is the deviance of t as a leaf, R(T_t) the deviance of the
subtree rooted at t and |T_t| its number of leaves. Ties go to the deepest
node and then to the node with the lowest ID. Collapsing continues until
only the root remains. Every entry is an independent tree.
*/
func PruneSequence(t *tree.Tree) (PrunedSequence, error) {
	if t == nil {
		return nil, &InvalidInputError{Reason: "no tree to prune"}
	}
	seq := PrunedSequence{{Tree: t, Size: t.Size(), Deviance: t.Deviance()}}
	for t.Size() > 1 {
		id, g := weakestLink(t)
		nodes := t.Nodes()
		nodes[id] = nodes[id].Collapse()
		next, err := tree.New(t.Features(), t.Target(), nodes, t.Root())
		if err != nil {
			return nil, fmt.Errorf("collapsing node %d: %w", id, err)
		}
		pruneSteps.Inc()
		seq = append(seq, PrunedTree{Tree: next, Size: next.Size(), Deviance: next.Deviance(), Alpha: g})
		t = next
	}
	return seq, nil
}

// weakestLink returns the internal node of t with the lowest link
// strength and that strength. t must have at least one internal node.
func weakestLink(t *tree.Tree) (tree.NodeID, float64) {
	nodes := t.Nodes()
	leaves := make([]int, len(nodes))
	deviance := make([]float64, len(nodes))
	// children always have higher IDs than their parents
	for i := len(nodes) - 1; i >= 0; i-- {
		n := &nodes[i]
		if n.IsLeaf() {
			leaves[i] = 1
			deviance[i] = n.Deviance
			continue
		}
		leaves[i] = leaves[n.Left] + leaves[n.Right]
		deviance[i] = deviance[n.Left] + deviance[n.Right]
	}
	best := tree.NoNode
	var bestG float64
	for i := range nodes {
		n := &nodes[i]
		if n.IsLeaf() {
			continue
		}
		g := math.Max(0, (n.Deviance-deviance[i])/float64(leaves[i]-1))
		if best == tree.NoNode {
			best, bestG = n.ID, g
			continue
		}
		tol := linkTolerance * math.Max(1, math.Max(math.Abs(g), math.Abs(bestG)))
		switch {
		case g < bestG-tol:
			best, bestG = n.ID, g
		case math.Abs(g-bestG) <= tol && n.Depth > nodes[best].Depth:
			best, bestG = n.ID, g
		}
	}
	return best, bestG
}

/*
SelectBySize takes a pruned sequence and a size and returns the tree of the
sequence with that number of leaves. When there is none, the smallest tree
larger than size is returned, or the first tree of the sequence if size is
larger than all of them. An *InvalidConfigError is returned if size is not
positive or the sequence is empty.
*/
func SelectBySize(seq PrunedSequence, size int) (*tree.Tree, error) {
	if size < 1 {
		return nil, invalidConfig("tree size must be positive, got %d", size)
	}
	if len(seq) == 0 {
		return nil, invalidConfig("empty pruned sequence")
	}
	for i := len(seq) - 1; i >= 0; i-- {
		if seq[i].Size >= size {
			return seq[i].Tree, nil
		}
	}
	return seq[0].Tree, nil
}
