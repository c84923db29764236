package tree

/*
NodeID identifies a node inside the arena of a Tree
*/
type NodeID int

// NoNode is the NodeID of the missing children of a leaf and of the
// missing parent of the root.
const NoNode NodeID = -1

/*
Node is a node of the tree.

A node is either internal, when it splits the samples that reach it on
Feature and Threshold, or a leaf. Every node, internal or not, keeps the
prediction for the training samples that reached it so it can be collapsed
into a leaf when the tree is pruned.
*/
type Node struct {
	// The position of the node in the tree's arena
	ID NodeID
	// The node directly above this one, NoNode for the root
	Parent NodeID
	// Index in the tree's features of the feature the node splits on.
	// It is -1 for leaves.
	Feature int
	// Samples whose value for Feature is lower than or equal to the
	// threshold are routed Left, the rest are routed Right.
	Threshold float64
	Left      NodeID
	Right     NodeID
	// The mean target value of the training samples that reached the node
	Value float64
	// The number of training samples that reached the node
	Count int
	// The sum of squared deviations from Value of the target of the
	// training samples that reached the node
	Deviance float64
	// Distance to the root, which has depth 0
	Depth int
}

// IsLeaf reports whether the node is a terminal node.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// Leaf returns a leaf node with the given prediction data.
func Leaf(value float64, count int, deviance float64) Node {
	return Node{
		ID:       NoNode,
		Parent:   NoNode,
		Feature:  -1,
		Left:     NoNode,
		Right:    NoNode,
		Value:    value,
		Count:    count,
		Deviance: deviance,
	}
}

// Collapse returns a copy of the node turned into a leaf with the same
// prediction data.
func (n Node) Collapse() Node {
	n.Feature = -1
	n.Threshold = 0
	n.Left = NoNode
	n.Right = NoNode
	return n
}
