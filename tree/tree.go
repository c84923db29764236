package tree

import (
	"fmt"
	"strconv"
	"strings"
)

/*
Tree represents a regression tree. It is composed of an arena with all
its nodes, the names of the features its nodes split on and the name of
the target feature it predicts.

A Tree is immutable: it is built once and never modified. Its size (number
of leaves) and its deviance (sum of the deviance of its leaves) are computed
on construction.
*/
type Tree struct {
	features []string
	target   string
	nodes    []Node
	size     int
	deviance float64
}

/*
New takes the names of the features nodes may split on, the name of the
target feature, a slice of nodes and the ID of the root node in that slice
and returns a Tree with the nodes reachable from the root.

The nodes are copied into a new arena in depth-first order (parents before
children, left subtree before right subtree), so IDs, parents and depths of
the returned tree's nodes are reassigned and unreachable nodes dropped. An
error is returned if the nodes do not form a binary tree rooted at root or
if a split references an unknown feature.
*/
func New(features []string, target string, nodes []Node, root NodeID) (*Tree, error) {
	if root < 0 || int(root) >= len(nodes) {
		return nil, fmt.Errorf("building tree: root node %d not found", root)
	}
	t := &Tree{
		features: append([]string{}, features...),
		target:   target,
		nodes:    make([]Node, 0, len(nodes)),
	}
	visited := make([]bool, len(nodes))
	var add func(id, parent NodeID, depth int) (NodeID, error)
	add = func(id, parent NodeID, depth int) (NodeID, error) {
		if id < 0 || int(id) >= len(nodes) {
			return NoNode, fmt.Errorf("building tree: node %d not found", id)
		}
		if visited[id] {
			return NoNode, fmt.Errorf("building tree: node %d is reachable twice", id)
		}
		visited[id] = true
		n := nodes[id]
		newID := NodeID(len(t.nodes))
		n.ID = newID
		n.Parent = parent
		n.Depth = depth
		if n.Count < 0 || n.Deviance < 0 {
			return NoNode, fmt.Errorf("building tree: node %d has negative count or deviance", id)
		}
		if (n.Left == NoNode) != (n.Right == NoNode) {
			return NoNode, fmt.Errorf("building tree: node %d has a single child", id)
		}
		if n.Left == NoNode {
			n.Feature = -1
			t.nodes = append(t.nodes, n)
			t.size++
			t.deviance += n.Deviance
			return newID, nil
		}
		if n.Feature < 0 || n.Feature >= len(features) {
			return NoNode, fmt.Errorf("building tree: node %d splits on unknown feature %d", id, n.Feature)
		}
		t.nodes = append(t.nodes, n)
		left, err := add(n.Left, newID, depth+1)
		if err != nil {
			return NoNode, err
		}
		right, err := add(n.Right, newID, depth+1)
		if err != nil {
			return NoNode, err
		}
		t.nodes[newID].Left = left
		t.nodes[newID].Right = right
		return newID, nil
	}
	if _, err := add(root, NoNode, 0); err != nil {
		return nil, err
	}
	return t, nil
}

// Features returns the names of the features the tree may split on.
func (t *Tree) Features() []string {
	return append([]string{}, t.features...)
}

// Target returns the name of the feature the tree predicts.
func (t *Tree) Target() string {
	return t.target
}

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Node returns a copy of the node with the given ID. It panics if id is
// not in [0, Len()).
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Nodes returns a copy of the arena, indexed by NodeID.
func (t *Tree) Nodes() []Node {
	return append([]Node{}, t.nodes...)
}

// Len returns the total number of nodes, internal and terminal.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Size returns the number of terminal nodes.
func (t *Tree) Size() int {
	return t.size
}

// Deviance returns the sum of the deviance of the terminal nodes.
func (t *Tree) Deviance() float64 {
	return t.deviance
}

// FeatureName returns the name of the feature the node splits on,
// or "" for leaves.
func (t *Tree) FeatureName(n Node) string {
	if n.IsLeaf() {
		return ""
	}
	return t.features[n.Feature]
}

// Leaves returns the IDs of the terminal nodes, from left to right.
func (t *Tree) Leaves() []NodeID {
	leaves := make([]NodeID, 0, t.size)
	for _, n := range t.nodes {
		if n.IsLeaf() {
			leaves = append(leaves, n.ID)
		}
	}
	return leaves
}

// Traverse takes a bottomup boolean and an error-returning function
// that takes a node as parameter, and goes through the tree running the
// function with every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true.
// If the call to the function returns an error, the traversing is
// aborted and the error is returned. Otherwise, when the
// traversing is over, nil is returned.
func (t *Tree) Traverse(bottomup bool, f func(Node) error) error {
	return t.traverse(t.Root(), bottomup, f)
}

func (t *Tree) traverse(id NodeID, bottomup bool, f func(Node) error) error {
	n := t.nodes[id]
	if !bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	if !n.IsLeaf() {
		if err := t.traverse(n.Left, bottomup, f); err != nil {
			return err
		}
		if err := t.traverse(n.Right, bottomup, f); err != nil {
			return err
		}
	}
	if bottomup {
		return f(n)
	}
	return nil
}

func (t *Tree) String() string {
	return t.subtreeString(t.Root())
}

func (t *Tree) subtreeString(id NodeID) string {
	n := t.nodes[id]
	result := fmt.Sprintf("[%d]", id)
	if n.Parent != NoNode {
		p := t.nodes[n.Parent]
		op := "<="
		if p.Right == id {
			op = ">"
		}
		result = fmt.Sprintf("%s %s %s %s", result, t.features[p.Feature], op, formatFloat(p.Threshold))
	}
	result = fmt.Sprintf("%s { %s: %s, n: %d, deviance: %s }\n", result, t.target, formatFloat(n.Value), n.Count, formatFloat(n.Deviance))
	if n.IsLeaf() {
		return result
	}
	children := []NodeID{n.Left, n.Right}
	for i, child := range children {
		for j, line := range strings.Split(t.subtreeString(child), "\n") {
			if len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s\n", result, line)
			case i == len(children)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
