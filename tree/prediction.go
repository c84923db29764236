package tree

import (
	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

// MissingFeatureError is returned by Predict and Leaf when the sample does
// not define a value for a feature the tree splits on.
type MissingFeatureError = feature.MissingFeatureError

/*
Predict takes a sample and returns the value predicted for it by the tree:
the Value of the leaf the sample reaches starting at the root and going left
whenever its value for the node's feature is lower than or equal to the
node's threshold.

A *MissingFeatureError is returned if the sample lacks a value for a
feature on its path.
*/
func (t *Tree) Predict(s feature.Sample) (float64, error) {
	id, err := t.Leaf(s)
	if err != nil {
		return 0, err
	}
	return t.nodes[id].Value, nil
}

/*
Leaf takes a sample and returns the ID of the terminal node it reaches.
Leaves group samples into classes, so the ID identifies the class of the
sample.
*/
func (t *Tree) Leaf(s feature.Sample) (NodeID, error) {
	id := t.Root()
	for {
		n := &t.nodes[id]
		if n.IsLeaf() {
			return id, nil
		}
		name := t.features[n.Feature]
		v, ok := s.ValueFor(name)
		if !ok {
			return NoNode, &MissingFeatureError{Feature: name}
		}
		if v <= n.Threshold {
			id = n.Left
		} else {
			id = n.Right
		}
	}
}

/*
Path returns the criteria a sample must satisfy to reach the node with the
given ID, ordered from the root down. It panics if id is not in
[0, Len()).
*/
func (t *Tree) Path(id NodeID) []feature.Criterion {
	var path []feature.Criterion
	for n := t.nodes[id]; n.Parent != NoNode; n = t.nodes[n.Parent] {
		p := t.nodes[n.Parent]
		name := t.features[p.Feature]
		if p.Left == n.ID {
			path = append(path, feature.NewAtMostCriterion(name, p.Threshold))
		} else {
			path = append(path, feature.NewAboveCriterion(name, p.Threshold))
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
