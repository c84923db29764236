package json

import (
	"encoding/json"
	"fmt"

	"github.com/billylozowski/PitchClassification-decisiontree/tree"
)

type node struct {
	ID        tree.NodeID `json:"id"`
	Feature   int         `json:"f"`
	Threshold float64     `json:"t"`
	Left      tree.NodeID `json:"l"`
	Right     tree.NodeID `json:"r"`
	Value     float64     `json:"v"`
	Count     int         `json:"n"`
	Deviance  float64     `json:"d"`
	Depth     int         `json:"depth"`
}

/*
EncodeNode takes a tree.Node and returns its JSON encoding. Leaves are
encoded with -1 as feature and children.
*/
func EncodeNode(n tree.Node) ([]byte, error) {
	jn := &node{
		ID:        n.ID,
		Feature:   n.Feature,
		Threshold: n.Threshold,
		Left:      n.Left,
		Right:     n.Right,
		Value:     n.Value,
		Count:     n.Count,
		Deviance:  n.Deviance,
		Depth:     n.Depth,
	}
	data, err := json.Marshal(jn)
	if err != nil {
		return nil, fmt.Errorf("encoding node %d: %v", n.ID, err)
	}
	return data, nil
}

// DecodeNode takes the JSON encoding of a node and returns the tree.Node.
func DecodeNode(data []byte) (tree.Node, error) {
	jn := &node{}
	if err := json.Unmarshal(data, jn); err != nil {
		return tree.Node{}, fmt.Errorf("decoding node: %v", err)
	}
	return tree.Node{
		ID:        jn.ID,
		Parent:    tree.NoNode,
		Feature:   jn.Feature,
		Threshold: jn.Threshold,
		Left:      jn.Left,
		Right:     jn.Right,
		Value:     jn.Value,
		Count:     jn.Count,
		Deviance:  jn.Deviance,
		Depth:     jn.Depth,
	}, nil
}
