package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/billylozowski/PitchClassification-decisiontree/tree"
)

/*
WriteJSONTree takes a pointer to a tree.Tree and an io.Writer and
serializes the given tree as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:
  - "features": an array with the names of the features the tree splits on
  - "target": a string with the name of the feature the tree predicts
  - "root": the ID of the node at the root of the tree
  - "nodes": an array with every node of the tree, encoded by EncodeNode
    in depth-first order.

Floats are written with the shortest representation that parses back to
the same value, so a tree read back makes exactly the same predictions.
An error is returned if the tree cannot be serialized or written onto the
io.Writer.
*/
func WriteJSONTree(t *tree.Tree, w io.Writer) error {
	if err := writeHeader(t, w); err != nil {
		return err
	}
	var i int
	err := t.Traverse(false, func(n tree.Node) error {
		err := writeNode(i, n, w)
		i++
		return err
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte(`]}`))
	return err
}

/*
ReadJSONTree takes an io.Reader and unmarshals its contents as a tree
serialized by WriteJSONTree. An error is returned if the JSON cannot be
read or does not describe a valid tree.
*/
func ReadJSONTree(r io.Reader) (*tree.Tree, error) {
	dec := json.NewDecoder(r)
	jt := &struct {
		Features []string          `json:"features"`
		Target   string            `json:"target"`
		Root     *tree.NodeID      `json:"root"`
		Nodes    []json.RawMessage `json:"nodes"`
	}{}
	if err := dec.Decode(jt); err != nil {
		return nil, fmt.Errorf("decoding tree: %v", err)
	}
	if jt.Target == "" {
		return nil, fmt.Errorf("decoding tree: no target feature defined")
	}
	if jt.Root == nil {
		return nil, fmt.Errorf("decoding tree: no root node id available")
	}
	nodes := make([]tree.Node, len(jt.Nodes))
	seen := make([]bool, len(jt.Nodes))
	for _, data := range jt.Nodes {
		n, err := DecodeNode(data)
		if err != nil {
			return nil, err
		}
		if n.ID < 0 || int(n.ID) >= len(nodes) || seen[n.ID] {
			return nil, fmt.Errorf("decoding tree: unexpected node id %d", n.ID)
		}
		seen[n.ID] = true
		nodes[n.ID] = n
	}
	t, err := tree.New(jt.Features, jt.Target, nodes, *jt.Root)
	if err != nil {
		return nil, fmt.Errorf("decoding tree: %v", err)
	}
	return t, nil
}

// Marshal returns the JSON serialization of the tree.
func Marshal(t *tree.Tree) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := WriteJSONTree(t, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal returns the tree serialized in data.
func Unmarshal(data []byte) (*tree.Tree, error) {
	return ReadJSONTree(bytes.NewReader(data))
}

func writeHeader(t *tree.Tree, w io.Writer) error {
	jFeatures, err := json.Marshal(t.Features())
	if err != nil {
		return err
	}
	jTarget, err := json.Marshal(t.Target())
	if err != nil {
		return err
	}
	header := fmt.Sprintf(`{"features":%s,"target":%s,"root":%d,"nodes":[`, jFeatures, jTarget, t.Root())
	_, err = w.Write([]byte(header))
	return err
}

func writeNode(i int, n tree.Node, w io.Writer) error {
	if i != 0 {
		if _, err := w.Write([]byte(",")); err != nil {
			return err
		}
	}
	jn, err := EncodeNode(n)
	if err != nil {
		return err
	}
	_, err = w.Write(jn)
	return err
}
