/*
Package json provides the JSON serialization of trees, to write them onto
files or to keep them on stores.
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/tree"
)

/*
EncodeDecoder is an interface for objects
that allow encoding trees into slices of
bytes and decoding them back to trees.
*/
type EncodeDecoder interface {

	//Encode receives a *tree.Tree
	// and returns a slice of bytes with the tree
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(*tree.Tree) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a *tree.Tree decoded from the
	//slice of bytes or an error if the decoding
	//could not be performed for some reason.
	Decode([]byte) (*tree.Tree, error)
}

type jsonTree struct {
	Label string `json:"label"`
	Root  *node  `json:"root"`
}

type encodeDecoder struct {
	schema *dataset.Schema
}

/*
NewEncodeDecoder returns an EncodeDecoder that marshals trees into JSON
with WriteJSONTree and unmarshals them with ReadJSONTree using the given
schema.
*/
func NewEncodeDecoder(schema *dataset.Schema) EncodeDecoder {
	return &encodeDecoder{schema}
}

func (ed *encodeDecoder) Encode(t *tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	err := WriteJSONTree(&buf, t)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (ed *encodeDecoder) Decode(data []byte) (*tree.Tree, error) {
	return ReadJSONTree(bytes.NewReader(data), ed.schema)
}

/*
WriteJSONTree takes an io.Writer and a pointer to a tree.Tree and serializes
the given tree as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:
* "label": a string with the name of the class feature the tree predicts
* "root": the root node of the tree.
Nodes are objects with an "edge" field holding their incoming edge value and
a "w" field with their weight. Leaves have a "label" field, whereas internal
nodes have "feature", "majority" and "children" fields, the latter being the
array of child nodes in the domain order of the feature.
An error is returned if the tree cannot be serialized or written onto the
io.Writer.
*/
func WriteJSONTree(w io.Writer, t *tree.Tree) error {
	if t.Root == nil {
		return tree.ErrNoRoot
	}
	root, err := encodeNode(t.Root)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(&jsonTree{t.Schema.Label().Name(), root})
}

/*
ReadJSONTree takes an io.Reader and a schema and unmarshals the contents of
the io.Reader into a tree for samples of the given schema.
The JSON is expected to have the format produced by WriteJSONTree. An error is
returned if the JSON cannot be read from the io.Reader, its class feature is
not the schema's, or it references features or values not in the schema.
*/
func ReadJSONTree(r io.Reader, schema *dataset.Schema) (*tree.Tree, error) {
	jt := &jsonTree{}
	err := json.NewDecoder(r).Decode(jt)
	if err != nil {
		return nil, err
	}
	if jt.Label != schema.Label().Name() {
		return nil, fmt.Errorf("tree predicts %q, expected class feature %q", jt.Label, schema.Label().Name())
	}
	if jt.Root == nil {
		return nil, fmt.Errorf("no root node available")
	}
	root, err := jt.Root.decode(schema)
	if err != nil {
		return nil, err
	}
	return tree.New(root, schema), nil
}
