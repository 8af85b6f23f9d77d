package json

import (
	"fmt"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/tree"
)

type node struct {
	Edge     string  `json:"edge"`
	Weight   int     `json:"w,omitempty"`
	Label    string  `json:"label,omitempty"`
	Feature  string  `json:"feature,omitempty"`
	Majority string  `json:"majority,omitempty"`
	Children []*node `json:"children,omitempty"`
}

func encodeNode(n tree.Node) (*node, error) {
	switch n := n.(type) {
	case *tree.Leaf:
		return &node{Edge: n.Edge(), Weight: n.Weight(), Label: n.Label()}, nil
	case *tree.Internal:
		jn := &node{
			Edge:     n.Edge(),
			Weight:   n.Weight(),
			Feature:  n.Feature().Name(),
			Majority: n.Majority(),
		}
		for _, c := range n.Children() {
			jc, err := encodeNode(c)
			if err != nil {
				return nil, err
			}
			jn.Children = append(jn.Children, jc)
		}
		return jn, nil
	}
	return nil, fmt.Errorf("unknown node type %T", n)
}

func (jn *node) decode(schema *dataset.Schema) (tree.Node, error) {
	if jn.Feature == "" {
		if len(jn.Children) > 0 {
			return nil, fmt.Errorf("unmarshalling node %s: leaf has children", jn.Edge)
		}
		if err := schema.Label().Valid(jn.Label); err != nil {
			return nil, fmt.Errorf("unmarshalling leaf %s: %v", jn.Edge, err)
		}
		return tree.NewLeaf(jn.Edge, jn.Label, jn.Weight), nil
	}
	f := schema.Feature(jn.Feature)
	if f == nil || f == schema.Label() {
		return nil, fmt.Errorf("unmarshalling node %s: unknown feature %v", jn.Edge, jn.Feature)
	}
	if err := schema.Label().Valid(jn.Majority); err != nil {
		return nil, fmt.Errorf("unmarshalling node %s: %v", jn.Edge, err)
	}
	children := make([]tree.Node, 0, len(jn.Children))
	for _, jc := range jn.Children {
		c, err := jc.decode(schema)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	n, err := tree.NewInternal(jn.Edge, f, jn.Majority, jn.Weight, children)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling node %s: %v", jn.Edge, err)
	}
	return n, nil
}
