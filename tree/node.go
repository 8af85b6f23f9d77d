package tree

import (
	"fmt"

	"github.com/robjustinwagner/dectree/feature"
)

// RootEdge is the incoming edge value of the root node of every tree. It is a
// marker, not a value of any feature.
const RootEdge = "ROOT"

/*
Node is a node of the tree: either a *Leaf predicting a label or an *Internal
node splitting on a feature. Nodes are immutable once built; a tree changes
only by building new nodes and swapping them in.
*/
type Node interface {
	// Edge returns the feature value that leads to the node from its parent,
	// RootEdge for the root.
	Edge() string
	// Weight returns the number of training samples that reached the node.
	Weight() int
	node()
}

/*
Leaf is a node that predicts a label for every sample that reaches it.
*/
type Leaf struct {
	edge   string
	label  string
	weight int
}

/*
Internal is a node that asks samples about a feature and sends them to the
child for their value. It has a child for every value in the feature's domain,
in domain order, and remembers the majority label of the training samples
that reached it.
*/
type Internal struct {
	edge     string
	feature  *feature.Feature
	majority string
	weight   int
	children []Node
}

/*
NewLeaf takes the incoming edge value, the predicted label and the number
of training samples that reached the node and returns a leaf.
*/
func NewLeaf(edge, label string, weight int) *Leaf {
	return &Leaf{edge, label, weight}
}

/*
NewInternal takes the incoming edge value, the feature the node splits on, the
majority label and number of the training samples that reached it, and the
children for each value of the feature. It returns an error unless there is
exactly one child per domain value and the children are in domain order, each
with its value as edge.
*/
func NewInternal(edge string, f *feature.Feature, majority string, weight int, children []Node) (*Internal, error) {
	values := f.Values()
	if len(children) != len(values) {
		return nil, fmt.Errorf("node splitting on %s needs %d children, got %d", f.Name(), len(values), len(children))
	}
	cs := make([]Node, len(children))
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("node splitting on %s has no child for %s", f.Name(), values[i])
		}
		if c.Edge() != values[i] {
			return nil, fmt.Errorf("node splitting on %s expects child %d for %s, got %s", f.Name(), i, values[i], c.Edge())
		}
		cs[i] = c
	}
	return &Internal{edge, f, majority, weight, cs}, nil
}

func (l *Leaf) Edge() string { return l.edge }
func (l *Leaf) Weight() int  { return l.weight }
func (l *Leaf) node()        {}

// Label returns the label the leaf predicts.
func (l *Leaf) Label() string {
	return l.label
}

func (l *Leaf) String() string {
	return fmt.Sprintf("%s (%s)", l.edge, l.label)
}

func (n *Internal) Edge() string { return n.edge }
func (n *Internal) Weight() int  { return n.weight }
func (n *Internal) node()        {}

// Feature returns the feature the node splits on.
func (n *Internal) Feature() *feature.Feature {
	return n.feature
}

// Majority returns the majority label of the training samples that reached
// the node.
func (n *Internal) Majority() string {
	return n.majority
}

/*
Children returns a copy of the slice of children of the node in the
domain order of its feature.
*/
func (n *Internal) Children() []Node {
	cs := make([]Node, len(n.children))
	copy(cs, n.children)
	return cs
}

/*
Child takes a value and returns the child the value leads to and true,
or nil and false if the value is not in the feature's domain.
*/
func (n *Internal) Child(value string) (Node, bool) {
	for _, c := range n.children {
		if c.Edge() == value {
			return c, true
		}
	}
	return nil, false
}

/*
Frontier returns whether all children of the node are leaves, that is,
whether the node can be collapsed into a leaf without losing any other
internal node.
*/
func (n *Internal) Frontier() bool {
	for _, c := range n.children {
		if _, ok := c.(*Leaf); !ok {
			return false
		}
	}
	return true
}

func (n *Internal) String() string {
	return fmt.Sprintf("%s {%s?}", n.edge, n.feature.Name())
}

/*
Copy returns a deep copy of the subtree under the given node, sharing
no node with it.
*/
func Copy(n Node) Node {
	switch n := n.(type) {
	case *Leaf:
		return &Leaf{n.edge, n.label, n.weight}
	case *Internal:
		cs := make([]Node, len(n.children))
		for i, c := range n.children {
			cs[i] = Copy(c)
		}
		return &Internal{n.edge, n.feature, n.majority, n.weight, cs}
	}
	return nil
}
