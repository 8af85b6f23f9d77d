package tree

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/feature"
)

// Tree represents a binary classification tree. It is composed of
// its root node and the schema of the samples it classifies.
type Tree struct {
	Root   Node
	Schema *dataset.Schema
}

// New takes a root Node and a schema and returns a tree.
func New(root Node, schema *dataset.Schema) *Tree {
	return &Tree{root, schema}
}

// Predict takes a sample and returns a prediction according to the tree and an
// error if the prediction could not be made.
func (t *Tree) Predict(s feature.Sample) (*Prediction, error) {
	if t == nil || t.Root == nil {
		return nil, ErrNoRoot
	}
	n := t.Root
	for {
		switch cn := n.(type) {
		case *Leaf:
			return &Prediction{Label: cn.label}, nil
		case *Internal:
			v, err := s.ValueFor(cn.feature)
			if err != nil {
				return nil, fmt.Errorf("predicting sample: %v", err)
			}
			child, ok := cn.Child(v)
			if !ok {
				return &Prediction{
					Label:           cn.majority,
					Fallback:        true,
					FallbackFeature: cn.feature,
					FallbackValue:   v,
				}, nil
			}
			n = child
		default:
			return nil, fmt.Errorf("predicting sample: unknown node type %T", n)
		}
	}
}

/*
Classify takes a dataset and returns the classification of its samples: the
predicted labels in the same order as the samples and the number of fallback
predictions. An error is returned if any sample cannot be predicted.
*/
func (t *Tree) Classify(d *dataset.Dataset) (*Classification, error) {
	c := &Classification{Labels: make([]string, 0, d.Count())}
	for i, s := range d.Samples() {
		p, err := t.Predict(s)
		if err != nil {
			return nil, fmt.Errorf("classifying sample %d: %v", i, err)
		}
		if p.Fallback {
			c.Fallbacks++
		}
		c.Labels = append(c.Labels, p.Label)
	}
	return c, nil
}

/*
Test takes a dataset and returns the score of the tree's classification of
it along with the number of fallback predictions.
*/
func (t *Tree) Test(d *dataset.Dataset) (Score, int, error) {
	c, err := t.Classify(d)
	if err != nil {
		return Score{}, 0, err
	}
	s, err := NewScore(d, c.Labels)
	if err != nil {
		return Score{}, 0, err
	}
	return s, c.Fallbacks, nil
}

type frame struct {
	path     feature.Conjunction
	node     Node
	expanded bool
}

// Traverse takes a bottomup boolean and an error-returning function that takes
// the path from the root to a node and the node, and goes through the tree
// running the function with every traversed node. Children are visited in the
// domain order of their parent's feature.
// Traverse will call the function with a parent node before calling it for its
// children if bottomup is false, and call it after its children if bottomup is
// true. If the call to the function returns an error, the traversing is aborted
// and the error is returned.
// The path passed to the function is owned by it.
func (t *Tree) Traverse(bottomup bool, f func(feature.Conjunction, Node) error) error {
	if t.Root == nil {
		return nil
	}
	stack := arraystack.New()
	stack.Push(&frame{node: t.Root})
	for !stack.Empty() {
		v, _ := stack.Pop()
		fr := v.(*frame)
		in, internal := fr.node.(*Internal)
		if fr.expanded || !internal || !bottomup {
			if err := f(fr.path, fr.node); err != nil {
				return err
			}
		}
		if !internal || fr.expanded {
			continue
		}
		if bottomup {
			stack.Push(&frame{fr.path, fr.node, true})
		}
		for i := len(in.children) - 1; i >= 0; i-- {
			c := in.children[i]
			path := make(feature.Conjunction, len(fr.path), len(fr.path)+1)
			copy(path, fr.path)
			path = append(path, feature.NewCriterion(in.feature, c.Edge()))
			stack.Push(&frame{path: path, node: c})
		}
	}
	return nil
}

/*
Replace takes the path from the root to a node of the tree and a
replacement node, and returns a new tree that is a deep copy of this one
with the addressed node replaced by a copy of the given one. The tree is
left untouched and shares no node with the returned tree. An error is
returned if the path does not address a node of the tree or the
replacement node's edge does not match the replaced node's.
*/
func (t *Tree) Replace(path feature.Conjunction, n Node) (*Tree, error) {
	if t.Root == nil {
		return nil, ErrNoRoot
	}
	root, err := replace(t.Root, path, n)
	if err != nil {
		return nil, fmt.Errorf("replacing node at %v: %v", path, err)
	}
	return &Tree{root, t.Schema}, nil
}

func replace(current Node, path feature.Conjunction, n Node) (Node, error) {
	if len(path) == 0 {
		if n.Edge() != current.Edge() {
			return nil, fmt.Errorf("replacement edge %s does not match %s", n.Edge(), current.Edge())
		}
		return Copy(n), nil
	}
	in, ok := current.(*Internal)
	if !ok {
		return nil, fmt.Errorf("path goes past leaf %v", current)
	}
	if in.feature.Name() != path[0].Feature.Name() {
		return nil, fmt.Errorf("node splits on %s, not %s", in.feature.Name(), path[0].Feature.Name())
	}
	cs := make([]Node, len(in.children))
	var found bool
	for i, c := range in.children {
		if c.Edge() != path[0].Value {
			cs[i] = Copy(c)
			continue
		}
		rc, err := replace(c, path[1:], n)
		if err != nil {
			return nil, err
		}
		cs[i] = rc
		found = true
	}
	if !found {
		return nil, fmt.Errorf("%s is not a value of %s", path[0].Value, in.feature.Name())
	}
	return &Internal{in.edge, in.feature, in.majority, in.weight, cs}, nil
}

/*
Copy returns a deep copy of the tree.
*/
func (t *Tree) Copy() *Tree {
	if t.Root == nil {
		return &Tree{nil, t.Schema}
	}
	return &Tree{Copy(t.Root), t.Schema}
}

/*
Depth returns the number of edges in the longest path from the root to
a leaf. A tree consisting of a single leaf has depth 0.
*/
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(false, func(path feature.Conjunction, _ Node) error {
		if len(path) > depth {
			depth = len(path)
		}
		return nil
	})
	return depth
}

/*
Size returns the number of internal nodes and leaves in the tree.
*/
func (t *Tree) Size() (internals, leaves int) {
	t.Traverse(false, func(_ feature.Conjunction, n Node) error {
		if _, ok := n.(*Leaf); ok {
			leaves++
		} else {
			internals++
		}
		return nil
	})
	return
}
