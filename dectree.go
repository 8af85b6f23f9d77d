/*
Package dectree grows binary classification trees from labelled categorical
samples, choosing at every node the feature with the greatest information
gain, and prunes them against a tuning dataset with reduced-error pruning.
*/
package dectree

import (
	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/feature"
	"github.com/robjustinwagner/dectree/tree"
)

// TreeError represents an error growing or pruning a tree
type TreeError string

/*
ErrEmptyTrainingSet is the error returned when trying to grow a tree
from a dataset with no samples.
*/
const ErrEmptyTrainingSet = TreeError("cannot grow a tree from an empty training set")

/*
ErrEmptyTuningSet is the error returned when trying to prune a tree against
a dataset with no samples, on which accuracy is undefined.
*/
const ErrEmptyTuningSet = TreeError("cannot prune a tree against an empty tuning set")

func (te TreeError) Error() string {
	return string(te)
}

/*
Grow takes a training dataset and returns a tree that predicts the labels
of its samples using the features of its schema.

Nodes are developed depth-first. A node reached by no training samples
becomes a leaf predicting the majority label of its parent's samples, a node
whose samples all share a label becomes a leaf predicting it, and a node with
no features left to ask about becomes a leaf predicting the majority label of
its samples. Any other node splits on the remaining feature with the greatest
information gain (the earliest one on ties) and gets a child for every value
of it, in domain order.

ErrEmptyTrainingSet is returned if the dataset has no samples.
*/
func Grow(training *dataset.Dataset) (*tree.Tree, error) {
	if training.Count() == 0 {
		return nil, ErrEmptyTrainingSet
	}
	root, err := branchOut(training, tree.RootEdge, training.Majority(), training.Schema().Features())
	if err != nil {
		return nil, err
	}
	return tree.New(root, training.Schema()), nil
}

func branchOut(d *dataset.Dataset, edge, parentMajority string, candidates []*feature.Feature) (tree.Node, error) {
	if d.Count() == 0 {
		return tree.NewLeaf(edge, parentMajority, 0), nil
	}
	if label, ok := d.Pure(); ok {
		return tree.NewLeaf(edge, label, d.Count()), nil
	}
	majority := d.Majority()
	if len(candidates) == 0 {
		return tree.NewLeaf(edge, majority, d.Count()), nil
	}
	p, index, err := bestPartition(d, candidates)
	if err != nil {
		return nil, err
	}
	remaining := make([]*feature.Feature, 0, len(candidates)-1)
	remaining = append(remaining, candidates[:index]...)
	remaining = append(remaining, candidates[index+1:]...)
	values := p.Feature.Values()
	children := make([]tree.Node, 0, len(values))
	for i, v := range values {
		child, err := branchOut(p.Subsets[i], v, majority, remaining)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	n, err := tree.NewInternal(edge, p.Feature, majority, d.Count(), children)
	if err != nil {
		return nil, err
	}
	return n, nil
}
