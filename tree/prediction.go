package tree

import (
	"fmt"

	"github.com/robjustinwagner/dectree/feature"
)

/*
Prediction represents the label predicted by a decision Tree for a sample.

When the sample presents a value for a feature that no branch of the tree
accounts for, the prediction falls back to the majority label of the training
samples that reached the node asking about it: Fallback is then true and
FallbackFeature and FallbackValue record the feature and offending value.
*/
type Prediction struct {
	Label           string
	Fallback        bool
	FallbackFeature *feature.Feature
	FallbackValue   string
}

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrEmptyDataset is the error returned when trying to score predictions
against a dataset with no samples, for which accuracy is undefined.
*/
const ErrEmptyDataset = PredictionError("cannot score predictions for empty dataset")

/*
ErrNoRoot is the error returned when a tree with no root node is asked to
predict a sample.
*/
const ErrNoRoot = PredictionError("tree has no root node")

func (pe PredictionError) Error() string {
	return string(pe)
}

func (p *Prediction) String() string {
	if p.Fallback {
		return fmt.Sprintf("%s (fallback: unseen value %s for %s)", p.Label, p.FallbackValue, p.FallbackFeature.Name())
	}
	return p.Label
}

/*
Classification holds the labels predicted for the samples of a dataset,
in the same order as the samples, and the number of predictions that
had to fall back to a majority label.
*/
type Classification struct {
	Labels    []string
	Fallbacks int
}
