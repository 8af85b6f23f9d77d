package tree

import (
	"fmt"

	"github.com/robjustinwagner/dectree/dataset"
)

// Score holds the number of correct predictions made on a dataset and the
// number of samples in it.
type Score struct {
	Correct int
	Total   int
}

/*
NewScore takes a dataset and the labels predicted for its samples, in
order, and returns the score of the predictions. ErrEmptyDataset is returned
for a dataset with no samples, and an error if the number of predicted
labels does not match the number of samples.
*/
func NewScore(d *dataset.Dataset, predicted []string) (Score, error) {
	if d.Count() == 0 {
		return Score{}, ErrEmptyDataset
	}
	if len(predicted) != d.Count() {
		return Score{}, fmt.Errorf("got %d predictions for %d samples", len(predicted), d.Count())
	}
	s := Score{Total: d.Count()}
	for i, sample := range d.Samples() {
		if sample.Label() == predicted[i] {
			s.Correct++
		}
	}
	return s, nil
}

// Accuracy returns the fraction of correct predictions, in [0,1].
func (s Score) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Total)
}

/*
Accuracy takes a dataset and the labels predicted for its samples, in order,
and returns the fraction of them that match the samples' labels.
*/
func Accuracy(d *dataset.Dataset, predicted []string) (float64, error) {
	s, err := NewScore(d, predicted)
	if err != nil {
		return 0, err
	}
	return s.Accuracy(), nil
}
