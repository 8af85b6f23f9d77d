package dectree

import (
	"fmt"
	"math"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/feature"
)

// gainTolerance is the magnitude under which a computed information gain is
// floating point noise and taken as 0.
const gainTolerance = 1e-12

/*
BinaryEntropy takes the number of samples carrying each of two labels and
returns the entropy in bits of the label distribution. Labels carried by no
sample contribute 0 and an empty distribution has entropy 0.

BinaryEntropy panics if the result is not a finite number, which can only
happen for negative counts.
*/
func BinaryEntropy(a, b int) float64 {
	n := a + b
	if n == 0 {
		return 0
	}
	h := -term(a, n) - term(b, n)
	if math.IsNaN(h) || math.IsInf(h, 0) {
		panic(fmt.Sprintf("entropy of label counts %d and %d is not finite: %v", a, b, h))
	}
	return h
}

func term(k, n int) float64 {
	if k == 0 {
		return 0
	}
	p := float64(k) / float64(n)
	return p * math.Log2(p)
}

// Entropy returns the entropy in bits of the labels of the dataset samples.
func Entropy(d *dataset.Dataset) float64 {
	return BinaryEntropy(d.LabelCounts())
}

/*
ConditionalEntropy takes a dataset and a feature and returns the entropy of
the labels of the dataset once the value for the feature is known, that is,
the sum of the entropy of the subset of samples for each value of the feature
weighted by the fraction of samples in it.
*/
func ConditionalEntropy(d *dataset.Dataset, f *feature.Feature) (float64, error) {
	p, err := NewPartition(d, f)
	if err != nil {
		return 0, err
	}
	return p.conditionalEntropy(), nil
}

/*
InformationGain takes a dataset and a feature and returns the reduction in
the entropy of the dataset labels obtained by splitting it on the feature.
The result is never negative.
*/
func InformationGain(d *dataset.Dataset, f *feature.Feature) (float64, error) {
	p, err := NewPartition(d, f)
	if err != nil {
		return 0, err
	}
	return p.InformationGain(), nil
}
