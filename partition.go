package dectree

import (
	"fmt"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/feature"
	"github.com/shopspring/decimal"
)

/*
Partition represents a partition of a dataset according to a feature
into one subset per value of the feature, with the information gain the
partition provides to predict the labels of the dataset.
*/
type Partition struct {
	Feature *feature.Feature
	// Subsets holds the subset of samples for each value of the feature,
	// in the domain order of the feature.
	Subsets         []*dataset.Dataset
	total           int
	informationGain float64
}

/*
NewPartition takes a dataset and a feature and returns the partition of the
dataset for the feature, or an error if the samples of the dataset cannot
be filtered by the values of the feature.
*/
func NewPartition(d *dataset.Dataset, f *feature.Feature) (*Partition, error) {
	values := f.Values()
	p := &Partition{
		Feature: f,
		Subsets: make([]*dataset.Dataset, 0, len(values)),
		total:   d.Count(),
	}
	for _, v := range values {
		s, err := d.SubsetWith(feature.NewCriterion(f, v))
		if err != nil {
			return nil, fmt.Errorf("partitioning on %s: %v", f.Name(), err)
		}
		p.Subsets = append(p.Subsets, s)
	}
	p.informationGain = Entropy(d) - p.conditionalEntropy()
	if p.informationGain < gainTolerance {
		p.informationGain = 0
	}
	return p, nil
}

// InformationGain returns the information gain of the partition.
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

/*
Weights returns the fraction of the samples of the partitioned dataset that
fall in each subset, in the domain order of the feature. The weights of a
partition of an empty dataset are all 0.
*/
func (p *Partition) Weights() []float64 {
	ws := make([]float64, len(p.Subsets))
	if p.total == 0 {
		return ws
	}
	for i, s := range p.Subsets {
		ws[i] = float64(s.Count()) / float64(p.total)
	}
	return ws
}

func (p *Partition) conditionalEntropy() float64 {
	var h float64
	for i, w := range p.Weights() {
		if w == 0 {
			continue
		}
		h += w * Entropy(p.Subsets[i])
	}
	return h
}

/*
FeatureGain holds the information gain a feature provides on a dataset.
*/
type FeatureGain struct {
	Feature *feature.Feature
	Gain    float64
}

/*
Floor returns the gain floored to 3 decimal places.
*/
func (fg FeatureGain) Floor() decimal.Decimal {
	return decimal.NewFromFloat(fg.Gain).Shift(3).Floor().Shift(-3)
}

func (fg FeatureGain) String() string {
	return fmt.Sprintf("%s: info gain = %s", fg.Feature.Name(), fg.Floor().StringFixed(3))
}

/*
GainReport takes a dataset and returns the information gain each feature of
its schema provides on it, in the order the features are declared.
*/
func GainReport(d *dataset.Dataset) ([]FeatureGain, error) {
	features := d.Schema().Features()
	gains := make([]FeatureGain, 0, len(features))
	for _, f := range features {
		g, err := InformationGain(d, f)
		if err != nil {
			return nil, err
		}
		gains = append(gains, FeatureGain{f, g})
	}
	return gains, nil
}

/*
bestPartition takes a dataset and a non-empty slice of candidate features and
returns the partition with the greatest information gain along with the
index of its feature among the candidates. Equal gains are resolved in favour
of the earliest candidate.
*/
func bestPartition(d *dataset.Dataset, candidates []*feature.Feature) (*Partition, int, error) {
	var best *Partition
	var index int
	for i, f := range candidates {
		p, err := NewPartition(d, f)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || p.informationGain > best.informationGain {
			best = p
			index = i
		}
	}
	return best, index, nil
}
