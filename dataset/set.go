/*
Package dataset defines the schema, samples and datasets a decision tree is
grown from, tuned with and tested against.
*/
package dataset

import (
	"fmt"
	"math/rand"

	"github.com/robjustinwagner/dectree/feature"
)

/*
Dataset represents an ordered collection of samples sharing a schema.

Its SubsetWith method takes a feature.Criterion and returns a subset that only
contains samples that satisfy it, keeping their order.

Its LabelCounts method returns how many samples carry each of the two labels
of the schema, and its Majority method the majority label according to them.
*/
type Dataset struct {
	schema  *Schema
	samples []*Sample
}

/*
New takes a schema and a slice of samples and returns a dataset built with them.
*/
func New(schema *Schema, samples []*Sample) *Dataset {
	return &Dataset{schema, samples}
}

/*
Schema returns the schema of the samples in the dataset
*/
func (d *Dataset) Schema() *Schema {
	return d.schema
}

/*
Samples returns the samples in the dataset in order. The slice must not be
modified.
*/
func (d *Dataset) Samples() []*Sample {
	return d.samples
}

/*
Count returns the number of samples in the dataset
*/
func (d *Dataset) Count() int {
	return len(d.samples)
}

/*
SubsetWith takes a feature.Criterion and returns the dataset with the samples
that satisfy it, or an error if the criterion cannot be evaluated on them.
*/
func (d *Dataset) SubsetWith(c feature.Criterion) (*Dataset, error) {
	var samples []*Sample
	for _, s := range d.samples {
		ok, err := c.SatisfiedBy(s)
		if err != nil {
			return nil, err
		}
		if ok {
			samples = append(samples, s)
		}
	}
	return &Dataset{d.schema, samples}, nil
}

/*
SubsetWithConjunction takes a slice of criteria, such as the path from the root
of a tree to one of its nodes, and returns the dataset with the samples that
satisfy all of them.
*/
func (d *Dataset) SubsetWithConjunction(cs feature.Conjunction) (*Dataset, error) {
	var samples []*Sample
	for _, s := range d.samples {
		ok, err := cs.SatisfiedBy(s)
		if err != nil {
			return nil, err
		}
		if ok {
			samples = append(samples, s)
		}
	}
	return &Dataset{d.schema, samples}, nil
}

/*
LabelCounts returns the number of samples with the first label of the
schema and the number of samples with the second.
*/
func (d *Dataset) LabelCounts() (int, int) {
	first, _ := d.schema.Labels()
	var c0, c1 int
	for _, s := range d.samples {
		if s.label == first {
			c0++
		} else {
			c1++
		}
	}
	return c0, c1
}

/*
Majority returns the label carried by more samples in the dataset. When both
labels are carried by the same number of samples (including an empty dataset)
the first label of the schema is returned.
*/
func (d *Dataset) Majority() string {
	first, second := d.schema.Labels()
	c0, c1 := d.LabelCounts()
	if c0 < c1 {
		return second
	}
	return first
}

/*
Pure returns whether all samples in the dataset share the same label,
and the label. An empty dataset is not pure.
*/
func (d *Dataset) Pure() (string, bool) {
	if len(d.samples) == 0 {
		return "", false
	}
	label := d.samples[0].label
	for _, s := range d.samples[1:] {
		if s.label != label {
			return "", false
		}
	}
	return label, true
}

/*
Split takes a dataset, a probability between 0 and 1 and a source of random
numbers and distributes the samples of the dataset into two datasets, assigning
each sample to the second one with the given probability. Sample order is
preserved in both.
*/
func Split(d *Dataset, probability float64, r *rand.Rand) (*Dataset, *Dataset, error) {
	if probability < 0 || probability > 1 {
		return nil, nil, fmt.Errorf("split probability %f is not between 0 and 1", probability)
	}
	var kept, split []*Sample
	for _, s := range d.samples {
		if r.Float64() < probability {
			split = append(split, s)
		} else {
			kept = append(kept, s)
		}
	}
	return &Dataset{d.schema, kept}, &Dataset{d.schema, split}, nil
}

func (d *Dataset) String() string {
	c0, c1 := d.LabelCounts()
	first, second := d.schema.Labels()
	return fmt.Sprintf("{Dataset %d samples: %s=%d %s=%d}", len(d.samples), first, c0, second, c1)
}
