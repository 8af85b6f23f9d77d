package dataset

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/robjustinwagner/dectree/feature"
)

/*
Schema describes the shape of the samples of a dataset: the class
feature with its two labels, and the ordered list of features samples
provide values for.

The order of the labels is significant: the first one wins majority votes
that end in a tie.
*/
type Schema struct {
	label     *feature.Feature
	features  []*feature.Feature
	positions map[string]int
}

/*
NewSchema takes the class feature and the slice of features and returns a schema
for them or an error if the class feature does not have exactly two values, a
feature has no values or feature names are repeated.
*/
func NewSchema(label *feature.Feature, features []*feature.Feature) (*Schema, error) {
	if label == nil {
		return nil, fmt.Errorf("schema needs a class feature")
	}
	if label.Len() != 2 {
		return nil, fmt.Errorf("class feature %s must have exactly 2 values, has %d", label.Name(), label.Len())
	}
	if lvs := label.Values(); lvs[0] == lvs[1] {
		return nil, fmt.Errorf("class feature %s repeats its value %s", label.Name(), lvs[0])
	}
	names := hashset.New(label.Name())
	positions := make(map[string]int, len(features))
	for i, f := range features {
		if f.Len() == 0 {
			return nil, fmt.Errorf("feature %s has no values", f.Name())
		}
		if names.Contains(f.Name()) {
			return nil, fmt.Errorf("feature %s is defined more than once", f.Name())
		}
		names.Add(f.Name())
		positions[f.Name()] = i
	}
	fs := make([]*feature.Feature, len(features))
	copy(fs, features)
	return &Schema{label, fs, positions}, nil
}

/*
Label returns the class feature of the schema.
*/
func (sc *Schema) Label() *feature.Feature {
	return sc.label
}

/*
Labels returns the two class labels in declaration order.
*/
func (sc *Schema) Labels() (string, string) {
	vs := sc.label.Values()
	return vs[0], vs[1]
}

/*
Features returns a copy of the slice of features of the schema, in
declaration order.
*/
func (sc *Schema) Features() []*feature.Feature {
	fs := make([]*feature.Feature, len(sc.features))
	copy(fs, sc.features)
	return fs
}

/*
Feature takes a name and returns the feature of the schema with that name
(including the class feature) or nil if there is none.
*/
func (sc *Schema) Feature(name string) *feature.Feature {
	if name == sc.label.Name() {
		return sc.label
	}
	i, ok := sc.positions[name]
	if !ok {
		return nil
	}
	return sc.features[i]
}

/*
NewSample takes a label and the slice of values for the features of the schema
and returns a sample or a *MalformedRecordError if the number of values does not
match the number of features, a value does not belong to its feature's domain
or the label is not one of the schema's labels.
*/
func (sc *Schema) NewSample(label string, values []string) (*Sample, error) {
	if len(values) != len(sc.features) {
		return nil, &MalformedRecordError{fmt.Sprintf("got %d values for %d features", len(values), len(sc.features))}
	}
	if err := sc.label.Valid(label); err != nil {
		return nil, &MalformedRecordError{err.Error()}
	}
	for i, f := range sc.features {
		if err := f.Valid(values[i]); err != nil {
			return nil, &MalformedRecordError{err.Error()}
		}
	}
	vs := make([]string, len(values))
	copy(vs, values)
	return &Sample{sc, label, vs}, nil
}

/*
NewSampleFromMap takes a map of feature names to values that must include the
class feature and returns a sample built with NewSample, or an error if values
for some features are missing.
*/
func (sc *Schema) NewSampleFromMap(values map[string]string) (*Sample, error) {
	label, ok := values[sc.label.Name()]
	if !ok {
		return nil, &MalformedRecordError{fmt.Sprintf("missing value for class feature %s", sc.label.Name())}
	}
	vs := make([]string, len(sc.features))
	for i, f := range sc.features {
		v, ok := values[f.Name()]
		if !ok {
			return nil, &MalformedRecordError{fmt.Sprintf("missing value for feature %s", f.Name())}
		}
		vs[i] = v
	}
	return sc.NewSample(label, vs)
}
