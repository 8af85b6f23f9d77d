/*
Package feature defines the categorical properties (attributes) that can be
observed on a sample, the constraints a decision tree imposes on them and the
metadata files that declare them.
*/
package feature

import "fmt"

/*
Feature represents a property that can be observed and that can only
take a value among a finite, ordered set: its domain.

The order of the domain is significant: it fixes the order of the
branches of any tree node that splits on the feature.
*/
type Feature struct {
	name   string
	values []string
}

/*
NewFeature takes a name string and a slice of available value strings
and returns a feature with the given name and domain.
*/
func NewFeature(name string, values []string) *Feature {
	vs := make([]string, len(values))
	copy(vs, values)
	return &Feature{name, vs}
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
Values returns a copy of the domain of the feature in declaration order.
*/
func (f *Feature) Values() []string {
	vs := make([]string, len(f.values))
	copy(vs, f.values)
	return vs
}

/*
Len returns the size of the domain of the feature.
*/
func (f *Feature) Len() int {
	return len(f.values)
}

/*
Index returns the position of the given value in the domain of the feature,
or -1 if the value does not belong to it.
*/
func (f *Feature) Index(value string) int {
	for i, v := range f.values {
		if v == value {
			return i
		}
	}
	return -1
}

/*
Valid receives a value and returns nil if it belongs to the domain of the
feature, or an error describing the reason otherwise.
*/
func (f *Feature) Valid(value string) error {
	if f.Index(value) < 0 {
		return fmt.Errorf("feature %s got unknown value %s", f.name, value)
	}
	return nil
}

func (f *Feature) String() string {
	return f.name
}
