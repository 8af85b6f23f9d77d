package dataset

import (
	"fmt"

	"github.com/robjustinwagner/dectree/feature"
)

/*
Sample represents an instance to classify or from which to learn how to
classify them: a class label plus the values for the features of a
schema, positionally aligned to the schema's feature list.
*/
type Sample struct {
	schema *Schema
	label  string
	values []string
}

/*
MalformedRecordError is the error returned when a record does not fit the
schema it is read with: wrong number of values, values outside of a
feature's domain or an unknown label.
*/
type MalformedRecordError struct {
	Reason string
}

func (mre *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: %s", mre.Reason)
}

/*
Label returns the class label of the sample
*/
func (s *Sample) Label() string {
	return s.label
}

/*
Values returns a copy of the feature values of the sample, in the
order of the features of its schema.
*/
func (s *Sample) Values() []string {
	vs := make([]string, len(s.values))
	copy(vs, s.values)
	return vs
}

/*
ValueFor takes a feature and returns the value of the sample for it. If the
feature is the class feature of the schema the label is returned. An error
is returned if the feature is not part of the sample's schema.
*/
func (s *Sample) ValueFor(f *feature.Feature) (string, error) {
	if f == s.schema.label || f.Name() == s.schema.label.Name() {
		return s.label, nil
	}
	i, ok := s.schema.positions[f.Name()]
	if !ok {
		return "", fmt.Errorf("feature %s is not defined for the sample", f.Name())
	}
	return s.values[i], nil
}

func (s *Sample) String() string {
	return fmt.Sprintf("[%s %v]", s.label, s.values)
}
