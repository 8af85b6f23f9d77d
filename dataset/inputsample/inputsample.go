/*
Package inputsample provides an implementation of feature.Sample whose
values are read from an io.Reader as they are asked for.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/feature"
)

type readSample struct {
	obtainedValues        map[string]string
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	schema                *dataset.Schema
	acceptUnseen          bool
}

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(*feature.Feature) error
	RejectValueFor(*feature.Feature, string) error
}

/*
New takes an io.Reader, a schema, a FeatureValueRequester and an
acceptUnseen boolean and returns a feature.Sample.

The returned Sample ValueFor method reads feature values first
requesting them with the given FeatureValueRequester and
then parsing the values from the reader, one per line. A value is
only asked for once; later calls return the value already read.

Lines will be read from the reader until a line with a valid value for the
feature is found, rejecting the rest with the FeatureValueRequester's
RejectValueFor method. If acceptUnseen is true any non-empty line is
accepted, so that values outside the feature's domain can be classified.

Attempting to obtain a value for a feature not in the schema returns an
error.
*/
func New(r io.Reader, schema *dataset.Schema, featureValueRequester FeatureValueRequester, acceptUnseen bool) feature.Sample {
	return &readSample{make(map[string]string), bufio.NewScanner(r), featureValueRequester, schema, acceptUnseen}
}

func (rs *readSample) ValueFor(f *feature.Feature) (string, error) {
	value, ok := rs.obtainedValues[f.Name()]
	if ok {
		return value, nil
	}
	sf := rs.schema.Feature(f.Name())
	if sf == nil || sf == rs.schema.Label() {
		return "", fmt.Errorf("have no information about feature %s, do not know how to read its value", f.Name())
	}
	err := rs.featureValueRequester.RequestValueFor(sf)
	if err != nil {
		return "", err
	}
	for rs.scanner.Scan() {
		line := rs.scanner.Text()
		if sf.Valid(line) == nil || (rs.acceptUnseen && line != "") {
			rs.obtainedValues[sf.Name()] = line
			return line, nil
		}
		err = rs.featureValueRequester.RejectValueFor(sf, line)
		if err != nil {
			return "", err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return "", err
	}
	return "", fmt.Errorf("EOF when requesting value for %s", sf.Name())
}
