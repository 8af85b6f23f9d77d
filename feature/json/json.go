/*
Package json provides methods to parse feature.Metadata specifications
from JSON documents.
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/robjustinwagner/dectree/feature"
)

/*
ReadMetadata takes an io.Reader with a feature specification in JSON and
returns the metadata parsed from it or an error.
The JSON is expected to be an object with a "features" property holding an
object with a property for each feature, named after it, whose value is the
array of its valid values. An optional "label" property names the class feature.
JSON objects are unordered, so the document is streamed token by token to keep
the order in which the features were written as their declaration order.
*/
func ReadMetadata(r io.Reader) (*feature.Metadata, error) {
	dec := json.NewDecoder(r)
	err := expectDelim(dec, '{')
	if err != nil {
		return nil, err
	}
	md := &feature.Metadata{}
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing json metadata: %v", err)
		}
		key, _ := t.(string)
		switch key {
		case "label":
			err = dec.Decode(&md.Label)
		case "features":
			md.Features, err = readFeatures(dec)
		default:
			var ignored json.RawMessage
			err = dec.Decode(&ignored)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing json metadata property %q: %v", key, err)
		}
	}
	err = expectDelim(dec, '}')
	if err != nil {
		return nil, err
	}
	if len(md.Features) == 0 {
		return nil, fmt.Errorf("metadata has no feature information")
	}
	return md, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed metadata or an error.
*/
func ReadMetadataFromFile(filepath string) (*feature.Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features json file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(bytes.NewReader(md))
	if err != nil {
		err = fmt.Errorf("parsing features json file %s: %v", filepath, err)
	}
	return metadata, err
}

func readFeatures(dec *json.Decoder) ([]*feature.Feature, error) {
	err := expectDelim(dec, '{')
	if err != nil {
		return nil, err
	}
	var features []*feature.Feature
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("expected feature name, got %v", t)
		}
		var values []interface{}
		err = dec.Decode(&values)
		if err != nil {
			return nil, fmt.Errorf("reading values for feature %s: %v", name, err)
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("feature %s declares no values", name)
		}
		stringVs := make([]string, 0, len(values))
		for _, v := range values {
			stringVs = append(stringVs, fmt.Sprintf("%v", v))
		}
		features = append(features, feature.NewFeature(name, stringVs))
	}
	return features, expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, d json.Delim) error {
	t, err := dec.Token()
	if err != nil {
		return fmt.Errorf("parsing json metadata: %v", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != d {
		return fmt.Errorf("parsing json metadata: expected %v, got %v", d, t)
	}
	return nil
}
