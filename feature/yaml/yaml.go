/*
Package yaml provides methods to parse feature.Metadata specifications
from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/robjustinwagner/dectree/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadMetadata takes a slice of bytes with a feature specification in YML and
returns the metadata parsed from it or an error.
The YML is expected to be an object containing a features property. The value for
this should be a mapping with a property for each feature with its name and the
list of its valid values. The order of the mapping is kept as the declaration
order of the features, and the order of each list as the order of the feature's
domain. Values are taken verbatim, so y, n or 1 are values, not booleans or
numbers. An optional label property names the class feature.
*/
func ReadMetadata(md []byte) (*feature.Metadata, error) {
	metadata := struct {
		Label    string
		Features featureList
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if len(metadata.Features) == 0 {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	return &feature.Metadata{Label: metadata.Label, Features: metadata.Features}, nil
}

type featureList []*feature.Feature

// UnmarshalYAML reads the mapping twice: as a MapSlice to learn the order
// of the features and as a map of string lists to get their values as
// written.
func (fl *featureList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var order yaml.MapSlice
	err := unmarshal(&order)
	if err != nil {
		return err
	}
	var domains map[string][]string
	err = unmarshal(&domains)
	if err != nil {
		return fmt.Errorf("expected a list of values for every feature: %v", err)
	}
	for _, item := range order {
		name := fmt.Sprintf("%v", item.Key)
		values := domains[name]
		if len(values) == 0 {
			return fmt.Errorf("feature %s declares no values", name)
		}
		*fl = append(*fl, feature.NewFeature(name, values))
	}
	return nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*feature.Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return metadata, err
}
