package feature

import "fmt"

/*
Metadata describes the features available on a set of samples in
declaration order, along with the name of the feature samples are
labeled with (which may be empty if the metadata does not declare it).
*/
type Metadata struct {
	Label    string
	Features []*Feature
}

/*
Feature takes a name and returns the feature in the metadata with that
name or nil if there is none.
*/
func (md *Metadata) Feature(name string) *Feature {
	for _, f := range md.Features {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

/*
Split takes the name of the class feature and returns it along with the
remaining features in declaration order. If the given name is empty, the
label declared on the metadata is used instead. An error is returned if
no class feature can be determined or it is not defined.
*/
func (md *Metadata) Split(classFeature string) (*Feature, []*Feature, error) {
	if classFeature == "" {
		classFeature = md.Label
	}
	if classFeature == "" {
		return nil, nil, fmt.Errorf("no class feature given and metadata declares no label")
	}
	var label *Feature
	features := make([]*Feature, 0, len(md.Features))
	for _, f := range md.Features {
		if f.Name() == classFeature {
			label = f
			continue
		}
		features = append(features, f)
	}
	if label == nil {
		return nil, nil, fmt.Errorf("class feature '%s' is not defined", classFeature)
	}
	return label, features, nil
}
