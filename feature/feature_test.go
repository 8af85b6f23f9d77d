package feature

import (
	"reflect"
	"testing"
)

type mapSample map[string]string

func (ms mapSample) ValueFor(f *Feature) (string, error) {
	return ms[f.Name()], nil
}

func TestFeatureDomain(t *testing.T) {
	values := []string{"R", "G", "B"}
	f := NewFeature("Color", values)
	values[0] = "Purple"
	if !reflect.DeepEqual(f.Values(), []string{"R", "G", "B"}) {
		t.Errorf("Expected domain [R G B], got %v", f.Values())
	}
	if f.Index("B") != 2 || f.Index("Purple") != -1 {
		t.Errorf("Expected B at 2 and Purple missing, got %d and %d", f.Index("B"), f.Index("Purple"))
	}
	if f.Valid("G") != nil {
		t.Errorf("Expected G to be valid, got %v", f.Valid("G"))
	}
	if f.Valid("Purple") == nil {
		t.Errorf("Expected Purple to be invalid")
	}
}

func TestConjunction(t *testing.T) {
	color := NewFeature("Color", []string{"R", "G"})
	size := NewFeature("Size", []string{"S", "L"})
	cs := Conjunction{NewCriterion(color, "R"), NewCriterion(size, "S")}
	if cs.String() != "Color is R and Size is S" {
		t.Errorf("Expected conjunction text, got %q", cs.String())
	}
	if Conjunction(nil).String() != "(root)" {
		t.Errorf("Expected empty conjunction text (root), got %q", Conjunction(nil).String())
	}
	ok, err := cs.SatisfiedBy(mapSample{"Color": "R", "Size": "S"})
	if err != nil || !ok {
		t.Errorf("Expected sample to satisfy %v, got %v (%v)", cs, ok, err)
	}
	ok, err = cs.SatisfiedBy(mapSample{"Color": "R", "Size": "L"})
	if err != nil || ok {
		t.Errorf("Expected sample not to satisfy %v, got %v (%v)", cs, ok, err)
	}
}

func TestMetadataSplit(t *testing.T) {
	md := &Metadata{
		Label: "Answer",
		Features: []*Feature{
			NewFeature("Color", []string{"R", "G"}),
			NewFeature("Answer", []string{"Yes", "No"}),
			NewFeature("Size", []string{"S", "L"}),
		},
	}
	label, features, err := md.Split("")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if label != md.Features[1] || len(features) != 2 || features[0] != md.Features[0] || features[1] != md.Features[2] {
		t.Errorf("Expected Answer as class feature and Color, Size as features, got %v and %v", label, features)
	}
	label, features, err = md.Split("Size")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if label.Name() != "Size" || len(features) != 2 || features[1].Name() != "Answer" {
		t.Errorf("Expected Size as class feature, got %v and %v", label, features)
	}
	if _, _, err = md.Split("Weight"); err == nil {
		t.Errorf("Expected error for undefined class feature, got nil")
	}
	md.Label = ""
	if _, _, err = md.Split(""); err == nil {
		t.Errorf("Expected error for missing class feature, got nil")
	}
}
