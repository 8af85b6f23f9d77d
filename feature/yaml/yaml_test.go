package yaml

import (
	"reflect"
	"testing"
)

func TestReadMetadata(t *testing.T) {
	md, err := ReadMetadata([]byte(`
label: Play
features:
  Outlook: [sunny, overcast, rain]
  Windy:
    - y
    - n
  Play: [yes, no]
  Humidity: [1, 2]
`))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if md.Label != "Play" {
		t.Errorf("Expected label Play, got %s", md.Label)
	}
	expected := []struct {
		name   string
		values []string
	}{
		{"Outlook", []string{"sunny", "overcast", "rain"}},
		{"Windy", []string{"y", "n"}},
		{"Play", []string{"yes", "no"}},
		{"Humidity", []string{"1", "2"}},
	}
	if len(md.Features) != len(expected) {
		t.Fatalf("Expected %d features, got %d", len(expected), len(md.Features))
	}
	for i, e := range expected {
		f := md.Features[i]
		if f.Name() != e.name || !reflect.DeepEqual(f.Values(), e.values) {
			t.Errorf("Expected feature %d to be %s %v, got %s %v", i, e.name, e.values, f.Name(), f.Values())
		}
	}
}

func TestReadMetadataErrors(t *testing.T) {
	cases := map[string]string{
		"no features":        "label: Play\n",
		"empty domain":       "features:\n  Outlook: []\n",
		"scalar domain":      "features:\n  Outlook: sunny\n",
		"features not a map": "features: [Outlook]\n",
		"not yaml":           "features: [\n",
	}
	for name, input := range cases {
		if _, err := ReadMetadata([]byte(input)); err == nil {
			t.Errorf("Expected error for %s, got nil", name)
		}
	}
}
