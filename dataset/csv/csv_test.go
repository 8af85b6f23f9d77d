package csv

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/feature"
)

func testSchema(t *testing.T) *dataset.Schema {
	schema, err := dataset.NewSchema(
		feature.NewFeature("Answer", []string{"Yes", "No"}),
		[]*feature.Feature{
			feature.NewFeature("Color", []string{"R", "G"}),
			feature.NewFeature("Size", []string{"S", "L"}),
		},
	)
	if err != nil {
		t.Fatalf("building schema: %v", err)
	}
	return schema
}

func TestReadSet(t *testing.T) {
	d, err := ReadSet(strings.NewReader("Size,Answer,Color\nS,Yes,R\nL,No,G\nL,Yes,G\n"), testSchema(t))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if d.Count() != 3 {
		t.Fatalf("Expected 3 samples, got %d", d.Count())
	}
	expected := [][]string{{"Yes", "R", "S"}, {"No", "G", "L"}, {"Yes", "G", "L"}}
	for i, s := range d.Samples() {
		got := append([]string{s.Label()}, s.Values()...)
		if !reflect.DeepEqual(got, expected[i]) {
			t.Errorf("Expected sample %d to be %v, got %v", i, expected[i], got)
		}
	}
}

func TestReadSetBySampleStops(t *testing.T) {
	var seen []int
	err := ReadSetBySample(strings.NewReader("Answer,Color,Size\nYes,R,S\nNo,G,L\nYes,G,L\n"), testSchema(t),
		func(i int, s *dataset.Sample) (bool, error) {
			seen = append(seen, i)
			return i < 1, nil
		})
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if !reflect.DeepEqual(seen, []int{0, 1}) {
		t.Errorf("Expected to see samples 0 and 1, got %v", seen)
	}
}

func TestReadSetMalformedRecords(t *testing.T) {
	cases := map[string]string{
		"missing value": "Answer,Color,Size\nYes,R,S\nNo,G\n",
		"extra value":   "Answer,Color,Size\nYes,R,S,S\n",
		"unknown value": "Answer,Color,Size\nYes,Purple,S\n",
		"unknown label": "Answer,Color,Size\nMaybe,R,S\n",
	}
	for name, input := range cases {
		_, err := ReadSet(strings.NewReader(input), testSchema(t))
		var mre *dataset.MalformedRecordError
		if !errors.As(err, &mre) {
			t.Errorf("Expected MalformedRecordError for %s, got %v", name, err)
		}
	}
}

func TestReadSetHeaderErrors(t *testing.T) {
	cases := map[string]struct {
		input   string
		message string
	}{
		"empty":            {"", "reading header"},
		"unknown column":   {"Answer,Color,Size,Weight\n", "unknown feature Weight"},
		"missing column":   {"Answer,Color\n", "missing column for feature Size"},
		"duplicate column": {"Answer,Color,Size,Color\n", "duplicate column for feature Color"},
	}
	for name, c := range cases {
		_, err := ReadSet(strings.NewReader(c.input), testSchema(t))
		if err == nil || !strings.Contains(err.Error(), c.message) {
			t.Errorf("Expected error with %q for %s header, got %v", c.message, name, err)
		}
	}
}

func TestWriteSet(t *testing.T) {
	schema := testSchema(t)
	d, err := ReadSet(strings.NewReader("Color,Size,Answer\nR,S,Yes\nG,L,No\n"), schema)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	var buf bytes.Buffer
	err = WriteSet(&buf, d)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	expected := "Answer,Color,Size\nYes,R,S\nNo,G,L\n"
	if buf.String() != expected {
		t.Errorf("Expected\n%s\ngot\n%s", expected, buf.String())
	}
	read, err := ReadSet(&buf, schema)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if !reflect.DeepEqual(read.Samples(), d.Samples()) {
		t.Errorf("Expected written samples to be read back, got %v", read.Samples())
	}
}
