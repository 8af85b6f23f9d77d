package sqlite3adapter

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/dataset/sqlset"
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

func TestWriteAndOpenSet(t *testing.T) {
	ctx := context.Background()
	schema := testSchema(t)
	a, err := New(filepath.Join(t.TempDir(), "samples.db"))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	defer a.Close()
	var samples []*dataset.Sample
	for i := 0; i < 2*sqlset.MaxSampleInsertionsPerStatement+3; i++ {
		label, color, size := "Yes", "R", "S"
		if i%2 == 1 {
			label, color = "No", "G"
		}
		if i%3 == 0 {
			size = "L"
		}
		s, err := schema.NewSample(label, []string{color, size})
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		samples = append(samples, s)
	}
	d := dataset.New(schema, samples)
	n, err := sqlset.WriteSet(ctx, a, d)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if n != len(samples) {
		t.Errorf("Expected %d samples written, got %d", len(samples), n)
	}
	count, err := a.CountSamples(ctx)
	if err != nil || count != len(samples) {
		t.Errorf("Expected %d samples in table, got %d (%v)", len(samples), count, err)
	}
	read, err := sqlset.OpenSet(ctx, a, schema)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if !reflect.DeepEqual(read.Samples(), d.Samples()) {
		t.Errorf("Expected samples to be read back in order, got %v", read.Samples())
	}
}

func TestOpenSetMalformedRecord(t *testing.T) {
	ctx := context.Background()
	schema := testSchema(t)
	a, err := New(filepath.Join(t.TempDir(), "samples.db"))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	defer a.Close()
	columns := []string{"Answer", "Color", "Size"}
	err = a.CreateSampleTable(ctx, columns)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	_, err = a.AddSamples(ctx, [][]string{{"Yes", "R", "S"}, {"Maybe", "R", "S"}}, columns)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	_, err = sqlset.OpenSet(ctx, a, schema)
	var mre *dataset.MalformedRecordError
	if !errors.As(err, &mre) {
		t.Errorf("Expected MalformedRecordError, got %v", err)
	}
	var seen int
	err = sqlset.ReadSetBySample(ctx, a, schema, func(i int, s *dataset.Sample) (bool, error) {
		seen++
		return false, nil
	})
	if err != nil || seen != 1 {
		t.Errorf("Expected to stop after 1 sample, got %d (%v)", seen, err)
	}
}
