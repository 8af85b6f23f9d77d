/*
Package sqlset keeps datasets on SQL databases through adapters, with a
samples table holding a TEXT column per feature of the schema.
*/
package sqlset

import (
	"context"
	"fmt"

	"github.com/robjustinwagner/dectree/dataset"
)

/*
OpenSet takes a context, an Adapter to a db backend and a schema and returns
the dataset of samples in the samples table of the database or an error.

This function expects the adapter to have the samples table already created
with a column for every feature of the schema, class feature included.
A row that does not fit the schema results in an error wrapping a
*dataset.MalformedRecordError.
*/
func OpenSet(ctx context.Context, a Adapter, schema *dataset.Schema) (*dataset.Dataset, error) {
	var samples []*dataset.Sample
	err := ReadSetBySample(ctx, a, schema, func(_ int, s *dataset.Sample) (bool, error) {
		samples = append(samples, s)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(schema, samples), nil
}

/*
ReadSetBySample takes a context, an Adapter, a schema and a lambda function on
an integer and a sample that returns a boolean value. It reads the samples from
the database and for each it calls the lambda function with the sample and its
index as parameters. If the lambda function returns true, it will continue
processing the next sample, otherwise it will stop. An error is returned if
something goes wrong when querying the database or building a sample.
*/
func ReadSetBySample(ctx context.Context, a Adapter, schema *dataset.Schema, lambda func(int, *dataset.Sample) (bool, error)) error {
	columns, err := columnsFor(a, schema)
	if err != nil {
		return err
	}
	return a.IterateOnSamples(ctx, columns, func(i int, row []string) (bool, error) {
		s, err := schema.NewSample(row[0], row[1:])
		if err != nil {
			return false, fmt.Errorf("reading sample %d: %w", i+1, err)
		}
		return lambda(i, s)
	})
}

/*
WriteSet takes a context, an Adapter and a dataset, ensures the samples table
exists on the database and adds the samples of the dataset to it. It returns
the number of samples added and an error if not all of them could be added.
*/
func WriteSet(ctx context.Context, a Adapter, d *dataset.Dataset) (int, error) {
	columns, err := columnsFor(a, d.Schema())
	if err != nil {
		return 0, err
	}
	err = a.CreateSampleTable(ctx, columns)
	if err != nil {
		return 0, err
	}
	rows := make([][]string, 0, d.Count())
	for _, s := range d.Samples() {
		row := make([]string, 0, len(columns))
		row = append(row, s.Label())
		row = append(row, s.Values()...)
		rows = append(rows, row)
	}
	return a.AddSamples(ctx, rows, columns)
}

// columnsFor returns the column of the class feature followed by the
// columns of the rest of the features.
func columnsFor(a Adapter, schema *dataset.Schema) ([]string, error) {
	features := schema.Features()
	columns := make([]string, 0, len(features)+1)
	c, err := a.ColumnName(schema.Label().Name())
	if err != nil {
		return nil, err
	}
	columns = append(columns, c)
	for _, f := range features {
		c, err = a.ColumnName(f.Name())
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, nil
}
