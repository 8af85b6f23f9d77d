/*
Package csv reads and writes datasets as CSV streams whose first row names
the column of every feature, class feature included, in any order.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/robjustinwagner/dectree/dataset"
)

/*
Writer is an interface for a CSV stream to which samples
can be written to.
*/
type Writer interface {
	// Write will attempt to write the given samples
	// and will return the actually written number of
	// samples and an error (if not all samples could
	// be written)
	Write([]*dataset.Sample) (int, error)
	// Count returns the total number of samples written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count  int
	schema *dataset.Schema
	w      *csv.Writer
}

/*
ReadSet takes an io.Reader for a CSV stream and a schema and returns the
dataset of samples parsed from the reader or an error.

The header or first row of the CSV content is expected to consist of the names
of the class feature and the rest of the features of the schema, in any order.
The rest of the rows should consist of valid values for the corresponding
features. A row that does not fit the schema results in an error wrapping a
*dataset.MalformedRecordError.
*/
func ReadSet(reader io.Reader, schema *dataset.Schema) (*dataset.Dataset, error) {
	var samples []*dataset.Sample
	err := ReadSetBySample(reader, schema, func(_ int, s *dataset.Sample) (bool, error) {
		samples = append(samples, s)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(schema, samples), nil
}

/*
ReadSetBySample takes an io.Reader for a CSV stream, a schema and a lambda
function on an integer and a sample that returns a boolean value.
It parses the samples from the reader and for each it calls the lambda function
with the sample and its index as parameters. If the lambda function returns true,
it will continue processing the next sample, otherwise it will stop. An error is
returned if something goes wrong when reading the stream or parsing a sample.
*/
func ReadSetBySample(reader io.Reader, schema *dataset.Schema, lambda func(int, *dataset.Sample) (bool, error)) error {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	columns, err := parseHeader(header, schema)
	if err != nil {
		return err
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		sample, err := parseRow(row, columns, schema)
		if err != nil {
			return fmt.Errorf("parsing line %d: %w", l, err)
		}
		ok, err := lambda(l-2, sample)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadSetFromFilePath takes a filepath string and a schema, opens the file to
which the filepath points to (os.Stdin if it is "") and uses ReadSet to return
the dataset read from it or an error.
*/
func ReadSetFromFilePath(filepath string, schema *dataset.Schema) (*dataset.Dataset, error) {
	f := os.Stdin
	if filepath != "" {
		var err error
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	d, err := ReadSet(f, schema)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return d, nil
}

/*
NewWriter takes an io.Writer and a schema and returns a Writer that will write
samples of the schema on the io.Writer, after a header row with the name of
the class feature followed by the names of the rest of the features.
*/
func NewWriter(writer io.Writer, schema *dataset.Schema) (Writer, error) {
	w := csv.NewWriter(writer)
	features := schema.Features()
	record := make([]string, 0, len(features)+1)
	record = append(record, schema.Label().Name())
	for _, f := range features {
		record = append(record, f.Name())
	}
	err := w.Write(record)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{schema: schema, w: w}, nil
}

/*
WriteSet takes an io.Writer and a dataset and dumps the dataset onto the
writer in CSV format. It returns an error if something went wrong when
writing to the writer.
*/
func WriteSet(writer io.Writer, d *dataset.Dataset) error {
	cw, err := NewWriter(writer, d.Schema())
	if err != nil {
		return err
	}
	_, err = cw.Write(d.Samples())
	if err != nil {
		return err
	}
	return cw.Flush()
}

// parseHeader returns, for every column, the position of its feature among
// the schema features or -1 for the class feature.
func parseHeader(header []string, schema *dataset.Schema) ([]int, error) {
	positions := make(map[string]int)
	for i, f := range schema.Features() {
		positions[f.Name()] = i
	}
	positions[schema.Label().Name()] = -1
	columns := make([]int, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("parsing header: duplicate column for feature %s", name)
		}
		p, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("parsing header: reference to unknown feature %s", name)
		}
		columns[i] = p
		seen[name] = true
	}
	for name := range positions {
		if !seen[name] {
			return nil, fmt.Errorf("parsing header: missing column for feature %s", name)
		}
	}
	return columns, nil
}

func parseRow(row []string, columns []int, schema *dataset.Schema) (*dataset.Sample, error) {
	if len(row) != len(columns) {
		return nil, &dataset.MalformedRecordError{Reason: fmt.Sprintf("got %d values for %d columns", len(row), len(columns))}
	}
	var label string
	values := make([]string, len(columns)-1)
	for i, p := range columns {
		if p < 0 {
			label = row[i]
			continue
		}
		values[p] = row[i]
	}
	return schema.NewSample(label, values)
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(samples []*dataset.Sample) (int, error) {
	for n, s := range samples {
		err := cw.writeSample(s)
		if err != nil {
			return n, err
		}
	}
	return len(samples), nil
}

func (cw *csvWriter) writeSample(s *dataset.Sample) error {
	values := s.Values()
	record := make([]string, 0, len(values)+1)
	record = append(record, s.Label())
	record = append(record, values...)
	err := cw.w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV row for sample %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
