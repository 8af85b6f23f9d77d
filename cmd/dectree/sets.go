package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/dataset/csv"
	"github.com/robjustinwagner/dectree/dataset/mongodataset"
	"github.com/robjustinwagner/dectree/dataset/sqlset"
	"github.com/robjustinwagner/dectree/dataset/sqlset/pgadapter"
	"github.com/robjustinwagner/dectree/dataset/sqlset/sqlite3adapter"
	"github.com/robjustinwagner/dectree/feature"
	"github.com/robjustinwagner/dectree/feature/json"
	"github.com/robjustinwagner/dectree/feature/yaml"
	mgo "gopkg.in/mgo.v2"
)

const (
	inputFlagUsage    = "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the %s (defaults to STDIN, interpreted as CSV)"
	metadataFlagUsage = "path to a YAML (.yml, .yaml) or JSON (.json) file with metadata describing the features available on the input (required)"
	classFlagUsage    = "name of the class feature to predict (defaults to the label declared on the metadata)"
	mongoDialTimeout  = 10 * time.Second
)

/*
schemaConfig holds the flags every command needs to
know the shape of the samples it works with
*/
type schemaConfig struct {
	*rootCmdConfig
	metadataInput string
	classFeature  string
}

func (sc *schemaConfig) Validate() error {
	if sc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

func (sc *schemaConfig) schema() (*dataset.Schema, error) {
	sc.Logf("Reading features from metadata at %s...", sc.metadataInput)
	var md *feature.Metadata
	var err error
	if strings.EqualFold(filepath.Ext(sc.metadataInput), ".json") {
		md, err = json.ReadMetadataFromFile(sc.metadataInput)
	} else {
		md, err = yaml.ReadMetadataFromFile(sc.metadataInput)
	}
	if err != nil {
		return nil, err
	}
	label, features, err := md.Split(sc.classFeature)
	if err != nil {
		return nil, err
	}
	schema, err := dataset.NewSchema(label, features)
	if err != nil {
		return nil, fmt.Errorf("reading metadata from %s: %v", sc.metadataInput, err)
	}
	sc.Logf("Read %d features to predict %s", len(features), label.Name())
	return schema, nil
}

func readSet(ctx context.Context, l logger, input, name string, schema *dataset.Schema) (*dataset.Dataset, error) {
	var d *dataset.Dataset
	var err error
	switch {
	case strings.HasPrefix(input, "postgresql://"):
		l.Logf("Opening set over PostgreSQL adapter for url %s to read %s...", input, name)
		var a sqlset.Adapter
		a, err = pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		d, err = sqlset.OpenSet(ctx, a, schema)
	case strings.HasPrefix(input, "mongodb://"):
		l.Logf("Opening MongoDB collection at %s to read %s...", input, name)
		d, err = readMongoSet(ctx, l, input, schema)
	case strings.HasSuffix(input, ".db"):
		l.Logf("Opening set over SQLite3 adapter for file %s to read %s...", input, name)
		var a sqlset.Adapter
		a, err = sqlite3adapter.New(input)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		d, err = sqlset.OpenSet(ctx, a, schema)
	case input == "":
		l.Logf("Reading %s from STDIN...", name)
		d, err = csv.ReadSet(os.Stdin, schema)
	default:
		l.Logf("Opening %s to read %s...", input, name)
		d, err = csv.ReadSetFromFilePath(input, schema)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", name, err)
	}
	l.Logf("Read %s with %d samples", name, d.Count())
	return d, nil
}

func readMongoSet(ctx context.Context, l logger, url string, schema *dataset.Schema) (*dataset.Dataset, error) {
	session, err := mgo.DialWithTimeout(url, mongoDialTimeout)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB at %s: %v", url, err)
	}
	defer session.Close()
	c, err := mongodataset.Open(ctx, session, schema)
	if err != nil {
		return nil, err
	}
	n, err := c.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting samples on MongoDB at %s: %v", url, err)
	}
	l.Logf("Collection holds %d samples", n)
	return c.Dataset(ctx)
}

func writeSet(ctx context.Context, l logger, output, name string, d *dataset.Dataset) error {
	var err error
	switch {
	case strings.HasPrefix(output, "postgresql://"):
		l.Logf("Opening set over PostgreSQL adapter for url %s to dump %s...", output, name)
		var a sqlset.Adapter
		a, err = pgadapter.New(output)
		if err != nil {
			return err
		}
		defer a.Close()
		_, err = sqlset.WriteSet(ctx, a, d)
	case strings.HasPrefix(output, "mongodb://"):
		l.Logf("Opening MongoDB collection at %s to dump %s...", output, name)
		err = writeMongoSet(ctx, l, output, d)
	case strings.HasSuffix(output, ".db"):
		l.Logf("Opening set over SQLite3 adapter for file %s to dump %s...", output, name)
		var a sqlset.Adapter
		a, err = sqlite3adapter.New(output)
		if err != nil {
			return err
		}
		defer a.Close()
		_, err = sqlset.WriteSet(ctx, a, d)
	case output == "":
		l.Logf("Using STDOUT to dump %s...", name)
		err = csv.WriteSet(os.Stdout, d)
	default:
		l.Logf("Creating %s to dump %s...", output, name)
		var f *os.File
		f, err = os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		err = csv.WriteSet(f, d)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %v", name, err)
	}
	l.Logf("Wrote %s with %d samples", name, d.Count())
	return nil
}

func writeMongoSet(ctx context.Context, l logger, url string, d *dataset.Dataset) error {
	session, err := mgo.DialWithTimeout(url, mongoDialTimeout)
	if err != nil {
		return fmt.Errorf("connecting to MongoDB at %s: %v", url, err)
	}
	defer session.Close()
	c, err := mongodataset.Open(ctx, session, d.Schema())
	if err != nil {
		return err
	}
	_, err = c.Write(ctx, d.Samples())
	if err != nil {
		return err
	}
	n, err := c.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting samples on MongoDB at %s: %v", url, err)
	}
	l.Logf("Collection holds %d samples", n)
	return nil
}
