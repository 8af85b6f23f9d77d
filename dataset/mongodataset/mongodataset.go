/*
Package mongodataset keeps datasets on a MongoDB database, as a samples
collection with a document per sample holding the value of every feature,
class feature included, under the feature's name.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	samplesCollectionName = "samples"
)

/*
Collection is the set of samples of a schema on a MongoDB database.
*/
type Collection struct {
	session *mgo.Session
	schema  *dataset.Schema
}

/*
Open takes a context, a MongoDB database session and a schema and returns a
Collection that works on the samples collection of the default database for
that session or an error if the features of the schema cannot be used as
document fields or their indexes cannot be ensured.
*/
func Open(ctx context.Context, session *mgo.Session, schema *dataset.Schema) (*Collection, error) {
	c := &Collection{session: session, schema: schema}
	err := c.ensureIndexes()
	if err != nil {
		return nil, err
	}
	return c, ctx.Err()
}

// Count returns the number of samples in the collection.
func (c *Collection) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.samplesCollection().Count()
}

/*
Write takes a context and a slice of samples and inserts them into the
collection, returning the number of samples inserted or an error.
*/
func (c *Collection) Write(ctx context.Context, samples []*dataset.Sample) (int, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, len(samples))
	for _, s := range samples {
		docs = append(docs, document(c.schema, s))
	}
	err := c.samplesCollection().Insert(docs...)
	if err != nil {
		return 0, fmt.Errorf("inserting %d samples: %v", len(samples), err)
	}
	return len(samples), nil
}

/*
Read takes a context and returns a channel on which the samples of the
collection are sent in insertion order, and a channel on which an error
is sent if the samples cannot be read. Both channels are closed when
reading finishes.
*/
func (c *Collection) Read(ctx context.Context) (<-chan *dataset.Sample, <-chan error) {
	samples := make(chan *dataset.Sample)
	errs := make(chan error, 1)
	go func() {
		defer close(samples)
		defer close(errs)
		var doc bson.M
		iter := c.samplesCollection().Find(nil).Sort("_id").Iter()
		defer iter.Close()
		for iter.Next(&doc) {
			s, err := sample(c.schema, doc)
			if err != nil {
				errs <- err
				return
			}
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case samples <- s:
			}
			doc = nil
		}
		if err := iter.Err(); err != nil {
			errs <- err
		}
	}()
	return samples, errs
}

/*
Dataset takes a context and returns a dataset with all the samples of the
collection.
*/
func (c *Collection) Dataset(ctx context.Context) (*dataset.Dataset, error) {
	var samples []*dataset.Sample
	sampleChan, errs := c.Read(ctx)
	for s := range sampleChan {
		samples = append(samples, s)
	}
	if err := <-errs; err != nil {
		return nil, err
	}
	return dataset.New(c.schema, samples), nil
}

func (c *Collection) ensureIndexes() error {
	for _, f := range append([]*feature.Feature{c.schema.Label()}, c.schema.Features()...) {
		if err := validFieldName(f.Name()); err != nil {
			return err
		}
		index := mgo.Index{
			Key:        []string{f.Name()},
			Background: true,
		}
		err := c.samplesCollection().EnsureIndex(index)
		if err != nil {
			return fmt.Errorf("ensuring index on %s: %v", f.Name(), err)
		}
	}
	return nil
}

func (c *Collection) samplesCollection() *mgo.Collection {
	return c.session.DB("").C(samplesCollectionName)
}

func validFieldName(name string) error {
	if name == "_id" {
		return fmt.Errorf("invalid feature name %q: reserved collection field", "_id")
	}
	if strings.ContainsAny(name, ".$") {
		return fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", name, ".", "$")
	}
	return nil
}

func document(schema *dataset.Schema, s *dataset.Sample) bson.M {
	doc := bson.M{schema.Label().Name(): s.Label()}
	values := s.Values()
	for i, f := range schema.Features() {
		doc[f.Name()] = values[i]
	}
	return doc
}

func sample(schema *dataset.Schema, doc bson.M) (*dataset.Sample, error) {
	values := make(map[string]string, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		sv, ok := v.(string)
		if !ok {
			return nil, &dataset.MalformedRecordError{Reason: fmt.Sprintf("value %v of type %T for %s is not a string", v, v, k)}
		}
		values[k] = sv
	}
	return schema.NewSampleFromMap(values)
}
