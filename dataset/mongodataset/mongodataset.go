/*
Package mongodataset provides functions to store datasets on and load them
from a MongoDB database, with a document per sample on the samples
collection.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	samplesCollectionName = "samples"
	idField               = "_id"
)

/*
Write takes a context, a MongoDB session, a dataset and a slice of attribute
names and inserts a document for every row of the dataset with a field for
each of the attributes on the samples collection of the session's default
database. It returns the number of documents inserted or an error.
*/
func Write(ctx context.Context, session *mgo.Session, d dataset.Dataset, attributes []string) (int, error) {
	err := d.Validate(attributes...)
	if err != nil {
		return 0, err
	}
	err = ensureIndexes(session, attributes)
	if err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		doc := make(bson.M, len(attributes))
		for _, a := range attributes {
			doc[a] = d[a][i]
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}
	err = samplesCollection(session).Insert(docs...)
	if err != nil {
		return 0, fmt.Errorf("inserting samples: %v", err)
	}
	return len(docs), nil
}

/*
Read takes a context, a MongoDB session and a slice of attribute names and
returns a dataset with the values for those attributes of every document in
the samples collection, in insertion order. If no attributes are given, the
fields of the first document are used. An error is returned if a document
lacks one of the attributes or the collection cannot be read.
*/
func Read(ctx context.Context, session *mgo.Session, attributes []string) (dataset.Dataset, error) {
	var d dataset.Dataset
	if len(attributes) > 0 {
		d = newDataset(attributes)
	}
	rows, errs := Stream(ctx, session)
	for row := range rows {
		if d == nil {
			attributes = make([]string, 0, len(row))
			for a := range row {
				attributes = append(attributes, a)
			}
			d = newDataset(attributes)
		}
		for _, a := range attributes {
			v, ok := row[a]
			if !ok {
				// drain so the streaming goroutine can finish
				for range rows {
				}
				<-errs
				return nil, fmt.Errorf("sample %d has no value for %s", d.Len()+1, a)
			}
			d[a] = append(d[a], v)
		}
	}
	err := <-errs
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = dataset.Dataset{}
	}
	return d, nil
}

/*
Stream takes a context and a MongoDB session and returns a channel on which
the documents of the samples collection are sent as rows, and a channel on
which an error is sent if reading them fails or the context is cancelled.
Both channels are closed when the collection has been read.
*/
func Stream(ctx context.Context, session *mgo.Session) (<-chan map[string]string, <-chan error) {
	rows := make(chan map[string]string)
	errs := make(chan error, 1)
	go func() {
		defer close(rows)
		defer close(errs)
		var doc bson.M
		var err error
		iter := samplesCollection(session).Find(nil).Sort(idField).Iter()
	loop:
		for iter.Next(&doc) {
			row := toRow(doc)
			doc = nil
			select {
			case <-ctx.Done():
				err = ctx.Err()
				break loop
			case rows <- row:
			}
		}
		cerr := iter.Close()
		if err == nil && cerr != nil {
			err = fmt.Errorf("reading samples: %v", cerr)
		}
		if err != nil {
			errs <- err
		}
	}()
	return rows, errs
}

/*
CheckAttribute takes an attribute name and returns an error if it cannot be
used as the name of a field in a samples document.
*/
func CheckAttribute(a string) error {
	if a == idField {
		return fmt.Errorf("invalid attribute name %q: reserved collection field", idField)
	}
	if a == "" {
		return fmt.Errorf("invalid attribute name %q", a)
	}
	if strings.ContainsAny(a, ".$") {
		return fmt.Errorf("invalid attribute name %q: contains reserved characters %q or %q", a, ".", "$")
	}
	return nil
}

func ensureIndexes(session *mgo.Session, attributes []string) error {
	for _, a := range attributes {
		err := CheckAttribute(a)
		if err != nil {
			return err
		}
	}
	for _, a := range attributes {
		index := mgo.Index{
			Key:        []string{a},
			Background: true,
			Sparse:     true,
		}
		err := samplesCollection(session).EnsureIndex(index)
		if err != nil {
			return fmt.Errorf("ensuring index on %s: %v", a, err)
		}
	}
	return nil
}

func toRow(doc bson.M) map[string]string {
	row := make(map[string]string, len(doc))
	for k, v := range doc {
		if k == idField || v == nil {
			continue
		}
		row[k] = fmt.Sprintf("%v", v)
	}
	return row
}

func newDataset(attributes []string) dataset.Dataset {
	d := make(dataset.Dataset, len(attributes))
	for _, a := range attributes {
		d[a] = []string{}
	}
	return d
}

func samplesCollection(session *mgo.Session) *mgo.Collection {
	return session.DB("").C(samplesCollectionName)
}
