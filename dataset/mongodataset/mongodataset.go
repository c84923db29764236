/*
Package mongodataset loads matrices from and saves matrices to a MongoDB
collection, with one document per row and one field per feature.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

// DefaultCollection is the collection used when none is given to Open.
const DefaultCollection = "samples"

/*
Dataset gives access to the rows stored in a collection of the default
database of a MongoDB session.
*/
type Dataset struct {
	session    *mgo.Session
	collection string
}

/*
Open takes a MongoDB database session and a collection name and returns a
Dataset that works on that collection of the default database for the
session. DefaultCollection is used if the name is empty.
*/
func Open(session *mgo.Session, collection string) *Dataset {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Dataset{session, collection}
}

/*
Load takes a context.Context, the predictor features, the target feature,
equality filters and criteria and returns a matrix with the documents that
pass the filters, satisfy all criteria and hold a number for every feature.
Documents with a missing or non numeric value are skipped.
*/
func (mds *Dataset) Load(ctx context.Context, features []feature.Feature, target feature.Feature, filters map[string]string, criteria ...feature.Criterion) (*dataset.Matrix, error) {
	if target == nil {
		return nil, fmt.Errorf("loading matrix from %s: no target feature", mds.collection)
	}
	all := append(append([]feature.Feature{}, features...), target)
	names := feature.Names(all)
	if err := validNames(names); err != nil {
		return nil, err
	}
	query, err := buildQuery(names, filters, criteria)
	if err != nil {
		return nil, err
	}
	iter := mds.samplesCollection().Find(query).Iter()
	defer iter.Close()
	var samples []feature.Sample
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s, ok := sampleFrom(doc, names); ok {
			samples = append(samples, s)
		}
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading documents from %s: %v", mds.collection, err)
	}
	return dataset.New(features, target, samples)
}

/*
Save takes a context.Context and a matrix, ensures there is an index for
every feature of the matrix and inserts one document per row. It returns
the number of documents inserted.
*/
func (mds *Dataset) Save(ctx context.Context, m *dataset.Matrix) (int, error) {
	names := append(m.Features(), m.Target())
	if err := validNames(names); err != nil {
		return 0, err
	}
	if err := mds.ensureIndexes(names); err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		doc := make(bson.M, len(names))
		for j, name := range names[:len(names)-1] {
			doc[name] = m.Value(i, j)
		}
		doc[m.Target()] = m.TargetValue(i)
		docs = append(docs, doc)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}
	if err := mds.samplesCollection().Insert(docs...); err != nil {
		return 0, fmt.Errorf("inserting documents into %s: %v", mds.collection, err)
	}
	return len(docs), nil
}

func (mds *Dataset) ensureIndexes(names []string) error {
	for _, name := range names {
		index := mgo.Index{
			Key:        []string{name},
			Background: true,
			Sparse:     true,
		}
		if err := mds.samplesCollection().EnsureIndex(index); err != nil {
			return fmt.Errorf("ensuring index on %s: %v", name, err)
		}
	}
	return nil
}

func (mds *Dataset) samplesCollection() *mgo.Collection {
	return mds.session.DB("").C(mds.collection)
}

func validNames(names []string) error {
	for _, name := range names {
		if name == "_id" {
			return fmt.Errorf("invalid feature name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(name, ".$") {
			return fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", name, ".", "$")
		}
	}
	return nil
}

/*
buildQuery returns a query for documents with a value for every column,
matching the filters and satisfying the criteria.
*/
func buildQuery(columns []string, filters map[string]string, criteria []feature.Criterion) (bson.M, error) {
	query := make(bson.M)
	for _, c := range columns {
		query[c] = bson.M{"$ne": nil}
	}
	for name, value := range filters {
		query[name] = value
	}
	for _, fc := range criteria {
		tc, ok := fc.(*feature.ThresholdCriterion)
		if !ok {
			return nil, fmt.Errorf("building query: unsupported criterion %T", fc)
		}
		var rangeValue bson.M
		if v, ok := query[tc.Feature()].(bson.M); ok {
			rangeValue = v
		} else {
			rangeValue = make(bson.M)
		}
		if tc.Above() {
			v, ok := rangeValue["$gt"].(float64)
			if !ok || v < tc.Threshold() {
				rangeValue["$gt"] = tc.Threshold()
			}
		} else {
			v, ok := rangeValue["$lte"].(float64)
			if !ok || v > tc.Threshold() {
				rangeValue["$lte"] = tc.Threshold()
			}
		}
		query[tc.Feature()] = rangeValue
	}
	return query, nil
}

// sampleFrom returns the values of the document for the given fields
// and whether all of them are numbers.
func sampleFrom(doc bson.M, names []string) (feature.Values, bool) {
	s := make(feature.Values, len(names))
	for _, name := range names {
		var f float64
		switch v := doc[name].(type) {
		case float64:
			f = v
		case int:
			f = float64(v)
		case int64:
			f = float64(v)
		case int32:
			f = float64(v)
		default:
			return nil, false
		}
		s[name] = f
	}
	return s, true
}
