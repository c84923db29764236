package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/csv"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/mongodataset"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/sqldataset"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/sqldataset/pgadapter"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/sqldataset/sqlite3adapter"
	"github.com/billylozowski/PitchClassification-decisiontree/feature/yaml"
	"github.com/billylozowski/PitchClassification-decisiontree/tree"
	"github.com/billylozowski/PitchClassification-decisiontree/tree/json"
	"github.com/billylozowski/PitchClassification-decisiontree/tree/redisstore"
	mgo "gopkg.in/mgo.v2"
	redis "gopkg.in/redis.v5"
)

const (
	postgresPrefix = "postgresql://"
	mongoPrefix    = "mongodb://"
	sqliteSuffix   = ".db"
	// Trees stored in Redis are referred to as redis:<id>
	redisPrefix = "redis:"
)

/*
readMatrix takes a context, an input and metadata and returns the matrix
of the samples at the input. Inputs starting with postgresql:// are read
from a PostgreSQL table, inputs starting with mongodb:// from a MongoDB
collection, inputs ending in .db from a SQLite3 table and any other input
from a CSV file, with "" standing for STDIN.
*/
func (rcc *rootCmdConfig) readMatrix(ctx context.Context, input string, md *yaml.Metadata) (*dataset.Matrix, error) {
	logger := getLogger(ctx)
	switch {
	case strings.HasPrefix(input, postgresPrefix):
		a, err := pgadapter.New(input)
		if err != nil {
			return nil, fmt.Errorf("connecting to PostgreSQL: %v", err)
		}
		defer a.Close()
		return sqldataset.Load(ctx, a, rcc.Table, md.Features, md.Target, md.Filters)
	case strings.HasPrefix(input, mongoPrefix):
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB: %v", err)
		}
		defer session.Close()
		return mongodataset.Open(session, rcc.Table).Load(ctx, md.Features, md.Target, md.Filters)
	case strings.HasSuffix(input, sqliteSuffix):
		a, err := sqlite3adapter.New(input)
		if err != nil {
			return nil, fmt.Errorf("opening SQLite3 database %s: %v", input, err)
		}
		defer a.Close()
		return sqldataset.Load(ctx, a, rcc.Table, md.Features, md.Target, md.Filters)
	}
	m, stats, err := csv.ReadMatrixFromFilePath(input, csv.Options{
		Features: md.Features,
		Target:   md.Target,
		Filters:  md.Filters,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("samples read", "input", input, "rows", stats.Rows, "filtered", stats.Filtered, "incomplete", stats.Incomplete, "kept", stats.Kept())
	return m, nil
}

/*
writeMatrix takes a context, an output and a matrix and writes the matrix
to the output, following the same conventions as readMatrix. Matrices
written to CSV go to STDOUT when output is "".
*/
func (rcc *rootCmdConfig) writeMatrix(ctx context.Context, output string, m *dataset.Matrix) error {
	var n int
	var err error
	switch {
	case strings.HasPrefix(output, postgresPrefix):
		a, aerr := pgadapter.New(output)
		if aerr != nil {
			return fmt.Errorf("connecting to PostgreSQL: %v", aerr)
		}
		defer a.Close()
		n, err = sqldataset.Save(ctx, a, rcc.Table, m)
	case strings.HasPrefix(output, mongoPrefix):
		session, serr := mgo.Dial(output)
		if serr != nil {
			return fmt.Errorf("connecting to MongoDB: %v", serr)
		}
		defer session.Close()
		n, err = mongodataset.Open(session, rcc.Table).Save(ctx, m)
	case strings.HasSuffix(output, sqliteSuffix):
		a, aerr := sqlite3adapter.New(output)
		if aerr != nil {
			return fmt.Errorf("opening SQLite3 database %s: %v", output, aerr)
		}
		defer a.Close()
		n, err = sqldataset.Save(ctx, a, rcc.Table, m)
	default:
		err = writeFile(output, func(w io.Writer) error { return csv.WriteMatrix(w, m) })
		n = m.Len()
	}
	if err != nil {
		return err
	}
	getLogger(ctx).Debug("samples written", "output", output, "rows", n)
	return nil
}

/*
loadTree takes a context and a tree reference and returns the tree it
refers to: the tree stored in Redis under <id> for references like
redis:<id>, or the tree encoded in JSON in the file at the reference
otherwise.
*/
func (rcc *rootCmdConfig) loadTree(ctx context.Context, ref string) (*tree.Tree, error) {
	if id, ok := strings.CutPrefix(ref, redisPrefix); ok {
		store, closeStore := rcc.redisStore()
		defer closeStore()
		t, err := store.Load(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading tree %s: %w", ref, err)
		}
		return t, nil
	}
	f, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", ref, err)
	}
	defer f.Close()
	t, err := json.ReadJSONTree(f)
	if err != nil {
		return nil, fmt.Errorf("parsing tree in JSON from %s: %v", ref, err)
	}
	return t, nil
}

/*
saveTree takes a context, an output and a tree and stores the tree. The
output "redis" stores it in Redis and the returned reference is redis:<id>.
Other outputs are paths of files the tree is written to in JSON, STDOUT
when "".
*/
func (rcc *rootCmdConfig) saveTree(ctx context.Context, output string, t *tree.Tree) (string, error) {
	if output == "redis" {
		store, closeStore := rcc.redisStore()
		defer closeStore()
		id, err := store.Save(ctx, t)
		if err != nil {
			return "", err
		}
		return redisPrefix + id, nil
	}
	err := writeFile(output, func(w io.Writer) error { return json.WriteJSONTree(t, w) })
	if err != nil {
		return "", fmt.Errorf("writing tree in JSON: %v", err)
	}
	return output, nil
}

// deleteTree removes a tree stored in Redis.
func (rcc *rootCmdConfig) deleteTree(ctx context.Context, ref string) error {
	id, ok := strings.CutPrefix(ref, redisPrefix)
	if !ok {
		return fmt.Errorf("%s is not a reference to a tree stored in Redis", ref)
	}
	store, closeStore := rcc.redisStore()
	defer closeStore()
	return store.Delete(ctx, id)
}

func isRedisRef(ref string) bool {
	return strings.HasPrefix(ref, redisPrefix)
}

func (rcc *rootCmdConfig) redisStore() (*redisstore.Store, func()) {
	rc := redis.NewClient(&redis.Options{
		Addr:     rcc.Redis.Addr,
		Password: rcc.Redis.Password,
		DB:       rcc.Redis.DB,
	})
	return redisstore.New(rc, rcc.Redis.Prefix), func() { rc.Close() }
}

// writeFile calls write with the file at path, created or truncated, or
// with STDOUT when path is "".
func writeFile(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
