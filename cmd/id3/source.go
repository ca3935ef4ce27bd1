package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/dataset/mongodataset"
	"github.com/pbanos/id3/dataset/redisdataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/dataset/sqldataset/pgadapter"
	"github.com/pbanos/id3/dataset/sqldataset/sqlite3adapter"
	mgo "gopkg.in/mgo.v2"
	redis "gopkg.in/redis.v5"
)

const weatherSource = "weather"

type sourceKind int

const (
	csvSource sourceKind = iota
	builtinSource
	sqliteSource
	postgresSource
	mongoSource
	redisSource
)

/*
kindOf takes the location of a dataset as given on the command line and
returns the kind of source it refers to. An empty location means CSV on
STDIN or STDOUT.
*/
func kindOf(location string) sourceKind {
	switch {
	case location == weatherSource:
		return builtinSource
	case strings.HasPrefix(location, "postgresql://"), strings.HasPrefix(location, "postgres://"):
		return postgresSource
	case strings.HasPrefix(location, "mongodb://"):
		return mongoSource
	case strings.HasPrefix(location, "redis://"):
		return redisSource
	case strings.HasSuffix(location, ".db"):
		return sqliteSource
	}
	return csvSource
}

/*
readDataset takes a context, the location of a dataset and the redis key
prefix to use if the location is a redis URL, and returns the dataset read
from it. attributes restricts the columns read from MongoDB; it may be nil.
*/
func (rcc *rootCmdConfig) readDataset(ctx context.Context, location, prefix string, attributes []string) (dataset.Dataset, error) {
	switch kindOf(location) {
	case builtinSource:
		rcc.Logf("Using built-in weather dataset...")
		return dataset.Weather(), nil
	case sqliteSource:
		rcc.Logf("Creating SQLite3 adapter for file %s to read dataset...", location)
		adapter, err := sqlite3adapter.New(location)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.Read(ctx, adapter)
	case postgresSource:
		rcc.Logf("Creating PostgreSQL adapter for url %s to read dataset...", location)
		adapter, err := pgadapter.New(location)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.Read(ctx, adapter)
	case mongoSource:
		rcc.Logf("Connecting to MongoDB at %s to read dataset...", location)
		session, err := mgo.Dial(location)
		if err != nil {
			return nil, fmt.Errorf("connecting to %s: %v", location, err)
		}
		defer session.Close()
		return mongodataset.Read(ctx, session, attributes)
	case redisSource:
		rcc.Logf("Connecting to redis at %s to read dataset under %s...", location, prefix)
		rc, err := redisClient(location)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return redisdataset.Read(ctx, rc, prefix)
	}
	if location == "" {
		rcc.Logf("Reading dataset from STDIN...")
	} else {
		rcc.Logf("Opening %s to read dataset...", location)
	}
	return csv.ReadFromFilePath(location)
}

/*
writeDataset takes a context, the location to write a dataset to, the redis
key prefix to use if the location is a redis URL, a dataset and the
attributes of it to write, and returns the number of rows written.
*/
func (rcc *rootCmdConfig) writeDataset(ctx context.Context, location, prefix string, d dataset.Dataset, attributes []string) (int, error) {
	switch kindOf(location) {
	case builtinSource:
		return 0, fmt.Errorf("cannot write to the built-in %s dataset", weatherSource)
	case sqliteSource:
		rcc.Logf("Creating SQLite3 adapter for file %s to dump dataset...", location)
		adapter, err := sqlite3adapter.New(location)
		if err != nil {
			return 0, err
		}
		defer adapter.Close()
		return sqldataset.Write(ctx, adapter, d, attributes)
	case postgresSource:
		rcc.Logf("Creating PostgreSQL adapter for url %s to dump dataset...", location)
		adapter, err := pgadapter.New(location)
		if err != nil {
			return 0, err
		}
		defer adapter.Close()
		return sqldataset.Write(ctx, adapter, d, attributes)
	case mongoSource:
		rcc.Logf("Connecting to MongoDB at %s to dump dataset...", location)
		session, err := mgo.Dial(location)
		if err != nil {
			return 0, fmt.Errorf("connecting to %s: %v", location, err)
		}
		defer session.Close()
		return mongodataset.Write(ctx, session, d, attributes)
	case redisSource:
		rcc.Logf("Connecting to redis at %s to dump dataset under %s...", location, prefix)
		rc, err := redisClient(location)
		if err != nil {
			return 0, err
		}
		defer rc.Close()
		return redisdataset.Write(ctx, rc, prefix, d, attributes)
	}
	f := os.Stdout
	if location != "" {
		rcc.Logf("Creating %s to dump dataset...", location)
		var err error
		f, err = os.Create(location)
		if err != nil {
			return 0, err
		}
		defer f.Close()
	} else {
		rcc.Logf("Using STDOUT to dump dataset...")
	}
	err := csv.Write(f, d, attributes)
	if err != nil {
		return 0, err
	}
	return d.Len(), nil
}

func redisClient(location string) (*redis.Client, error) {
	opts, err := redisOptions(location)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

/*
redisOptions takes a URL like redis://:password@host:port/db and returns the
options to connect to it.
*/
func redisOptions(location string) (*redis.Options, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url %s: %v", location, err)
	}
	opts := &redis.Options{Addr: u.Host}
	if u.Port() == "" {
		opts.Addr = u.Host + ":6379"
	}
	if u.User != nil {
		opts.Password, _ = u.User.Password()
	}
	if db := strings.Trim(u.Path, "/"); db != "" {
		opts.DB, err = strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url %s: invalid database %q", location, db)
		}
	}
	return opts, nil
}
