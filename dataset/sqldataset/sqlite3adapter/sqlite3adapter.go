/*
Package sqlite3adapter provides an implementation of the Adapter interface in
the sqldataset package that works over an SQLite3 database.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	"github.com/pbanos/id3/dataset/sqldataset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file (or ":memory:") and returns an
Adapter that works on the file's database or an error if it fails to open as
an sqlite3 database.

The adapter keeps a single open connection, so an in-memory database lives
as long as the adapter.
*/
func New(path string) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA foreign_keys=ON")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys on %s: %v", path, err)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) ColumnName(attribute string) (string, error) {
	return sqldataset.CheckColumnName(attribute)
}

func (a *adapter) Placeholder(int) string {
	return "?"
}

func (a *adapter) PrimaryKey() string {
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func (a *adapter) Close() error {
	return a.db.Close()
}
