/*
Package pgadapter provides an implementation of the Adapter interface in the
sqldataset package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/pbanos/id3/dataset/sqldataset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

// maxIdentifierLength is PostgreSQL's NAMEDATALEN - 1
const maxIdentifierLength = 63

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns an Adapter that
works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) ColumnName(attribute string) (string, error) {
	c, err := sqldataset.CheckColumnName(attribute)
	if err != nil {
		return "", err
	}
	if len(c) > maxIdentifierLength {
		return "", fmt.Errorf("attribute name '%s' is longer than %d bytes", attribute, maxIdentifierLength)
	}
	return c, nil
}

func (a *adapter) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func (a *adapter) PrimaryKey() string {
	return "SERIAL PRIMARY KEY"
}

func (a *adapter) Close() error {
	return a.db.Close()
}
