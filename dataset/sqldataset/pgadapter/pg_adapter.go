/*
Package pgadapter provides an implementation of the Adapter interface in
the sqldataset package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"strconv"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset/sqldataset"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

// FromDB returns an Adapter for an already open PostgreSQL database.
func FromDB(db *sql.DB) sqldataset.Adapter {
	return &adapter{db}
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) ColumnName(name string) (string, error) {
	return sqldataset.Quote(name)
}

func (a *adapter) Placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}

func (a *adapter) Close() error {
	return a.db.Close()
}
