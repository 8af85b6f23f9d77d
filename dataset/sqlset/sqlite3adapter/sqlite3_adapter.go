/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over a SQLite3 database.
*/
package sqlite3adapter

import (
	"database/sql"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/robjustinwagner/dectree/dataset/sqlset"
)

type dialect struct{}

/*
New takes the path to a SQLite3 database file and returns an Adapter
that works on it or an error if the database cannot be opened.
*/
func New(path string) (sqlset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return sqlset.NewAdapter(db, dialect{}), nil
}

func (dialect) Placeholder(int) string {
	return "?"
}

func (dialect) IDColumnDefinition() string {
	return `"id" INTEGER PRIMARY KEY AUTOINCREMENT`
}
