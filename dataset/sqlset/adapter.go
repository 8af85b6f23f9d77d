package sqlset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

/*
MaxSampleInsertionsPerStatement is the maximum number
of samples that are added with a single insert command
by the AddSamples method of the adapters built with
NewAdapter. Adding more will result in making more
insertion commands.
*/
const MaxSampleInsertionsPerStatement = 10

/*
Adapter is an interface providing the methods
needed to keep samples on a database backend, on
a samples table with one TEXT column per feature.
*/
type Adapter interface {
	// ColumnName takes a feature name and returns the
	// name of the column for it or an error if the
	// feature name cannot be used as a column name.
	ColumnName(string) (string, error)
	// CreateSampleTable ensures the samples table exists
	// with the given columns.
	CreateSampleTable(ctx context.Context, columns []string) error
	// AddSamples inserts rows with the values for the given
	// columns into the samples table and returns the number
	// of rows inserted.
	AddSamples(ctx context.Context, rows [][]string, columns []string) (int, error)
	// IterateOnSamples queries the values for the given
	// columns of the rows in the samples table, in insertion
	// order, and calls the lambda function for each of them
	// with its index until it returns false or an error.
	IterateOnSamples(ctx context.Context, columns []string, lambda func(int, []string) (bool, error)) error
	// CountSamples returns the number of rows in the samples
	// table.
	CountSamples(ctx context.Context) (int, error)
	// Close closes the connection to the database
	Close() error
}

/*
Dialect captures the differences among the SQL databases adapters built
with NewAdapter work on.
*/
type Dialect interface {
	// Placeholder returns the placeholder for the ith (starting at 1)
	// argument of a statement.
	Placeholder(i int) string
	// IDColumnDefinition returns the definition of an autoincremented
	// primary key column named "id".
	IDColumnDefinition() string
}

type dbAdapter struct {
	db      *sql.DB
	dialect Dialect
}

/*
NewAdapter takes a database and the dialect it speaks and returns an Adapter
working on it.
*/
func NewAdapter(db *sql.DB, dialect Dialect) Adapter {
	return &dbAdapter{db, dialect}
}

func (a *dbAdapter) ColumnName(featureName string) (string, error) {
	if featureName == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as feature name`, featureName)
	}
	if strings.ContainsAny(featureName, `"`) {
		return "", fmt.Errorf(`feature name '%s' contains invalid character '"'`, featureName)
	}
	return featureName, nil
}

func (a *dbAdapter) CreateSampleTable(ctx context.Context, columns []string) error {
	var stmt bytes.Buffer
	stmt.WriteString("CREATE TABLE IF NOT EXISTS samples(")
	for _, c := range columns {
		stmt.WriteString(fmt.Sprintf(`"%s" TEXT NOT NULL, `, c))
	}
	stmt.WriteString(a.dialect.IDColumnDefinition())
	stmt.WriteString(")")
	_, err := a.db.ExecContext(ctx, stmt.String())
	if err != nil {
		return fmt.Errorf("ensuring samples table exists: %v", err)
	}
	return nil
}

func (a *dbAdapter) AddSamples(ctx context.Context, rows [][]string, columns []string) (int, error) {
	var added int
	for start := 0; start < len(rows); start += MaxSampleInsertionsPerStatement {
		end := start + MaxSampleInsertionsPerStatement
		if end > len(rows) {
			end = len(rows)
		}
		stmt, args := a.insertStatement(rows[start:end], columns)
		_, err := a.db.ExecContext(ctx, stmt, args...)
		if err != nil {
			return added, fmt.Errorf("inserting samples %d to %d: %v", start+1, end, err)
		}
		added = end
	}
	return added, nil
}

func (a *dbAdapter) insertStatement(rows [][]string, columns []string) (string, []interface{}) {
	var stmt bytes.Buffer
	args := make([]interface{}, 0, len(rows)*len(columns))
	stmt.WriteString(`INSERT INTO samples ("`)
	stmt.WriteString(strings.Join(columns, `", "`))
	stmt.WriteString(`") VALUES `)
	for i, row := range rows {
		if i > 0 {
			stmt.WriteString(", ")
		}
		stmt.WriteString("(")
		for j, v := range row {
			if j > 0 {
				stmt.WriteString(", ")
			}
			args = append(args, v)
			stmt.WriteString(a.dialect.Placeholder(len(args)))
		}
		stmt.WriteString(")")
	}
	return stmt.String(), args
}

func (a *dbAdapter) IterateOnSamples(ctx context.Context, columns []string, lambda func(int, []string) (bool, error)) error {
	query := fmt.Sprintf(`SELECT "%s" FROM samples ORDER BY "id"`, strings.Join(columns, `", "`))
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for j := 0; rows.Next(); j++ {
		values := make([]string, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return err
		}
		ok, err := lambda(j, values)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return rows.Err()
}

func (a *dbAdapter) CountSamples(ctx context.Context) (int, error) {
	var count int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM samples`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (a *dbAdapter) Close() error {
	return a.db.Close()
}
