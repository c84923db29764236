/*
Package sqldataset loads matrices from and saves matrices to tables of SQL
databases.

A table holds one REAL column per feature, named after the feature. Rows
with NULL in any of the requested columns are skipped when loading. The
SQL dialect is abstracted by an Adapter; the sqlite3adapter and pgadapter
subpackages provide adapters for SQLite3 and PostgreSQL.
*/
package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

/*
MaxRowInsertionsPerStatement is the maximum number of rows added with a
single insert command by Save. Saving more results in more commands.
*/
const MaxRowInsertionsPerStatement = 10

/*
Adapter gives access to a database and to the details of its SQL dialect.
*/
type Adapter interface {
	// DB returns the database handle
	DB() *sql.DB
	// ColumnName takes a feature or table name and returns it quoted
	// as an identifier, or an error if it cannot be used as one.
	ColumnName(name string) (string, error)
	// Placeholder returns the placeholder for the i-th (1-based)
	// parameter of a statement.
	Placeholder(i int) string
	// Close releases the database.
	Close() error
}

/*
Quote takes a name and returns it double-quoted as an SQL identifier,
or an error if it is empty or contains a double quote.
*/
func Quote(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty names cannot be used as identifiers")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`name '%s' contains invalid character '"'`, name)
	}
	return `"` + name + `"`, nil
}

/*
Load takes a context.Context, an Adapter, a table name, the predictor
features, the target feature and equality filters on other columns and
returns a matrix with the rows of the table that pass the filters and have
no NULL among the requested columns, in the order the database returns
them.
*/
func Load(ctx context.Context, a Adapter, table string, features []feature.Feature, target feature.Feature, filters map[string]string) (*dataset.Matrix, error) {
	if target == nil {
		return nil, fmt.Errorf("loading matrix from %s: no target feature", table)
	}
	all := append(append([]feature.Feature{}, features...), target)
	query, args, err := selectQuery(a, table, feature.Names(all), filters)
	if err != nil {
		return nil, fmt.Errorf("loading matrix from %s: %v", table, err)
	}
	rows, err := a.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %v", table, err)
	}
	defer rows.Close()
	var samples []feature.Sample
	values := make([]sql.NullFloat64, len(all))
	dest := make([]interface{}, len(all))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row from %s: %v", table, err)
		}
		sample := make(feature.Values, len(all))
		for i, v := range values {
			if v.Valid {
				sample[all[i].Name()] = v.Float64
			}
		}
		if len(sample) == len(all) {
			samples = append(samples, sample)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows from %s: %v", table, err)
	}
	return dataset.New(features, target, samples)
}

func selectQuery(a Adapter, table string, columns []string, filters map[string]string) (string, []interface{}, error) {
	var buf bytes.Buffer
	buf.WriteString("SELECT ")
	for i, c := range columns {
		qc, err := a.ColumnName(c)
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(qc)
	}
	qt, err := a.ColumnName(table)
	if err != nil {
		return "", nil, err
	}
	buf.WriteString(" FROM ")
	buf.WriteString(qt)
	var args []interface{}
	for _, name := range sortedKeys(filters) {
		qc, err := a.ColumnName(name)
		if err != nil {
			return "", nil, err
		}
		if len(args) == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		args = append(args, filters[name])
		buf.WriteString(fmt.Sprintf("%s = %s", qc, a.Placeholder(len(args))))
	}
	return buf.String(), args, nil
}

/*
Save takes a context.Context, an Adapter, a table name and a matrix,
ensures the table exists with a REAL column per feature and the target and
inserts every row of the matrix into it. It returns the number of rows
inserted, which is lower than the number of rows of the matrix only if an
error is returned.
*/
func Save(ctx context.Context, a Adapter, table string, m *dataset.Matrix) (int, error) {
	columns := append(m.Features(), m.Target())
	quoted := make([]string, len(columns))
	for i, c := range columns {
		qc, err := a.ColumnName(c)
		if err != nil {
			return 0, fmt.Errorf("saving matrix to %s: %v", table, err)
		}
		quoted[i] = qc
	}
	qt, err := a.ColumnName(table)
	if err != nil {
		return 0, fmt.Errorf("saving matrix to %s: %v", table, err)
	}
	var createStmt bytes.Buffer
	createStmt.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", qt))
	for i, qc := range quoted {
		if i > 0 {
			createStmt.WriteString(", ")
		}
		createStmt.WriteString(qc + " REAL NULL")
	}
	createStmt.WriteString(")")
	if _, err := a.DB().ExecContext(ctx, createStmt.String()); err != nil {
		return 0, fmt.Errorf("ensuring table %s exists: %v", table, err)
	}
	var inserted int
	for inserted < m.Len() {
		end := inserted + MaxRowInsertionsPerStatement
		if end > m.Len() {
			end = m.Len()
		}
		stmt, args := insertStmt(a, qt, quoted, m, inserted, end)
		if _, err := a.DB().ExecContext(ctx, stmt, args...); err != nil {
			return inserted, fmt.Errorf("inserting rows %d-%d into %s: %v", inserted+1, end, table, err)
		}
		inserted = end
	}
	return inserted, nil
}

func insertStmt(a Adapter, table string, columns []string, m *dataset.Matrix, start, end int) (string, []interface{}) {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES ", table, strings.Join(columns, ", ")))
	args := make([]interface{}, 0, (end-start)*len(columns))
	for i := start; i < end; i++ {
		if i > start {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for j := range columns {
			if j > 0 {
				buf.WriteString(", ")
			}
			if j < len(columns)-1 {
				args = append(args, m.Value(i, j))
			} else {
				args = append(args, m.TargetValue(i))
			}
			buf.WriteString(a.Placeholder(len(args)))
		}
		buf.WriteString(")")
	}
	return buf.String(), args
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
