package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
)

const (
	/*
		MaxValueInsertionsPerStatement is the maximum number of
		distinct values added with a single insert command. Trying
		to add more results in making more insert commands.
	*/
	MaxValueInsertionsPerStatement = 10
	/*
		MaxSampleInsertionsPerStatement is the maximum number of
		samples added with a single insert command. Trying to add
		more results in making more insert commands.
	*/
	MaxSampleInsertionsPerStatement = 10

	idColumn = "id"
)

/*
Adapter is an interface providing what differs between the database engines
a dataset can be stored on.
*/
type Adapter interface {
	// DB returns the database handle the adapter works on
	DB() *sql.DB
	// ColumnName takes an attribute name and returns the
	// name of the column that stores it or an error if the
	// attribute cannot be stored on a column.
	ColumnName(attribute string) (string, error)
	// Placeholder takes the 1-based position of a parameter
	// in a statement and returns the placeholder for it.
	Placeholder(n int) string
	// PrimaryKey returns the definition of an autoincremented
	// integer primary key column.
	PrimaryKey() string
	// Close releases the database handle
	Close() error
}

/*
CheckColumnName takes an attribute name and returns it as a column name, or
an error if the name is reserved or cannot be quoted as an SQL identifier.
*/
func CheckColumnName(attribute string) (string, error) {
	if attribute == "" {
		return "", fmt.Errorf("empty attribute name cannot be used as column name")
	}
	if attribute == idColumn {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as attribute name`, attribute)
	}
	if strings.ContainsAny(attribute, `"`) {
		return "", fmt.Errorf(`attribute name '%s' contains invalid character '"'`, attribute)
	}
	return attribute, nil
}

/*
Write takes a context, an Adapter, a dataset and a slice of attribute names
and stores the columns of the dataset for those attributes on the adapter's
database, creating the tables if they do not exist. It returns the number of
samples stored and an error if the dataset lacks any of the attributes or
something went wrong with the database.
*/
func Write(ctx context.Context, a Adapter, d dataset.Dataset, attributes []string) (int, error) {
	if len(attributes) == 0 {
		return 0, fmt.Errorf("no attributes to store")
	}
	err := d.Validate(attributes...)
	if err != nil {
		return 0, err
	}
	columns := make([]string, 0, len(attributes))
	for _, attr := range attributes {
		c, err := a.ColumnName(attr)
		if err != nil {
			return 0, err
		}
		columns = append(columns, c)
	}
	err = createTables(ctx, a, columns)
	if err != nil {
		return 0, err
	}
	valueIDs, err := storeValues(ctx, a, d, attributes)
	if err != nil {
		return 0, err
	}
	rows := make([][]interface{}, d.Len())
	for i := range rows {
		row := make([]interface{}, 0, len(attributes))
		for _, attr := range attributes {
			row = append(row, valueIDs[d[attr][i]])
		}
		rows[i] = row
	}
	var stmtStart bytes.Buffer
	stmtStart.WriteString("INSERT INTO samples (")
	for i, c := range columns {
		if i > 0 {
			stmtStart.WriteString(", ")
		}
		stmtStart.WriteString(fmt.Sprintf(`"%s"`, c))
	}
	stmtStart.WriteString(") VALUES ")
	return insert(ctx, a, stmtStart.String(), rows, MaxSampleInsertionsPerStatement)
}

/*
Read takes a context and an Adapter and returns the dataset stored on the
adapter's database, with a column for each column of the samples table, or
an error. Rows keep the order in which they were stored.
*/
func Read(ctx context.Context, a Adapter) (dataset.Dataset, error) {
	values, err := listValues(ctx, a)
	if err != nil {
		return nil, err
	}
	rows, err := a.DB().QueryContext(ctx, fmt.Sprintf(`SELECT * FROM samples ORDER BY "%s"`, idColumn))
	if err != nil {
		return nil, fmt.Errorf("querying samples: %v", err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("listing sample columns: %v", err)
	}
	d := make(dataset.Dataset, len(columns))
	for _, c := range columns {
		if c != idColumn {
			d[c] = []string{}
		}
	}
	ids := make([]sql.NullInt64, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range ids {
		dest[i] = &ids[i]
	}
	for n := 1; rows.Next(); n++ {
		err = rows.Scan(dest...)
		if err != nil {
			return nil, fmt.Errorf("scanning sample %d: %v", n, err)
		}
		for i, c := range columns {
			if c == idColumn {
				continue
			}
			if !ids[i].Valid {
				return nil, fmt.Errorf("sample %d has no value for %s", n, c)
			}
			v, ok := values[ids[i].Int64]
			if !ok {
				return nil, fmt.Errorf("sample %d references unknown value %d for %s", n, ids[i].Int64, c)
			}
			d[c] = append(d[c], v)
		}
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterating on samples: %v", err)
	}
	return d, nil
}

func createTables(ctx context.Context, a Adapter, columns []string) error {
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS discreteValues (
		"%s" %s,
		value TEXT UNIQUE NOT NULL)`, idColumn, a.PrimaryKey())
	_, err := a.DB().ExecContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("ensuring discreteValues table exists: %v", err)
	}
	var buf bytes.Buffer
	buf.WriteString("CREATE TABLE IF NOT EXISTS samples(")
	for _, c := range columns {
		buf.WriteString(fmt.Sprintf(`"%s" INTEGER NULL REFERENCES discreteValues(%s), `, c, idColumn))
	}
	buf.WriteString(fmt.Sprintf(`"%s" %s)`, idColumn, a.PrimaryKey()))
	_, err = a.DB().ExecContext(ctx, buf.String())
	if err != nil {
		return fmt.Errorf("ensuring samples table exists: %v", err)
	}
	return nil
}

func storeValues(ctx context.Context, a Adapter, d dataset.Dataset, attributes []string) (map[string]int64, error) {
	stored, err := listValues(ctx, a)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(stored))
	for id, v := range stored {
		ids[v] = id
	}
	var missing [][]interface{}
	for _, attr := range attributes {
		for _, v := range d.Values(attr) {
			if _, ok := ids[v]; !ok {
				ids[v] = 0
				missing = append(missing, []interface{}{v})
			}
		}
	}
	if len(missing) == 0 {
		return ids, nil
	}
	_, err = insert(ctx, a, "INSERT INTO discreteValues (value) VALUES ", missing, MaxValueInsertionsPerStatement)
	if err != nil {
		return nil, err
	}
	stored, err = listValues(ctx, a)
	if err != nil {
		return nil, err
	}
	for id, v := range stored {
		ids[v] = id
	}
	return ids, nil
}

func listValues(ctx context.Context, a Adapter) (map[int64]string, error) {
	rows, err := a.DB().QueryContext(ctx, fmt.Sprintf(`SELECT "%s", value FROM discreteValues`, idColumn))
	if err != nil {
		return nil, fmt.Errorf("listing values: %v", err)
	}
	defer rows.Close()
	result := make(map[int64]string)
	for rows.Next() {
		var id int64
		var value string
		err = rows.Scan(&id, &value)
		if err != nil {
			return nil, fmt.Errorf("listing values: %v", err)
		}
		result[id] = value
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("listing values: %v", err)
	}
	return result, nil
}

/*
insert takes a statement start such as "INSERT INTO t (a, b) VALUES " and
runs it for all the given rows, at most chunkSize rows per statement. It
returns the number of rows inserted.
*/
func insert(ctx context.Context, a Adapter, stmtStart string, rows [][]interface{}, chunkSize int) (int, error) {
	inserted := 0
	for inserted < len(rows) {
		end := inserted + chunkSize
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[inserted:end]
		var buf bytes.Buffer
		buf.WriteString(stmtStart)
		args := make([]interface{}, 0, len(chunk)*len(chunk[0]))
		for i, row := range chunk {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString("(")
			for j, v := range row {
				if j > 0 {
					buf.WriteString(", ")
				}
				args = append(args, v)
				buf.WriteString(a.Placeholder(len(args)))
			}
			buf.WriteString(")")
		}
		_, err := a.DB().ExecContext(ctx, buf.String(), args...)
		if err != nil {
			return inserted, fmt.Errorf("inserting rows %d to %d: %v", inserted+1, end, err)
		}
		inserted = end
	}
	return inserted, nil
}
