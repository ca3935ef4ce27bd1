package sqldataset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/dataset/sqldataset/pgadapter"
	"github.com/pbanos/id3/dataset/sqldataset/sqlite3adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherColumns() []string {
	return append(append([]string{}, dataset.WeatherAttributes...), dataset.WeatherLabel)
}

func TestWriteAndRead(t *testing.T) {
	ctx := context.Background()
	a, err := sqlite3adapter.New(":memory:")
	require.NoError(t, err)
	defer a.Close()

	n, err := sqldataset.Write(ctx, a, dataset.Weather(), weatherColumns())
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	d, err := sqldataset.Read(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, dataset.Weather(), d)

	n, err = sqldataset.Write(ctx, a, dataset.Weather(), weatherColumns())
	require.NoError(t, err)
	assert.Equal(t, 14, n)
	d, err = sqldataset.Read(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 28, d.Len())
	assert.Equal(t, dataset.Weather().Row(13), d.Row(27))

	var values int
	err = a.DB().QueryRow("SELECT COUNT(*) FROM discreteValues").Scan(&values)
	require.NoError(t, err)
	assert.Equal(t, 12, values)
}

func TestWriteErrors(t *testing.T) {
	ctx := context.Background()
	a, err := sqlite3adapter.New(":memory:")
	require.NoError(t, err)
	defer a.Close()

	_, err = sqldataset.Write(ctx, a, dataset.Weather(), []string{"wind"})
	assert.True(t, errors.Is(err, dataset.ErrMissingAttribute))

	_, err = sqldataset.Write(ctx, a, dataset.Weather(), nil)
	assert.Error(t, err)

	d := dataset.Dataset{"id": {"1"}}
	_, err = sqldataset.Write(ctx, a, d, []string{"id"})
	assert.Error(t, err)
}

func TestReadMissingTables(t *testing.T) {
	a, err := sqlite3adapter.New(":memory:")
	require.NoError(t, err)
	defer a.Close()
	_, err = sqldataset.Read(context.Background(), a)
	assert.Error(t, err)
}

func TestCheckColumnName(t *testing.T) {
	c, err := sqldataset.CheckColumnName("outlook")
	assert.NoError(t, err)
	assert.Equal(t, "outlook", c)
	for _, name := range []string{"", "id", `out"look`} {
		_, err = sqldataset.CheckColumnName(name)
		assert.Error(t, err, name)
	}
}

func TestPGAdapterDialect(t *testing.T) {
	a, err := pgadapter.New("postgres://localhost/id3?sslmode=disable")
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, "$3", a.Placeholder(3))
	assert.Equal(t, "SERIAL PRIMARY KEY", a.PrimaryKey())
	_, err = a.ColumnName(string(make([]byte, 64)))
	assert.Error(t, err)
}
