package csv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherCSV = `outlook,temp,humidity,windy,play
overcast,hot,high,weak,yes
overcast,cool,normal,strong,yes
overcast,mild,high,strong,yes
overcast,hot,normal,weak,yes
rainy,mild,high,weak,yes
rainy,cool,normal,weak,yes
rainy,cool,normal,strong,no
rainy,mild,normal,weak,yes
rainy,mild,high,strong,no
sunny,hot,high,weak,no
sunny,hot,high,strong,no
sunny,mild,high,weak,no
sunny,cool,normal,weak,yes
sunny,mild,normal,strong,yes
`

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader(weatherCSV))
	require.NoError(t, err)
	assert.Equal(t, dataset.Weather(), d)
}

func TestReadHeaderOnly(t *testing.T) {
	d, err := Read(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, dataset.Dataset{"a": {}, "b": {}}, d)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"duplicated attribute", "a,a\n1,2\n"},
		{"empty attribute", "a,\n1,2\n"},
		{"short row", "a,b\n1\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(test.input))
			assert.Error(t, err)
		})
	}
}

func TestReadBySample(t *testing.T) {
	var rows []map[string]string
	err := ReadBySample(strings.NewReader(weatherCSV), func(i int, row map[string]string) (bool, error) {
		rows = append(rows, row)
		return i < 2, nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, dataset.Weather().Row(2), rows[2])

	failure := errors.New("stop")
	err = ReadBySample(strings.NewReader(weatherCSV), func(int, map[string]string) (bool, error) {
		return false, failure
	})
	assert.True(t, errors.Is(err, failure) || strings.Contains(err.Error(), "stop"))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, dataset.Weather(), []string{"outlook", "temp", "humidity", "windy", "play"})
	require.NoError(t, err)
	assert.Equal(t, weatherCSV, buf.String())

	err = Write(&buf, dataset.Weather(), []string{"wind"})
	assert.True(t, errors.Is(err, dataset.ErrMissingAttribute))
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, []string{"play", "outlook"})
	require.NoError(t, err)
	require.NoError(t, w.Write(map[string]string{"outlook": "sunny", "play": "no", "temp": "hot"}))
	assert.Error(t, w.Write(map[string]string{"outlook": "sunny"}))
	require.NoError(t, w.Flush())
	assert.Equal(t, 1, w.Count())
	assert.Equal(t, "play,outlook\nno,sunny\n", buf.String())
}

func TestReadFromFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.csv")
	require.NoError(t, os.WriteFile(path, []byte(weatherCSV), 0600))
	d, err := ReadFromFilePath(path)
	require.NoError(t, err)
	assert.Equal(t, 14, d.Len())

	var count int
	err = ReadBySampleFromFilePath(path, func(int, map[string]string) (bool, error) {
		count++
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 14, count)

	_, err = ReadFromFilePath(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
