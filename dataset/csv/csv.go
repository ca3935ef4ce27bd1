/*
Package csv provides functions to read datasets from and write them to CSV
streams.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/dataset"
)

/*
Writer is an interface for a CSV stream to which rows of a dataset
can be written to.
*/
type Writer interface {
	// Write takes a row as a map from attribute names to values
	// and writes its values for the writer's attributes. It
	// returns an error if the row lacks one of them or it
	// cannot be written.
	Write(row map[string]string) error
	// Count returns the total number of rows written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count      int
	attributes []string
	w          *csv.Writer
}

/*
Read takes an io.Reader for a CSV stream and returns the dataset parsed from
it or an error.

The header or first row of the CSV content is expected to consist of the
names of the attributes, and the rest of the rows of their values.
*/
func Read(reader io.Reader) (dataset.Dataset, error) {
	var d dataset.Dataset
	err := readBySample(reader, func(header []string) {
		d = make(dataset.Dataset, len(header))
		for _, a := range header {
			d[a] = []string{}
		}
	}, func(_ int, row map[string]string) (bool, error) {
		for a, v := range row {
			d[a] = append(d[a], v)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

/*
ReadBySample takes an io.Reader for a CSV stream and a lambda function on an
integer and a row, given as a map from attribute names to values, that
returns a boolean value. It parses the rows from the reader and for each it
calls the lambda function with its index and the row as parameters. If the
lambda function returns true, it will continue processing the next row,
otherwise it will stop. An error is returned if something goes wrong when
reading or parsing the stream, or if the lambda function returns one.
*/
func ReadBySample(reader io.Reader, lambda func(int, map[string]string) (bool, error)) error {
	return readBySample(reader, func([]string) {}, lambda)
}

func readBySample(reader io.Reader, onHeader func([]string), lambda func(int, map[string]string) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	err = checkHeader(header)
	if err != nil {
		return err
	}
	onHeader(header)
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		row := make(map[string]string, len(header))
		for i, a := range header {
			row[a] = record[i]
		}
		ok, err := lambda(l-2, row)
		if err != nil {
			return fmt.Errorf("processing line %d: %v", l, err)
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadFromFilePath takes a filepath string, opens the file to which it points
(or uses os.Stdin if it is "") and uses Read to return the dataset in it or
an error.
*/
func ReadFromFilePath(filepath string) (dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	d, err := Read(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return d, err
}

/*
ReadBySampleFromFilePath takes a filepath string and a lambda function and
opens the file to which the filepath points (or uses os.Stdin if it is "")
to process it with ReadBySample.
*/
func ReadBySampleFromFilePath(filepath string, lambda func(int, map[string]string) (bool, error)) error {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	return ReadBySample(f, lambda)
}

/*
NewWriter takes an io.Writer and a slice of attribute names and returns a
Writer that will write rows on the io.Writer in CSV format, after a header
with the attribute names.
*/
func NewWriter(writer io.Writer, attributes []string) (Writer, error) {
	w := csv.NewWriter(writer)
	err := w.Write(attributes)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{attributes: attributes, w: w}, nil
}

/*
Write takes a writer, a dataset and a slice of attribute names and dumps the
dataset to the writer in CSV format, with only the given attributes as
columns. It returns an error if the dataset lacks any of the attributes or
something went wrong when writing to the writer.
*/
func Write(writer io.Writer, d dataset.Dataset, attributes []string) error {
	err := d.Validate(attributes...)
	if err != nil {
		return err
	}
	cw, err := NewWriter(writer, attributes)
	if err != nil {
		return err
	}
	for i := 0; i < d.Len(); i++ {
		err = cw.Write(d.Row(i))
		if err != nil {
			return err
		}
	}
	return cw.Flush()
}

func (cw *csvWriter) Write(row map[string]string) error {
	record := make([]string, len(cw.attributes))
	for i, a := range cw.attributes {
		v, ok := row[a]
		if !ok {
			return fmt.Errorf("writing row %d: no value for attribute %s", cw.count+1, a)
		}
		record[i] = v
	}
	err := cw.w.Write(record)
	if err != nil {
		return err
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

func checkHeader(header []string) error {
	seen := make(map[string]bool, len(header))
	for _, a := range header {
		if a == "" {
			return fmt.Errorf("parsing header: empty attribute name")
		}
		if seen[a] {
			return fmt.Errorf("parsing header: duplicated attribute %s", a)
		}
		seen[a] = true
	}
	return nil
}
