/*
Package dataset provides the columnar representation of the labeled data
trees are grown from.
*/
package dataset

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

/*
Dataset represents a table of categorical values as a mapping from attribute
name to its column. All columns are expected to have the same length, and
index i on every column refers to the same row or sample.

A Dataset is never modified by the methods below: subsetting it with Filter
returns a new Dataset.
*/
type Dataset map[string][]string

/*
New takes a slice of attribute names and a slice of rows, each with a
value for every attribute in the same order, and returns a Dataset with
them or an error if a row does not have as many values as attributes.
*/
func New(attributes []string, rows [][]string) (Dataset, error) {
	d := make(Dataset, len(attributes))
	for _, a := range attributes {
		d[a] = make([]string, 0, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(attributes) {
			return nil, fmt.Errorf("row %d has %d values, expected %d: %w", i, len(row), len(attributes), ErrColumnLength)
		}
		for j, a := range attributes {
			d[a] = append(d[a], row[j])
		}
	}
	return d, nil
}

/*
Len returns the number of rows in the dataset. It does not check that all
columns have the same length, use Validate for that.
*/
func (d Dataset) Len() int {
	for _, column := range d {
		return len(column)
	}
	return 0
}

/*
Validate takes a list of attribute names and returns an error if any of them
is not a column of the dataset or if the columns of the dataset do not all
have the same length. Errors wrap ErrMissingAttribute or ErrColumnLength.
*/
func (d Dataset) Validate(attributes ...string) error {
	for _, a := range attributes {
		if _, ok := d[a]; !ok {
			return fmt.Errorf("%q: %w", a, ErrMissingAttribute)
		}
	}
	length := -1
	for _, a := range d.Attributes() {
		if length < 0 {
			length = len(d[a])
			continue
		}
		if len(d[a]) != length {
			return fmt.Errorf("column %q has %d values, expected %d: %w", a, len(d[a]), length, ErrColumnLength)
		}
	}
	return nil
}

// Attributes returns the sorted names of the columns in the dataset.
func (d Dataset) Attributes() []string {
	result := make([]string, 0, len(d))
	for a := range d {
		result = append(result, a)
	}
	sort.Strings(result)
	return result
}

/*
Values takes an attribute name and returns the distinct values found on its
column, in the order they first appear.
*/
func (d Dataset) Values(attribute string) []string {
	set := linkedhashset.New()
	for _, v := range d[attribute] {
		set.Add(v)
	}
	result := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		result = append(result, v.(string))
	}
	return result
}

/*
Count takes an attribute name and returns a map with the number of times
each value appears on its column.
*/
func (d Dataset) Count(attribute string) map[string]int {
	result := make(map[string]int)
	for _, v := range d[attribute] {
		result[v]++
	}
	return result
}

/*
Majority takes an attribute name and returns the most frequent value on its
column. When several values are equally frequent, the one appearing first
wins. It returns an empty string for an empty column.
*/
func (d Dataset) Majority(attribute string) string {
	counts := d.Count(attribute)
	var result string
	var best int
	for _, v := range d.Values(attribute) {
		if counts[v] > best {
			result = v
			best = counts[v]
		}
	}
	return result
}

/*
Filter takes an attribute name and a value and returns a new dataset with the
same attributes holding only the rows whose value for the attribute equals the
given one. Row order is preserved. When no row matches, every column of the
result is an empty slice.
*/
func (d Dataset) Filter(attribute, value string) Dataset {
	result := make(Dataset, len(d))
	for a := range d {
		result[a] = []string{}
	}
	for i, v := range d[attribute] {
		if v != value {
			continue
		}
		for a, column := range d {
			result[a] = append(result[a], column[i])
		}
	}
	return result
}

/*
Select takes a list of attribute names and returns a new dataset sharing the
columns of the receiver for those attributes only. It returns an error
wrapping ErrMissingAttribute if any of them is not present.
*/
func (d Dataset) Select(attributes ...string) (Dataset, error) {
	result := make(Dataset, len(attributes))
	for _, a := range attributes {
		column, ok := d[a]
		if !ok {
			return nil, fmt.Errorf("%q: %w", a, ErrMissingAttribute)
		}
		result[a] = column
	}
	return result, nil
}

// Row returns the values of the i-th row indexed by attribute name.
func (d Dataset) Row(i int) map[string]string {
	row := make(map[string]string, len(d))
	for a, column := range d {
		if i < len(column) {
			row[a] = column[i]
		}
	}
	return row
}

func (d Dataset) String() string {
	return fmt.Sprintf("[%d rows x %d attributes]", d.Len(), len(d))
}
