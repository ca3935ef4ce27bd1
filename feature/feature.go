package feature

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
)

/*
Feature represents a categorical property that can be observed. When it
declares a list of available values it can only take a value among them,
otherwise any value is accepted.
*/
type Feature struct {
	name            string
	availableValues []string
}

/*
New takes a name string and a slice of available value strings and returns a
feature with the given name and available values. An empty slice of
available values makes the feature accept any value.
*/
func New(name string, availableValues []string) *Feature {
	return &Feature{name, availableValues}
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (f *Feature) AvailableValues() []string {
	return f.availableValues
}

/*
Valid receives a value and returns a boolean and an error. When the feature
accepts the value, the method returns true and nil. Otherwise it returns false
and an error describing the reason.
*/
func (f *Feature) Valid(value string) (bool, error) {
	if len(f.availableValues) == 0 {
		return true, nil
	}
	for _, av := range f.availableValues {
		if av == value {
			return true, nil
		}
	}
	return false, fmt.Errorf("feature %s got unknown value %s", f.Name(), value)
}

func (f *Feature) String() string {
	return f.name
}

/*
Names takes a slice of features and returns a slice with their names in the
same order.
*/
func Names(features []*Feature) []string {
	result := make([]string, 0, len(features))
	for _, f := range features {
		result = append(result, f.Name())
	}
	return result
}

/*
Find takes a slice of features and a name and returns the feature with that
name, or nil if there is none.
*/
func Find(features []*Feature, name string) *Feature {
	for _, f := range features {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

/*
ValidateDataset takes a dataset and a slice of features and returns an error
if the dataset lacks a column for any of the features, its columns differ in
length or one of its values is not valid for the corresponding feature.
*/
func ValidateDataset(d dataset.Dataset, features []*Feature) error {
	err := d.Validate(Names(features)...)
	if err != nil {
		return err
	}
	for _, f := range features {
		for i, v := range d[f.Name()] {
			if ok, err := f.Valid(v); !ok {
				return fmt.Errorf("row %d: %v", i+1, err)
			}
		}
	}
	return nil
}
