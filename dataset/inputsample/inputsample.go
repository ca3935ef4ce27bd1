/*
Package inputsample provides an implementation of tree.Sample whose values
are read from an io.Reader as they are needed.
*/
package inputsample

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

type readSample struct {
	obtainedValues        map[string]*string
	undefinedValue        string
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	features              []*feature.Feature
}

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(*feature.Feature) error
	RejectValueFor(*feature.Feature, string) error
}

/*
New takes an io.Reader, a slice of features, a FeatureValueRequester and an
undefinedValue coding string and returns a tree.Sample.

The returned Sample ValueFor method reads attribute values first requesting
them with the given FeatureValueRequester and then parsing them from the
reader, one per line. The undefinedValue string on a line of its own is
interpreted as the sample having no value for the attribute.

Lines are read until one with a valid value for the feature with the
attribute's name is found, rejecting the rest with the
FeatureValueRequester's RejectValueFor method. Attributes without a feature
in the given slice accept any value.

Values are only requested once: later calls for the same attribute return
the value obtained the first time.
*/
func New(r io.Reader, features []*feature.Feature, featureValueRequester FeatureValueRequester, undefinedValue string) tree.Sample {
	scanner := bufio.NewScanner(r)
	return &readSample{make(map[string]*string), undefinedValue, scanner, featureValueRequester, features}
}

func (rs *readSample) ValueFor(ctx context.Context, attribute string) (string, bool, error) {
	if value, ok := rs.obtainedValues[attribute]; ok {
		if value == nil {
			return "", false, nil
		}
		return *value, true, nil
	}
	f := feature.Find(rs.features, attribute)
	if f == nil {
		f = feature.New(attribute, nil)
	}
	err := rs.featureValueRequester.RequestValueFor(f)
	if err != nil {
		return "", false, err
	}
	for rs.scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return "", false, err
		}
		line := rs.scanner.Text()
		if line == rs.undefinedValue {
			rs.obtainedValues[attribute] = nil
			return "", false, nil
		}
		if ok, _ := f.Valid(line); ok {
			rs.obtainedValues[attribute] = &line
			return line, true, nil
		}
		err = rs.featureValueRequester.RejectValueFor(f, line)
		if err != nil {
			return "", false, err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return "", false, err
	}
	return "", false, fmt.Errorf("EOF when requesting value for %s", attribute)
}
