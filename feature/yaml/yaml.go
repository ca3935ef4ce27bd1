/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/id3/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata holds the features read from a YAML document, in the order they
are declared, and the name of the label feature if the document sets one.
*/
type Metadata struct {
	Features []*feature.Feature
	Label    string
}

/*
ReadMetadata takes a slice of bytes with a feature specification in YML and
returns the metadata parsed from it or an error.
The YML is expected to be an object containing a features property. The value
for this should be an object with a property for each feature with its name
and a list of valid values (or an empty value to accept any value). The
object may also have a label property with the name of the feature to predict.

Features are returned in the order they are declared, which is the order in
which they will be considered as candidates to grow a tree.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	order := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &order)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	metadata := struct {
		Features map[string][]string
		Label    string
	}{}
	err = yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: invalid feature declaration: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	result := &Metadata{Label: metadata.Label}
	for _, item := range order.Features {
		fn, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("invalid feature name %v of type %T", item.Key, item.Key)
		}
		values, ok := metadata.Features[fn]
		if !ok {
			return nil, fmt.Errorf("invalid feature name %q", fn)
		}
		result.Features = append(result.Features, feature.New(fn, values))
	}
	if result.Label != "" && feature.Find(result.Features, result.Label) == nil {
		return nil, fmt.Errorf("label %q is not a declared feature", result.Label)
	}
	return result, nil
}

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it with ReadMetadata or an error.
*/
func ReadFeatures(md []byte) ([]*feature.Feature, error) {
	metadata, err := ReadMetadata(md)
	if err != nil {
		return nil, err
	}
	return metadata.Features, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return metadata, err
}

/*
ReadFeaturesFromFile takes a filepath string and returns the features of the
metadata read from it with ReadMetadataFromFile, or an error.
*/
func ReadFeaturesFromFile(filepath string) ([]*feature.Feature, error) {
	metadata, err := ReadMetadataFromFile(filepath)
	if err != nil {
		return nil, err
	}
	return metadata.Features, nil
}
