package main

import (
	"fmt"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

/*
modelCmdConfig holds the flags shared by the commands that grow a tree
before doing something with it.
*/
type modelCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	classFeature  string
	prefix        string
}

type model struct {
	tree       tree.Tree
	label      string
	candidates []string
	features   []*feature.Feature
}

func (mcc *modelCmdConfig) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(mcc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, a PostgreSQL, MongoDB or redis URL, or weather for the built-in dataset, with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(mcc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features available on the input, in the order they are considered to split the data")
	cmd.PersistentFlags().StringVarP(&(mcc.classFeature), "class-feature", "c", "", "name of the feature the generated tree should predict (required unless set on the metadata or using the weather dataset)")
	cmd.PersistentFlags().StringVar(&(mcc.prefix), "prefix", "dataset", "key prefix of the dataset on redis inputs")
}

func (mcc *modelCmdConfig) metadata() (*yaml.Metadata, error) {
	if mcc.metadataInput == "" {
		return &yaml.Metadata{}, nil
	}
	mcc.Logf("Reading features from metadata at %s...", mcc.metadataInput)
	metadata, err := yaml.ReadMetadataFromFile(mcc.metadataInput)
	if err != nil {
		return nil, err
	}
	mcc.Logf("Features from metadata read")
	return metadata, nil
}

/*
grow reads the metadata and input dataset and returns the model grown from
them.
*/
func (mcc *modelCmdConfig) grow() (*model, error) {
	metadata, err := mcc.metadata()
	if err != nil {
		return nil, err
	}
	label := mcc.classFeature
	if label == "" {
		label = metadata.Label
	}
	if label == "" && mcc.dataInput == weatherSource {
		label = dataset.WeatherLabel
	}
	if label == "" {
		return nil, fmt.Errorf("required class-feature flag was not set and metadata sets no label")
	}
	d, err := mcc.readDataset(mcc.Context(), mcc.dataInput, mcc.prefix, feature.Names(metadata.Features))
	if err != nil {
		return nil, fmt.Errorf("reading training set: %v", err)
	}
	if len(metadata.Features) > 0 {
		err = feature.ValidateDataset(d, metadata.Features)
		if err != nil {
			return nil, fmt.Errorf("validating training set: %w", err)
		}
	}
	m := &model{label: label, features: metadata.Features}
	m.candidates = candidates(d, metadata.Features, label)
	b := &id3.Builder{Logger: mcc.rootCmdConfig}
	m.tree, err = b.Build(d, m.candidates, label)
	if err != nil {
		return nil, err
	}
	mcc.Logf("Done")
	return m, nil
}

/*
candidates returns the attributes to split the dataset on when predicting
label: the declared features in their order if any, otherwise every other
attribute of the dataset in alphabetical order.
*/
func candidates(d dataset.Dataset, features []*feature.Feature, label string) []string {
	names := feature.Names(features)
	if len(names) == 0 {
		names = d.Attributes()
	}
	result := make([]string, 0, len(names))
	for _, n := range names {
		if n != label {
			result = append(result, n)
		}
	}
	return result
}
