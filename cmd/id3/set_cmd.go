package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput      string
	metadataInput string
	setOutput     string
	inputPrefix   string
	outputPrefix  string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of data",
		Long:  `Copy a set of data from an input to an output, which may be of different kinds`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			features, err := config.features()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			d, err := config.readDataset(config.Context(), config.setInput, config.inputPrefix, feature.Names(features))
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading input set: %v\n", err)
				os.Exit(3)
			}
			attributes := feature.Names(features)
			if len(attributes) == 0 {
				attributes = d.Attributes()
			} else {
				err = feature.ValidateDataset(d, features)
				if err != nil {
					fmt.Fprintf(os.Stderr, "validating input set: %v\n", err)
					os.Exit(4)
				}
			}
			count, err := config.writeDataset(config.Context(), config.setOutput, config.outputPrefix, d, attributes)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing output set: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			config.Logf("Copied %d samples with %d features", count, len(attributes))
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features available on the input set (required for split)")
	cmd.Flags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, a PostgreSQL, MongoDB or redis URL, or weather for the built-in dataset (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or redis URL to dump the output set (defaults to STDOUT in CSV)")
	cmd.Flags().StringVar(&(config.inputPrefix), "input-prefix", "dataset", "key prefix of the dataset on redis inputs")
	cmd.Flags().StringVar(&(config.outputPrefix), "output-prefix", "dataset", "key prefix of the dataset on redis outputs")
	cmd.AddCommand(splitCmd(config))
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.setInput == scc.setOutput && scc.setInput != "" && scc.inputPrefix == scc.outputPrefix {
		return fmt.Errorf("output must differ from input")
	}
	return nil
}

func (scc *setCmdConfig) features() ([]*feature.Feature, error) {
	if scc.metadataInput == "" {
		return nil, nil
	}
	scc.Logf("Reading features from metadata at %s...", scc.metadataInput)
	features, err := yaml.ReadFeaturesFromFile(scc.metadataInput)
	if err != nil {
		return nil, err
	}
	scc.Logf("Features from metadata read")
	return features, nil
}
