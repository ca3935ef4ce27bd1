package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/feature"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*setCmdConfig
	setInput         string
	setOutput        string
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(setConfig *setCmdConfig) *cobra.Command {
	config := &splitCmdConfig{setCmdConfig: setConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a CSV set into an output set and a split set, for instance to obtain a training set and a test set`,
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
			attributes := feature.Names(features)

			outputFile := os.Stdout
			if config.setOutput != "" {
				config.Logf("Creating %s to dump output set...", config.setOutput)
				outputFile, err = os.Create(config.setOutput)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(3)
				}
				defer outputFile.Close()
			} else {
				config.Logf("Using STDOUT to dump output set...")
			}
			output, err := csv.NewWriter(outputFile, attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}

			config.Logf("Creating %s to dump split set...", config.splitOutput)
			splitOutputFile, err := os.Create(config.splitOutput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			defer splitOutputFile.Close()
			splitOutput, err := csv.NewWriter(splitOutputFile, attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}

			if config.seed == 0 {
				config.seed = time.Now().UnixNano()
			}
			config.Logf("Splitting with seed %d...", config.seed)
			splitter := newSplitter(rand.New(rand.NewSource(config.seed)), config.splitProbability, output, splitOutput)
			err = csv.ReadBySampleFromFilePath(config.setInput, func(i int, row map[string]string) (bool, error) {
				for _, f := range features {
					if ok, err := f.Valid(row[f.Name()]); !ok {
						return false, err
					}
				}
				return splitter(i, row)
			})
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}
			config.Logf("Flushing output set...")
			err = output.Flush()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
			config.Logf("Flushing split set...")
			err = splitOutput.Flush()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(9)
			}
			config.Logf("Done")
			config.Logf("Input set with %d samples was split into sets with %d and %d samples", output.Count()+splitOutput.Count(), output.Count(), splitOutput.Count())
		},
	}
	cmd.Flags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV file with the set to split (defaults to STDIN)")
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to a file to dump the output set (defaults to STDOUT)")
	cmd.Flags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the set will be assigned to the split set")
	cmd.Flags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a file to dump the output of the split set (required)")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of samples, to make splits reproducible (defaults to a time based seed)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return nil
}

/*
newSplitter returns a function that writes each row it is given on split
with the given percent probability, or on output otherwise.
*/
func newSplitter(randomizer *rand.Rand, probability int, output, split csv.Writer) func(int, map[string]string) (bool, error) {
	return func(_ int, row map[string]string) (bool, error) {
		var err error
		if (100 * randomizer.Float32()) >= float32(probability) {
			err = output.Write(row)
		} else {
			err = split.Write(row)
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
}
