package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	modelCmdConfig
	testInput  string
	testPrefix string
	lenient    bool
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{modelCmdConfig: modelCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the predictive power of a tree",
		Long:  `Grow a tree from a set of data and test how well it predicts the class feature on a test set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			m, err := config.grow()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			testSet, err := config.readDataset(config.Context(), config.testInput, config.testPrefix, feature.Names(m.features))
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading test set: %v\n", err)
				os.Exit(3)
			}
			config.Logf("Testing tree against test set with %d samples...", testSet.Len())
			successRate, errorCount, err := tree.Test(m.tree, testSet, m.label, config.lenient)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			fmt.Printf("%f success rate, failed to make a prediction for %d samples\n", successRate, errorCount)
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test-input", "t", "", "path to a CSV (.csv) or SQLite3 (.db) file, a PostgreSQL, MongoDB or redis URL, or weather for the built-in dataset, with data to test the tree against (required)")
	cmd.PersistentFlags().StringVar(&(config.testPrefix), "test-prefix", "testset", "key prefix of the test set on redis test inputs")
	cmd.PersistentFlags().BoolVar(&(config.lenient), "lenient", false, "match test samples against the tree permissively")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.testInput == "" {
		return fmt.Errorf("required test-input flag was not set")
	}
	return nil
}
