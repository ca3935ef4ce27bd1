package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

type growCmdConfig struct {
	modelCmdConfig
	format string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{modelCmdConfig: modelCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict a certain feature and print it.`,
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
			config.Logf("Tree has depth %d and %d leaves", tree.Depth(m.tree), tree.Leaves(m.tree))
			err = outputTree(config.format, m.tree)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.format), "format", "f", "text", "format to print the tree in, the following are valid: text, yaml")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.format != "text" && gcc.format != "yaml" {
		return fmt.Errorf("unknown format %s", gcc.format)
	}
	return nil
}

func outputTree(format string, t tree.Tree) error {
	if format == "text" {
		_, err := fmt.Print(t)
		return err
	}
	out, err := yaml.Marshal(tree.Nested(t))
	if err != nil {
		return fmt.Errorf("encoding tree as yaml: %v", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
