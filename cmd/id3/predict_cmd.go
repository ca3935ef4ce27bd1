package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/id3/dataset/inputsample"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	modelCmdConfig
	queries        []string
	lenient        bool
	undefinedValue string
}

type stdoutFeatureValueRequester string

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{modelCmdConfig: modelCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a value for a sample",
		Long:  `Grow a tree and use it to predict the class feature value for a sample given as a query or answering a reduced set of questions about its features`,
		Run: func(cmd *cobra.Command, args []string) {
			q, err := parseQuery(config.queries)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			m, err := config.grow()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			label, ok, err := config.predict(m, q)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if !ok {
				fmt.Println("unable to classify")
				os.Exit(4)
			}
			fmt.Printf("Predicted %s is %s\n", m.label, label)
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringArrayVarP(&(config.queries), "query", "q", nil, "value of the sample for a feature as feature=value, can be repeated (if none is given, values are asked for on STDIN)")
	cmd.PersistentFlags().BoolVar(&(config.lenient), "lenient", false, "match query feature names and values against the tree permissively")
	cmd.PersistentFlags().StringVarP(&(config.undefinedValue), "undefined-value", "u", "?", "value to input to define a sample's value for a feature as undefined")
	return cmd
}

func (pcc *predictCmdConfig) predict(m *model, q tree.Query) (string, bool, error) {
	if len(q) > 0 {
		pcc.Logf("Predicting %s for query on %v", m.label, q.Attributes())
		if pcc.lenient {
			label, ok := tree.PredictLenient(m.tree, q)
			return label, ok, nil
		}
		label, ok := tree.Predict(m.tree, q)
		return label, ok, nil
	}
	sample := inputsample.New(os.Stdin, m.features, stdoutFeatureValueRequester(pcc.undefinedValue), pcc.undefinedValue)
	return tree.PredictSample(pcc.Context(), m.tree, sample)
}

/*
parseQuery takes a slice of feature=value strings and returns the query they
define or an error if any is malformed or sets a feature twice.
*/
func parseQuery(terms []string) (tree.Query, error) {
	q := make(tree.Query, len(terms))
	for _, t := range terms {
		i := strings.Index(t, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid query %q: expected feature=value", t)
		}
		a, v := t[:i], t[i+1:]
		if _, ok := q[a]; ok {
			return nil, fmt.Errorf("invalid query %q: feature %s was already given a value", t, a)
		}
		q[a] = v
	}
	return q, nil
}

func (sfvr stdoutFeatureValueRequester) RequestValueFor(f *feature.Feature) error {
	if len(f.AvailableValues()) == 0 {
		fmt.Printf("Please provide the sample's %s:\n(or %s if undefined)\n", f.Name(), string(sfvr))
		return nil
	}
	fmt.Printf("Please provide the sample's %s:\n(valid values are %v or %s if undefined)\n", f.Name(), f.AvailableValues(), string(sfvr))
	return nil
}

func (sfvr stdoutFeatureValueRequester) RejectValueFor(f *feature.Feature, value string) error {
	fmt.Printf("%v is not a valid value for the sample's %s. Please provide one of %v or %s if undefined.\n", value, f.Name(), f.AvailableValues(), string(sfvr))
	return nil
}
