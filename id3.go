/*
Package id3 grows decision trees from categorical data with the ID3
algorithm: at every node the attribute with the highest information gain on
the label is chosen to split the data, until the data reaching a node all
share the same label.
*/
package id3

import (
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
)

// ErrTargetIsCandidate is returned when the attribute to predict is also
// among the attributes available to split the data.
const ErrTargetIsCandidate = dataset.InputError("target attribute cannot be used to split")

// Logger is the interface used by a Builder to report how a tree is grown.
type Logger interface {
	Logf(format string, a ...interface{})
}

/*
Builder grows trees. Its zero value is ready to use and silent; setting a
Logger makes it report every decision taken while growing.
*/
type Builder struct {
	Logger Logger
}

/*
Build takes a dataset, a slice of candidate attributes and a target attribute
and returns a tree grown with a zero Builder. See Builder.Build.
*/
func Build(d dataset.Dataset, attributes []string, target string) (tree.Tree, error) {
	return (&Builder{}).Build(d, attributes, target)
}

/*
Build takes a dataset, a slice of candidate attributes and a target attribute
and returns a tree that predicts the target from the candidates according to
the data, or an error wrapping a dataset.InputError if the target or a
candidate is not in the dataset, the target is a candidate, the dataset has
no rows or its columns differ in length.

The order of the candidates decides between attributes with the same
information gain: the first one wins. Nodes whose data cannot be split with
a positive information gain, either because no candidate helps or because no
candidates remain, become leaves with the most frequent label in their data.
*/
func (b *Builder) Build(d dataset.Dataset, attributes []string, target string) (tree.Tree, error) {
	err := d.Validate(append([]string{target}, attributes...)...)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	for _, a := range attributes {
		if a == target {
			return nil, fmt.Errorf("building tree: %q: %w", a, ErrTargetIsCandidate)
		}
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf("building tree: %w", dataset.ErrEmptyDataset)
	}
	b.logf("Growing tree to predict %s from %d samples with %d candidate attributes", target, d.Len(), len(attributes))
	return b.build(d, attributes, target, nil), nil
}

func (b *Builder) build(d dataset.Dataset, attributes []string, target string, path []tree.Step) tree.Tree {
	labels := d[target]
	if Entropy(labels) == 0 {
		b.logf("%s: leaf %s (%d samples)", pathString(path), labels[0], len(labels))
		return tree.NewLeaf(labels[0])
	}
	attribute, informationGain, ok := bestAttribute(d, attributes, target)
	if !ok {
		label := d.Majority(target)
		b.logf("%s: no attribute among %v improves entropy, majority leaf %s (%d samples)", pathString(path), attributes, label, len(labels))
		return tree.NewLeaf(label)
	}
	b.logf("%s: split on %s (information gain %f, %d samples)", pathString(path), attribute, informationGain, len(labels))
	p := NewPartition(d, attribute, target)
	stAttributes := without(attributes, attribute)
	n := tree.NewNode(attribute)
	for _, v := range p.Values {
		stPath := append(path[:len(path):len(path)], tree.Step{Attribute: attribute, Value: v})
		n.Add(v, b.build(p.Subsets[v], stAttributes, target, stPath))
	}
	return n
}

func (b *Builder) logf(format string, a ...interface{}) {
	if b.Logger == nil {
		return
	}
	b.Logger.Logf(format, a...)
}

func pathString(path []tree.Step) string {
	if len(path) == 0 {
		return "root"
	}
	steps := make([]string, 0, len(path))
	for _, s := range path {
		steps = append(steps, fmt.Sprintf("%s=%s", s.Attribute, s.Value))
	}
	return strings.Join(steps, ",")
}
