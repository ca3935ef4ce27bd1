package id3

import (
	"github.com/pbanos/id3/dataset"
)

/*
Partition represents the split of a dataset according to an attribute into
one subset per distinct value of the attribute, along with the information
gain the split obtains on the target attribute
*/
type Partition struct {
	Attribute       string
	Values          []string
	Subsets         map[string]dataset.Dataset
	InformationGain float64
}

/*
NewPartition takes a dataset, an attribute and a target attribute and returns
the partition of the dataset by the attribute. Values holds the distinct
values of the attribute in the order they first appear on the dataset, and
Subsets the dataset filtered by each of them.
*/
func NewPartition(d dataset.Dataset, attribute, target string) *Partition {
	values := d.Values(attribute)
	subsets := make(map[string]dataset.Dataset, len(values))
	for _, v := range values {
		subsets[v] = d.Filter(attribute, v)
	}
	return &Partition{
		Attribute:       attribute,
		Values:          values,
		Subsets:         subsets,
		InformationGain: InformationGain(d, target, attribute),
	}
}

type candidate struct {
	attribute       string
	informationGain float64
}

/*
bestAttribute takes a dataset, a slice of candidate attributes and a target
attribute and returns the candidate with the greatest information gain on the
target along with that gain. Only gains greater than those already seen by
more than epsilon replace the current choice, starting from 0, so the first
maximal candidate wins. The returned bool is false if no candidate yields a
positive gain.
*/
func bestAttribute(d dataset.Dataset, candidates []string, target string) (string, float64, bool) {
	var best *candidate
	for _, a := range candidates {
		best = better(best, &candidate{a, InformationGain(d, target, a)})
	}
	if best == nil {
		return "", 0.0, false
	}
	return best.attribute, best.informationGain, true
}

func better(current, c *candidate) *candidate {
	var threshold float64
	if current != nil {
		threshold = current.informationGain
	}
	if c.informationGain > threshold+epsilon {
		return c
	}
	return current
}

func without(attributes []string, attribute string) []string {
	result := make([]string, 0, len(attributes))
	for _, a := range attributes {
		if a != attribute {
			result = append(result, a)
		}
	}
	return result
}
