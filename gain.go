package id3

import (
	"math"

	"github.com/pbanos/id3/dataset"
)

/*
Entropy takes a slice of categorical values and returns its entropy in bits:
the sum over every distinct value v of p(v) x log2(1/p(v)), p(v) being the
proportion of the values equal to v.
The result is 0 when all values are the same and grows towards log2(n) as the
values spread evenly over more categories. An empty slice has entropy 0.
Terms are summed in the order their values first appear, so the same slice
always yields the same result.
*/
func Entropy(values []string) float64 {
	n := float64(len(values))
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	var result float64
	for _, v := range order {
		count := float64(counts[v])
		result += (count / n) * math.Log2(n/count)
	}
	return result
}

// gains within epsilon of each other are considered equal
const epsilon = 1e-12

/*
InformationGain takes a dataset, the name of the target attribute and the name
of the attribute to split by, and returns the reduction in entropy of the
target column obtained by partitioning the dataset on the distinct values of
the split attribute.

An attribute with a single distinct value does not split the dataset and
yields a gain of 0, and so does any split whose gain is within rounding error
of 0, as happens when the split attribute is independent of the target. Both
attributes are expected to be present in the dataset.
*/
func InformationGain(d dataset.Dataset, target, attribute string) float64 {
	targetValues := d[target]
	splitValues := d[attribute]
	total := float64(len(targetValues))
	if total == 0 {
		return 0.0
	}
	subsets := make(map[string][]string)
	var order []string
	for i, v := range splitValues {
		if _, ok := subsets[v]; !ok {
			order = append(order, v)
		}
		subsets[v] = append(subsets[v], targetValues[i])
	}
	if len(order) < 2 {
		return 0.0
	}
	informationGain := Entropy(targetValues)
	for _, v := range order {
		subset := subsets[v]
		informationGain -= Entropy(subset) * float64(len(subset)) / total
	}
	if informationGain < epsilon {
		return 0.0
	}
	return informationGain
}
