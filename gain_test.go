package id3

import (
	"math"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected float64
	}{
		{"single value", []string{"yes"}, 0.0},
		{"identical values", []string{"a", "a", "a", "a"}, 0.0},
		{"even split", []string{"a", "b", "a", "b"}, 1.0},
		{"four even categories", []string{"a", "b", "c", "d"}, 2.0},
		{"weather labels", dataset.Weather()["play"], 0.940286},
		{"empty", []string{}, 0.0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.InDelta(t, test.expected, Entropy(test.values), 1e-6)
		})
	}
}

func TestEntropyGrowsWithSpread(t *testing.T) {
	skewed := Entropy([]string{"a", "a", "a", "b"})
	even := Entropy([]string{"a", "a", "b", "b"})
	assert.True(t, skewed > 0)
	assert.True(t, skewed < even)
	assert.True(t, even <= math.Log2(4))
}

func TestInformationGain(t *testing.T) {
	d := dataset.Weather()
	gains := make(map[string]float64)
	for _, a := range dataset.WeatherAttributes {
		gains[a] = InformationGain(d, dataset.WeatherLabel, a)
		assert.True(t, gains[a] >= 0, "negative gain for %s", a)
	}
	assert.InDelta(t, 0.246750, gains["outlook"], 1e-4)
	assert.InDelta(t, 0.151836, gains["humidity"], 1e-4)
	assert.InDelta(t, 0.048127, gains["windy"], 1e-4)
	assert.InDelta(t, 0.029223, gains["temp"], 1e-4)
}

func TestInformationGainPerfectSplit(t *testing.T) {
	d := dataset.Dataset{
		"color": {"red", "red", "blue", "green", "blue"},
		"label": {"stop", "stop", "go", "go", "go"},
	}
	assert.InDelta(t, Entropy(d["label"]), InformationGain(d, "label", "color"), 1e-12)
}

func TestInformationGainSingleValue(t *testing.T) {
	d := dataset.Dataset{
		"constant": {"x", "x", "x", "x"},
		"label":    {"a", "b", "a", "b"},
	}
	assert.Equal(t, 0.0, InformationGain(d, "label", "constant"))
}

func TestBestAttribute(t *testing.T) {
	d := dataset.Weather()
	a, gain, ok := bestAttribute(d, dataset.WeatherAttributes, dataset.WeatherLabel)
	assert.True(t, ok)
	assert.Equal(t, "outlook", a)
	assert.InDelta(t, 0.246750, gain, 1e-4)

	twins := dataset.Dataset{
		"first":  {"a", "b"},
		"second": {"c", "d"},
		"label":  {"x", "y"},
	}
	a, _, _ = bestAttribute(twins, []string{"second", "first"}, "label")
	assert.Equal(t, "second", a, "first maximal candidate should win")
	a, _, _ = bestAttribute(twins, []string{"first", "second"}, "label")
	assert.Equal(t, "first", a, "first maximal candidate should win")

	a, gain, ok = bestAttribute(twins, nil, "label")
	assert.False(t, ok)
	assert.Equal(t, "", a)
	assert.Equal(t, 0.0, gain)

	_, _, ok = bestAttribute(independentDataset(), []string{"noise"}, "label")
	assert.False(t, ok)
}

func TestBestAttributeTieAmongManyCategories(t *testing.T) {
	d := shapesDataset()
	for i := 0; i < 500; i++ {
		a, gain, ok := bestAttribute(d, []string{"form", "noise", "shape"}, "label")
		require.True(t, ok)
		require.Equal(t, "form", a)
		require.InDelta(t, 0.666667, gain, 1e-6)
		a, _, _ = bestAttribute(d, []string{"shape", "form"}, "label")
		require.Equal(t, "shape", a)
	}
}

func TestEntropyIsStable(t *testing.T) {
	labels := independentDataset()["label"]
	first := Entropy(labels)
	for i := 0; i < 1000; i++ {
		require.Equal(t, math.Float64bits(first), math.Float64bits(Entropy(labels)))
	}
}

func TestInformationGainIndependentAttribute(t *testing.T) {
	d := independentDataset()
	for i := 0; i < 1000; i++ {
		require.Equal(t, 0.0, InformationGain(d, "label", "noise"))
	}
}

func TestNewPartition(t *testing.T) {
	d := dataset.Weather()
	p := NewPartition(d, "outlook", dataset.WeatherLabel)
	assert.Equal(t, "outlook", p.Attribute)
	assert.Equal(t, []string{"overcast", "rainy", "sunny"}, p.Values)
	assert.Len(t, p.Subsets, 3)
	var rows int
	for _, v := range p.Values {
		rows += p.Subsets[v].Len()
	}
	assert.Equal(t, d.Len(), rows)
	assert.InDelta(t, InformationGain(d, dataset.WeatherLabel, "outlook"), p.InformationGain, 1e-12)
}

func TestWithout(t *testing.T) {
	attributes := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "c"}, without(attributes, "b"))
	assert.Equal(t, []string{"a", "b", "c"}, attributes)
}

/*
independentDataset returns a dataset with 5 labels whose noise attribute
splits it in two halves with the same label counts, so noise brings no
information on the label. d is the majority label.
*/
func independentDataset() dataset.Dataset {
	counts := []struct {
		label string
		count int
	}{{"a", 5}, {"b", 3}, {"c", 2}, {"d", 7}, {"e", 1}}
	var half []string
	for _, c := range counts {
		for i := 0; i < c.count; i++ {
			half = append(half, c.label)
		}
	}
	d := dataset.Dataset{}
	for i := range half {
		d["noise"] = append(d["noise"], "x")
		d["label"] = append(d["label"], half[i])
	}
	for i := range half {
		d["noise"] = append(d["noise"], "y")
		d["label"] = append(d["label"], half[len(half)-1-i])
	}
	return d
}

// shapesDataset returns a dataset where shape and form are the same
// 3 category attribute and noise is independent of the label.
func shapesDataset() dataset.Dataset {
	shapes := []string{"circle", "circle", "square", "square", "star", "star", "circle", "square", "star"}
	return dataset.Dataset{
		"shape": shapes,
		"form":  append([]string(nil), shapes...),
		"noise": {"p", "q", "p", "q", "p", "q", "p", "q", "p"},
		"label": {"a", "a", "b", "b", "c", "c", "b", "c", "a"},
	}
}
