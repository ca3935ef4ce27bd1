package main

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextStops(t *testing.T) {
	config := &rootCmdConfig{}
	config.stop()
	ctx := config.Context()
	assert.Same(t, ctx, config.Context())
	assert.NoError(t, ctx.Err())
	config.stop()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestParseQuery(t *testing.T) {
	q, err := parseQuery([]string{"outlook=sunny", "wind=strong", "note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, tree.Query{"outlook": "sunny", "wind": "strong", "note": "a=b"}, q)

	for _, terms := range [][]string{{"outlook"}, {"=sunny"}, {"outlook=sunny", "outlook=rainy"}} {
		_, err = parseQuery(terms)
		assert.Error(t, err, "%v", terms)
	}
}

func TestKindOf(t *testing.T) {
	tests := map[string]sourceKind{
		"":                           csvSource,
		"train.csv":                  csvSource,
		"weather":                    builtinSource,
		"samples.db":                 sqliteSource,
		"postgresql://localhost/id3": postgresSource,
		"postgres://localhost/id3":   postgresSource,
		"mongodb://localhost/id3":    mongoSource,
		"redis://localhost:6379/2":   redisSource,
	}
	for location, kind := range tests {
		assert.Equal(t, kind, kindOf(location), location)
	}
}

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions("redis://:secret@cache:6380/2")
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)

	opts, err = redisOptions("redis://cache")
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 0, opts.DB)

	_, err = redisOptions("redis://cache/zero")
	assert.Error(t, err)
}

func TestCandidates(t *testing.T) {
	d := dataset.Weather()
	assert.Equal(t, []string{"humidity", "outlook", "temp", "windy"}, candidates(d, nil, "play"))

	features := []*feature.Feature{
		feature.New("windy", nil),
		feature.New("play", nil),
		feature.New("outlook", nil),
	}
	assert.Equal(t, []string{"windy", "outlook"}, candidates(d, features, "play"))
}

func TestModelGrowsWeatherTree(t *testing.T) {
	config := &modelCmdConfig{rootCmdConfig: &rootCmdConfig{}, dataInput: weatherSource, prefix: "dataset"}
	m, err := config.grow()
	require.NoError(t, err)
	assert.Equal(t, "play", m.label)
	label, ok := tree.Predict(m.tree, tree.Query{"outlook": "rainy", "windy": "weak"})
	assert.True(t, ok)
	assert.Equal(t, "yes", label)
}

func TestSplitter(t *testing.T) {
	var outBuf, splitBuf bytes.Buffer
	attributes := []string{"outlook", "play"}
	output, err := csv.NewWriter(&outBuf, attributes)
	require.NoError(t, err)
	split, err := csv.NewWriter(&splitBuf, attributes)
	require.NoError(t, err)

	splitter := newSplitter(rand.New(rand.NewSource(1)), 30, output, split)
	d := dataset.Weather()
	for i := 0; i < d.Len(); i++ {
		ok, err := splitter(i, d.Row(i))
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, d.Len(), output.Count()+split.Count())

	all := newSplitter(rand.New(rand.NewSource(1)), 100, output, split)
	before := split.Count()
	_, err = all(0, d.Row(0))
	require.NoError(t, err)
	assert.Equal(t, before+1, split.Count())

	_, err = all(0, map[string]string{"outlook": "sunny"})
	assert.Error(t, err)
}
