package inputsample

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRequester struct {
	requested []string
	rejected  []string
	err       error
}

func (rr *recordingRequester) RequestValueFor(f *feature.Feature) error {
	rr.requested = append(rr.requested, f.Name())
	return nil
}

func (rr *recordingRequester) RejectValueFor(f *feature.Feature, v string) error {
	rr.rejected = append(rr.rejected, f.Name()+"="+v)
	return rr.err
}

func features() []*feature.Feature {
	return []*feature.Feature{
		feature.New("outlook", []string{"overcast", "rainy", "sunny"}),
		feature.New("humidity", []string{"high", "normal"}),
	}
}

func TestValueFor(t *testing.T) {
	rr := &recordingRequester{}
	s := New(strings.NewReader("foggy\nsunny\n?\nanything\n"), features(), rr, "?")
	ctx := context.Background()

	v, ok, err := s.ValueFor(ctx, "outlook")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sunny", v)

	v, ok, err = s.ValueFor(ctx, "outlook")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sunny", v)

	_, ok, err = s.ValueFor(ctx, "humidity")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = s.ValueFor(ctx, "temp")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "anything", v)

	assert.Equal(t, []string{"outlook", "humidity", "temp"}, rr.requested)
	assert.Equal(t, []string{"outlook=foggy"}, rr.rejected)

	_, _, err = s.ValueFor(ctx, "windy")
	assert.EqualError(t, err, "EOF when requesting value for windy")
}

func TestValueForRejectError(t *testing.T) {
	failure := errors.New("too many attempts")
	rr := &recordingRequester{err: failure}
	s := New(strings.NewReader("foggy\n"), features(), rr, "?")
	_, _, err := s.ValueFor(context.Background(), "outlook")
	assert.Equal(t, failure, err)
}

func TestPredictWithInputSample(t *testing.T) {
	humidity := tree.NewNode("humidity")
	humidity.Add("high", tree.NewLeaf("no"))
	humidity.Add("normal", tree.NewLeaf("yes"))
	root := tree.NewNode("outlook")
	root.Add("overcast", tree.NewLeaf("yes"))
	root.Add("sunny", humidity)

	rr := &recordingRequester{}
	s := New(strings.NewReader("sunny\nnormal\n"), features(), rr, "?")
	label, ok, err := tree.PredictSample(context.Background(), root, s)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "yes", label)
	assert.Equal(t, []string{"outlook", "humidity"}, rr.requested)
}
