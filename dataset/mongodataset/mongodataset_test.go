package mongodataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/mgo.v2/bson"
)

func TestCheckAttribute(t *testing.T) {
	assert.NoError(t, CheckAttribute("outlook"))
	for _, a := range []string{"", "_id", "out.look", "$outlook"} {
		assert.Error(t, CheckAttribute(a), a)
	}
}

func TestToRow(t *testing.T) {
	doc := bson.M{
		"_id":     bson.NewObjectId(),
		"outlook": "sunny",
		"windy":   true,
		"temp":    nil,
	}
	assert.Equal(t, map[string]string{"outlook": "sunny", "windy": "true"}, toRow(doc))
}

func TestNewDataset(t *testing.T) {
	d := newDataset([]string{"outlook", "play"})
	assert.Equal(t, 0, d.Len())
	assert.NoError(t, d.Validate("outlook", "play"))
}
