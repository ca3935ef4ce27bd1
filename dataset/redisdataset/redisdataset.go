/*
Package redisdataset provides functions to store datasets on and load them
from a redis DB.

A dataset is kept under a prefix with the following keys:
  - prefix:attributes is the key to a list with the attribute names
  - prefix:attribute:name is the key to the list of values of the attribute
*/
package redisdataset

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/dataset"
	redis "gopkg.in/redis.v5"
)

/*
Write takes a context, a redis client, a prefix, a dataset and a slice of
attribute names and replaces the dataset kept under the prefix with the
columns of the dataset for the attributes, in a single transaction. It
returns the number of rows written or an error.
*/
func Write(ctx context.Context, rc *redis.Client, prefix string, d dataset.Dataset, attributes []string) (int, error) {
	if len(attributes) == 0 {
		return 0, fmt.Errorf("no attributes to store")
	}
	err := d.Validate(attributes...)
	if err != nil {
		return 0, err
	}
	old, err := rc.LRange(attributesKey(prefix), 0, -1).Result()
	if err != nil {
		return 0, fmt.Errorf("listing stored attributes: %v", err)
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}
	_, err = rc.TxPipelined(func(pipe *redis.Pipeline) error {
		keys := []string{attributesKey(prefix)}
		for _, a := range old {
			keys = append(keys, attributeKey(prefix, a))
		}
		pipe.Del(keys...)
		pipe.RPush(attributesKey(prefix), toInterfaces(attributes)...)
		for _, a := range attributes {
			if d.Len() > 0 {
				pipe.RPush(attributeKey(prefix, a), toInterfaces(d[a])...)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("storing dataset on %s: %v", prefix, err)
	}
	return d.Len(), nil
}

/*
Read takes a context, a redis client and a prefix and returns the dataset kept
under the prefix or an error if there is none or it is not consistent.
*/
func Read(ctx context.Context, rc *redis.Client, prefix string) (dataset.Dataset, error) {
	attributes, err := rc.LRange(attributesKey(prefix), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing attributes on %s: %v", prefix, err)
	}
	if len(attributes) == 0 {
		return nil, fmt.Errorf("no dataset stored on %s", prefix)
	}
	d := make(dataset.Dataset, len(attributes))
	for _, a := range attributes {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		values, err := rc.LRange(attributeKey(prefix, a), 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("retrieving values for %s on %s: %v", a, prefix, err)
		}
		if values == nil {
			values = []string{}
		}
		d[a] = values
	}
	err = d.Validate()
	if err != nil {
		return nil, fmt.Errorf("dataset on %s: %w", prefix, err)
	}
	return d, nil
}

func attributesKey(prefix string) string {
	return fmt.Sprintf("%s:attributes", prefix)
}

func attributeKey(prefix, attribute string) string {
	return fmt.Sprintf("%s:attribute:%s", prefix, attribute)
}

func toInterfaces(values []string) []interface{} {
	result := make([]interface{}, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}
