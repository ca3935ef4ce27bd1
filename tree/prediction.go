package tree

import (
	"context"
	"sort"
)

/*
Sample is an interface for something a tree can make a prediction for.

Its ValueFor method takes a context and an attribute name and returns the
value of the sample for the attribute, a boolean that is false if the sample
has no value for it, and an error if the value could not be obtained.
*/
type Sample interface {
	ValueFor(ctx context.Context, attribute string) (string, bool, error)
}

/*
Query is a Sample consisting of a map from attribute names to values. It need
not define a value for every attribute a tree may ask about.
*/
type Query map[string]string

// ValueFor returns the query's value for the given attribute. It never
// returns an error.
func (q Query) ValueFor(_ context.Context, attribute string) (string, bool, error) {
	v, ok := q[attribute]
	return v, ok, nil
}

/*
Predict takes a tree and a query and returns the label the tree predicts for
the query and true, or an empty string and false if the tree cannot classify
it. That happens when the query has no value for an attribute the tree asks
about, or its value is not one the tree has a subtree for.
*/
func Predict(t Tree, q Query) (string, bool) {
	label, ok, _ := PredictSample(context.Background(), t, q)
	return label, ok
}

/*
PredictSample takes a context, a tree and a sample and descends the tree
requesting from the sample only the values of the attributes on its way. It
returns the predicted label and true, an empty string and false when the
tree cannot classify the sample, or an error if the sample fails to provide a
value.
*/
func PredictSample(ctx context.Context, t Tree, s Sample) (string, bool, error) {
	for {
		switch n := t.(type) {
		case *Leaf:
			return n.Label, true, nil
		case *Node:
			v, ok, err := s.ValueFor(ctx, n.Attribute)
			if err != nil {
				return "", false, err
			}
			if !ok {
				return "", false, nil
			}
			st, ok := n.Children[v]
			if !ok {
				return "", false, nil
			}
			t = st
		default:
			return "", false, nil
		}
	}
}

/*
PredictLenient takes a tree and a query and returns a prediction like Predict
does, but matching the tree against the query in a permissive way: a node is
followed if its attribute equals any of the attribute names or values of the
query, and the subtree taken is the first one, in the order of the node's
Values, whose value equals any of the attribute names or values of the query.

This allows queries that misname an attribute to still be classified as long
as their values are unambiguous, at the risk of wrong matches when values of
different attributes coincide. Predict should be preferred.
*/
func PredictLenient(t Tree, q Query) (string, bool) {
	terms := q.terms()
	for {
		switch n := t.(type) {
		case *Leaf:
			return n.Label, true
		case *Node:
			if !terms[n.Attribute] {
				return "", false
			}
			var st Tree
			for _, v := range n.Values {
				if terms[v] {
					st = n.Children[v]
					break
				}
			}
			if st == nil {
				return "", false
			}
			t = st
		default:
			return "", false
		}
	}
}

func (q Query) terms() map[string]bool {
	result := make(map[string]bool, 2*len(q))
	for a, v := range q {
		result[a] = true
		result[v] = true
	}
	return result
}

// Attributes returns the sorted attribute names the query has values for.
func (q Query) Attributes() []string {
	result := make([]string, 0, len(q))
	for a := range q {
		result = append(result, a)
	}
	sort.Strings(result)
	return result
}
