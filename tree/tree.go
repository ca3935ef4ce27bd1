/*
Package tree provides the decision trees grown by id3 and the means to make
predictions with them.

A Tree is either a *Leaf, holding the predicted label, or a *Node, holding
the attribute it asks about and one subtree per value of that attribute.
*/
package tree

import (
	"fmt"
	"strings"
)

// Tree represents a decision tree or a subtree thereof. It is
// implemented by *Leaf and *Node only.
type Tree interface {
	fmt.Stringer
	isTree()
}

// Leaf is a terminal tree holding a label
type Leaf struct {
	Label string
}

/*
Node is a tree that splits samples according to their value for an
attribute. Children holds a subtree for every value of the attribute seen
on the training data that produced the node, and Values lists those values
in the order they were found.
*/
type Node struct {
	Attribute string
	Values    []string
	Children  map[string]Tree
}

// Step represents a decision on the path from the root of a tree to a subtree
type Step struct {
	Attribute string
	Value     string
}

// NewLeaf returns a leaf holding the given label.
func NewLeaf(label string) *Leaf {
	return &Leaf{Label: label}
}

// NewNode returns a node splitting on the given attribute without subtrees.
// Subtrees are added with Add.
func NewNode(attribute string) *Node {
	return &Node{Attribute: attribute, Children: make(map[string]Tree)}
}

/*
Add takes a value of the node's attribute and a tree and sets the tree as the
subtree for that value. Adding a tree for a value that already has one
replaces it without altering the order of Values.
*/
func (n *Node) Add(value string, t Tree) {
	if _, ok := n.Children[value]; !ok {
		n.Values = append(n.Values, value)
	}
	n.Children[value] = t
}

func (*Leaf) isTree() {}

func (*Node) isTree() {}

/*
Depth returns the number of nodes on the longest path from the root of the
given tree to a leaf. A leaf has depth 0.
*/
func Depth(t Tree) int {
	n, ok := t.(*Node)
	if !ok {
		return 0
	}
	var max int
	for _, v := range n.Values {
		if d := Depth(n.Children[v]); d > max {
			max = d
		}
	}
	return max + 1
}

// Leaves returns the number of leaves in the given tree.
func Leaves(t Tree) int {
	n, ok := t.(*Node)
	if !ok {
		return 1
	}
	var count int
	for _, v := range n.Values {
		count += Leaves(n.Children[v])
	}
	return count
}

/*
Equal returns whether both trees have the same structure: the same labels on
leaves, and the same attributes and subtrees for each value on nodes. The
order in which values were added to nodes is not considered.
*/
func Equal(a, b Tree) bool {
	switch a := a.(type) {
	case *Leaf:
		bl, ok := b.(*Leaf)
		return ok && a.Label == bl.Label
	case *Node:
		bn, ok := b.(*Node)
		if !ok || a.Attribute != bn.Attribute || len(a.Children) != len(bn.Children) {
			return false
		}
		for v, st := range a.Children {
			bst, ok := bn.Children[v]
			if !ok || !Equal(st, bst) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

/*
Traverse takes a tree and a function and calls the function with every subtree
of the tree, parents before children, along with the path of steps leading to
it from the root. Subtrees of a node are visited in the order of its Values.
If the function returns an error the traversal is aborted and the error
returned.
*/
func Traverse(t Tree, f func(path []Step, t Tree) error) error {
	return traverse(nil, t, f)
}

func traverse(path []Step, t Tree, f func([]Step, Tree) error) error {
	err := f(path, t)
	if err != nil {
		return err
	}
	n, ok := t.(*Node)
	if !ok {
		return nil
	}
	for _, v := range n.Values {
		stPath := make([]Step, len(path), len(path)+1)
		copy(stPath, path)
		stPath = append(stPath, Step{n.Attribute, v})
		err = traverse(stPath, n.Children[v], f)
		if err != nil {
			return err
		}
	}
	return nil
}

/*
Nested returns the given tree as nested maps: a leaf becomes its label and a
node a map with its attribute as only key, whose value is a map from each
value of the attribute to its nested subtree. It is meant for displaying
trees, e.g. with fmt's %v verb.
*/
func Nested(t Tree) interface{} {
	switch t := t.(type) {
	case *Leaf:
		return t.Label
	case *Node:
		children := make(map[string]interface{}, len(t.Children))
		for v, st := range t.Children {
			children[v] = Nested(st)
		}
		return map[string]interface{}{t.Attribute: children}
	}
	return nil
}

func (l *Leaf) String() string {
	return fmt.Sprintf("{ %s }\n", l.Label)
}

func (n *Node) String() string {
	result := fmt.Sprintf("[%s]\n|\n", n.Attribute)
	for i, v := range n.Values {
		for j, line := range strings.Split(n.Children[v].String(), "\n") {
			if len(line) == 0 {
				continue
			}
			if j == 0 {
				result = fmt.Sprintf("%s|__%s is %s: %s\n", result, n.Attribute, v, line)
				continue
			}
			if i == len(n.Values)-1 {
				result = fmt.Sprintf("%s   %s\n", result, line)
			} else {
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}
