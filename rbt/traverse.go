package rbt

import "io"
import "fmt"
import "strings"

import "github.com/xlab/treeprint"

// NodeCallb callback for Traverse, `depth` of root is 1. Return false
// to stop the traversal.
type NodeCallb[T any] func(nd *Node[T], depth int) bool

type visit[T any] struct {
	nd    *Node[T]
	depth int
}

// Traverse visit every node exactly once in pre-order, node then its
// left subtree then its right subtree. Return false if the callback
// stopped the traversal.
func (t *Tree[T]) Traverse(callb NodeCallb[T]) bool {
	if t.root == nil {
		return true
	}
	stack := []visit[T]{{t.root, 1}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !callb(v.nd, v.depth) {
			return false
		}
		if v.nd.right != nil {
			stack = append(stack, visit[T]{v.nd.right, v.depth + 1})
		}
		if v.nd.left != nil {
			stack = append(stack, visit[T]{v.nd.left, v.depth + 1})
		}
	}
	return true
}

// Height return the number of nodes on the longest path from root to
// a leaf, zero for an empty tree.
func (t *Tree[T]) Height() int64 {
	height := 0
	t.Traverse(func(_ *Node[T], depth int) bool {
		if depth > height {
			height = depth
		}
		return true
	})
	return int64(height)
}

// Pprint write one line per node in pre-order, listing the node's
// values followed by its color.
func (t *Tree[T]) Pprint(w io.Writer) error {
	var err error
	t.Traverse(func(nd *Node[T], depth int) bool {
		_, err = fmt.Fprintln(w, nd.repr())
		return err == nil
	})
	return err
}

// Dotdump to convert whole tree into dot script that can be visualized
// using graphviz.
func (t *Tree[T]) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph rbt {",
		"  node[shape=record];\n",
		"}\n",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	t.root.dotdump(buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}

// Treeprint render the tree as indented ascii art, each node labelled
// with its key, its color and the number of values it holds. Children
// are listed left first, missing children are omitted.
func (t *Tree[T]) Treeprint() string {
	if t.root == nil {
		return treeprint.NewWithRoot("<empty>").String()
	}
	tree := treeprint.NewWithRoot(nodelabel(t.root))
	addbranches(tree, t.root)
	return tree.String()
}

func addbranches[T any](tree treeprint.Tree, nd *Node[T]) {
	for _, child := range []*Node[T]{nd.left, nd.right} {
		if child == nil {
			continue
		}
		if child.left == nil && child.right == nil {
			tree.AddNode(nodelabel(child))
			continue
		}
		addbranches(tree.AddBranch(nodelabel(child)), child)
	}
}

func nodelabel[T any](nd *Node[T]) string {
	return fmt.Sprintf("%v %v (%d)", nd.label(), nd.color, len(nd.values))
}
