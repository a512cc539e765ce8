package rbt

import "io"
import "fmt"
import "strings"

// Color of a tree node.
type Color uint8

const (
	// Red node, newly attached leaves start as red.
	Red Color = iota
	// Black node, root is always black.
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Black:
		return "BLACK"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Node of a red-black tree, holds every value inserted under the
// same key.
type Node[T any] struct {
	values []T // never empty
	color  Color
	left   *Node[T]
	right  *Node[T]
	parent *Node[T] // back-reference, not an ownership edge
}

func newnode[T any](value T, capacity int64) *Node[T] {
	if capacity < 1 {
		capacity = 1
	}
	nd := &Node[T]{color: Red}
	nd.values = make([]T, 0, capacity)
	nd.values = append(nd.values, value)
	return nd
}

// Values return all values sharing this node's key, in the order
// they were inserted. Callers should not modify the returned slice.
func (nd *Node[T]) Values() []T {
	if nd == nil {
		return nil
	}
	return nd.values
}

// Key return the first inserted value, which decides the node's
// position in the tree.
func (nd *Node[T]) Key() T {
	return nd.values[0]
}

// Len return the number of values in this node.
func (nd *Node[T]) Len() int {
	if nd == nil {
		return 0
	}
	return len(nd.values)
}

// Color of this node, nil nodes are black.
func (nd *Node[T]) Color() Color {
	if nd == nil {
		return Black
	}
	return nd.color
}

// IsRed return true for red nodes.
func (nd *Node[T]) IsRed() bool {
	return nd != nil && nd.color == Red
}

// IsBlack return true for black nodes and for nil.
func (nd *Node[T]) IsBlack() bool {
	return !nd.IsRed()
}

func (nd *Node[T]) append(value T) {
	nd.values = append(nd.values, value)
}

// sibling of nd under its parent, nil for root.
func (nd *Node[T]) sibling() *Node[T] {
	if nd.parent == nil {
		return nil
	}
	if nd == nd.parent.left {
		return nd.parent.right
	}
	return nd.parent.left
}

//---- maintanence methods.

func (nd *Node[T]) repr() string {
	return fmt.Sprintf("%v %v", nd.values, nd.color)
}

func (nd *Node[T]) label() string {
	return fmt.Sprintf("%v", nd.values[0])
}

func (nd *Node[T]) dotdump(buffer io.Writer) {
	if nd == nil {
		return
	}

	whatcolor := func(childnd *Node[T]) string {
		if childnd.IsRed() {
			return "red"
		}
		return "black"
	}

	key := nd.label()
	lines := []string{
		fmt.Sprintf("  %q [label=\"{%s|%d}\"];\n", key, key, len(nd.values)),
	}
	fmsg := "  %q -> %q [color=%v];\n"
	if nd.left != nil {
		line := fmt.Sprintf(fmsg, key, nd.left.label(), whatcolor(nd.left))
		lines = append(lines, line)
	}
	if nd.right != nil {
		line := fmt.Sprintf(fmsg, key, nd.right.label(), whatcolor(nd.right))
		lines = append(lines, line)
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer)
	nd.right.dotdump(buffer)
}
