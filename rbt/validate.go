package rbt

import "math"
import "fmt"
import "errors"

import "github.com/emokater/data-search-algorithms/lib"

// height of the tree cannot exceed 2*log2(n+1) for a red-black tree
// holding n nodes.
func maxheight(nodes int64) float64 {
	return 2 * math.Log2(float64(nodes)+1)
}

// red-black rule, red node shall not have a red child.
var errRedafterred = errors.New("consecutive red spotted")

// red-black rule, root shall be black.
var errRedroot = errors.New("root is red")

// red-black rule, all paths from a node to its leaves shall have the
// same number of black nodes.
func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// Validate the tree, panics on the first broken invariant,
//
//   * root is black.
//   * no red node has a red parent.
//   * every path from root to a leaf has the same number of blacks.
//   * keys are strictly increasing in-order, and every value in a node
//     compares equal to that node's key.
//   * no node is empty and parent links agree with child links.
//   * height is within 2*log2(nodes+1).
//   * counters agree with the tree's content.
func (t *Tree[T]) Validate() {
	if t.root == nil {
		t.validatestats(0, 0)
		return
	}
	if t.root.IsRed() {
		panic(errRedroot)
	}
	if t.root.parent != nil {
		panic(fmt.Errorf("validate(): root has parent %v", t.root.parent.repr()))
	}

	h := lib.NewhistorgramInt64(1, 256, 1)
	_, values, nodes := t.validatetree(t.root, nil, nil, nil, 0, 1, h)

	if max := float64(h.Max()); max > maxheight(nodes) {
		fmsg := "validate(): max height %v exceeds 2*log2(%v+1)"
		panic(fmt.Errorf(fmsg, max, nodes))
	}
	t.validatestats(values, nodes)
}

// Check is same as Validate, but return the broken invariant as an
// error instead of panicking.
func (t *Tree[T]) Check() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
			errorf("%v check failed: %v\n", t.logprefix, err)
		}
	}()
	t.Validate()
	return nil
}

// validatetree walk the subtree under `nd` whose keys shall lie
// between (lo, hi), return the black-height below `nd` along with the
// number of values and nodes in this subtree.
func (t *Tree[T]) validatetree(
	nd, parent *Node[T], lo, hi *T, blacks, depth int64,
	h *lib.HistogramInt64) (nblacks, values, nodes int64) {

	if nd == nil {
		return blacks, 0, 0
	}

	h.Add(depth)
	if nd.parent != parent {
		fmsg := "validate(): node %v has a stale parent link"
		panic(fmt.Errorf(fmsg, nd.repr()))
	}
	if len(nd.values) == 0 {
		panic(fmt.Errorf("validate(): empty node at depth %v", depth))
	}
	if parent.IsRed() && nd.IsRed() {
		panic(errRedafterred)
	}
	if nd.IsBlack() {
		blacks++
	}

	key := nd.values[0]
	if lo != nil && !t.less(*lo, key) {
		fmsg := "validate(): sort order, node %v is <= %v on its left"
		panic(fmt.Errorf(fmsg, key, *lo))
	}
	if hi != nil && !t.less(key, *hi) {
		fmsg := "validate(): sort order, node %v is >= %v on its right"
		panic(fmt.Errorf(fmsg, key, *hi))
	}
	for _, value := range nd.values[1:] {
		if t.less(value, key) || t.less(key, value) {
			fmsg := "validate(): value %v does not belong to node %v"
			panic(fmt.Errorf(fmsg, value, key))
		}
	}

	lblacks, lvalues, lnodes := t.validatetree(
		nd.left, nd, lo, &key, blacks, depth+1, h)
	rblacks, rvalues, rnodes := t.validatetree(
		nd.right, nd, &key, hi, blacks, depth+1, h)
	if lblacks != rblacks {
		panic(unbalancedblacks(lblacks, rblacks))
	}

	values = lvalues + rvalues + int64(len(nd.values))
	nodes = lnodes + rnodes + 1
	return lblacks, values, nodes
}

func (t *Tree[T]) validatestats(values, nodes int64) {
	if t.n_count != values {
		fmsg := "validatestats(): n_count:%v != values:%v"
		panic(fmt.Errorf(fmsg, t.n_count, values))
	}
	if t.n_nodes != nodes {
		fmsg := "validatestats(): n_nodes:%v != nodes:%v"
		panic(fmt.Errorf(fmsg, t.n_nodes, nodes))
	}
	// insert only, every insert is still held by the tree.
	if t.n_count != t.n_inserts {
		fmsg := "validatestats(): n_count:%v != n_inserts:%v"
		panic(fmt.Errorf(fmsg, t.n_count, t.n_inserts))
	}
	if t.n_merges != (t.n_count - t.n_nodes) {
		fmsg := "validatestats(): n_merges:%v != (n_count:%v - n_nodes:%v)"
		panic(fmt.Errorf(fmsg, t.n_merges, t.n_count, t.n_nodes))
	}
}
