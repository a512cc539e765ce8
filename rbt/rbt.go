package rbt

import "cmp"
import "fmt"
import "time"

import "github.com/emokater/data-search-algorithms/lib"

// Tree manage a single instance of in-memory sorted index using
// red-black tree. Values comparing equal share a node.
type Tree[T any] struct {
	treestats
	h_insertdepth *lib.HistogramInt64

	name     string
	root     *Node[T]
	less     func(a, b T) bool
	borntime time.Time

	// settings
	valcapacity int64
	dovalidate  bool
	maxdepth    int64
	setts       lib.Settings
	logprefix   string
}

type treestats struct {
	n_count     int64 // values held by the tree
	n_nodes     int64 // live nodes
	n_inserts   int64
	n_merges    int64 // inserts appended to an existing node
	n_lookups   int64
	n_rotations int64
	n_recolors  int64
	n_frees     int64
}

// New create an empty tree ordering values with `less`, which shall
// be a strict total order. Two values are equal, for placement, when
// neither is less than the other.
func New[T any](name string, less func(a, b T) bool, setts lib.Settings) *Tree[T] {
	if less == nil {
		panic("New(): nil less function")
	}
	t := &Tree[T]{name: name, less: less, borntime: time.Now()}
	t.logprefix = fmt.Sprintf("RBT [%s]", name)

	setts = make(lib.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.setts = setts

	t.h_insertdepth = lib.NewhistorgramInt64(1, t.maxdepth, 1)

	infof("%v started ...\n", t.logprefix)
	return t
}

// NewOrdered create an empty tree for naturally ordered types.
func NewOrdered[T cmp.Ordered](name string, setts lib.Settings) *Tree[T] {
	return New[T](name, cmp.Less[T], setts)
}

// NewWith create a tree seeded with `first` as its black root.
func NewWith[T any](
	name string, less func(a, b T) bool, setts lib.Settings, first T) *Tree[T] {

	t := New[T](name, less, setts)
	t.Insert(first)
	return t
}

// ID return the name of this tree.
func (t *Tree[T]) ID() string {
	return t.name
}

// Count return the number of values held by the tree.
func (t *Tree[T]) Count() int64 {
	return t.n_count
}

// Nodes return the number of nodes, which is the number of distinct
// keys in the tree.
func (t *Tree[T]) Nodes() int64 {
	return t.n_nodes
}

// Root return the root node, nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Insert `value` into the tree. If a node with an equal key exists the
// value is appended to that node and the tree's shape is left as is,
// otherwise a new red leaf is attached and the tree rebalanced.
func (t *Tree[T]) Insert(value T) {
	t.n_inserts++
	t.n_count++

	if t.root == nil {
		t.root = t.newnode(value, nil)
		t.root.color = Black
		t.h_insertdepth.Add(1)
		return
	}

	nd, depth := t.root, int64(1)
	for {
		if t.less(value, nd.values[0]) {
			if nd.left == nil {
				nd.left = t.newnode(value, nd)
				nd = nd.left
				break
			}
			nd = nd.left

		} else if t.less(nd.values[0], value) {
			if nd.right == nil {
				nd.right = t.newnode(value, nd)
				nd = nd.right
				break
			}
			nd = nd.right

		} else {
			nd.append(value)
			t.n_merges++
			t.h_insertdepth.Add(depth)
			return
		}
		depth++
	}
	t.h_insertdepth.Add(depth + 1)

	t.balance(nd)
	if t.dovalidate {
		t.Validate()
	}
}

// SearchAll return the node holding every value equal to `key`, or nil
// if no such value was inserted.
func (t *Tree[T]) SearchAll(key T) *Node[T] {
	t.n_lookups++
	nd := t.root
	for nd != nil {
		if t.less(key, nd.values[0]) {
			nd = nd.left
		} else if t.less(nd.values[0], key) {
			nd = nd.right
		} else {
			return nd
		}
	}
	return nil
}

// Get return all values equal to `key`, in insertion order.
func (t *Tree[T]) Get(key T) ([]T, bool) {
	if nd := t.SearchAll(key); nd != nil {
		return nd.values, true
	}
	return nil, false
}

// Has return whether a value equal to `key` was inserted.
func (t *Tree[T]) Has(key T) bool {
	return t.SearchAll(key) != nil
}

// Destroy release all nodes, children before their parent, and leave
// the tree empty. The tree can be re-used after Destroy.
func (t *Tree[T]) Destroy() {
	var last *Node[T]

	stack, released := make([]*Node[T], 0, 64), int64(0)
	nd := t.root
	for nd != nil || len(stack) > 0 {
		if nd != nil {
			stack = append(stack, nd)
			nd = nd.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			nd = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		t.freenode(top)
		last, released = top, released+1
	}
	t.root = nil
	t.n_count, t.n_inserts, t.n_merges = 0, 0, 0
	t.h_insertdepth = lib.NewhistorgramInt64(1, t.maxdepth, 1)
	infof("%v destroyed, released %v nodes\n", t.logprefix, released)
}

// balance restore the red-black properties after attaching the red
// leaf `nd`. Each iteration starts with a red `nd`, the only possible
// violation being a red parent.
func (t *Tree[T]) balance(nd *Node[T]) {
	for dad := nd.parent; dad.IsRed(); dad = nd.parent {
		grand := dad.parent
		if grand == nil {
			break
		}

		uncle := dad.sibling()
		if dad == grand.left {
			if uncle.IsRed() {
				t.recolor(dad, uncle, grand)
				nd = grand
				continue
			}
			if nd == dad.right { // zig-zag
				t.rotateleft(nd, dad, grand)
				nd, dad = dad, nd
			}
			dad.color, grand.color = Black, Red
			t.rotateright(dad, grand, grand.parent)
			break
		}

		if uncle.IsRed() {
			t.recolor(dad, uncle, grand)
			nd = grand
			continue
		}
		if nd == dad.left { // zig-zag
			t.rotateright(nd, dad, grand)
			nd, dad = dad, nd
		}
		dad.color, grand.color = Black, Red
		t.rotateleft(dad, grand, grand.parent)
		break
	}
	t.root.color = Black
}

// dad and uncle turn black, grand turns red.
func (t *Tree[T]) recolor(dad, uncle, grand *Node[T]) {
	dad.color, uncle.color, grand.color = Black, Black, Red
	t.n_recolors++
}

// rotateleft move `pivot` down to the left of its right child `child`,
// `child` takes pivot's place under `grand`, or becomes the root.
func (t *Tree[T]) rotateleft(child, pivot, grand *Node[T]) {
	if pivot.right != child {
		panic("rotateleft(): child is not right of pivot ? call the programmer")
	}
	inner := child.left
	pivot.right = inner
	if inner != nil {
		inner.parent = pivot
	}
	child.left = pivot
	pivot.parent = child
	t.replacechild(grand, pivot, child)
	t.n_rotations++
}

// rotateright move `pivot` down to the right of its left child `child`,
// `child` takes pivot's place under `grand`, or becomes the root.
func (t *Tree[T]) rotateright(child, pivot, grand *Node[T]) {
	if pivot.left != child {
		panic("rotateright(): child is not left of pivot ? call the programmer")
	}
	inner := child.right
	pivot.left = inner
	if inner != nil {
		inner.parent = pivot
	}
	child.right = pivot
	pivot.parent = child
	t.replacechild(grand, pivot, child)
	t.n_rotations++
}

func (t *Tree[T]) replacechild(grand, oldnd, newnd *Node[T]) {
	newnd.parent = grand
	if grand == nil {
		t.root = newnd
	} else if grand.left == oldnd {
		grand.left = newnd
	} else {
		grand.right = newnd
	}
}

//---- local functions

func (t *Tree[T]) newnode(value T, parent *Node[T]) *Node[T] {
	nd := newnode(value, t.valcapacity)
	nd.parent = parent
	t.n_nodes++
	return nd
}

func (t *Tree[T]) freenode(nd *Node[T]) {
	nd.values = nil
	nd.left, nd.right, nd.parent = nil, nil, nil
	t.n_nodes--
	t.n_frees++
}
