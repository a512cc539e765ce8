package search

// BSTNode is a node in BST, one value per node.
type BSTNode[T any] struct {
	Value T
	left  *BSTNode[T]
	right *BSTNode[T]
}

// BST is an unbalanced binary search tree. Values equal to an
// existing node are placed in its right subtree, so sorted input
// degrades the tree into a list.
type BST[T any] struct {
	root  *BSTNode[T]
	less  func(a, b T) bool
	count int64
}

// NewBST create an empty tree ordered by `less`.
func NewBST[T any](less func(a, b T) bool) *BST[T] {
	return &BST[T]{less: less}
}

// Count return number of values in the tree.
func (t *BST[T]) Count() int64 {
	return t.count
}

// Insert value into the tree.
func (t *BST[T]) Insert(value T) {
	t.count++
	nd := &BSTNode[T]{Value: value}
	if t.root == nil {
		t.root = nd
		return
	}
	cur := t.root
	for {
		if t.less(value, cur.Value) {
			if cur.left == nil {
				cur.left = nd
				return
			}
			cur = cur.left
			continue
		}
		if cur.right == nil {
			cur.right = nd
			return
		}
		cur = cur.right
	}
}

// Search return the first node, from root, holding a value equal to
// `key`.
func (t *BST[T]) Search(key T) *BSTNode[T] {
	return t.search(t.root, key)
}

// SearchAll return every node holding a value equal to `key`, nearest
// to root first. Each match is looked for in the right subtree of the
// previous match.
func (t *BST[T]) SearchAll(key T) []*BSTNode[T] {
	nodes := []*BSTNode[T]{}
	for nd := t.search(t.root, key); nd != nil; nd = t.search(nd.right, key) {
		nodes = append(nodes, nd)
	}
	return nodes
}

// Traverse the tree in pre-order, stop when callback return false.
func (t *BST[T]) Traverse(callb func(nd *BSTNode[T], depth int) bool) {
	type visit struct {
		nd    *BSTNode[T]
		depth int
	}
	if t.root == nil {
		return
	}
	stack := []visit{{t.root, 1}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !callb(v.nd, v.depth) {
			return
		}
		if v.nd.right != nil {
			stack = append(stack, visit{v.nd.right, v.depth + 1})
		}
		if v.nd.left != nil {
			stack = append(stack, visit{v.nd.left, v.depth + 1})
		}
	}
}

func (t *BST[T]) search(nd *BSTNode[T], key T) *BSTNode[T] {
	for nd != nil {
		if t.less(key, nd.Value) {
			nd = nd.left
		} else if t.less(nd.Value, key) {
			nd = nd.right
		} else {
			return nd
		}
	}
	return nil
}
