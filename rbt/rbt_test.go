package rbt

import "fmt"
import "sort"
import "testing"
import "math/rand"

import "github.com/stretchr/testify/require"

type item struct {
	key     int
	payload string
}

func itemless(a, b item) bool {
	return a.key < b.key
}

func validatesetts() map[string]interface{} {
	return map[string]interface{}{"validate": true}
}

func TestEmpty(t *testing.T) {
	tree := NewOrdered[int]("empty", nil)
	defer tree.Destroy()

	if tree.ID() != "empty" {
		t.Errorf("unexpected %v", tree.ID())
	} else if tree.Count() != 0 {
		t.Errorf("unexpected %v", tree.Count())
	} else if tree.Nodes() != 0 {
		t.Errorf("unexpected %v", tree.Nodes())
	} else if tree.Root() != nil {
		t.Errorf("unexpected root %v", tree.Root().repr())
	} else if tree.Height() != 0 {
		t.Errorf("unexpected %v", tree.Height())
	} else if nd := tree.SearchAll(10); nd != nil {
		t.Errorf("unexpected %v", nd.repr())
	}
	tree.Validate()

	stats := tree.Stats()
	if x := stats["n_count"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_nodes"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_lookups"].(int64); x != 1 {
		t.Errorf("unexpected %v", x)
	}
	tree.Log(true)
}

func TestSingleInsert(t *testing.T) {
	tree := NewOrdered[int]("single", validatesetts())
	tree.Insert(42)

	root := tree.Root()
	require.NotNil(t, root)
	require.Equal(t, Black, root.Color())
	require.Equal(t, []int{42}, root.Values())
	require.Nil(t, root.parent)
	require.Equal(t, int64(1), tree.Height())
}

func TestNewWith(t *testing.T) {
	tree := NewWith("seeded", itemless, nil, item{7, "first"})
	require.Equal(t, int64(1), tree.Count())
	require.True(t, tree.Root().IsBlack())
	require.Equal(t, item{7, "first"}, tree.Root().Key())
	require.NoError(t, tree.Check())
}

func TestNewNilLess(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	New[int]("nilless", nil, nil)
}

func TestFiveKeys(t *testing.T) {
	tree := NewOrdered[int]("five", validatesetts())
	for _, key := range []int{10, 20, 15, 25, 5} {
		tree.Insert(key)
		require.NoError(t, tree.Check())
	}

	nd := tree.SearchAll(15)
	require.NotNil(t, nd)
	require.Equal(t, []int{15}, nd.Values())
	require.Nil(t, tree.SearchAll(99))

	// 15 ends up as black root, 10 and 20 black, 5 and 25 red.
	keys, colors := []int{}, []Color{}
	tree.Traverse(func(nd *Node[int], depth int) bool {
		keys, colors = append(keys, nd.Key()), append(colors, nd.Color())
		return true
	})
	require.Equal(t, []int{15, 10, 5, 20, 25}, keys)
	require.Equal(t, []Color{Black, Black, Red, Black, Red}, colors)
	require.Equal(t, int64(2), tree.Fullstats()["n_blacks"])
}

func TestDuplicates(t *testing.T) {
	tree := New("dups", itemless, validatesetts())
	tree.Insert(item{10, "A"})
	tree.Insert(item{10, "B"})
	tree.Insert(item{10, "C"})

	if x := tree.Nodes(); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	} else if x := tree.Count(); x != 3 {
		t.Errorf("expected %v, got %v", 3, x)
	}

	nd := tree.SearchAll(item{key: 10})
	require.NotNil(t, nd)
	payloads := []string{}
	for _, v := range nd.Values() {
		payloads = append(payloads, v.payload)
	}
	require.Equal(t, []string{"A", "B", "C"}, payloads)
	require.Equal(t, 3, nd.Len())
	require.NoError(t, tree.Check())

	stats := tree.Stats()
	if x := stats["n_merges"].(int64); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	} else if x := stats["n_rotations"].(int64); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
}

func TestDuplicatesNoRebalance(t *testing.T) {
	tree := New("norebalance", itemless, nil)
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(item{key, "x"})
	}
	before := []string{}
	tree.Traverse(func(nd *Node[item], _ int) bool {
		before = append(before, fmt.Sprintf("%v/%v", nd.Key().key, nd.Color()))
		return true
	})
	rotations := tree.n_rotations
	for _, key := range []int{50, 20, 80, 40} {
		tree.Insert(item{key, "dup"})
	}
	after := []string{}
	tree.Traverse(func(nd *Node[item], _ int) bool {
		after = append(after, fmt.Sprintf("%v/%v", nd.Key().key, nd.Color()))
		return true
	})
	require.Equal(t, before, after)
	require.Equal(t, rotations, tree.n_rotations)
	require.Equal(t, int64(7), tree.Nodes())
	require.Equal(t, int64(11), tree.Count())
	require.NoError(t, tree.Check())
}

func TestInsertSequences(t *testing.T) {
	n := 1000
	sorted := make([]int, 0, n)
	for i := 0; i < n; i++ {
		sorted = append(sorted, i)
	}
	reverse := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		reverse = append(reverse, i)
	}
	random := rand.New(rand.NewSource(100)).Perm(n)

	testcases := map[string][]int{
		"sorted": sorted, "reverse": reverse, "random": random,
	}
	for name, keys := range testcases {
		tree := NewOrdered[int](name, nil)
		for _, key := range keys {
			tree.Insert(key)
			if err := tree.Check(); err != nil {
				t.Fatalf("%v: after inserting %v: %v", name, key, err)
			}
		}
		if x := tree.Nodes(); x != int64(n) {
			t.Errorf("%v: expected %v, got %v", name, n, x)
		}
		for _, key := range keys {
			if nd := tree.SearchAll(key); nd == nil {
				t.Errorf("%v: missing key %v", name, key)
			} else if nd.Key() != key {
				t.Errorf("%v: expected %v, got %v", name, key, nd.Key())
			}
		}
		if nd := tree.SearchAll(n); nd != nil {
			t.Errorf("%v: unexpected %v", name, nd.repr())
		}
		if h := float64(tree.Height()); h > maxheight(tree.Nodes()) {
			t.Errorf("%v: height %v too large", name, h)
		}
		tree.Destroy()
	}
}

func TestRandomDuplicates(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	tree := New("randomdups", itemless, nil)
	refs := map[int][]string{}
	for i := 0; i < 5000; i++ {
		key, payload := rnd.Intn(300), fmt.Sprintf("p%d", i)
		tree.Insert(item{key, payload})
		refs[key] = append(refs[key], payload)
	}
	require.NoError(t, tree.Check())
	require.Equal(t, int64(len(refs)), tree.Nodes())
	require.Equal(t, int64(5000), tree.Count())

	for key, payloads := range refs {
		values, ok := tree.Get(item{key: key})
		require.True(t, ok)
		got := []string{}
		for _, v := range values {
			got = append(got, v.payload)
		}
		require.Equal(t, payloads, got, "key %v", key)
	}
	if tree.Has(item{key: 300}) {
		t.Errorf("unexpected key 300")
	}
	if _, ok := tree.Get(item{key: -1}); ok {
		t.Errorf("unexpected key -1")
	}
}

func TestRotations(t *testing.T) {
	// hand built subtree under 100:
	//         100
	//        /
	//      50
	//     /  \
	//   25    75
	//        /  \
	//      60    90
	tree := NewOrdered[int]("rotate", nil)
	mk := func(key int) *Node[int] { return tree.newnode(key, nil) }
	n100, n50, n25, n75, n60, n90 := mk(100), mk(50), mk(25), mk(75), mk(60), mk(90)
	link := func(parent, left, right *Node[int]) {
		parent.left, parent.right = left, right
		if left != nil {
			left.parent = parent
		}
		if right != nil {
			right.parent = parent
		}
	}
	link(n100, n50, nil)
	link(n50, n25, n75)
	link(n75, n60, n90)
	tree.root = n100

	expected := []int{25, 50, 60, 75, 90, 100}
	require.Equal(t, expected, inorder(tree.root))

	tree.rotateleft(n75, n50, n100)
	require.Equal(t, expected, inorder(tree.root))
	require.Same(t, n75, n100.left)
	require.Same(t, n100, n75.parent)
	require.Same(t, n50, n75.left)
	require.Same(t, n75, n50.parent)
	require.Same(t, n60, n50.right)
	require.Same(t, n50, n60.parent)
	require.Same(t, n90, n75.right)

	tree.rotateright(n50, n75, n100)
	require.Equal(t, expected, inorder(tree.root))
	require.Same(t, n50, n100.left)
	require.Same(t, n100, n50.parent)
	require.Same(t, n75, n50.right)
	require.Same(t, n60, n75.left)
	require.Same(t, n75, n60.parent)

	// rotating at the root replaces the root.
	tree.rotateright(n50, n100, nil)
	require.Same(t, n50, tree.root)
	require.Nil(t, n50.parent)
	require.Equal(t, expected, inorder(tree.root))
	require.Equal(t, int64(3), tree.n_rotations)

	// wrong child panics.
	require.Panics(t, func() { tree.rotateleft(n25, n50, nil) })
	require.Panics(t, func() { tree.rotateright(n75, n50, nil) })
}

func TestDestroy(t *testing.T) {
	tree := NewOrdered[int]("destroy", nil)
	for _, key := range rand.New(rand.NewSource(1)).Perm(500) {
		tree.Insert(key)
	}
	tree.Insert(10)
	root := tree.Root()

	tree.Destroy()
	if tree.Root() != nil {
		t.Errorf("expected empty tree")
	} else if x := tree.Nodes(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	} else if x := tree.Count(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	} else if x := tree.n_frees; x != 500 {
		t.Errorf("expected %v, got %v", 500, x)
	}
	if root.left != nil || root.right != nil || root.values != nil {
		t.Errorf("expected released root, got %v", root)
	}
	require.NoError(t, tree.Check())

	// tree can be re-used.
	tree.Insert(1)
	tree.Insert(2)
	require.NoError(t, tree.Check())
	require.Equal(t, int64(2), tree.Count())
	stats := tree.Stats()
	depths := stats["h_insertdepth"].(map[string]interface{})
	require.Equal(t, int64(2), stats["n_inserts"])
	require.Equal(t, int64(2), depths["samples"])
	require.Equal(t, int64(2), depths["max"])
	tree.Destroy()
	tree.Destroy()
	require.Nil(t, tree.Root())
}

func TestValuesCapacity(t *testing.T) {
	tree := NewOrdered[int]("capacity", map[string]interface{}{
		"values.capacity": 8,
	})
	tree.Insert(1)
	if x := cap(tree.Root().values); x != 8 {
		t.Errorf("expected %v, got %v", 8, x)
	}
}

func BenchmarkInsert(b *testing.B) {
	keys := rand.New(rand.NewSource(1)).Perm(b.N)
	tree := NewOrdered[int]("bench", nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(keys[i])
	}
}

func BenchmarkInsertDups(b *testing.B) {
	tree := NewOrdered[int]("bench", nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(i % 1000)
	}
}

func BenchmarkSearchAll(b *testing.B) {
	tree := NewOrdered[int]("bench", nil)
	for _, key := range rand.New(rand.NewSource(1)).Perm(100000) {
		tree.Insert(key)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.SearchAll(i % 100000)
	}
}

func inorder(nd *Node[int]) []int {
	if nd == nil {
		return nil
	}
	keys := inorder(nd.left)
	keys = append(keys, nd.values...)
	keys = append(keys, inorder(nd.right)...)
	if !sort.IntsAreSorted(keys) {
		panic(fmt.Errorf("unsorted %v", keys))
	}
	return keys
}
