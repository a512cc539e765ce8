package search

import "github.com/google/btree"

// btree degree for Multimap.
const multimapDegree = 32

type entry[T any] struct {
	key    string
	values []T
}

// Multimap is a sorted map from string keys to values, values under
// the same key are kept in insertion order.
type Multimap[T any] struct {
	tree  *btree.BTreeG[*entry[T]]
	count int
}

// NewMultimap create an empty multimap.
func NewMultimap[T any]() *Multimap[T] {
	less := func(a, b *entry[T]) bool { return a.key < b.key }
	return &Multimap[T]{tree: btree.NewG[*entry[T]](multimapDegree, less)}
}

// Insert value under key.
func (m *Multimap[T]) Insert(key string, value T) {
	m.count++
	if e, ok := m.tree.Get(&entry[T]{key: key}); ok {
		e.values = append(e.values, value)
		return
	}
	m.tree.ReplaceOrInsert(&entry[T]{key: key, values: []T{value}})
}

// EqualRange return all values under key, empty if key is absent.
func (m *Multimap[T]) EqualRange(key string) []T {
	if e, ok := m.tree.Get(&entry[T]{key: key}); ok {
		return e.values
	}
	return []T{}
}

// Len return the number of values in the multimap.
func (m *Multimap[T]) Len() int {
	return m.count
}

// Keys return distinct keys in sort order.
func (m *Multimap[T]) Keys() []string {
	keys := make([]string, 0, m.tree.Len())
	m.tree.Ascend(func(e *entry[T]) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}
