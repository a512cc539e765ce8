package search

import "fmt"

import "github.com/cespare/xxhash/v2"

// DefaultBuckets is the bucket count used when none is configured.
const DefaultBuckets = 14

// HashFunc map a key to an unbounded hash value, tables reduce it
// modulo their bucket count.
type HashFunc func(key string) uint64

// RSHash is Robert Sedgewick's string hash, computed in 32 bits.
func RSHash(key string) uint64 {
	a, b := uint32(63689), uint32(378551)
	hash := uint32(0)
	for i := 0; i < len(key); i++ {
		hash = hash*a + uint32(key[i])
		a = a * b
	}
	return uint64(hash)
}

// XXHash is xxhash64 of the key.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Hashfunc return the hash function by name, "rs" or "xxhash".
func Hashfunc(name string) (HashFunc, error) {
	switch name {
	case "rs":
		return RSHash, nil
	case "xxhash":
		return XXHash, nil
	}
	return nil, fmt.Errorf("unknown hash function %q", name)
}

// Item is a distinct key in a HashTable along with all values
// inserted under that key.
type Item[T any] struct {
	Key    string
	Values []T
	next   *Item[T]
}

// HashTable with separate chaining. A new key landing on an occupied
// bucket is counted as a collision.
type HashTable[T any] struct {
	buckets    []*Item[T]
	hashfn     HashFunc
	count      int64
	unique     int64
	collisions int64
}

// NewHashTable create a table with `nbuckets` chains, hashing keys
// with `hashfn`.
func NewHashTable[T any](nbuckets int, hashfn HashFunc) *HashTable[T] {
	if nbuckets <= 0 {
		nbuckets = DefaultBuckets
	}
	if hashfn == nil {
		hashfn = RSHash
	}
	return &HashTable[T]{buckets: make([]*Item[T], nbuckets), hashfn: hashfn}
}

// Insert value under key.
func (h *HashTable[T]) Insert(key string, value T) {
	h.count++
	index := h.hashfn(key) % uint64(len(h.buckets))
	item := h.buckets[index]
	if item == nil {
		h.buckets[index] = &Item[T]{Key: key, Values: []T{value}}
		h.unique++
		return
	}
	for {
		if item.Key == key {
			item.Values = append(item.Values, value)
			return
		} else if item.next == nil {
			break
		}
		item = item.next
	}
	item.next = &Item[T]{Key: key, Values: []T{value}}
	h.unique++
	h.collisions++
}

// Search return all values under key, nil if key is absent.
func (h *HashTable[T]) Search(key string) []T {
	index := h.hashfn(key) % uint64(len(h.buckets))
	for item := h.buckets[index]; item != nil; item = item.next {
		if item.Key == key {
			return item.Values
		}
	}
	return nil
}

// Count return the number of values inserted.
func (h *HashTable[T]) Count() int64 {
	return h.count
}

// Unique return the number of distinct keys.
func (h *HashTable[T]) Unique() int64 {
	return h.unique
}

// Collisions return the number of keys that were chained behind
// another key in the same bucket.
func (h *HashTable[T]) Collisions() int64 {
	return h.collisions
}

// Buckets return the chain of items in each bucket, in bucket order.
// Empty buckets have a nil chain.
func (h *HashTable[T]) Buckets() [][]*Item[T] {
	chains := make([][]*Item[T], len(h.buckets))
	for i, item := range h.buckets {
		for ; item != nil; item = item.next {
			chains[i] = append(chains[i], item)
		}
	}
	return chains
}
