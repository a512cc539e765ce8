// Package search implement the structures that the red-black tree is
// measured against: linear scan, plain binary search tree, chained
// hash table and a sorted multimap.
package search

// LinearSearch return the index of the first element in data[start:]
// equal to `target`, -1 if there is none.
func LinearSearch[T any](data []T, start int, target T, eq func(a, b T) bool) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(data); i++ {
		if eq(data[i], target) {
			return i
		}
	}
	return -1
}

// LinearSearchAll return the indices of all elements equal to
// `target`, in increasing order.
func LinearSearchAll[T any](data []T, target T, eq func(a, b T) bool) []int {
	indices := []int{}
	for i := LinearSearch(data, 0, target, eq); i >= 0; {
		indices = append(indices, i)
		i = LinearSearch(data, i+1, target, eq)
	}
	return indices
}
