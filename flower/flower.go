// Package flower define the record type searched by every structure
// in this repository, along with its CSV codec and a generator for
// synthetic datasets.
//
// Records are ordered and compared on their name alone, two flowers
// with the same name are equal even if their other fields differ.
package flower

import "strings"

// Flower record.
type Flower struct {
	Name    string
	Color   string
	Smell   string
	Regions []string
}

// Key return the sort key of this flower.
func (f Flower) Key() string {
	return f.Name
}

// Equal return true if both flowers have the same name.
func (f Flower) Equal(other Flower) bool {
	return f.Name == other.Name
}

// Less return true if f's name sorts before other's name.
func (f Flower) Less(other Flower) bool {
	return f.Name < other.Name
}

func (f Flower) String() string {
	return Format(f)
}

// ByName is the ordering used to index flowers in trees.
func ByName(a, b Flower) bool {
	return a.Less(b)
}

// Compare flowers by name, return -1, 0 or +1.
func Compare(a, b Flower) int {
	return strings.Compare(a.Key(), b.Key())
}

// Format return the flower as name;color;smell;region1,region2...
func Format(f Flower) string {
	ss := []string{f.Name, f.Color, f.Smell, strings.Join(f.Regions, ",")}
	return strings.Join(ss, ";")
}
