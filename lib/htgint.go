package lib

import "sort"
import "fmt"
import "strings"
import "strconv"

// HistogramInt64 statistical histogram, samples are counted in
// buckets of `width` between [from, till), samples below `from` and
// samples at or above `till` are counted in two overflow buckets.
type HistogramInt64 struct {
	AverageInt64
	histogram []int64
	from      int64
	till      int64
	width     int64
}

// NewhistorgramInt64 return a new histogram object.
func NewhistorgramInt64(from, till, width int64) *HistogramInt64 {
	if width <= 0 {
		panic(fmt.Errorf("histogram width should be > 0, got %v", width))
	}
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.histogram = make([]int64, 1+((till-from)/width)+1)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.AverageInt64.Add(sample)
	if sample < h.from {
		h.histogram[0]++
	} else if sample >= h.till {
		h.histogram[len(h.histogram)-1]++
	} else {
		h.histogram[((sample-h.from)/h.width)+1]++
	}
}

// Stats return a cumulative map of histogram, each key is the upper
// bound of a bucket and its value is the count of samples below that
// bound. Key "+" counts all samples. Trailing empty buckets are left
// out.
func (h *HistogramInt64) Stats() map[string]int64 {
	last := len(h.histogram) - 1
	for last >= 0 && h.histogram[last] == 0 {
		last--
	}
	m, below := make(map[string]int64), int64(0)
	for i := 0; i < last; i++ {
		below += h.histogram[i]
		m[strconv.FormatInt(h.bound(i), 10)] = below
	}
	if last >= 0 {
		m["+"] = below + h.histogram[last]
	}
	return m
}

// upper bound of bucket i.
func (h *HistogramInt64) bound(i int) int64 {
	return h.from + int64(i)*h.width
}

// Fullstats includes mean,variance,stddeviance in the Stats().
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	hmap := make(map[string]interface{})
	for k, v := range h.Stats() {
		hmap[k] = v
	}
	stats := h.AverageInt64.Stats()
	stats["histogram"] = hmap
	return stats
}

// Logstring return Fullstats as a single line, keys sorted and the
// histogram buckets in ascending order of their bound.
func (h *HistogramInt64) Logstring() string {
	stats := h.AverageInt64.Stats()
	parts := make([]string, 0, len(stats)+1)
	for _, key := range Sortedkeys(stats) {
		parts = append(parts, fmt.Sprintf(`"%v": %v`, key, stats[key]))
	}

	cumm := h.Stats()
	bounds := make([]int64, 0, len(cumm))
	for key := range cumm {
		if n, err := strconv.ParseInt(key, 10, 64); err == nil {
			bounds = append(bounds, n)
		}
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })
	buckets := make([]string, 0, len(cumm))
	for _, n := range bounds {
		buckets = append(buckets, fmt.Sprintf(`"%v": %v`, n, cumm[strconv.FormatInt(n, 10)]))
	}
	if total, ok := cumm["+"]; ok {
		buckets = append(buckets, fmt.Sprintf(`"+": %v`, total))
	}
	histogram := "{" + strings.Join(buckets, ",") + "}"
	parts = append(parts, fmt.Sprintf(`"histogram": %v`, histogram))
	return "{" + strings.Join(parts, ",") + "}"
}
