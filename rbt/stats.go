package rbt

import "fmt"
import "time"

import humanize "github.com/dustin/go-humanize"
import "github.com/prataprc/golog"

import "github.com/emokater/data-search-algorithms/lib"

// Stats return counters and insert-depth histogram.
func (t *Tree[T]) Stats() map[string]interface{} {
	stats := t.stattree(make(map[string]interface{}))
	stats["h_insertdepth"] = t.h_insertdepth.Fullstats()
	return stats
}

// Fullstats is Stats() along with the shape of the tree, walks the
// entire tree.
func (t *Tree[T]) Fullstats() map[string]interface{} {
	stats := t.Stats()

	h_height := lib.NewhistorgramInt64(1, 256, 1)
	h_values := lib.NewhistorgramInt64(1, 1024, 4)
	t.Traverse(func(nd *Node[T], depth int) bool {
		h_height.Add(int64(depth))
		h_values.Add(int64(len(nd.values)))
		return true
	})
	stats["h_height"] = h_height.Fullstats()
	stats["h_values"] = h_values.Fullstats()
	stats["n_blacks"] = t.countblacks(t.root, 0)

	if x := h_height.Samples(); x != t.Nodes() {
		fmsg := "expected h_height.samples:%v to be same as t.Nodes():%v"
		panic(fmt.Errorf(fmsg, x, t.Nodes()))
	}
	return stats
}

// tree statistics -
func (t *Tree[T]) stattree(stats map[string]interface{}) map[string]interface{} {
	stats["n_count"] = t.n_count
	stats["n_nodes"] = t.n_nodes
	stats["n_inserts"] = t.n_inserts
	stats["n_merges"] = t.n_merges
	stats["n_lookups"] = t.n_lookups
	stats["n_rotations"] = t.n_rotations
	stats["n_recolors"] = t.n_recolors
	stats["n_frees"] = t.n_frees
	return stats
}

// countblacks return the black-height of the tree, counting black
// nodes from `nd` to any leaf. Panics if paths don't agree.
func (t *Tree[T]) countblacks(nd *Node[T], count int64) int64 {
	if nd != nil {
		if nd.IsBlack() {
			count++
		}
		x := t.countblacks(nd.left, count)
		y := t.countblacks(nd.right, count)
		if x != y {
			fmsg := "countblacks(): no. of blacks {left,right} : {%v,%v}"
			panic(fmt.Errorf(fmsg, x, y))
		}
		return x
	}
	return count
}

// Log statistics of this tree, if `full` walk the tree to include
// its shape. Counters are humanized for readability.
func (t *Tree[T]) Log(full bool) {
	var stats map[string]interface{}
	if full {
		stats = t.Fullstats()
	} else {
		stats = t.Stats()
	}

	fmsg := "%v values %v in %v nodes, %v merged, %v rotations, " +
		"%v recolors, age %v\n"
	log.Infof(
		fmsg, t.logprefix,
		humanize.Comma(t.n_count), humanize.Comma(t.n_nodes),
		humanize.Comma(t.n_merges), humanize.Comma(t.n_rotations),
		humanize.Comma(t.n_recolors),
		humanize.RelTime(t.borntime, time.Now(), "", ""))
	log.Infof("%v insert depth %v\n", t.logprefix, t.h_insertdepth.Logstring())
	if full {
		h_height := stats["h_height"].(map[string]interface{})
		fmsg := "%v height max:%v mean:%v blacks:%v\n"
		log.Infof(
			fmsg, t.logprefix, h_height["max"], h_height["mean"],
			stats["n_blacks"])
	}
	debugf("%v stats %v\n", t.logprefix, lib.Prettystats(stats, false))
}
