package rbt

import "github.com/emokater/data-search-algorithms/lib"

// Defaultsettings for a red-black tree instance.
//
// "values.capacity" (int64, default: 1)
//		Initial capacity of the value list in each node. Datasets with
//		many records per key can reserve more to avoid re-allocation.
//
// "validate" (bool, default: false)
//		Validate all invariants after every insert that adds a node.
//		Expensive, meant for tests and debugging.
//
// "depth.histogram" (int64, default: 64)
//		Upper bound of the histogram tracking the depth at which
//		values are inserted.
//
func Defaultsettings() lib.Settings {
	return lib.Settings{
		"values.capacity": int64(1),
		"validate":        false,
		"depth.histogram": int64(64),
	}
}

func (t *Tree[T]) readsettings(setts lib.Settings) {
	t.valcapacity = setts.Int64("values.capacity")
	t.dovalidate = setts.Bool("validate")
	t.maxdepth = setts.Int64("depth.histogram")
}
