package bench

import "fmt"

import "github.com/emokater/data-search-algorithms/lib"
import "github.com/emokater/data-search-algorithms/rbt"
import "github.com/emokater/data-search-algorithms/search"

// Defaultsettings for benchmark runs.
//
// "datadir" (string, default: "datasets")
//		Directory holding dataset_<size>.csv files.
//
// "outdir" (string, default: "out")
//		Directory to write <size>_<structure>.txt result files.
//
// "infofile" (string, default: "info_time.txt")
//		Timings for every dataset are appended to this file.
//
// "sizes" ([]int64)
//		Dataset sizes to run, in order.
//
// "target" (string, default: "")
//		Name to search for, empty string picks the first record of
//		each dataset.
//
// "hash.buckets" (int64, default: 14)
//		Number of buckets in the chained hash table.
//
// "hash.func" (string, default: "rs")
//		Hash function for the hash table, "rs" or "xxhash".
//
// "validate" (bool, default: true)
//		Check the red-black tree's invariants after it is built.
//
// "rbt.*"
//		Settings passed on to the red-black tree, refer to
//		rbt.Defaultsettings().
func Defaultsettings() lib.Settings {
	setts := lib.Settings{
		"datadir":  "datasets",
		"outdir":   "out",
		"infofile": "info_time.txt",
		"sizes": []int64{
			100, 200, 500, 1000, 2000, 5000, 10000, 20000, 50000, 100000,
		},
		"target":       "",
		"hash.buckets": int64(14),
		"hash.func":    "rs",
		"validate":     true,
	}
	return setts.Mixin(rbt.Defaultsettings().AddPrefix("rbt."))
}

func (b *Bench) readsettings(setts lib.Settings) error {
	var err error

	b.datadir = setts.String("datadir")
	b.outdir = setts.String("outdir")
	b.infofile = setts.String("infofile")
	b.sizes = setts.Int64s("sizes")
	b.target = setts.String("target")
	b.buckets = setts.Int64("hash.buckets")
	b.validate = setts.Bool("validate")
	b.rbtsetts = setts.Section("rbt.").Trim("rbt.")
	if b.hashfn, err = search.Hashfunc(setts.String("hash.func")); err != nil {
		return fmt.Errorf("%w: %v", ErrSettings, err)
	}
	if b.buckets <= 0 {
		fmsg := "%w: hash.buckets should be > 0, got %v"
		return fmt.Errorf(fmsg, ErrSettings, b.buckets)
	}
	return nil
}
