// Package bench build every search structure over the same dataset,
// time the build and the search for one target, and report matches
// and timings in the layout consumed by the plotting scripts.
package bench

import "fmt"
import "time"
import "errors"
import "context"

import humanize "github.com/dustin/go-humanize"
import "github.com/prometheus/client_golang/prometheus"

import "github.com/emokater/data-search-algorithms/flower"
import "github.com/emokater/data-search-algorithms/lib"
import "github.com/emokater/data-search-algorithms/rbt"
import "github.com/emokater/data-search-algorithms/search"

// ErrSettings is returned for settings that cannot be used.
var ErrSettings = errors.New("bench.settings")

// ErrEmptyDataset is returned when a dataset has no records.
var ErrEmptyDataset = errors.New("bench.emptydataset")

// Structures measured by a run, also used as metric labels and report
// file suffixes.
const (
	Linear   = "linear"
	Binary   = "binary"
	RBTree   = "rb"
	Hash     = "hash"
	Multimap = "multimap"
)

// Structures in report order.
var Structures = []string{Linear, Binary, RBTree, Hash, Multimap}

// Timing of a single structure.
type Timing struct {
	Build  time.Duration
	Search time.Duration
}

// Result of searching one dataset.
type Result struct {
	Size    int
	Target  flower.Flower
	Records []flower.Flower

	Linear   []int
	Binary   []*search.BSTNode[flower.Flower]
	RBTree   *rbt.Node[flower.Flower]
	Hash     []flower.Flower
	Multimap []flower.Flower

	Table  *search.HashTable[flower.Flower]
	Tree   *rbt.Tree[flower.Flower]
	Timing map[string]Timing
}

// Collisions in the hash table built for this result.
func (r *Result) Collisions() int64 {
	return r.Table.Collisions()
}

// Bench run search benchmarks over datasets.
type Bench struct {
	name      string
	registry  *prometheus.Registry
	durations *prometheus.HistogramVec
	logprefix string

	// settings
	datadir  string
	outdir   string
	infofile string
	sizes    []int64
	target   string
	buckets  int64
	hashfn   search.HashFunc
	validate bool
	rbtsetts lib.Settings
	setts    lib.Settings
}

// New create a benchmark runner, `setts` is mixed over
// Defaultsettings().
func New(name string, setts lib.Settings) (*Bench, error) {
	b := &Bench{name: name, logprefix: fmt.Sprintf("BENCH [%s]", name)}
	setts = make(lib.Settings).Mixin(Defaultsettings(), setts)
	if err := b.readsettings(setts); err != nil {
		return nil, err
	}
	b.setts = setts
	b.registry, b.durations = newmetrics()
	return b, nil
}

// Target pick the record to search for in `flowers`. An empty target
// setting picks the first record.
func (b *Bench) Target(flowers []flower.Flower) (flower.Flower, error) {
	if len(flowers) == 0 {
		return flower.Flower{}, ErrEmptyDataset
	} else if b.target == "" {
		return flowers[0], nil
	}
	for _, f := range flowers {
		if f.Key() == b.target {
			return f, nil
		}
	}
	return flower.Flower{Name: b.target}, nil
}

// Run build and search every structure for `target`. Context is
// checked between structures.
func (b *Bench) Run(
	ctx context.Context, flowers []flower.Flower,
	target flower.Flower) (*Result, error) {

	if len(flowers) == 0 {
		return nil, ErrEmptyDataset
	}
	r := &Result{
		Size: len(flowers), Target: target, Records: flowers,
		Timing: make(map[string]Timing),
	}
	steps := []func(*Result, []flower.Flower) error{
		b.runlinear, b.runbinary, b.runrbtree, b.runhash, b.runmultimap,
	}
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step(r, flowers); err != nil {
			return nil, fmt.Errorf("%v: %w", Structures[i], err)
		}
	}
	for _, name := range Structures {
		timing := r.Timing[name]
		b.observe(name, "build", timing.Build)
		b.observe(name, "search", timing.Search)
	}

	fmsg := "%v %v records, %v matches for %q, %v collisions\n"
	infof(
		fmsg, b.logprefix, humanize.Comma(int64(r.Size)), len(r.Linear),
		target.Name, r.Collisions())
	return r, nil
}

func (b *Bench) runlinear(r *Result, flowers []flower.Flower) error {
	start := time.Now()
	r.Linear = search.LinearSearchAll(flowers, r.Target, flower.Flower.Equal)
	r.Timing[Linear] = Timing{Search: time.Since(start)}
	return nil
}

func (b *Bench) runbinary(r *Result, flowers []flower.Flower) error {
	start := time.Now()
	tree := search.NewBST(flower.ByName)
	for _, f := range flowers {
		tree.Insert(f)
	}
	timing := Timing{Build: time.Since(start)}

	start = time.Now()
	r.Binary = tree.SearchAll(r.Target)
	timing.Search = time.Since(start)
	r.Timing[Binary] = timing
	return nil
}

func (b *Bench) runrbtree(r *Result, flowers []flower.Flower) error {
	start := time.Now()
	name := fmt.Sprintf("%v-%v", b.name, len(flowers))
	tree := rbt.NewWith(name, flower.ByName, b.rbtsetts, flowers[0])
	for _, f := range flowers[1:] {
		tree.Insert(f)
	}
	timing := Timing{Build: time.Since(start)}
	if b.validate {
		if err := tree.Check(); err != nil {
			return err
		}
	}

	start = time.Now()
	r.RBTree = tree.SearchAll(r.Target)
	timing.Search = time.Since(start)
	r.Timing[RBTree], r.Tree = timing, tree
	debugf("%v tree %v\n", b.logprefix, lib.Prettystats(tree.Stats(), false))
	return nil
}

func (b *Bench) runhash(r *Result, flowers []flower.Flower) error {
	start := time.Now()
	table := search.NewHashTable[flower.Flower](int(b.buckets), b.hashfn)
	for _, f := range flowers {
		table.Insert(f.Key(), f)
	}
	timing := Timing{Build: time.Since(start)}

	start = time.Now()
	r.Hash = table.Search(r.Target.Key())
	timing.Search = time.Since(start)
	r.Timing[Hash], r.Table = timing, table
	return nil
}

func (b *Bench) runmultimap(r *Result, flowers []flower.Flower) error {
	start := time.Now()
	mm := search.NewMultimap[flower.Flower]()
	for _, f := range flowers {
		mm.Insert(f.Key(), f)
	}
	timing := Timing{Build: time.Since(start)}

	start = time.Now()
	r.Multimap = mm.EqualRange(r.Target.Key())
	timing.Search = time.Since(start)
	r.Timing[Multimap] = timing
	return nil
}
