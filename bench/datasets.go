package bench

import "fmt"
import "context"
import "path/filepath"

import "github.com/emokater/data-search-algorithms/flower"
import "github.com/emokater/data-search-algorithms/lib"

// DatasetPath return the path of dataset file for `size`.
func (b *Bench) DatasetPath(size int64) string {
	return filepath.Join(b.datadir, fmt.Sprintf("dataset_%d.csv", size))
}

// RunDatasets load, run and report every configured dataset size in
// order. Stops at the first failure or when ctx is done.
func (b *Bench) RunDatasets(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, 0, len(b.sizes))
	for _, size := range b.sizes {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		filename := b.DatasetPath(size)
		flowers, err := flower.Load(filename)
		if err != nil {
			return results, err
		}
		target, err := b.Target(flowers)
		if err != nil {
			return results, fmt.Errorf("%v: %w", filename, err)
		}
		if int64(len(flowers)) != size {
			fmsg := "%v %v has %v records, expected %v\n"
			warnf(fmsg, b.logprefix, filename, len(flowers), size)
		}

		r, err := b.Run(ctx, flowers, target)
		if err != nil {
			return results, fmt.Errorf("%v: %w", filename, err)
		}
		if err := b.Report(r); err != nil {
			return results, err
		}
		results = append(results, r)
	}
	b.Log()
	return results, nil
}

// Log the duration histograms gathered so far.
func (b *Bench) Log() {
	stats, err := b.Stats()
	if err != nil {
		warnf("%v gather: %v\n", b.logprefix, err)
		return
	}
	infof("%v durations %v\n", b.logprefix, lib.Prettystats(stats, false))
}
