package bench

import "os"
import "bytes"
import "context"
import "strings"
import "strconv"
import "testing"
import "path/filepath"

import "github.com/stretchr/testify/require"

import "github.com/emokater/data-search-algorithms/flower"
import "github.com/emokater/data-search-algorithms/lib"

func testsettings(dir string) lib.Settings {
	return lib.Settings{
		"datadir":  filepath.Join(dir, "datasets"),
		"outdir":   filepath.Join(dir, "out"),
		"infofile": filepath.Join(dir, "info_time.txt"),
		"sizes":    []int64{100, 300},
	}
}

func writedataset(t *testing.T, dir string, size int) []flower.Flower {
	flowers := flower.Generate(size, int64(size), size/10)
	require.NoError(t, os.MkdirAll(dir, 0755))
	fd, err := os.Create(filepath.Join(dir, "dataset_"+strconv.Itoa(size)+".csv"))
	require.NoError(t, err)
	defer fd.Close()
	require.NoError(t, flower.WriteCSV(fd, flowers))
	return flowers
}

func TestNewSettings(t *testing.T) {
	b, err := New("defaults", nil)
	require.NoError(t, err)
	require.Equal(t, int64(14), b.buckets)
	require.Equal(t, 10, len(b.sizes))
	require.True(t, b.validate)
	require.Equal(t, int64(1), b.rbtsetts.Int64("values.capacity"))

	_, err = New("badhash", lib.Settings{"hash.func": "md5"})
	require.ErrorIs(t, err, ErrSettings)
	_, err = New("badbuckets", lib.Settings{"hash.buckets": 0})
	require.ErrorIs(t, err, ErrSettings)
}

func TestRun(t *testing.T) {
	b, err := New("run", testsettings(t.TempDir()))
	require.NoError(t, err)

	flowers := flower.Generate(500, 3, 25)
	target, err := b.Target(flowers)
	require.NoError(t, err)
	require.Equal(t, flowers[0], target)

	r, err := b.Run(context.Background(), flowers, target)
	require.NoError(t, err)
	require.Equal(t, 500, r.Size)

	// every structure finds the same records.
	n := len(r.Linear)
	require.True(t, n > 0)
	require.Equal(t, n, len(r.Binary))
	require.Equal(t, n, r.RBTree.Len())
	require.Equal(t, n, len(r.Hash))
	require.Equal(t, n, len(r.Multimap))
	for i, index := range r.Linear {
		f := flowers[index]
		require.Equal(t, f, r.Binary[i].Value)
		require.Equal(t, f, r.RBTree.Values()[i])
		require.Equal(t, f, r.Hash[i])
		require.Equal(t, f, r.Multimap[i])
	}
	require.NoError(t, r.Tree.Check())
	require.Equal(t, int64(500), r.Tree.Count())

	stats, err := b.Stats()
	require.NoError(t, err)
	for _, name := range Structures {
		for _, op := range []string{"build", "search"} {
			m := stats[name+"."+op].(map[string]interface{})
			require.Equal(t, uint64(1), m["samples"], name+"."+op)
		}
	}
}

func TestRunAbsentTarget(t *testing.T) {
	b, err := New("absent", testsettings(t.TempDir()))
	require.NoError(t, err)
	flowers := flower.Generate(50, 9, 5)

	r, err := b.Run(context.Background(), flowers, flower.Flower{Name: "no such flower"})
	require.NoError(t, err)
	require.Equal(t, 0, len(r.Linear))
	require.Equal(t, 0, len(r.Binary))
	require.Nil(t, r.RBTree)
	require.Nil(t, r.Hash)
	require.Equal(t, 0, len(r.Multimap))

	buf := bytes.NewBuffer(nil)
	require.NoError(t, writerbtree(buf, r))
	require.Contains(t, buf.String(), "not found")
}

func TestRunErrors(t *testing.T) {
	b, err := New("errors", testsettings(t.TempDir()))
	require.NoError(t, err)

	_, err = b.Run(context.Background(), nil, flower.Flower{})
	require.ErrorIs(t, err, ErrEmptyDataset)
	_, err = b.Target(nil)
	require.ErrorIs(t, err, ErrEmptyDataset)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.Run(ctx, flower.Generate(10, 1, 2), flower.Flower{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestTarget(t *testing.T) {
	setts := testsettings(t.TempDir())
	flowers := []flower.Flower{
		{Name: "a", Color: "red"}, {Name: "b", Color: "blue"},
	}

	setts["target"] = "b"
	b, err := New("target", setts)
	require.NoError(t, err)
	target, err := b.Target(flowers)
	require.NoError(t, err)
	require.Equal(t, flowers[1], target)

	setts["target"] = "z"
	b, err = New("target", setts)
	require.NoError(t, err)
	target, err = b.Target(flowers)
	require.NoError(t, err)
	require.Equal(t, flower.Flower{Name: "z"}, target)
}

func TestWriteTimings(t *testing.T) {
	b, err := New("timings", testsettings(t.TempDir()))
	require.NoError(t, err)
	flowers := flower.Generate(100, 5, 10)
	r, err := b.Run(context.Background(), flowers, flowers[0])
	require.NoError(t, err)

	buf := bytes.NewBuffer(nil)
	require.NoError(t, WriteTimings(buf, r))
	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "Datasets100:", lines[0])
	prefixes := []string{
		"1. Linear search time: ", "2. Binary search tree time: ",
		"3. RB Tree search time: ", "4. HASH search time: ",
		"Collisions: ", "5. Multimap time: ",
	}
	for i, prefix := range prefixes {
		require.True(t, strings.HasPrefix(lines[i+1], prefix), lines[i+1])
	}
	require.True(t, strings.HasSuffix(buf.String(), "\n\n\n"))
}

func TestRunDatasets(t *testing.T) {
	dir := t.TempDir()
	setts := testsettings(dir)
	datadir := setts.String("datadir")
	ref100 := writedataset(t, datadir, 100)
	writedataset(t, datadir, 300)

	LogComponents("all")
	b, err := New("datasets", setts)
	require.NoError(t, err)
	results, err := b.RunDatasets(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, len(results))
	require.Equal(t, ref100[0], results[0].Target)

	for _, size := range []string{"100", "300"} {
		for _, name := range Structures {
			filename := filepath.Join(dir, "out", size+"_"+name+".txt")
			_, err := os.Stat(filename)
			require.NoError(t, err, filename)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "out", "100_rb.txt"))
	require.NoError(t, err)
	require.Contains(t, string(data), flower.Format(ref100[0]))

	data, err = os.ReadFile(filepath.Join(dir, "out", "100_hash.txt"))
	require.NoError(t, err)
	require.Contains(t, string(data), "Key: "+ref100[0].Name)

	data, err = os.ReadFile(setts.String("infofile"))
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(data), "Datasets100:"))
	require.Equal(t, 1, strings.Count(string(data), "Datasets300:"))

	// missing dataset.
	setts["sizes"] = []int64{100, 999}
	b, err = New("missing", setts)
	require.NoError(t, err)
	results, err = b.RunDatasets(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, len(results))
}
