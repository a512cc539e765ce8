package bench

import "io"
import "os"
import "fmt"
import "bufio"
import "strconv"
import "path/filepath"

import "github.com/emokater/data-search-algorithms/flock"
import "github.com/emokater/data-search-algorithms/flower"

// Report write matches of every structure into <outdir>/<size>_*.txt
// and append the timings to infofile.
func (b *Bench) Report(r *Result) error {
	if err := os.MkdirAll(b.outdir, 0755); err != nil {
		return err
	}
	writers := map[string]func(io.Writer, *Result) error{
		Linear:   writelinear,
		Binary:   writebinary,
		RBTree:   writerbtree,
		Hash:     writehash,
		Multimap: writemultimap,
	}
	for _, name := range Structures {
		filename := filepath.Join(b.outdir, fmt.Sprintf("%d_%s.txt", r.Size, name))
		if err := writefile(filename, r, writers[name]); err != nil {
			return err
		}
	}

	// concurrent runs may share the infofile.
	return flock.With(b.infofile+".lock", func() error {
		flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
		fd, err := os.OpenFile(b.infofile, flags, 0644)
		if err != nil {
			return err
		}
		if err := WriteTimings(fd, r); err != nil {
			fd.Close()
			return err
		}
		return fd.Close()
	})
}

// WriteTimings write search timings in seconds for result `r`,
//
//	Datasets<size>:
//	1. Linear search time: <seconds>
//	2. Binary search tree time: <seconds>
//	3. RB Tree search time: <seconds>
//	4. HASH search time: <seconds>
//	Collisions: <n>
//	5. Multimap time: <seconds>
func WriteTimings(w io.Writer, r *Result) error {
	seconds := func(name string) string {
		return strconv.FormatFloat(r.Timing[name].Search.Seconds(), 'g', 6, 64)
	}
	_, err := fmt.Fprintf(
		w,
		"Datasets%d:\n"+
			"1. Linear search time: %s\n"+
			"2. Binary search tree time: %s\n"+
			"3. RB Tree search time: %s\n"+
			"4. HASH search time: %s\n"+
			"Collisions: %d\n"+
			"5. Multimap time: %s\n\n\n",
		r.Size, seconds(Linear), seconds(Binary), seconds(RBTree),
		seconds(Hash), r.Collisions(), seconds(Multimap))
	return err
}

func writefile(filename string, r *Result, fn func(io.Writer, *Result) error) error {
	fd, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fd)
	if err := fn(w, r); err != nil {
		fd.Close()
		return fmt.Errorf("%v: %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func writelinear(w io.Writer, r *Result) error {
	for _, index := range r.Linear {
		line := fmt.Sprintf("%d: \t%s\n", index, flower.Format(r.Records[index]))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writebinary(w io.Writer, r *Result) error {
	for i, nd := range r.Binary {
		line := fmt.Sprintf("%d %p: %s\n", i+1, nd, flower.Format(nd.Value))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writerbtree(w io.Writer, r *Result) error {
	if r.RBTree == nil {
		_, err := fmt.Fprintf(w, "Key %q not found\n", r.Target.Name)
		return err
	}
	fmsg := "Node holding all records with the key: %p\nRecords: \n"
	if _, err := fmt.Fprintf(w, fmsg, r.RBTree); err != nil {
		return err
	}
	for i, f := range r.RBTree.Values() {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, flower.Format(f)); err != nil {
			return err
		}
	}
	return nil
}

func writehash(w io.Writer, r *Result) error {
	for i, chain := range r.Table.Buckets() {
		line := fmt.Sprintf("%d   \t", i)
		if len(chain) == 0 {
			line += "-"
		}
		for _, item := range chain {
			line += fmt.Sprintf("%s(%d)   \t", item.Key, len(item.Values))
		}
		if _, err := io.WriteString(w, line+"\n\n"); err != nil {
			return err
		}
	}
	fmsg := "\nKey: %s\nUnique count: %d\nCollisions: %d"
	_, err := fmt.Fprintf(
		w, fmsg, r.Target.Name, r.Table.Unique(), r.Table.Collisions())
	return err
}

func writemultimap(w io.Writer, r *Result) error {
	for _, f := range r.Multimap {
		line := fmt.Sprintf("%s -> %s\n", f.Name, flower.Format(f))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
