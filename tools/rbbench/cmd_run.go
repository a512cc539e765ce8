package main

import "fmt"
import "strconv"

import "github.com/urfave/cli/v2"

import "github.com/emokater/data-search-algorithms/bench"
import "github.com/emokater/data-search-algorithms/lib"

var cmdRun = &cli.Command{
	Name:  "run",
	Usage: "search every dataset with all structures and write reports",
	Flags: []cli.Flag{
		datadirFlag(),
		sizesFlag(),
		&cli.StringFlag{
			Name:    "outdir",
			Usage:   "directory for <size>_<structure>.txt reports",
			Value:   "out",
			EnvVars: []string{"RBBENCH_OUTDIR"},
		},
		&cli.StringFlag{
			Name:  "infofile",
			Usage: "append timings to this file",
			Value: "info_time.txt",
		},
		&cli.StringFlag{
			Name:  "target",
			Usage: "name to search, defaults to first record of each dataset",
		},
		&cli.StringFlag{
			Name:  "hash",
			Usage: "hash function for the hash table, rs or xxhash",
			Value: "rs",
		},
		&cli.Int64Flag{
			Name:  "buckets",
			Usage: "number of hash table buckets",
			Value: 14,
		},
		&cli.BoolFlag{
			Name:  "validate",
			Usage: "check red-black tree invariants after building",
			Value: true,
		},
	},
	Action: runRun,
}

func runRun(cctx *cli.Context) error {
	setts := lib.Settings{
		"datadir":      cctx.String("datadir"),
		"outdir":       cctx.String("outdir"),
		"infofile":     cctx.String("infofile"),
		"sizes":        cctx.Int64Slice("sizes"),
		"target":       cctx.String("target"),
		"hash.func":    cctx.String("hash"),
		"hash.buckets": cctx.Int64("buckets"),
		"validate":     cctx.Bool("validate"),
	}
	b, err := bench.New("rbbench", setts)
	if err != nil {
		return err
	}
	results, err := b.RunDatasets(cctx.Context)
	for _, r := range results {
		fmt.Printf("%8d records, %4d matches", r.Size, len(r.Linear))
		for _, name := range bench.Structures {
			seconds := r.Timing[name].Search.Seconds()
			fmt.Printf(", %v %v", name, strconv.FormatFloat(seconds, 'g', 4, 64))
		}
		fmt.Printf(", collisions %v\n", r.Collisions())
	}
	return err
}
