package main

import "os"
import "fmt"
import "path/filepath"

import humanize "github.com/dustin/go-humanize"
import "github.com/urfave/cli/v2"

import "github.com/emokater/data-search-algorithms/flower"

var cmdGen = &cli.Command{
	Name:  "gen",
	Usage: "write synthetic flower datasets, one file per size",
	Flags: []cli.Flag{
		datadirFlag(),
		sizesFlag(),
		&cli.IntFlag{
			Name:  "uniq",
			Usage: "distinct names per dataset, 0 for size/10",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed, same seed generates same datasets",
			Value: 1,
		},
	},
	Action: runGen,
}

func runGen(cctx *cli.Context) error {
	datadir := cctx.String("datadir")
	if err := os.MkdirAll(datadir, 0755); err != nil {
		return err
	}
	for _, size := range cctx.Int64Slice("sizes") {
		uniq := cctx.Int("uniq")
		if uniq <= 0 {
			uniq = int(size / 10)
		}
		flowers := flower.Generate(int(size), cctx.Int64("seed")+size, uniq)

		filename := filepath.Join(datadir, fmt.Sprintf("dataset_%d.csv", size))
		fd, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := flower.WriteCSV(fd, flowers); err != nil {
			fd.Close()
			return fmt.Errorf("%v: %w", filename, err)
		}
		if err := fd.Close(); err != nil {
			return err
		}
		fmsg := "%v: %v records, %v names\n"
		fmt.Printf(fmsg, filename, humanize.Comma(size), humanize.Comma(int64(uniq)))
	}
	return nil
}
