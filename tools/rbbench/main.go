// rbbench generate flower datasets, benchmark the search structures
// over them and inspect the red-black tree built from a dataset.
package main

import "fmt"
import "os"

import _ "github.com/joho/godotenv/autoload"

import "github.com/carlmjohnson/versioninfo"
import golog "github.com/prataprc/golog"
import "github.com/urfave/cli/v2"

import "github.com/emokater/data-search-algorithms/bench"
import "github.com/emokater/data-search-algorithms/lib"
import "github.com/emokater/data-search-algorithms/log"

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "rbbench",
		Usage:   "benchmark red-black tree against other search structures",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "ignore, fatal, error, warn, info, verbose, debug, trace",
			Value:   "warn",
			EnvVars: []string{"RBBENCH_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "append log to file instead of stdout",
			EnvVars: []string{"RBBENCH_LOG_FILE"},
		},
		&cli.StringSliceFlag{
			Name:    "log-components",
			Usage:   "enable logging for components, bench, rbt or all",
			Value:   cli.NewStringSlice("bench"),
			EnvVars: []string{"RBBENCH_LOG_COMPONENTS"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		setts := lib.Settings{
			"log.level": cctx.String("log-level"),
			"log.file":  cctx.String("log-file"),
		}
		log.SetLogger(nil, setts)
		// tree statistics go through golog.
		golog.SetLogger(nil, map[string]interface{}(setts))
		bench.LogComponents(cctx.StringSlice("log-components")...)
		return nil
	}
	app.Commands = []*cli.Command{
		cmdGen,
		cmdRun,
		cmdDump,
		cmdSearch,
	}
	return app.Run(args)
}

func datadirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "datadir",
		Usage:   "directory holding dataset_<size>.csv files",
		Value:   "datasets",
		EnvVars: []string{"RBBENCH_DATADIR"},
	}
}

func sizesFlag() cli.Flag {
	return &cli.Int64SliceFlag{
		Name:  "sizes",
		Usage: "dataset sizes",
		Value: cli.NewInt64Slice(
			100, 200, 500, 1000, 2000, 5000, 10000, 20000, 50000, 100000,
		),
		EnvVars: []string{"RBBENCH_SIZES"},
	}
}
