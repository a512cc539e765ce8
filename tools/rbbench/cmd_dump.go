package main

import "os"
import "fmt"

import "github.com/urfave/cli/v2"

import "github.com/emokater/data-search-algorithms/flower"
import "github.com/emokater/data-search-algorithms/lib"
import "github.com/emokater/data-search-algorithms/rbt"

var cmdDump = &cli.Command{
	Name:      "dump",
	Usage:     "load a dataset into red-black tree and print it",
	ArgsUsage: "<dataset.csv>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dot",
			Usage: "print graphviz dot script instead of ascii tree",
		},
		&cli.BoolFlag{
			Name:  "pprint",
			Usage: "print one node per line, in pre-order",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "print tree statistics",
		},
	},
	Action: runDump,
}

func runDump(cctx *cli.Context) error {
	tree, err := loadtree(cctx)
	if err != nil {
		return err
	}
	defer tree.Destroy()

	switch {
	case cctx.Bool("dot"):
		tree.Dotdump(os.Stdout)
	case cctx.Bool("pprint"):
		if err := tree.Pprint(os.Stdout); err != nil {
			return err
		}
	default:
		fmt.Print(tree.Treeprint())
	}
	if cctx.Bool("stats") {
		fmt.Println(lib.Prettystats(tree.Fullstats(), true))
		tree.Log(true)
	}
	return nil
}

func loadtree(cctx *cli.Context) (*rbt.Tree[flower.Flower], error) {
	if cctx.NArg() != 1 {
		return nil, fmt.Errorf("expected one dataset file, got %v", cctx.NArg())
	}
	filename := cctx.Args().First()
	flowers, err := flower.Load(filename)
	if err != nil {
		return nil, err
	}
	tree := rbt.New(filename, flower.ByName, nil)
	for _, f := range flowers {
		tree.Insert(f)
	}
	if err := tree.Check(); err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return tree, nil
}
