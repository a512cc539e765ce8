package main

import "fmt"

import "github.com/urfave/cli/v2"

import "github.com/emokater/data-search-algorithms/flower"

var cmdSearch = &cli.Command{
	Name:      "search",
	Usage:     "look up a name in the red-black tree built from a dataset",
	ArgsUsage: "<dataset.csv>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "flower name to search",
			Required: true,
		},
	},
	Action: runSearch,
}

func runSearch(cctx *cli.Context) error {
	tree, err := loadtree(cctx)
	if err != nil {
		return err
	}
	defer tree.Destroy()

	name := cctx.String("name")
	nd := tree.SearchAll(flower.Flower{Name: name})
	if nd == nil {
		return fmt.Errorf("%q not found", name)
	}
	for i, f := range nd.Values() {
		fmt.Printf("%d: %s\n", i+1, flower.Format(f))
	}
	return nil
}
