package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mixgraph/mixgraph/baseproduct"
	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/mosp"
	"github.com/mixgraph/mixgraph/query"
)

func runMetadata(args []string) error {
	fs := flag.NewFlagSet("metadata", flag.ExitOnError)
	resultsDir := fs.String("results-dir", ".", "directory holding one results artifact per base product")
	format := fs.String("format", "binary", "artifact encoding: binary, json, or msgpack")
	rulesPath := fs.String("rules", "", "optional rule configuration file to print price weights from")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mixgraph metadata -results-dir DIR [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints reachability and the cheapest/shortest recipe for every base product.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n  mixgraph metadata -results-dir ./out -rules rules.json\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	var n, k uint8
	var permanentByProduct [baseproduct.Count][][]mosp.Label
	for _, product := range baseproduct.All {
		path := resultsPath(*resultsDir, *format, product)
		loadedN, loadedK, _, labels, _, err := loadResults(*format, path)
		if err != nil {
			return fmt.Errorf("read results artifact for %s: %w", product, err)
		}
		n, k = loadedN, loadedK
		permanentByProduct[product] = labels
	}
	enc := combinatorial.New(n, k)

	summaries, err := query.Summarize(enc, permanentByProduct)
	if err != nil {
		return err
	}

	for _, product := range baseproduct.All {
		s := summaries[product]
		fmt.Printf("%s: reachable=%d\n", product, s.ReachableNodes)
		if s.Cheapest != nil {
			fmt.Printf("  cheapest: node=%d %s\n", s.Cheapest.Node, formatRecipe(s.Cheapest.Recipe))
		}
		if s.Shortest != nil {
			fmt.Printf("  shortest: node=%d %s\n", s.Shortest.Node, formatRecipe(s.Shortest.Recipe))
		}
	}

	if *rulesPath != "" {
		mr, err := loadRules(*rulesPath)
		if err != nil {
			return err
		}
		weights := mr.PriceWeights()
		fmt.Println("price weights:")
		for i := 0; i < effect.N; i++ {
			e := effect.Effect(i)
			if weights[i] != 0 {
				fmt.Printf("  %s: %.3f\n", e, weights[i])
			}
		}
	}

	return nil
}
