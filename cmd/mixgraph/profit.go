package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mixgraph/mixgraph/artifact"
	"github.com/mixgraph/mixgraph/baseproduct"
	"github.com/mixgraph/mixgraph/query"
)

func runProfit(args []string) error {
	fs := flag.NewFlagSet("profit", flag.ExitOnError)
	resultsFile := fs.String("results", "", "results artifact to read (required)")
	format := fs.String("format", "binary", "artifact encoding: binary, json, or msgpack")
	productName := fs.String("product", "", "base product name, e.g. Cocaine (required)")
	markup := fs.Float64("markup", 0, "fractional markup applied on top of the base price")
	maxPrice := fs.Float64("max-price", query.NoMaxPrice, "sell price cap")
	maxMixins := fs.Uint("max-mixins", query.NoMixinCap, "maximum recipe length to consider")
	topK := fs.Int("k", 10, "number of results to print")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mixgraph profit -results FILE -product NAME [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Ranks recipes by profit for one base product.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n  mixgraph profit -results out/results_Cocaine.bin -product Cocaine -markup 0.1 -k 5\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *resultsFile == "" || *productName == "" {
		fs.Usage()
		return fmt.Errorf("-results and -product are both required")
	}

	product, err := parseProduct(*productName)
	if err != nil {
		return err
	}

	_, _, _, labels, quantizedMultipliers, err := loadResults(*format, *resultsFile)
	if err != nil {
		return fmt.Errorf("read results artifact: %w", err)
	}

	multipliers := make([]float64, len(quantizedMultipliers))
	for i, q := range quantizedMultipliers {
		multipliers[i] = artifact.DequantizePrice(q)
	}

	entries, err := query.ProfitRank(labels, multipliers, baseproduct.BasePrice[product], *markup, *maxPrice, uint8(*maxMixins), *topK)
	if err != nil {
		return fmt.Errorf("rank profits: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("no profitable recipes found")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("node=%d profit=%.2f sell_price=%.2f %s\n", e.Node, e.Profit, e.SellPrice, formatRecipe(e.Recipe))
	}
	return nil
}
