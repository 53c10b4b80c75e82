package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mixgraph/mixgraph/artifact"
	"github.com/mixgraph/mixgraph/baseproduct"
	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/mosp"
)

func runShortestPath(args []string) error {
	fs := flag.NewFlagSet("shortest-path", flag.ExitOnError)
	graphPath := fs.String("graph", "graph.bin", "input graph artifact")
	rulesPath := fs.String("rules", "rules.json", "rule configuration file (for price multipliers)")
	outDir := fs.String("out-dir", ".", "directory to write one results artifact per base product")
	format := fs.String("format", "binary", "artifact encoding: binary, json, or msgpack")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mixgraph shortest-path [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the label-setting search from every base product's starting effect set,\nwriting one results artifact per product.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n  mixgraph shortest-path -graph graph.bin -rules rules.json -out-dir ./out\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	n, k, g, err := loadGraph(*format, *graphPath)
	if err != nil {
		return fmt.Errorf("read graph artifact: %w", err)
	}
	enc := combinatorial.New(n, k)

	mr, err := loadRules(*rulesPath)
	if err != nil {
		return err
	}

	priceMultipliers := make([]uint16, g.M())
	for idx := uint32(0); idx < g.M(); idx++ {
		effects := effect.FromBits(enc.Decode(idx))
		priceMultipliers[idx] = artifact.QuantizePrice(mr.PriceMultiplier(effects))
	}

	for _, product := range baseproduct.All {
		startIdx := enc.Encode(baseproduct.InherentEffects[product].Bits())

		start := time.Now()
		permanent := mosp.Run(g, startIdx)
		log.Printf("shortest-path: %s settled in %s", product, time.Since(start))

		path := resultsPath(*outDir, *format, product)
		if err := saveResults(*format, path, n, k, uint8(product), permanent, priceMultipliers); err != nil {
			return fmt.Errorf("write results artifact for %s: %w", product, err)
		}
		log.Printf("shortest-path: wrote %s", path)
	}

	return nil
}
