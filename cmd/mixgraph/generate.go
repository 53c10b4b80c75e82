package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mixgraph/mixgraph/effectgraph"
)

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	rulesPath := fs.String("rules", "rules.json", "rule configuration file")
	outPath := fs.String("out", "graph.bin", "output path for the graph artifact")
	format := fs.String("format", "binary", "artifact encoding: binary, json, or msgpack")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mixgraph generate [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Builds the effect-transition graph from a rule configuration and writes it to disk.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n  mixgraph generate -rules rules.json -out graph.bin\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	mr, err := loadRules(*rulesPath)
	if err != nil {
		return err
	}

	enc := newEncoder()
	log.Printf("generate: building graph over %d nodes", enc.MaximumIndex())

	start := time.Now()
	g := effectgraph.Build(mr, enc)
	log.Printf("generate: built %d nodes in %s", g.M(), time.Since(start))

	if err := saveGraph(*format, *outPath, enc.N(), enc.K(), g); err != nil {
		return fmt.Errorf("write graph artifact: %w", err)
	}
	log.Printf("generate: wrote %s", *outPath)
	return nil
}
