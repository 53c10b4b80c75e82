package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/query"
)

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	resultsFile := fs.String("results", "", "results artifact to read (required)")
	format := fs.String("format", "binary", "artifact encoding: binary, json, or msgpack")
	effects := fs.String("effects", "", "comma-separated two-letter effect codes the recipe must contain (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mixgraph search -results FILE -effects CODES\n\n")
		fmt.Fprintf(os.Stderr, "Finds the cheapest and shortest recipe whose effect set contains every\ngiven effect, scanning the whole artifact in parallel.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n  mixgraph search -results out/results_Meth.bin -effects Lf,Tp\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *resultsFile == "" || *effects == "" {
		fs.Usage()
		return fmt.Errorf("-results and -effects are both required")
	}

	n, k, _, labels, _, err := loadResults(*format, *resultsFile)
	if err != nil {
		return fmt.Errorf("read results artifact: %w", err)
	}
	enc := combinatorial.New(n, k)

	target, err := parseEffectCodes(*effects)
	if err != nil {
		return err
	}

	bestCost, bestLength, err := query.InexactMatch(enc, labels, target)
	if err != nil {
		return err
	}

	if bestCost == nil {
		fmt.Println("no recipe found containing the requested effects")
		return nil
	}

	fmt.Printf("cheapest: node=%d %s\n", bestCost.Node, formatRecipe(bestCost.Recipe))
	fmt.Printf("shortest: node=%d %s\n", bestLength.Node, formatRecipe(bestLength.Recipe))
	return nil
}

func formatRecipe(r query.Recipe) string {
	substances := r.Substances()
	steps := make([]string, len(substances))
	for i, s := range substances {
		steps[i] = s.String()
	}
	return fmt.Sprintf("length=%d cost=%d substances=%s", r.Length, r.Cost, strings.Join(steps, ","))
}
