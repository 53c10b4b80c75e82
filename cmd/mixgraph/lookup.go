package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/query"
)

func runLookup(args []string) error {
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)
	resultsFile := fs.String("results", "", "results artifact to read (required)")
	format := fs.String("format", "binary", "artifact encoding: binary, json, or msgpack")
	index := fs.Int64("index", -1, "effect index to look up")
	effects := fs.String("effects", "", "comma-separated two-letter effect codes for an exact match")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mixgraph lookup -results FILE (-index N | -effects CODES)\n\n")
		fmt.Fprintf(os.Stderr, "Prints every recipe reaching the given effect index or effect set.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mixgraph lookup -results out/results_Cocaine.bin -index 1234\n")
		fmt.Fprintf(os.Stderr, "  mixgraph lookup -results out/results_Cocaine.bin -effects Lf,El\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *resultsFile == "" {
		fs.Usage()
		return fmt.Errorf("-results is required")
	}

	n, k, _, labels, _, err := loadResults(*format, *resultsFile)
	if err != nil {
		return fmt.Errorf("read results artifact: %w", err)
	}
	enc := combinatorial.New(n, k)

	var recipes []query.Recipe
	switch {
	case *effects != "":
		target, parseErr := parseEffectCodes(*effects)
		if parseErr != nil {
			return parseErr
		}
		recipes, err = query.ExactMatch(enc, labels, target)
	case *index >= 0:
		recipes, err = query.Lookup(labels, uint32(*index))
	default:
		fs.Usage()
		return fmt.Errorf("one of -index or -effects is required")
	}
	if err != nil {
		return err
	}

	printRecipes(recipes)
	return nil
}

func parseEffectCodes(csv string) (effect.Set, error) {
	set := effect.Empty
	for _, code := range strings.Split(csv, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		e, err := effect.ParseCode(code)
		if err != nil {
			return effect.Empty, fmt.Errorf("effect code %q: %w", code, err)
		}
		set = set.With(e)
	}
	return set, nil
}

func printRecipes(recipes []query.Recipe) {
	if len(recipes) == 0 {
		fmt.Println("no recipes found")
		return
	}
	for _, r := range recipes {
		fmt.Println(formatRecipe(r))
	}
}
