package main

import (
	"fmt"
	"os"

	"github.com/mixgraph/mixgraph/baseproduct"
	"github.com/mixgraph/mixgraph/combinatorial"
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/rules"
)

// defaultK is the largest effect-set size the rule engine ever produces
// (rules.MixtureRules.Apply caps a set at eight effects), so it is the
// only K value a full run ever needs.
const defaultK = 8

func newEncoder() *combinatorial.Encoder {
	return combinatorial.New(uint8(effect.N), defaultK)
}

func loadRules(path string) (*rules.MixtureRules, error) {
	mr, err := rules.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load rule configuration %q: %w", path, err)
	}
	return mr, nil
}

// resultsPath builds the conventional per-product results artifact
// filename inside dir, with the extension matching format.
func resultsPath(dir, format string, product baseproduct.Product) string {
	return fmt.Sprintf("%s/results_%s.%s", dir, product, extensionFor(format))
}

func extensionFor(format string) string {
	switch format {
	case "json":
		return "json"
	case "msgpack":
		return "msgpack"
	default:
		return "bin"
	}
}

func parseProduct(name string) (baseproduct.Product, error) {
	for _, p := range baseproduct.All {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown base product %q", name)
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	return f, nil
}

func createFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", path, err)
	}
	return f, nil
}
