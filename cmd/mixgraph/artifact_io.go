package main

import (
	"fmt"

	"github.com/mixgraph/mixgraph/artifact"
	"github.com/mixgraph/mixgraph/effectgraph"
	"github.com/mixgraph/mixgraph/mosp"
)

func saveGraph(format, path string, n, k uint8, g *effectgraph.Graph) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "json":
		return artifact.SaveGraphJSON(f, n, k, g)
	case "msgpack":
		return artifact.SaveGraphMsgpack(f, n, k, g)
	case "binary", "":
		return artifact.SaveGraph(f, n, k, g)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func loadGraph(format, path string) (n, k uint8, g *effectgraph.Graph, err error) {
	f, err := openFile(path)
	if err != nil {
		return 0, 0, nil, err
	}
	defer f.Close()

	switch format {
	case "json":
		return artifact.LoadGraphJSON(f)
	case "msgpack":
		return artifact.LoadGraphMsgpack(f)
	case "binary", "":
		return artifact.LoadGraph(f)
	default:
		return 0, 0, nil, fmt.Errorf("unknown format %q", format)
	}
}

func saveResults(format, path string, n, k, baseProduct uint8, labels [][]mosp.Label, priceMultipliers []uint16) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "json":
		return artifact.SaveResultsJSON(f, n, k, baseProduct, labels, priceMultipliers)
	case "msgpack":
		return artifact.SaveResultsMsgpack(f, n, k, baseProduct, labels, priceMultipliers)
	case "binary", "":
		return artifact.SaveResults(f, n, k, baseProduct, labels, priceMultipliers)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func loadResults(format, path string) (n, k, baseProduct uint8, labels [][]mosp.Label, priceMultipliers []uint16, err error) {
	f, err := openFile(path)
	if err != nil {
		return 0, 0, 0, nil, nil, err
	}
	defer f.Close()

	switch format {
	case "json":
		return artifact.LoadResultsJSON(f)
	case "msgpack":
		return artifact.LoadResultsMsgpack(f)
	case "binary", "":
		return artifact.LoadResults(f)
	default:
		return 0, 0, 0, nil, nil, fmt.Errorf("unknown format %q", format)
	}
}
