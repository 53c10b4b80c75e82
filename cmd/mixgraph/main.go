// Command mixgraph builds the mixture effect-transition graph, runs the
// multi-objective shortest-path search over it for every base product,
// and answers lookup/search/profit queries against the resulting
// artifacts.
//
// Usage:
//
//	mixgraph <command> [flags]
//
// Commands:
//
//	generate       build the effect-transition graph and write it to disk
//	shortest-path  run the label-setting search for every base product
//	lookup         look up recipes by effect index or literal effect set
//	search         find the cheapest/shortest recipe containing a target set
//	profit         rank recipes by profit for one base product
//	metadata       print sizes and reachability for every base product
//
// Grounded on SeleniaProject-Orizon/cmd/*'s flag.FlagSet-per-subcommand
// style (e.g. cmd/orizon-profile/main.go).
package main

import (
	"fmt"
	"os"
)

type subcommand struct {
	name string
	run  func(args []string) error
}

func main() {
	commands := []subcommand{
		{"generate", runGenerate},
		{"shortest-path", runShortestPath},
		{"lookup", runLookup},
		{"search", runSearch},
		{"profit", runProfit},
		{"metadata", runMetadata},
	}

	if len(os.Args) < 2 {
		printTopLevelUsage(commands)
		os.Exit(2)
	}

	name := os.Args[1]
	for _, c := range commands {
		if c.name == name {
			if err := c.run(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "mixgraph %s: %v\n", name, err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Fprintf(os.Stderr, "mixgraph: unknown command %q\n\n", name)
	printTopLevelUsage(commands)
	os.Exit(2)
}

func printTopLevelUsage(commands []subcommand) {
	fmt.Fprintf(os.Stderr, "Usage: mixgraph <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %s\n", c.name)
	}
	fmt.Fprintf(os.Stderr, "\nRun 'mixgraph <command> -h' for flags specific to that command.\n")
}
