// Command gridrects reads a .map file from stdin and writes its
// rectangle decomposition to stdout.
//
// By default it prints the best-rectangle heuristic score table. -debug
// instead prints the traversability grid and the clear_above/clear_left
// tables. -decompose instead prints the ordered list of rectangles the
// greedy decomposer consumed.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/navmesh/grid"
)

func main() {
	debug := flag.Bool("debug", false, "print clearance tables and traversability instead of the heuristic table")
	decompose := flag.Bool("decompose", false, "print the consumed rectangle list instead of the heuristic table")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *debug, *decompose); err != nil {
		fmt.Fprintln(os.Stderr, "gridrects:", err)
		os.Exit(1)
	}
}

func run(in *os.File, out *os.File, debug, decompose bool) error {
	s, err := grid.Parse(in)
	if err != nil {
		return err
	}

	if decompose {
		grid.FormatConsumed(out, s.Decompose())

		return nil
	}

	if debug {
		s.FormatTraversable(out)
		fmt.Fprintln(out)
		s.FormatClearance(out)

		return nil
	}
	s.FormatHeuristic(out)

	return nil
}
