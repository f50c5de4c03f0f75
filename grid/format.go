package grid

import (
	"fmt"
	"io"
)

// FormatHeuristic writes the default CLI output: the best-rectangle
// score table, one right-aligned width-4 field per cell followed by a
// separating space, blank (five spaces) for obstacle cells.
func (s *Session) FormatHeuristic(w io.Writer) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if sc := s.bestRect[y][x].Score; sc > 0 {
				fmt.Fprintf(w, "%4d ", sc)
			} else {
				fmt.Fprint(w, "     ")
			}
		}
		fmt.Fprintln(w)
	}
}

// FormatRects writes "width,height" pairs per cell (width-2 fields),
// blank for obstacles. Kept for parity with the original driver's
// commented-out print_rects, which the default CLI output does not
// require but a caller inspecting a specific rectangle shape might want.
func (s *Session) FormatRects(w io.Writer) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if r := s.bestRect[y][x]; r.Score > 0 {
				fmt.Fprintf(w, "%2d,%2d ", r.Width, r.Height)
			} else {
				fmt.Fprint(w, "      ")
			}
		}
		fmt.Fprintln(w)
	}
}

// FormatClearance writes the clear_above and clear_left tables, each as
// a labeled block of right-aligned width-3 fields, blank for zero.
// Intended for the -debug CLI flag.
func (s *Session) FormatClearance(w io.Writer) {
	fmt.Fprintln(w, "above")
	formatIntTable(w, s.clearAbove)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "left")
	formatIntTable(w, s.clearLeft)
}

func formatIntTable(w io.Writer, table [][]int) {
	for _, row := range table {
		for _, v := range row {
			if v > 0 {
				fmt.Fprintf(w, "%3d", v)
			} else {
				fmt.Fprint(w, "   ")
			}
		}
		fmt.Fprintln(w)
	}
}

// FormatTraversable writes '.' for traversable cells and '@' for
// obstacles, one row per line. Intended for the -debug CLI flag.
func (s *Session) FormatTraversable(w io.Writer) {
	for _, row := range s.traversable {
		for _, t := range row {
			if t {
				fmt.Fprint(w, ".")
			} else {
				fmt.Fprint(w, "@")
			}
		}
		fmt.Fprintln(w)
	}
}

// FormatConsumed writes one "y x w h score" line per rectangle, in the
// order Decompose consumed them.
func FormatConsumed(w io.Writer, consumed []Consumed) {
	for _, c := range consumed {
		fmt.Fprintf(w, "%d %d %d %d %d\n", c.Y, c.X, c.Width, c.Height, c.Score)
	}
}
