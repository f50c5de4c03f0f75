package grid

// computeRectanglesFull fills the best-rectangle table for the entire
// grid from an already-current clearance table.
// Complexity: O(Width*Height*(Width+Height)) in the worst case (each
// cell's two sweeps are bounded by its own clear_left/clear_above, which
// are capped at Width/Height).
func (s *Session) computeRectanglesFull() {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			s.bestRect[y][x] = s.computeBestRectAt(y, x)
		}
	}
}

// computeBestRectAt computes the best rectangle anchored with its
// bottom-right corner at (y,x): a width-sweep (widening left, tracking
// the running minimum height) and a symmetric height-sweep (widening
// up, tracking the running minimum width), keeping the first rectangle
// seen at the maximum score. An obstacle cell always yields the zero
// Rect.
func (s *Session) computeBestRectAt(y, x int) Rect {
	if !s.traversable[y][x] {
		return Rect{}
	}

	var best Rect

	height := s.clearAbove[y][x]
	for width := 1; width <= s.clearLeft[y][x]; width++ {
		if h := s.clearAbove[y][x-width+1]; h < height {
			height = h
		}
		if sc := heuristic(width, height); sc > best.Score {
			best = Rect{Width: width, Height: height, Score: sc}
		}
	}

	width := s.clearLeft[y][x]
	for height := 1; height <= s.clearAbove[y][x]; height++ {
		if w := s.clearLeft[y-height+1][x]; w < width {
			width = w
		}
		if sc := heuristic(width, height); sc > best.Score {
			best = Rect{Width: width, Height: height, Score: sc}
		}
	}

	return best
}

// BestRectangles runs (or re-runs) a single full compute over the
// current traversability grid and returns the resulting table, indexed
// [y][x]. It never mutates the grid itself, so it is safe to call
// repeatedly or interleaved with Decompose for inspection.
// Complexity: O(Width*Height*(Width+Height)) worst case, see
// computeRectanglesFull.
func (s *Session) BestRectangles() [][]Rect {
	s.computeClearanceFull()
	s.computeRectanglesFull()

	out := make([][]Rect, s.Height)
	for y := range out {
		out[y] = make([]Rect, s.Width)
		copy(out[y], s.bestRect[y])
	}

	return out
}
