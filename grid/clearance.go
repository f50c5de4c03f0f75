package grid

// computeClearanceFull fills clear_above and clear_left for the entire
// grid in one row-major, left-to-right pass: by the time (y,x) is
// reached, (y-1,x) and (y,x-1) have both already been written.
// Complexity: O(Width*Height).
func (s *Session) computeClearanceFull() {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			s.updateClearanceAt(y, x)
		}
	}
}

// updateClearanceAt recomputes clear_above(y,x) and clear_left(y,x) from
// already-current neighbor values, per the recurrence in the data model:
// 0 for an obstacle cell, else 1 + the same table one cell up/left (0 at
// the grid boundary).
func (s *Session) updateClearanceAt(y, x int) {
	if !s.traversable[y][x] {
		s.clearAbove[y][x] = 0
		s.clearLeft[y][x] = 0

		return
	}

	above := 0
	if y > 0 {
		above = s.clearAbove[y-1][x]
	}
	s.clearAbove[y][x] = above + 1

	left := 0
	if x > 0 {
		left = s.clearLeft[y][x-1]
	}
	s.clearLeft[y][x] = left + 1
}

// invalidateAndRecompute recomputes clear_above, clear_left and the
// best-rectangle table over the part of the grid that a consumed
// rectangle with bottom row by and left column left could possibly have
// affected: rows [0,by] restricted to columns [left,Width), then rows
// (by,Height) in full. A cell's clearances and best rectangle depend
// only on cells at or above it and at or to its left, so every cell
// outside this region is unaffected and left untouched.
// Complexity: O(region size * (Width+Height)) per call, the second
// factor being the best-rectangle sweep of each recomputed cell.
func (s *Session) invalidateAndRecompute(by, left int) {
	for y := 0; y <= by; y++ {
		for x := left; x < s.Width; x++ {
			s.updateClearanceAt(y, x)
			s.bestRect[y][x] = s.computeBestRectAt(y, x)
		}
	}
	for y := by + 1; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			s.updateClearanceAt(y, x)
			s.bestRect[y][x] = s.computeBestRectAt(y, x)
		}
	}
}
