package grid

// Decompose repeatedly picks the globally best rectangle left in the
// table, consumes it (marking its cells non-traversable), and
// recomputes only the part of the grid that consumption could have
// affected, until every cell is an obstacle. Ties on score are broken
// lexicographically by the rectangle's bottom-right corner (smallest y,
// then smallest x), making the whole run deterministic.
// Complexity: each consumed rectangle costs one O(Width*Height) argmax
// scan plus one invalidateAndRecompute call over the affected region.
func (s *Session) Decompose() []Consumed {
	var out []Consumed

	for {
		by, bx, found := s.argmaxRect()
		if !found {
			break
		}
		r := s.bestRect[by][bx]
		out = append(out, Consumed{Y: by, X: bx, Width: r.Width, Height: r.Height, Score: r.Score})

		s.consume(by, bx, r)
		s.invalidateAndRecompute(by, bx-r.Width+1)
	}

	return out
}

// argmaxRect scans the best-rectangle table for the highest-scoring
// entry, breaking ties by the smallest (y,x). Returns found=false once
// every remaining rectangle has score 0 (every cell is an obstacle).
func (s *Session) argmaxRect() (by, bx int, found bool) {
	var bestScore int64
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if sc := s.bestRect[y][x].Score; sc > bestScore {
				bestScore, by, bx, found = sc, y, x, true
			}
		}
	}

	return by, bx, found
}

// consume marks every cell of rectangle r (bottom-right at (by,bx)) as
// a non-traversable obstacle.
func (s *Session) consume(by, bx int, r Rect) {
	for y := by - r.Height + 1; y <= by; y++ {
		for x := bx - r.Width + 1; x <= bx; x++ {
			s.traversable[y][x] = false
		}
	}
}
