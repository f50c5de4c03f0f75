package grid

// obstacleChars lists the map symbols that mark a cell non-traversable;
// every other character, including '.', is traversable. Mirrors the
// original octile-map convention (S=swamp/shallow water marker borrowed
// from warthog-style maps, W=water, T=tree, @/O=wall/out-of-bounds).
const obstacleChars = "SWT@O"

// Rect is the best axis-aligned rectangle anchored with its bottom-right
// corner at some cell: Width and Height are its extent, Score is
// min(Width,Height)*Width*Height. The zero Rect (all fields zero)
// represents "no rectangle", which is what every obstacle cell reports.
type Rect struct {
	Width, Height int
	Score         int64
}

// Consumed records one rectangle taken by Decompose, anchored the same
// way as Rect but carrying its own bottom-right coordinates so the
// consumption order can be replayed or printed.
type Consumed struct {
	Y, X          int
	Width, Height int
	Score         int64
}

// Session owns one grid's traversability table and the derived
// clear_above / clear_left / best-rectangle tables for its lifetime. It
// is single-threaded: the whole package assumes one goroutine drives one
// Session at a time.
type Session struct {
	Width, Height int

	traversable [][]bool
	clearAbove  [][]int
	clearLeft   [][]int
	bestRect    [][]Rect
}

// NewSession builds a Session from an already-parsed traversability
// grid (cells[y][x], true = traversable) and computes its initial
// clearance and best-rectangle tables. Panics if cells is empty or
// ragged; Parse is responsible for producing well-formed input.
func NewSession(cells [][]bool) *Session {
	h := len(cells)
	if h == 0 {
		panic("grid: NewSession called with zero rows")
	}
	w := len(cells[0])
	if w == 0 {
		panic("grid: NewSession called with zero columns")
	}
	for _, row := range cells {
		if len(row) != w {
			panic("grid: NewSession called with ragged rows")
		}
	}

	s := &Session{
		Width:       w,
		Height:      h,
		traversable: cells,
		clearAbove:  make([][]int, h),
		clearLeft:   make([][]int, h),
		bestRect:    make([][]Rect, h),
	}
	for y := 0; y < h; y++ {
		s.clearAbove[y] = make([]int, w)
		s.clearLeft[y] = make([]int, w)
		s.bestRect[y] = make([]Rect, w)
	}
	s.computeClearanceFull()
	s.computeRectanglesFull()

	return s
}

// Traversable reports whether (y,x) is currently traversable.
func (s *Session) Traversable(y, x int) bool { return s.traversable[y][x] }

// ClearAbove returns clear_above(y,x).
func (s *Session) ClearAbove(y, x int) int { return s.clearAbove[y][x] }

// ClearLeft returns clear_left(y,x).
func (s *Session) ClearLeft(y, x int) int { return s.clearLeft[y][x] }

// BestRect returns the current best rectangle anchored at (y,x).
func (s *Session) BestRect(y, x int) Rect { return s.bestRect[y][x] }

func heuristic(w, h int) int64 {
	m := w
	if h < m {
		m = h
	}

	return int64(m) * int64(w) * int64(h)
}
