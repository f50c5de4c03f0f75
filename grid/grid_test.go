package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navmesh/grid"
)

const scenarioG1 = `type octile
height 4
width 4
map
....
.@..
....
....
`

// TestParse_ScenarioG1ClearanceRecurrence reproduces spec scenario G1:
// clear_above table, and two spot-checked clear_left values.
func TestParse_ScenarioG1ClearanceRecurrence(t *testing.T) {
	s, err := grid.Parse(strings.NewReader(scenarioG1))
	require.NoError(t, err)

	wantAbove := [][]int{
		{1, 1, 1, 1},
		{2, 0, 2, 2},
		{3, 1, 3, 3},
		{4, 2, 4, 4},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equalf(t, wantAbove[y][x], s.ClearAbove(y, x), "clear_above(%d,%d)", y, x)
		}
	}

	assert.Equal(t, 4, s.ClearLeft(3, 3))
	assert.Equal(t, 0, s.ClearLeft(1, 1))
}

// TestParse_ScenarioG1BestRectangle reproduces spec scenario G1's best
// rectangle at (3,3): w=4,h=2 scores min(4,2)*4*2 = 16 and w=2,h=4
// scores min(2,4)*2*4 = 16, so the maximum is 16.
func TestParse_ScenarioG1BestRectangle(t *testing.T) {
	s, err := grid.Parse(strings.NewReader(scenarioG1))
	require.NoError(t, err)

	r := s.BestRect(3, 3)
	assert.EqualValues(t, 16, r.Score)
}

// TestClearanceRecurrence_Invariant checks the universal property from
// the testable-properties list: every traversable cell's clearances are
// exactly one more than their up/left neighbor (0 at the boundary), and
// every obstacle cell reports 0 for both.
func TestClearanceRecurrence_Invariant(t *testing.T) {
	s, err := grid.Parse(strings.NewReader(scenarioG1))
	require.NoError(t, err)

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if !s.Traversable(y, x) {
				assert.Zero(t, s.ClearAbove(y, x))
				assert.Zero(t, s.ClearLeft(y, x))

				continue
			}
			wantAbove := 1
			if y > 0 {
				wantAbove = s.ClearAbove(y-1, x) + 1
			}
			wantLeft := 1
			if x > 0 {
				wantLeft = s.ClearLeft(y, x-1) + 1
			}
			assert.Equal(t, wantAbove, s.ClearAbove(y, x))
			assert.Equal(t, wantLeft, s.ClearLeft(y, x))
		}
	}
}

// TestParse_ScenarioG2AllObstacle reproduces spec scenario G2: a 2x2
// all-obstacle map has every best_rect zero.
func TestParse_ScenarioG2AllObstacle(t *testing.T) {
	const body = "type octile\nheight 2\nwidth 2\nmap\n@@\n@@\n"
	s, err := grid.Parse(strings.NewReader(body))
	require.NoError(t, err)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, grid.Rect{}, s.BestRect(y, x))
		}
	}
}

// TestBestRectangle_Optimality brute-forces every rectangle anchored at
// every cell on a small map and checks the session's reported best
// matches the true maximum, per the testable-properties list.
func TestBestRectangle_Optimality(t *testing.T) {
	const body = `type octile
height 5
width 5
map
.....
.@...
.....
...@.
.....
`
	s, err := grid.Parse(strings.NewReader(body))
	require.NoError(t, err)

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			want := bruteForceBest(s, y, x)
			got := s.BestRect(y, x)
			assert.Equalf(t, want, got.Score, "cell (%d,%d)", y, x)
		}
	}
}

func bruteForceBest(s *grid.Session, y, x int) int64 {
	if !s.Traversable(y, x) {
		return 0
	}
	var best int64
	for h := 1; h <= y+1; h++ {
		for w := 1; w <= x+1; w++ {
			if rectAllTraversable(s, y, x, w, h) {
				sc := min3(w, h) * int64(w) * int64(h)
				if sc > best {
					best = sc
				}
			}
		}
	}

	return best
}

func min3(w, h int) int64 {
	if w < h {
		return int64(w)
	}

	return int64(h)
}

func rectAllTraversable(s *grid.Session, by, bx, w, h int) bool {
	for y := by - h + 1; y <= by; y++ {
		for x := bx - w + 1; x <= bx; x++ {
			if !s.Traversable(y, x) {
				return false
			}
		}
	}

	return true
}

// TestDecompose_ConsumesUntilAllObstacle verifies Decompose terminates
// with every cell marked an obstacle and that consumed rectangles are
// reported in decreasing score order is not required, but total area
// consumed must never exceed the grid area.
func TestDecompose_ConsumesUntilAllObstacle(t *testing.T) {
	s, err := grid.Parse(strings.NewReader(scenarioG1))
	require.NoError(t, err)

	consumed := s.Decompose()
	require.NotEmpty(t, consumed)

	var area int
	for _, c := range consumed {
		area += c.Width * c.Height
	}
	assert.LessOrEqual(t, area, s.Width*s.Height)

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			assert.Falsef(t, s.Traversable(y, x), "cell (%d,%d) should be consumed", y, x)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad type", "type grid\nwidth 2\nheight 2\nmap\n..\n..\n"},
		{"bad dims", "type octile\nwidth 0\nheight 2\nmap\n..\n..\n"},
		{"missing map keyword", "type octile\nwidth 2\nheight 2\nfoo\n..\n..\n"},
		{"too few cells", "type octile\nwidth 2\nheight 2\nmap\n.\n"},
		{"too many cells", "type octile\nwidth 2\nheight 2\nmap\n.....\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(strings.NewReader(tc.body))
			assert.Error(t, err)
		})
	}
}
