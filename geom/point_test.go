package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/navmesh/geom"
)

// TestCross_UnitSquare checks the sign convention against a known
// counter-clockwise turn and a known clockwise turn.
func TestCross_UnitSquare(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}
	c := geom.Point{X: 1, Y: 1}
	assert.Greater(t, geom.Cross(a, b, c), 0.0, "turning left at b should be positive")

	cCW := geom.Point{X: 1, Y: -1}
	assert.Less(t, geom.Cross(a, b, cCW), 0.0, "turning right at b should be negative")
}

func TestClockwiseStrict(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c geom.Point
		want    bool
	}{
		{"left turn", geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{1, 1}, false},
		{"right turn", geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{1, -1}, true},
		{"collinear", geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{2, 0}, false},
		{"collinear with float slack", geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{2, 1e-10}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.ClockwiseStrict(tc.a, tc.b, tc.c))
		})
	}
}
