package geom

// Epsilon is the fixed absolute tolerance used by ClockwiseStrict.
// Collinear-with-slack turns (|cross| <= Epsilon) count as non-clockwise
// and are therefore accepted by the convexity gate.
const Epsilon = 1e-8

// Point is a 2D coordinate. Mesh vertices embed one of these; the grid
// side never needs fractional coordinates and stays in integer cell
// space instead.
type Point struct {
	X, Y float64
}

// Sub returns p-q as a vector.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the signed cross product (b-a) x (c-b), i.e. twice the
// signed area of the triangle a,b,c turned through b. Positive means a
// counter-clockwise turn at b, negative a clockwise turn.
func Cross(a, b, c Point) float64 {
	ab := b.Sub(a)
	bc := c.Sub(b)

	return ab.X*bc.Y - ab.Y*bc.X
}

// ClockwiseStrict reports whether the path a->b->c turns strictly
// clockwise at b, outside the Epsilon slack. A convex CCW polygon must
// have ClockwiseStrict false at every consecutive vertex triple.
func ClockwiseStrict(a, b, c Point) bool {
	return Cross(a, b, c) < -Epsilon
}
