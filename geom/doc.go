// Package geom provides the minimal 2D geometry used to decide whether a
// polygon ring stays convex across a merge: points, the signed cross
// product, and a clockwise predicate with a fixed absolute epsilon.
//
// What:
//
//   - Point: a 2D coordinate pair.
//   - Cross: the signed cross product of (b-a) and (c-b).
//   - ClockwiseStrict: true iff turning strictly clockwise at b, beyond
//     the epsilon slack, i.e. b would make a containing polygon non-convex.
//
// Why:
//
//   - The mesh merger's convexity gate needs exactly one predicate,
//     evaluated at exactly two vertices per candidate merge; keeping it in
//     its own package makes the epsilon and the sign convention a single
//     reviewable surface instead of scattered float comparisons.
//
// Complexity: every function here is O(1).
package geom
