// Package grid turns an octile traversability map into a table of
// heuristically-best axis-aligned rectangles, and optionally drives the
// greedy "consume the best rectangle, invalidate, recompute" loop that
// decomposes the whole map into a small set of large rectangles.
//
// What:
//
//   - Parse reads the octile `.map` grammar (header + H*W cell
//     characters) into a *Session.
//   - Session owns the traversability grid plus the clear_above,
//     clear_left and best-rectangle tables, recomputed incrementally as
//     rectangles are consumed.
//   - BestRectangles runs one full compute and returns the static
//     best-rectangle table, read-only.
//   - Decompose repeatedly picks the table's global best rectangle,
//     marks it non-traversable, and recomputes only the affected tail of
//     the grid, until every cell is an obstacle.
//
// Why two entry points instead of one: the upstream C++ driver only ever
// printed the static table and left the consumption loop unused, so
// whether a caller wants the table "as a field" or wants to actually walk
// the decomposition was left ambiguous. Both are genuine uses (a
// navmesh build step wants Decompose; a debugging/visualization tool
// wants the static table) so both are exposed as ordinary methods on the
// same Session rather than picking one.
//
// Complexity: a full compute is O(W*H) for the clearance tables and
// O(W*H*(W+H)) in the worst case for the best-rectangle table. Each
// Decompose round recomputes only the cells in rows up to the consumed
// rectangle's bottom row from its left column rightward, plus every row
// below it, and scans the whole table once for the next argmax.
package grid
