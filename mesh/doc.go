// Package mesh stores a planar mesh of convex polygons — vertices and
// polygons each holding a doubly-circular ring (vertex ring + aligned
// neighbor ring per polygon, polygon ring per vertex) — and repeatedly
// merges adjacent polygons across a shared edge whenever the merged
// result stays convex.
//
// What:
//
//   - Parse/Write implement the `mesh v2` grammar.
//   - Store owns every vertex and polygon, backed by a single
//     ring.Arena and a unionfind.DSU over polygon identity.
//   - Merge runs the fixed-point merge loop: scan every live polygon's
//     edges in ascending id order, accept the first convexity-passing
//     merge, restart that polygon's scan, stop once a full pass over
//     every live polygon makes no merge.
//   - Validate walks every live polygon and vertex, checking ring
//     closure, convexity and the mutual neighbor adjacency of polygons
//     across every interior edge, before Write ever runs.
//
// Why a shared arena instead of one linked list per ring: a merge
// splices a run of one polygon's vertex ring directly into another's —
// the nodes themselves move, not their values — which only works in
// O(1) if every ring draws its nodes from the same index space. See
// ring.Arena's doc comment for the rest of that reasoning.
//
// Tombstoning: a merged-away polygon keeps its array slot (num_vertices
// set to 0) so every id handed out by Parse stays stable for the
// lifetime of the Store; a vertex that degrades to an interior point of
// a straight edge is tombstoned the same way. Write is responsible for
// compacting both id spaces on the way out.
package mesh
