// Package unionfind implements a disjoint-set structure over polygon
// identifiers, with path compression but deliberately without union by
// rank.
//
// What:
//
//   - New builds a DSU over the integers [0, n).
//   - Find resolves an id to its live canonical representative, with full
//     path compression on every call.
//   - Merge(a, b) always makes a's root the parent of b's root, so a root
//     a stays the canonical representative of the combined set.
//
// Why:
//
//   - The mesh merger needs Find(x) == x to keep holding for the surviving
//     polygon after every merge, because external references (other
//     vertices' polygon rings, other polygons' neighbor rings) are
//     anchored on x's id and must not need rewriting just because x
//     absorbed another polygon. Union-by-rank would let a smaller-rank a
//     get re-rooted under b, breaking that invariant; this package never
//     does that.
//
// Complexity: Find is near-O(1) amortized (inverse-Ackermann) thanks to
// path compression; Merge is O(1) plus two Finds.
package unionfind
