// Package ring implements a circular singly-linked list of integer
// payloads, backed by an arena of index-addressed nodes with a free list.
//
// What:
//
//   - Arena owns a growable slice of nodes plus a free list of retired
//     slots; every ring is just a head index into this shared arena.
//   - New builds a fresh cyclic ring from a slice of values and returns
//     its head index.
//   - Walk steps forward k times from a node, naturally wrapping because
//     the underlying list is a true cycle.
//   - Splice relinks two (after, first) / (last, closing) pairs in O(1),
//     the one primitive the mesh merger needs for both excising a run and
//     grafting another ring's run into its place.
//   - Remove drops the single node following a given node.
//   - FreeRing walks a ring once and returns every node to the free list,
//     used when a polygon or vertex is tombstoned.
//   - Free returns one already-detached node directly, for the rare case
//     a splice orphans a node with no surviving predecessor to Remove it
//     from.
//
// Why an arena instead of a pointer-chasing linked list (shared_ptr
// cycles, as the original C++ used): a cyclic structure of reference
// counted pointers never hits a zero count on its own and leaks unless
// explicitly broken. An arena of integer indices sidesteps the problem
// entirely — a tombstoned ring's nodes go back on the free list and are
// reused by the next New call, with no cycle for a GC or refcounter to
// puzzle over.
//
// No ring in this package is ever partially built: New either returns a
// fully closed cycle or panics on an empty input, since a zero-length
// ring has no head to return and every caller in this module already
// guarantees at least one element (a vertex always has at least one
// incident polygon, a polygon always has at least 3 vertices).
package ring
