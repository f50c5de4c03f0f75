package mesh

import (
	"github.com/katalvlaran/navmesh/geom"
	"github.com/katalvlaran/navmesh/ring"
	"github.com/katalvlaran/navmesh/unionfind"
)

// Vertex is one mesh vertex: a point plus the ring of polygon ids
// currently incident to it. NumPolygons is 0 for a tombstoned vertex
// (removed as a redundant interior point of a straight edge); PolyRing
// is then stale and must not be walked.
type Vertex struct {
	Point       geom.Point
	NumPolygons int
	PolyRing    int
}

// Polygon is one mesh face: a vertex ring (vertex ids, counter-clockwise)
// and an aligned neighbor ring (the k-th neighbor entry names the
// polygon sharing the edge that starts at the k-th vertex; -1 is the
// mesh boundary). NumVertices is 0 for a tombstoned polygon (merged away)
// and both rings are then stale.
type Polygon struct {
	NumVertices    int
	NumTraversable int
	VertRing       int
	NeighRing      int
}

// Store owns every vertex and polygon of one mesh, plus the shared
// ring.Arena backing both rings and the union-find tracking which
// polygon id a merged-away polygon now resolves to.
type Store struct {
	arena    *ring.Arena
	vertices []Vertex
	polygons []Polygon
	uf       *unionfind.DSU
}

// NumVertices returns the number of vertex slots (including tombstoned
// ones); ids are stable for the Store's lifetime.
func (st *Store) NumVertices() int { return len(st.vertices) }

// NumPolygons returns the number of polygon slots (including tombstoned
// ones); ids are stable for the Store's lifetime.
func (st *Store) NumPolygons() int { return len(st.polygons) }

// Vertex returns vertex id's current state. Callers should check
// NumPolygons before trusting anything ring-shaped on the result.
func (st *Store) Vertex(id int) Vertex { return st.vertices[id] }

// Polygon returns polygon id's current state, resolved through
// union-find first so a merged-away id still returns its surviving
// polygon's data.
func (st *Store) Polygon(id int) Polygon { return st.polygons[st.uf.Find(id)] }

// PolygonVertices returns the live vertex ids of polygon id, in ring
// order, resolving through union-find first.
func (st *Store) PolygonVertices(id int) []int {
	p := st.Polygon(id)
	if p.NumVertices == 0 {
		return nil
	}

	return st.arena.Values(p.VertRing)
}

// PolygonNeighbors returns the aligned neighbor ring of polygon id, in
// ring order, resolved through union-find both for id itself and for
// every neighbor entry it holds (a neighbor recorded before a merge may
// now resolve to a different canonical id).
func (st *Store) PolygonNeighbors(id int) []int {
	p := st.Polygon(id)
	if p.NumVertices == 0 {
		return nil
	}
	raw := st.arena.Values(p.NeighRing)
	out := make([]int, len(raw))
	for i, n := range raw {
		if n < 0 {
			out[i] = -1

			continue
		}
		out[i] = st.uf.Find(n)
	}

	return out
}
