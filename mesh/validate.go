package mesh

import (
	"fmt"

	"github.com/katalvlaran/navmesh/geom"
)

// Validate walks every live polygon and vertex and checks the
// invariants Write relies on: ring closure, convexity of every
// consecutive vertex triple, mutual neighbor adjacency across every
// interior edge, and that every vertex ring closes in exactly
// num_polygons steps. It returns the first violation found.
func (st *Store) Validate() error {
	for x, p := range st.polygons {
		if p.NumVertices == 0 {
			continue
		}
		if st.arena.Walk(p.VertRing, p.NumVertices) != p.VertRing {
			return fmt.Errorf("%w: polygon %d vertex ring", ErrRingNotClosed, x)
		}
		if st.arena.Walk(p.NeighRing, p.NumVertices) != p.NeighRing {
			return fmt.Errorf("%w: polygon %d neighbor ring", ErrRingNotClosed, x)
		}

		verts := st.arena.Values(p.VertRing)
		neighs := st.arena.Values(p.NeighRing)
		n := len(verts)

		for k := 0; k < n; k++ {
			a := st.vertices[verts[k]]
			b := st.vertices[verts[(k+1)%n]]
			c := st.vertices[verts[(k+2)%n]]
			if geom.ClockwiseStrict(a.Point, b.Point, c.Point) {
				return fmt.Errorf("%w: polygon %d at vertex %d", ErrNotConvex, x, verts[(k+1)%n])
			}
			if st.vertices[verts[k]].NumPolygons == 0 {
				return fmt.Errorf("%w: polygon %d references tombstoned vertex %d", ErrOrphanVertex, x, verts[k])
			}
		}

		for k := 0; k < n; k++ {
			neigh := neighs[k]
			if neigh == -1 {
				continue
			}
			neigh = st.uf.Find(neigh)
			np := st.polygons[neigh]
			if np.NumVertices == 0 {
				return fmt.Errorf("%w: polygon %d edge %d points at tombstoned polygon %d", ErrDanglingEdge, x, k, neigh)
			}
			u, v := verts[k], verts[(k+1)%n]
			if !st.hasMutualEdge(neigh, v, u, x) {
				return fmt.Errorf("%w: polygon %d edge (%d,%d) has no matching back-edge in polygon %d", ErrDanglingEdge, x, u, v, neigh)
			}
		}
	}

	for id, v := range st.vertices {
		if v.NumPolygons == 0 {
			continue
		}
		if st.arena.Walk(v.PolyRing, v.NumPolygons) != v.PolyRing {
			return fmt.Errorf("%w: vertex %d polygon ring", ErrRingNotClosed, id)
		}
	}

	return nil
}

// hasMutualEdge reports whether polygon id's ring contains the edge
// (u,v) with neighbor resolving (through union-find) to want.
func (st *Store) hasMutualEdge(id, u, v, want int) bool {
	p := st.polygons[id]
	verts := st.arena.Values(p.VertRing)
	neighs := st.arena.Values(p.NeighRing)
	n := len(verts)
	for k := 0; k < n; k++ {
		if verts[k] == u && verts[(k+1)%n] == v {
			return neighs[k] != -1 && st.uf.Find(neighs[k]) == want
		}
	}

	return false
}
