package mesh

import (
	"fmt"
	"io"
	"strconv"
)

// Write emits the mesh as mesh v2, compacting vertex and polygon ids to
// a contiguous [0,N) range via two prefix-sum mappings and dropping
// tombstoned rows. Each ring is emitted starting at its stored head, so
// the output is rotation-equivalent to, not necessarily identical to,
// whatever a prior Write produced for the same live geometry.
func (st *Store) Write(w io.Writer) error {
	newVid := make([]int, len(st.vertices))
	countV := 0
	for i, v := range st.vertices {
		if v.NumPolygons == 0 {
			newVid[i] = -1

			continue
		}
		newVid[i] = countV
		countV++
	}

	newPid := make([]int, len(st.polygons))
	countP := 0
	for j, p := range st.polygons {
		if p.NumVertices == 0 {
			newPid[j] = -1

			continue
		}
		newPid[j] = countP
		countP++
	}

	if _, err := fmt.Fprintf(w, "mesh\n2\n%d %d\n", countV, countP); err != nil {
		return err
	}

	for _, v := range st.vertices {
		if v.NumPolygons == 0 {
			continue
		}
		ids := st.arena.Values(v.PolyRing)
		if _, err := fmt.Fprintf(w, "%s %s %d", formatFloat(v.Point.X), formatFloat(v.Point.Y), len(ids)); err != nil {
			return err
		}
		for _, id := range ids {
			mapped := newPid[st.uf.Find(id)]
			if _, err := fmt.Fprintf(w, " %d", mapped); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	for _, p := range st.polygons {
		if p.NumVertices == 0 {
			continue
		}
		verts := st.arena.Values(p.VertRing)
		neighs := st.arena.Values(p.NeighRing)
		if _, err := fmt.Fprintf(w, "%d", len(verts)); err != nil {
			return err
		}
		for _, vid := range verts {
			if _, err := fmt.Fprintf(w, " %d", newVid[vid]); err != nil {
				return err
			}
		}
		for _, nid := range neighs {
			out := -1
			if nid != -1 {
				out = newPid[st.uf.Find(nid)]
			}
			if _, err := fmt.Fprintf(w, " %d", out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
