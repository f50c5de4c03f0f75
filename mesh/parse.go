package mesh

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/navmesh/geom"
	"github.com/katalvlaran/navmesh/ring"
	"github.com/katalvlaran/navmesh/unionfind"
)

// Parse reads a mesh v2 document: header "mesh"/"2", a "<V> <P>" counts
// line, V vertex records ("<x> <y> <k> <p1>...<pk>"), then P polygon
// records ("<n> <v1>...<vn> <q1>...<qn>"). Whitespace of any kind
// separates tokens.
func Parse(r io.Reader) (*Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	toks := strings.Fields(string(raw))
	tr := &tokenReader{toks: toks}

	if tr.next() != "mesh" {
		return nil, fmt.Errorf("%w: expected \"mesh\"", ErrBadHeader)
	}
	if tr.next() != "2" {
		return nil, fmt.Errorf("%w: expected version 2", ErrBadVersion)
	}

	numV, err := tr.nextInt()
	if err != nil || numV < 0 {
		return nil, fmt.Errorf("%w: vertex count: %v", ErrBadCounts, err)
	}
	numP, err := tr.nextInt()
	if err != nil || numP < 0 {
		return nil, fmt.Errorf("%w: polygon count: %v", ErrBadCounts, err)
	}

	arena := ring.NewArena()
	vertices := make([]Vertex, numV)
	for i := 0; i < numV; i++ {
		x, err := tr.nextFloat()
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d: x: %v", ErrBadVertexLine, i, err)
		}
		y, err := tr.nextFloat()
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d: y: %v", ErrBadVertexLine, i, err)
		}
		// A vertex on the mesh's outer boundary is incident to exactly one
		// polygon, so the floor here is 1, not 2: see DESIGN.md's Open
		// Question resolutions.
		k, err := tr.nextInt()
		if err != nil || k < 1 {
			return nil, fmt.Errorf("%w: vertex %d: polygon count must be >= 1", ErrBadVertexLine, i)
		}
		ids := make([]int, k)
		for j := 0; j < k; j++ {
			id, err := tr.nextInt()
			if err != nil || id < 0 || id >= numP {
				return nil, fmt.Errorf("%w: vertex %d: polygon id out of range", ErrBadVertexLine, i)
			}
			ids[j] = id
		}
		vertices[i] = Vertex{
			Point:       geom.Point{X: x, Y: y},
			NumPolygons: k,
			PolyRing:    arena.New(ids),
		}
	}

	polygons := make([]Polygon, numP)
	for j := 0; j < numP; j++ {
		n, err := tr.nextInt()
		if err != nil || n < 3 {
			return nil, fmt.Errorf("%w: polygon %d: vertex count must be >= 3", ErrBadPolygonLine, j)
		}
		vids := make([]int, n)
		for i := 0; i < n; i++ {
			id, err := tr.nextInt()
			if err != nil || id < 0 || id >= numV {
				return nil, fmt.Errorf("%w: polygon %d: vertex id out of range", ErrBadPolygonLine, j)
			}
			vids[i] = id
		}
		nids := make([]int, n)
		traversable := 0
		for i := 0; i < n; i++ {
			id, err := tr.nextInt()
			if err != nil || id < -1 || id >= numP {
				return nil, fmt.Errorf("%w: polygon %d: neighbor id out of range", ErrBadPolygonLine, j)
			}
			nids[i] = id
			if id != -1 {
				traversable++
			}
		}
		polygons[j] = Polygon{
			NumVertices:    n,
			NumTraversable: traversable,
			VertRing:       arena.New(vids),
			NeighRing:      arena.New(nids),
		}
	}

	if !tr.done() {
		return nil, fmt.Errorf("%w: trailing tokens after polygon records", ErrBadCounts)
	}

	return &Store{
		arena:    arena,
		vertices: vertices,
		polygons: polygons,
		uf:       unionfind.New(numP),
	}, nil
}

// tokenReader walks a pre-split whitespace-delimited token stream.
type tokenReader struct {
	toks []string
	pos  int
}

func (t *tokenReader) next() string {
	if t.pos >= len(t.toks) {
		return ""
	}
	s := t.toks[t.pos]
	t.pos++

	return s
}

func (t *tokenReader) nextInt() (int, error) {
	s := t.next()
	if s == "" {
		return 0, fmt.Errorf("unexpected end of input")
	}

	return strconv.Atoi(s)
}

func (t *tokenReader) nextFloat() (float64, error) {
	s := t.next()
	if s == "" {
		return 0, fmt.Errorf("unexpected end of input")
	}

	return strconv.ParseFloat(s, 64)
}

func (t *tokenReader) done() bool { return t.pos >= len(t.toks) }
