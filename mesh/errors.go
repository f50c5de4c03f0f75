package mesh

import "errors"

// Parse errors.
var (
	ErrBadHeader      = errors.New("mesh: bad header")
	ErrBadVersion     = errors.New("mesh: unsupported version")
	ErrBadCounts      = errors.New("mesh: bad vertex/polygon counts")
	ErrBadVertexLine  = errors.New("mesh: malformed vertex line")
	ErrBadPolygonLine = errors.New("mesh: malformed polygon line")
)

// Validate errors.
var (
	ErrRingNotClosed = errors.New("mesh: ring does not close")
	ErrNotConvex     = errors.New("mesh: polygon is not convex")
	ErrDanglingEdge  = errors.New("mesh: neighbor edge is not mutual")
	ErrOrphanVertex  = errors.New("mesh: vertex has no incident polygon")
)
