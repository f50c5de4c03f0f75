package mesh

import "github.com/katalvlaran/navmesh/geom"

// Merge runs the fixed-point merge loop: for every live polygon in
// ascending id order, scan its edges and accept the first merge whose
// joint angles stay non-clockwise; accepting restarts that polygon's
// scan since its ring just changed. The whole loop repeats until a full
// pass over every live polygon makes no merge. Returns the number of
// merges performed.
func (st *Store) Merge() int {
	merged := 0
	for changed := true; changed; {
		changed = false
		for x := 0; x < len(st.polygons); x++ {
			for st.scanAndMergeOnce(x) {
				changed = true
				merged++
			}
		}
	}

	return merged
}

// scanAndMergeOnce walks every edge of polygon x once and performs the
// first accepted merge it finds, reporting whether it merged anything.
func (st *Store) scanAndMergeOnce(x int) bool {
	p := &st.polygons[x]
	n := p.NumVertices
	if n == 0 {
		return false
	}

	vCur := st.arena.Next(p.VertRing)
	pCur := p.NeighRing
	for i := 0; i < n; i++ {
		if st.tryMerge(x, vCur, pCur) {
			return true
		}
		vCur = st.arena.Next(vCur)
		pCur = st.arena.Next(pCur)
	}

	return false
}

// tryMerge tests the candidate edge that starts right after vNode (with
// pNode its aligned neighbor-ring node, lagging vNode by one ring
// position) and, if the neighbor across that edge resolves to a polygon
// whose merge would keep both joint vertices non-clockwise, performs the
// ring surgery absorbing it into x.
func (st *Store) tryMerge(x, vNode, pNode int) bool {
	nodeA := st.arena.Next(vNode)
	nodeB := st.arena.Next(nodeA)
	valA := st.arena.Val(nodeA)
	valB := st.arena.Val(nodeB)

	mRaw := st.arena.Val(st.arena.Walk(pNode, 2))
	if mRaw == -1 {
		return false
	}
	m := st.uf.Find(mRaw)

	mergeEndV, mergeEndP, ok := st.findMergeEnd(m, valB)
	if !ok {
		panic("mesh: merge_end_v not found, ring alignment invariant violated")
	}
	if st.arena.Val(st.arena.Next(mergeEndV)) != valB {
		panic("mesh: merge_end_v successor is not B")
	}
	if st.arena.Val(st.arena.Walk(mergeEndV, 2)) != valA {
		panic("mesh: merge_end_v+2 is not A")
	}
	if st.uf.Find(st.arena.Val(st.arena.Walk(mergeEndP, 2))) != x {
		panic("mesh: merge_end_p+2 does not resolve back to x")
	}

	pv := func(n int) geom.Point { return st.vertices[st.arena.Val(n)].Point }
	d := st.arena.Walk(mergeEndV, 3)
	nodeC := st.arena.Walk(vNode, 3)
	crossA := geom.Cross(pv(vNode), pv(nodeA), pv(d))
	crossB := geom.Cross(pv(mergeEndV), pv(nodeB), pv(nodeC))
	if crossA < -geom.Epsilon || crossB < -geom.Epsilon {
		return false
	}

	straightA := crossA >= -geom.Epsilon && crossA <= geom.Epsilon
	straightB := crossB >= -geom.Epsilon && crossB <= geom.Epsilon
	st.performMerge(x, m, vNode, nodeA, nodeB, pNode, mergeEndV, mergeEndP, d, straightA, straightB)

	return true
}

// findMergeEnd searches polygon m's vertex ring for the node whose
// successor holds value b, returning it alongside its aligned
// neighbor-ring node (lagging by one ring position, same convention as
// tryMerge's vNode/pNode).
func (st *Store) findMergeEnd(m, b int) (mergeEndV, mergeEndP int, ok bool) {
	p := st.polygons[m]
	v := st.arena.Next(p.VertRing)
	pr := p.NeighRing
	for i := 0; i < p.NumVertices; i++ {
		if st.arena.Val(st.arena.Next(v)) == b {
			return v, pr, true
		}
		v = st.arena.Next(v)
		pr = st.arena.Next(pr)
	}

	return 0, 0, false
}

// performMerge absorbs polygon m into x across the edge
// (vNode.val->A->B), having already passed the convexity gate. Node
// arguments are pre-merge references into the arena; d is M's
// remaining chain's first node, walk(mergeEndV,3). straightA/straightB
// report whether A's and B's joint angle in the merged ring is exactly
// collinear (cross within Epsilon of zero), the only case in which that
// endpoint is a redundant interior point rather than a genuine corner.
func (st *Store) performMerge(x, m, vNode, nodeA, nodeB, pNode, mergeEndV, mergeEndP, d int, straightA, straightB bool) {
	// Aligned neighbor-ring counterparts of nodeA/nodeB/d, found the same
	// way vNode/pNode and mergeEndV/mergeEndP are aligned: by walking the
	// same step count from each ring's independently-tracked cursor.
	nghA := st.arena.Next(pNode)
	nghB := st.arena.Next(nghA)
	nghD := st.arena.Walk(mergeEndP, 3)

	// The two nodes M contributed for the vanishing shared edge become
	// orphaned once the splice rewires mergeEndV/mergeEndP past them; they
	// must be freed explicitly since nothing will walk them again.
	mOwnB := st.arena.Next(mergeEndV)
	mOwnA := st.arena.Next(mOwnB)
	mOwnBNgh := st.arena.Next(mergeEndP)
	mOwnANgh := st.arena.Next(mOwnBNgh)

	p := &st.polygons[x]
	nx := p.NumVertices
	nm := st.polygons[m].NumVertices

	// nghB's slot survives the splice below, but the edge it now sits at
	// (mergeEndV.val -> nodeB.val) is M's closing edge, not the vanishing
	// shared edge it used to hold; adopt M's value before that node is
	// freed out from under it.
	st.arena.SetVal(nghB, st.arena.Val(mOwnBNgh))

	st.arena.Splice(nodeA, d, mergeEndV, nodeB)
	st.arena.Splice(nghA, nghD, mergeEndP, nghB)

	// mOwnA/mOwnB/mOwnANgh/mOwnBNgh are now unreachable from any live
	// ring: the splices above rewired mergeEndV/mergeEndP past them.
	st.arena.Free(mOwnA)
	st.arena.Free(mOwnB)
	st.arena.Free(mOwnANgh)
	st.arena.Free(mOwnBNgh)

	p.NumVertices = nx + nm - 2

	// Replace m with x in the polygon ring of every vertex M contributed
	// that isn't one of the shared endpoints.
	for cur := d; ; cur = st.arena.Next(cur) {
		st.replaceInPolyRing(st.arena.Val(cur), m, x)
		if cur == mergeEndV {
			break
		}
	}

	st.finishSharedVertex(st.arena.Val(nodeA), m, x, p, vNode, pNode, straightA)
	st.finishSharedVertex(st.arena.Val(nodeB), m, x, p, mergeEndV, mergeEndP, straightB)

	p.NumTraversable = st.countTraversable(p.NeighRing, p.NumVertices)
	st.uf.Merge(x, m)
	st.polygons[m].NumVertices = 0
	st.polygons[m].NumTraversable = 0
	p.VertRing = vNode
	// Next(pNode) is nghA, or nghD if finishSharedVertex removed A (and
	// nghA with it); either way it is the node aligned with vNode.
	p.NeighRing = st.arena.Next(pNode)
}

// countTraversable counts the non-boundary (!= -1) entries in the n-node
// neighbor ring starting at head.
func (st *Store) countTraversable(head, n int) int {
	count := 0
	cur := head
	for i := 0; i < n; i++ {
		if st.arena.Val(cur) != -1 {
			count++
		}
		cur = st.arena.Next(cur)
	}

	return count
}

// finishSharedVertex removes m's id from vid's polygon ring. vid stays
// live as a genuine corner of the merged polygon unless straight
// reports its joint angle there collinear, in which case it is a
// redundant interior point: it is tombstoned entirely and spliced out
// of x's own vertex and neighbor rings (the node immediately after
// predVert/predNeigh).
func (st *Store) finishSharedVertex(vid, m, x int, p *Polygon, predVert, predNeigh int, straight bool) {
	st.removeFromPolyRing(vid, m)
	if !straight {
		return
	}
	if st.vertices[vid].NumPolygons != 1 {
		return
	}
	st.removeFromPolyRing(vid, x)
	st.vertices[vid].NumPolygons = 0
	st.arena.Remove(predVert)
	st.arena.Remove(predNeigh)
	p.NumVertices--
}

// removeFromPolyRing deletes the first occurrence of target from vid's
// polygon ring and decrements NumPolygons, reporting whether it found one.
func (st *Store) removeFromPolyRing(vid, target int) bool {
	v := &st.vertices[vid]
	head := v.PolyRing
	if st.arena.Val(head) == target {
		if st.arena.Count(head) == 1 {
			st.arena.FreeRing(head)
			v.NumPolygons--

			return true
		}
		pred := head
		for st.arena.Next(pred) != head {
			pred = st.arena.Next(pred)
		}
		newHead := st.arena.Next(head)
		st.arena.Remove(pred)
		v.PolyRing = newHead
		v.NumPolygons--

		return true
	}
	pred := head
	cur := st.arena.Next(head)
	for cur != head {
		if st.arena.Val(cur) == target {
			st.arena.Remove(pred)
			v.NumPolygons--

			return true
		}
		pred = cur
		cur = st.arena.Next(cur)
	}

	return false
}

// replaceInPolyRing overwrites the first occurrence of oldVal in vid's
// polygon ring with newVal.
func (st *Store) replaceInPolyRing(vid, oldVal, newVal int) {
	head := st.vertices[vid].PolyRing
	if st.arena.Val(head) == oldVal {
		st.arena.SetVal(head, newVal)

		return
	}
	for cur := st.arena.Next(head); cur != head; cur = st.arena.Next(cur) {
		if st.arena.Val(cur) == oldVal {
			st.arena.SetVal(cur, newVal)

			return
		}
	}
}
