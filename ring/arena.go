package ring

// node is one slot of the arena: a payload and the index of the next
// node in whichever ring currently owns this slot.
type node struct {
	val  int
	next int
}

// Arena owns every ring node used by a mesh.Store. Rings never allocate
// their own backing storage; they are simply a head index into one
// shared Arena, so splicing a chain from one ring into another is a
// pointer (index) rewrite, never a copy.
type Arena struct {
	nodes []node
	free  []int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// alloc returns the index of a fresh node holding val, reusing a freed
// slot when one is available.
func (a *Arena) alloc(val int) int {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[idx] = node{val: val, next: idx}

		return idx
	}
	idx := len(a.nodes)
	a.nodes = append(a.nodes, node{val: val, next: idx})

	return idx
}

// New builds a fresh cyclic ring from vals, in order, and returns the
// index of its head node (the node holding vals[0]).
// Complexity: O(len(vals)).
func (a *Arena) New(vals []int) int {
	if len(vals) == 0 {
		panic("ring: New called with no values")
	}
	head := a.alloc(vals[0])
	prev := head
	for _, v := range vals[1:] {
		cur := a.alloc(v)
		a.nodes[prev].next = cur
		prev = cur
	}
	a.nodes[prev].next = head

	return head
}

// Val returns the payload stored at node n.
func (a *Arena) Val(n int) int { return a.nodes[n].val }

// SetVal overwrites the payload stored at node n.
func (a *Arena) SetVal(n, val int) { a.nodes[n].val = val }

// Next returns the node following n in its ring.
func (a *Arena) Next(n int) int { return a.nodes[n].next }

// Walk returns the node k steps ahead of n, following Next k times. The
// ring is a true cycle so this wraps around automatically; k may exceed
// the ring's length.
// Complexity: O(k).
func (a *Arena) Walk(n, k int) int {
	for i := 0; i < k; i++ {
		n = a.nodes[n].next
	}

	return n
}

// Count returns the number of nodes in the ring containing head, by
// walking once all the way around.
// Complexity: O(ring length).
func (a *Arena) Count(head int) int {
	count := 1
	for n := a.nodes[head].next; n != head; n = a.nodes[n].next {
		count++
	}

	return count
}

// Values returns the payloads of the ring containing head, in ring
// order starting at head.
// Complexity: O(ring length).
func (a *Arena) Values(head int) []int {
	out := []int{a.nodes[head].val}
	for n := a.nodes[head].next; n != head; n = a.nodes[n].next {
		out = append(out, a.nodes[n].val)
	}

	return out
}

// Splice rewrites after.next = first and last.next = closing in one
// step. It is the only mutation primitive rings expose: excising a run
// is Splice(after, next-run-start, ..., ) and grafting a borrowed chain
// in is the same call with first/last taken from a different ring
// entirely — the arena does not distinguish.
func (a *Arena) Splice(after, first, last, closing int) {
	a.nodes[after].next = first
	a.nodes[last].next = closing
}

// Remove drops the single node following after, freeing it, and returns
// its former payload. The ring shrinks by exactly one node.
// Complexity: O(1).
func (a *Arena) Remove(after int) int {
	victim := a.nodes[after].next
	val := a.nodes[victim].val
	a.nodes[after].next = a.nodes[victim].next
	a.release(victim)

	return val
}

// FreeRing returns every node of the ring containing head to the free
// list. Call this exactly once per tombstoned owner; the ring must not
// be walked again afterwards.
// Complexity: O(ring length).
func (a *Arena) FreeRing(head int) {
	n := a.nodes[head].next
	a.release(head)
	for n != head {
		next := a.nodes[n].next
		a.release(n)
		n = next
	}
}

func (a *Arena) release(n int) {
	a.free = append(a.free, n)
}

// Free returns a single node to the free list directly, without walking
// a ring. Use this for a node a splice has already detached (so no
// predecessor survives to drive a Remove call) rather than Remove or
// FreeRing, neither of which fit an already-orphaned node.
func (a *Arena) Free(n int) {
	a.release(n)
}
