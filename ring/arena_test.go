package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navmesh/ring"
)

func TestNew_ClosesCycle(t *testing.T) {
	a := ring.NewArena()
	head := a.New([]int{10, 20, 30})

	assert.Equal(t, 3, a.Count(head))
	assert.Equal(t, []int{10, 20, 30}, a.Values(head))
	// Walking 3 steps from the head returns to the head.
	assert.Equal(t, head, a.Walk(head, 3))
	// Walking past the end wraps.
	assert.Equal(t, a.Walk(head, 1), a.Walk(head, 4))
}

func TestRemove_ShrinksRingByOne(t *testing.T) {
	a := ring.NewArena()
	head := a.New([]int{1, 2, 3})

	victim := a.Remove(head) // removes the node after head, i.e. value 2
	assert.Equal(t, 2, victim)
	assert.Equal(t, 2, a.Count(head))
	assert.Equal(t, []int{1, 3}, a.Values(head))
}

func TestSplice_GraftsBorrowedChainAndKeepsClosedCycle(t *testing.T) {
	a := ring.NewArena()
	x := a.New([]int{1, 2, 3, 4}) // v_node(1) -> A(2) -> B(3) -> C(4)
	m := a.New([]int{5, 6, 7})    // E(5) -> B'(6) -> A'(7), cyclic

	vNode := x
	nodeA := a.Walk(vNode, 1)
	nodeB := a.Walk(vNode, 2)
	nodeC := a.Walk(vNode, 3)
	_ = nodeB

	// Graft m's chain, entered one step after its "A" analogue (node m,
	// i.e. value 5, the node following 7), between A and C.
	mEntry := m // value 5, the node after 7 in the m ring
	mExit := a.Walk(m, 2) // value 7, the node whose successor used to be 5

	a.Splice(nodeA, mEntry, mExit, nodeC)

	require.Equal(t, 6, a.Count(x))
	assert.Equal(t, []int{1, 2, 5, 6, 7, 4}, a.Values(x))
}

func TestFreeRing_ReclaimsNodesForReuse(t *testing.T) {
	a := ring.NewArena()
	head := a.New([]int{1, 2, 3})
	a.FreeRing(head)

	// A fresh ring of the same size should reuse the freed slots rather
	// than growing the arena, which we can't observe directly, but we can
	// at least confirm the new ring is well formed.
	head2 := a.New([]int{9, 8})
	assert.Equal(t, 2, a.Count(head2))
	assert.Equal(t, []int{9, 8}, a.Values(head2))
}
