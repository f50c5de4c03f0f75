package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/navmesh/unionfind"
)

func TestFind_FreshSetsAreSelfRooted(t *testing.T) {
	d := unionfind.New(5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, d.Find(i))
	}
}

// TestMerge_KeepsFirstArgumentCanonical mirrors the merger's load-bearing
// requirement: after Merge(x, m), x must still resolve to itself so that
// references already anchored on x stay valid.
func TestMerge_KeepsFirstArgumentCanonical(t *testing.T) {
	d := unionfind.New(4)
	d.Merge(0, 1)
	assert.Equal(t, 0, d.Find(0))
	assert.Equal(t, 0, d.Find(1))

	d.Merge(0, 2)
	assert.Equal(t, 0, d.Find(2))

	// Merging in the other direction still resolves through whichever id
	// is passed as the surviving root.
	d.Merge(3, 0)
	assert.Equal(t, 3, d.Find(3))
	assert.Equal(t, 3, d.Find(0))
	assert.Equal(t, 3, d.Find(1))
	assert.Equal(t, 3, d.Find(2))
}

func TestMerge_NoOpOnAlreadySameSet(t *testing.T) {
	d := unionfind.New(3)
	d.Merge(0, 1)
	d.Merge(1, 0)
	assert.Equal(t, 0, d.Find(1))
}
