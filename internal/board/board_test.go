package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionsValidate(t *testing.T) {
	for _, d := range []*Definition{Small, Standard} {
		require.NotPanics(t, d.Validate)
	}
}

func TestSmallBoardShape(t *testing.T) {
	require.Len(t, Small.StartingPieces, 2*Small.NPieces)
	assert.Equal(t, 8, Small.MinDistance)
	assert.Equal(t, 36, Small.TurnLimit)
	// A side whose pieces fill the opposite base sits at exactly MinDistance.
	p1AtGoal := 0
	for _, p := range Small.StartingPieces[Small.NPieces:] {
		p1AtGoal += Small.P1Distance[p]
	}
	assert.Equal(t, Small.MinDistance, p1AtGoal)
	p2AtGoal := 0
	for _, p := range Small.StartingPieces[:Small.NPieces] {
		p2AtGoal += Small.P2Distance[p]
	}
	assert.Equal(t, Small.MinDistance, p2AtGoal)
}

func TestStandardBoardShape(t *testing.T) {
	require.Len(t, Standard.StartingPieces, 2*Standard.NPieces)
	assert.Equal(t, 20, Standard.MinDistance)
	p1AtGoal := 0
	for _, p := range Standard.StartingPieces[Standard.NPieces:] {
		p1AtGoal += Standard.P1Distance[p]
	}
	assert.Equal(t, Standard.MinDistance, p1AtGoal)
}

func TestAdjacencySymmetric(t *testing.T) {
	// Every non-sentinel edge a->b in one direction has some edge b->a.
	for _, d := range []*Definition{Small, Standard} {
		for cell, row := range d.Adjacency {
			for _, next := range row {
				if next == Sentinel {
					continue
				}
				found := false
				for _, back := range d.Adjacency[next] {
					if int(back) == cell {
						found = true
						break
					}
				}
				assert.Truef(t, found, "%s: cell %d -> %d has no return edge", d.Name, cell, next)
			}
		}
	}
}

func TestByName(t *testing.T) {
	assert.Same(t, Small, ByName("small"))
	assert.Same(t, Small, ByName(""))
	assert.Same(t, Standard, ByName("standard"))
	assert.Panics(t, func() { ByName("bogus") })
}
