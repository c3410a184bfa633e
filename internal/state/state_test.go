package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janpfeifer/star/internal/board"
)

func TestNewGameInvariants(t *testing.T) {
	g := New(board.Small)
	assert.True(t, g.IsPlayer1ToMove())
	assert.False(t, g.IsPlayer2ToMove())
	assertSortedDisjoint(t, g)
}

func assertSortedDisjoint(t *testing.T, g *Game) {
	t.Helper()
	p1 := g.Player1Pieces()
	p2 := g.Player2Pieces()
	for i := 1; i < len(p1); i++ {
		require.Less(t, p1[i-1], p1[i])
	}
	for i := 1; i < len(p2); i++ {
		require.Less(t, p2[i-1], p2[i])
	}
	seen := map[int8]bool{}
	for _, p := range g.Pieces {
		require.False(t, seen[p], "cell %d occupied twice", p)
		seen[p] = true
	}
}

func TestLegalSuccessorsFromStart(t *testing.T) {
	g := New(board.Small)
	successors, actions := g.LegalSuccessors(true)
	require.NotEmpty(t, successors)
	require.Len(t, actions, len(successors))

	wantFanOut := 0
	for _, piece := range g.Player1Pieces() {
		path := g.ReachabilityMap(piece)
		for dest, pred := range path {
			if pred != board.Sentinel && int8(dest) != piece {
				wantFanOut++
			}
		}
	}
	assert.Equal(t, wantFanOut, len(successors))

	for _, s := range successors {
		assert.Equal(t, g.Turn+1, s.Turn)
		assertSortedDisjoint(t, s)
		assert.NotEqual(t, g.Pieces, s.Pieces)
	}
}

func TestReachabilityMapTerminatesWithinBoardSize(t *testing.T) {
	g := New(board.Small)
	for _, piece := range g.Player1Pieces() {
		path := g.ReachabilityMap(piece)
		require.Len(t, path, g.Board.Size)
		for c, pred := range path {
			if pred == board.Sentinel {
				continue
			}
			steps := 0
			cur := int8(c)
			for cur != piece {
				cur = path[cur]
				steps++
				require.LessOrEqual(t, steps, g.Board.Size, "predecessor chain did not terminate at origin")
			}
		}
	}
}

func TestReachabilityIncludesAdjacentSlide(t *testing.T) {
	// The origin's neighbours are empty (every other piece sits far away):
	// every empty neighbour must be reachable with predecessor == origin.
	g := &Game{Board: board.Small, Turn: 0, Pieces: []int8{0, 60, 61, 62, 63, 64, 67, 68, 69, 70, 71, 72}}
	path := g.ReachabilityMap(0)
	for _, dir := range board.Small.Adjacency[0] {
		if dir == board.Sentinel {
			continue
		}
		assert.Equal(t, int8(0), path[dir])
	}
}

func TestHeuristicSignMatchesDistance(t *testing.T) {
	g := New(board.Small)
	h := g.Heuristic()
	if h > 0 {
		assert.Less(t, g.Player1Distance(), g.Player2Distance())
	}
}

func TestMoveToIncrementsTurnAndPreservesOtherHalf(t *testing.T) {
	g := New(board.Small)
	_, actions := g.LegalSuccessors(true)
	require.NotEmpty(t, actions)
	a := actions[0]
	s := g.MoveTo(a.From, a.To)
	assert.Equal(t, g.Turn+1, s.Turn)
	assert.Equal(t, g.Player2Pieces(), s.Player2Pieces())
	assertSortedDisjoint(t, s)
}

func TestMoveToIllegalPiecePanics(t *testing.T) {
	g := New(board.Small)
	assert.Panics(t, func() {
		g.MoveTo(67, 68) // belongs to player 2, but player 1 is to move
	})
}

func TestStatusUnfinishedAtStart(t *testing.T) {
	g := New(board.Small)
	assert.Equal(t, Unfinished, g.Status())
}

func TestStatusWinByOccupyingOppositeBase(t *testing.T) {
	g := &Game{Board: board.Small, Turn: 0, Pieces: []int8{67, 68, 69, 70, 71, 72, 0, 1, 2, 3, 4, 5}}
	assert.Equal(t, Player1Won, g.Status())
}

func TestStatusForcedEndPicksSmallerDistance(t *testing.T) {
	g := New(board.Small)
	g.Turn = g.Board.TurnLimit + 1
	status := g.Status()
	if g.Player1Distance() < g.Player2Distance() {
		assert.Equal(t, Player1Won, status)
	} else {
		assert.Equal(t, Player2Won, status)
	}
}

func TestPiecesKeyOmitsTurn(t *testing.T) {
	g := New(board.Small)
	g2 := g.Clone()
	g2.Turn = 41
	assert.Equal(t, g.PiecesKey(), g2.PiecesKey())
}
