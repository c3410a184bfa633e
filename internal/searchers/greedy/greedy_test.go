package greedy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janpfeifer/star/internal/board"
	"github.com/janpfeifer/star/internal/rng"
	"github.com/janpfeifer/star/internal/state"
)

func TestSearchReturnsALegalSuccessor(t *testing.T) {
	g := state.New(board.Small)
	s := New(1, rng.New(1, 0))
	successor, action := s.Search(g)
	require.NotNil(t, successor)
	assert.Equal(t, g.Turn+1, successor.Turn)
	assert.NotEqual(t, board.Sentinel, action.To)
}

func TestLowTemperaturePrefersBestHeuristic(t *testing.T) {
	g := state.New(board.Small)
	successors, _ := g.LegalSuccessors(true)
	best := successors[0].Heuristic()
	for _, next := range successors {
		if v := next.Heuristic(); v > best {
			best = v
		}
	}

	// Several successors can share the best heuristic value; the softmax
	// splits the probability evenly between them, so any of them may be
	// chosen.
	s := New(1e-6, rng.New(2, 0))
	chosen, _ := s.Search(g)
	assert.Equal(t, best, chosen.Heuristic())
}

func TestSearchPollRequestsMissingKeysThenCompletes(t *testing.T) {
	g := state.New(board.Small)
	s := New(1, rng.New(3, 0))

	_, _, needKeys, done := s.SearchPoll(g, ScoreMap{})
	require.False(t, done)
	require.NotEmpty(t, needKeys)

	scores := ScoreMap{}
	for _, k := range needKeys {
		scores[string(k)] = 0.5
	}
	_, _, _, done2 := s.SearchPoll(g, scores)
	assert.True(t, done2)
}
