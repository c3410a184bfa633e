// Package greedy implements a one-ply softmax policy over heuristic values,
// used as a cheap baseline agent and for opening diversity.
package greedy

import (
	"github.com/gomlx/exceptions"

	"github.com/janpfeifer/star/internal/rng"
	"github.com/janpfeifer/star/internal/state"
)

// Searcher samples one move from a softmax over the successors' heuristic
// values (negated when player 2 is to move, since higher heuristic values
// favor player 1). Not safe for concurrent use; each worker owns one.
type Searcher struct {
	Temperature float64
	Source      *rng.Source
}

// New creates a Searcher with the given softmax temperature.
func New(temperature float64, source *rng.Source) *Searcher {
	return &Searcher{Temperature: temperature, Source: source}
}

// Search expands g's legal successors and samples one categorically from the
// softmax of their heuristic values.
func (s *Searcher) Search(g *state.Game) (*state.Game, state.Action) {
	successors, actions := g.LegalSuccessors(true)
	if len(successors) == 0 {
		exceptions.Panicf("greedy: Search called on a position with no legal moves")
	}

	values := make([]float64, len(successors))
	for i, next := range successors {
		v := next.Heuristic()
		if g.IsPlayer2ToMove() {
			v = -v
		}
		values[i] = v
	}
	rng.SoftmaxF64(values, s.Temperature)
	idx := s.Source.SampleCategorical(values)
	return successors[idx], actions[idx]
}

// ScoreMap supplies externally computed leaf values, keyed by
// state.Game.PiecesKey, in lieu of the heuristic.
type ScoreMap map[string]float64

// SearchPoll is greedy's suspension variant: it substitutes scores for the
// heuristic, returning the keys it could not find so the caller can fill
// them in and call again.
func (s *Searcher) SearchPoll(g *state.Game, scores ScoreMap) (successor *state.Game, action state.Action, needKeys [][]byte, done bool) {
	successors, actions := g.LegalSuccessors(true)
	if len(successors) == 0 {
		exceptions.Panicf("greedy: SearchPoll called on a position with no legal moves")
	}

	var needs [][]byte
	values := make([]float64, len(successors))
	for i, next := range successors {
		key := next.PiecesKey()
		v, ok := scores[string(key)]
		if !ok {
			needs = append(needs, key)
			continue
		}
		if g.IsPlayer2ToMove() {
			v = 1 - v
		}
		values[i] = v
	}
	if len(needs) > 0 {
		return nil, state.Action{}, needs, false
	}

	rng.SoftmaxF64(values, s.Temperature)
	idx := s.Source.SampleCategorical(values)
	return successors[idx], actions[idx], nil, true
}
