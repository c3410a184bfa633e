// Package alphabeta implements depth-limited minimax search with alpha-beta
// pruning and random tie-breaking at the root.
package alphabeta

import (
	"math"

	"github.com/gomlx/exceptions"

	"github.com/janpfeifer/star/internal/parameters"
	"github.com/janpfeifer/star/internal/rng"
	"github.com/janpfeifer/star/internal/state"
)

// Stats accumulates diagnostic counters across a Searcher's lifetime.
type Stats struct {
	Leaves int
	Prunes int
}

// Searcher runs depth-limited alpha-beta search against state.Game.Heuristic.
// It is not safe for concurrent use; each worker should own one (and its own
// rng.Source).
type Searcher struct {
	MaxDepth int
	Source   *rng.Source
	Stats    Stats
}

// New creates a Searcher with the given fixed search depth.
func New(maxDepth int, source *rng.Source) *Searcher {
	return &Searcher{MaxDepth: maxDepth, Source: source}
}

// NewFromParams builds a Searcher from configuration, consuming the "depth"
// key (default 4) and leaving any other keys in params untouched.
func NewFromParams(params parameters.Params, source *rng.Source) (*Searcher, error) {
	depth, err := parameters.PopParamOr(params, "depth", 4)
	if err != nil {
		return nil, err
	}
	return New(depth, source), nil
}

// Search expands g's legal successors, shuffles them for random tie-breaking,
// and returns the one with the minimax-optimal value at MaxDepth-1: the
// maximum for player 1, the minimum for player 2.
func (s *Searcher) Search(g *state.Game) (*state.Game, state.Action) {
	successors, actions := g.LegalSuccessors(true)
	if len(successors) == 0 {
		exceptions.Panicf("alphabeta: Search called on a position with no legal moves")
	}

	order := shuffledOrder(s.Source, len(successors))
	bestIdx := order[0]
	bestValue := s.recurse(successors[bestIdx], s.MaxDepth-1, math.Inf(-1), math.Inf(1))
	for _, idx := range order[1:] {
		value := s.recurse(successors[idx], s.MaxDepth-1, math.Inf(-1), math.Inf(1))
		if better(g, value, bestValue) {
			bestValue = value
			bestIdx = idx
		}
	}
	return successors[bestIdx], actions[bestIdx]
}

func better(g *state.Game, candidate, incumbent float64) bool {
	if g.IsPlayer1ToMove() {
		return candidate > incumbent
	}
	return candidate < incumbent
}

func shuffledOrder(source *rng.Source, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	source.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}

func (s *Searcher) recurse(g *state.Game, depth int, alpha, beta float64) float64 {
	if depth <= 0 {
		s.Stats.Leaves++
		return g.Heuristic()
	}
	successors, _ := g.LegalSuccessors(false)
	if len(successors) == 0 {
		s.Stats.Leaves++
		return g.Heuristic()
	}

	if g.IsPlayer1ToMove() {
		value := alpha
		for _, next := range successors {
			value = math.Max(value, s.recurse(next, depth-1, value, beta))
			if value >= beta {
				s.Stats.Prunes++
				break
			}
		}
		return value
	}

	value := beta
	for _, next := range successors {
		value = math.Min(value, s.recurse(next, depth-1, alpha, value))
		if value <= alpha {
			s.Stats.Prunes++
			break
		}
	}
	return value
}
