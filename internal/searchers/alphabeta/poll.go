package alphabeta

import (
	"math"

	"github.com/gomlx/exceptions"

	"github.com/janpfeifer/star/internal/state"
)

// ScoreMap supplies externally computed leaf values, keyed by
// state.Game.PiecesKey, in lieu of calling an in-process oracle.
type ScoreMap map[string]float64

// SearchPoll is the suspension variant of Search: instead of evaluating
// leaves with the heuristic, it looks them up in scores. Whenever a leaf's
// key is missing, the search does not fail -- it collects every missing key
// reachable from the current call and returns them, done=false, so the
// caller can fill scores and call SearchPoll again from scratch. On success,
// done=true and the chosen successor/action are returned as usual.
func (s *Searcher) SearchPoll(g *state.Game, scores ScoreMap) (successor *state.Game, action state.Action, needKeys [][]byte, done bool) {
	successors, actions := g.LegalSuccessors(true)
	if len(successors) == 0 {
		exceptions.Panicf("alphabeta: SearchPoll called on a position with no legal moves")
	}

	order := shuffledOrder(s.Source, len(successors))
	values := make([]float64, len(successors))
	var needs [][]byte
	for _, idx := range order {
		v, need := s.recursePoll(successors[idx], s.MaxDepth-1, math.Inf(-1), math.Inf(1), scores)
		if len(need) > 0 {
			needs = append(needs, need...)
			continue
		}
		values[idx] = v
	}
	if len(needs) > 0 {
		return nil, state.Action{}, needs, false
	}

	bestIdx := order[0]
	for _, idx := range order[1:] {
		if better(g, values[idx], values[bestIdx]) {
			bestIdx = idx
		}
	}
	return successors[bestIdx], actions[bestIdx], nil, true
}

func (s *Searcher) recursePoll(g *state.Game, depth int, alpha, beta float64, scores ScoreMap) (float64, [][]byte) {
	if depth <= 0 {
		return lookupOrNeed(g, scores)
	}
	successors, _ := g.LegalSuccessors(false)
	if len(successors) == 0 {
		return lookupOrNeed(g, scores)
	}

	if g.IsPlayer1ToMove() {
		value := alpha
		var needs [][]byte
		for _, next := range successors {
			v, need := s.recursePoll(next, depth-1, value, beta, scores)
			if len(need) > 0 {
				needs = append(needs, need...)
				continue
			}
			value = math.Max(value, v)
			if value >= beta {
				break
			}
		}
		if len(needs) > 0 {
			return 0, needs
		}
		return value, nil
	}

	value := beta
	var needs [][]byte
	for _, next := range successors {
		v, need := s.recursePoll(next, depth-1, alpha, value, scores)
		if len(need) > 0 {
			needs = append(needs, need...)
			continue
		}
		value = math.Min(value, v)
		if value <= alpha {
			break
		}
	}
	if len(needs) > 0 {
		return 0, needs
	}
	return value, nil
}

func lookupOrNeed(g *state.Game, scores ScoreMap) (float64, [][]byte) {
	key := g.PiecesKey()
	if v, ok := scores[string(key)]; ok {
		return v, nil
	}
	return 0, [][]byte{key}
}
