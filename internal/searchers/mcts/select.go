package mcts

import (
	"math"

	"github.com/gomlx/exceptions"

	"github.com/janpfeifer/star/internal/rng"
	"github.com/janpfeifer/star/internal/state"
)

// minTemperature keeps the root policy well-defined as Temperature
// approaches zero: rather than divide by zero, sampling converges to an
// argmax over visit counts.
const minTemperature = 1e-3

// SelectAction samples one of root's children with probability proportional
// to softmax(log(visits+eps) / temperature), then with probability
// explorationProb substitutes a uniform choice over all children instead.
// Call Search on root first so visit counts are populated.
func (s *Searcher) SelectAction(root *Node, temperature, explorationProb float64) (*Node, state.Action) {
	n := len(root.children)
	if n == 0 {
		exceptions.Panicf("mcts: SelectAction called on a root with no children; call Search first")
	}

	if explorationProb > 0 && s.Source.Float64() < explorationProb {
		idx := s.Source.Intn(n)
		return root.children[idx], root.children[idx].action
	}

	if temperature < minTemperature {
		temperature = minTemperature
	}
	logVisits := make([]float64, n)
	for i, c := range root.children {
		logVisits[i] = math.Log(float64(c.visits)+1e-9) / temperature
	}
	rng.SoftmaxF64(logVisits, 1)
	idx := s.Source.SampleCategorical(logVisits)
	return root.children[idx], root.children[idx].action
}

// BestAction returns the child with the highest visit count, the usual
// choice for evaluation/inference play where sampling noise is unwanted.
func (s *Searcher) BestAction(root *Node) (*Node, state.Action) {
	if len(root.children) == 0 {
		exceptions.Panicf("mcts: BestAction called on a root with no children; call Search first")
	}
	best := root.children[0]
	for _, c := range root.children[1:] {
		if c.visits > best.visits {
			best = c
		}
	}
	return best, best.action
}
