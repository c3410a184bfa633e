// Package oracle defines the opaque external policy/value collaborator that
// MCTS and alpha-beta may optionally consult. The engine itself never trains
// or hosts one; it only defines the shape a caller-supplied oracle takes.
package oracle

import "github.com/janpfeifer/star/internal/state"

// ScoredMove is one candidate move annotated with a prior probability. Priors
// need not sum to 1 over all legal moves, but must be non-negative.
type ScoredMove struct {
	From  int8
	To    int8
	Prior float64
}

// Func is the oracle's shape: given a non-terminal position, return a prior
// over legal moves and a scalar value in [-1, 1] from the perspective of the
// side to move at g. A nil Func is a legal configuration -- MCTS falls back
// to uniform priors plus rollout evaluation (see internal/searchers/mcts),
// and alpha-beta's plain (non-poll) variant never calls one at all.
type Func func(g *state.Game) (priors []ScoredMove, value float64)
