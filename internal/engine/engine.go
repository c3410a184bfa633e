// Package engine is the embeddable handle-based façade a host (a CLI, or
// any future UI) drives: create a Game, inspect it, and advance it with one
// of the search algorithms, either synchronously or via a suspending
// *Session when the caller wants to supply oracle evaluations itself.
package engine

import (
	"github.com/janpfeifer/star/internal/board"
	"github.com/janpfeifer/star/internal/oracle"
	"github.com/janpfeifer/star/internal/rng"
	"github.com/janpfeifer/star/internal/searchers/alphabeta"
	"github.com/janpfeifer/star/internal/searchers/greedy"
	"github.com/janpfeifer/star/internal/searchers/mcts"
	"github.com/janpfeifer/star/internal/state"
)

// Game is an opaque handle over a position. Hosts are trusted: calling a
// method with an illegal argument is a contract violation, not a recoverable
// error, exactly as state.Game itself behaves. MoveTo panics when from is not
// a piece of the side to move or to is occupied; an unoccupied but
// unreachable destination is not detected.
type Game struct {
	g *state.Game
}

// NewGame creates a handle over the starting position for b.
func NewGame(b *board.Definition) *Game {
	return &Game{g: state.New(b)}
}

func (h *Game) IsSideToMovePlayer1() bool { return h.g.IsPlayer1ToMove() }
func (h *Game) IsSideToMovePlayer2() bool { return h.g.IsPlayer2ToMove() }
func (h *Game) PiecesOfPlayer1() []int8   { return h.g.Player1Pieces() }
func (h *Game) PiecesOfPlayer2() []int8   { return h.g.Player2Pieces() }
func (h *Game) Status() state.Status      { return h.g.Status() }

// PossibleMovesWithPath returns every legal action from this position, each
// carrying the reachability path it was found on.
func (h *Game) PossibleMovesWithPath() []state.Action {
	_, actions := h.g.LegalSuccessors(true)
	return actions
}

// MoveTo returns the handle for the successor reached by moving the piece at
// from to to.
func (h *Game) MoveTo(from, to int8) *Game {
	return &Game{g: h.g.MoveTo(from, to)}
}

// AlphaBeta runs depth-limited alpha-beta search and returns the chosen
// successor and action.
func (h *Game) AlphaBeta(maxDepth int, source *rng.Source) (*Game, state.Action) {
	s := alphabeta.New(maxDepth, source)
	succ, action := s.Search(h.g)
	return &Game{g: succ}, action
}

// Greedy runs one-ply softmax search over heuristic values and returns the
// chosen successor and action.
func (h *Game) Greedy(temperature float64, source *rng.Source) (*Game, state.Action) {
	s := greedy.New(temperature, source)
	succ, action := s.Search(h.g)
	return &Game{g: succ}, action
}

// MCTS runs the given number of PUCT rollouts and returns the handle reached
// by the most-visited root action.
func (h *Game) MCTS(iterations int, cPuct float64, o oracle.Func, source *rng.Source) (*Game, state.Action) {
	root := mcts.NewRoot(h.g)
	s := mcts.New(cPuct, o, source)
	s.Search(root, iterations)
	_, action := s.BestAction(root)
	return h.MoveTo(action.From, action.To), action
}

// sessionKind distinguishes which underlying algorithm a Session is driving.
type sessionKind int

const (
	kindAlphaBeta sessionKind = iota
	kindGreedy
	kindMCTS
)

// Session is the opaque suspension handle returned by the *Poll methods
// below. A nil Session means the computation is complete; the accompanying
// successor/action are then the result. A non-nil Session means the search
// needs more evaluations: score the needKeys/needLeaf returned alongside it
// and pass them to Resume, which continues the search.
type Session struct {
	kind sessionKind
	game *Game

	// alpha-beta / greedy: batch score-map suspension.
	maxDepth    int
	temperature float64
	source      *rng.Source
	abScores    alphabeta.ScoreMap
	grScores    greedy.ScoreMap

	// mcts: per-leaf suspension against a live tree.
	mctsSession   *mcts.Session
	mctsSearcher  *mcts.Searcher
	mctsRoot      *mcts.Node
	mctsIterLeft  int
}

// AlphaBetaPoll starts a suspending alpha-beta search. See Session.
func (h *Game) AlphaBetaPoll(maxDepth int, source *rng.Source) (successor *Game, action state.Action, needKeys [][]byte, session *Session) {
	sess := &Session{kind: kindAlphaBeta, game: h, maxDepth: maxDepth, source: source, abScores: alphabeta.ScoreMap{}}
	return sess.pollAlphaBeta()
}

// GreedyPoll starts a suspending greedy search. See Session.
func (h *Game) GreedyPoll(temperature float64, source *rng.Source) (successor *Game, action state.Action, needKeys [][]byte, session *Session) {
	sess := &Session{kind: kindGreedy, game: h, temperature: temperature, source: source, grScores: greedy.ScoreMap{}}
	return sess.pollGreedy()
}

// MCTSPoll starts a suspending MCTS search of the given rollout budget. Each
// rollout that reaches a non-terminal leaf suspends for a (priors, value)
// evaluation instead of rolling out randomly.
func (h *Game) MCTSPoll(iterations int, cPuct float64, source *rng.Source) (successor *Game, action state.Action, needLeaf *state.Game, session *Session) {
	root := mcts.NewRoot(h.g)
	searcher := mcts.New(cPuct, alwaysSuspendMarker, source)
	sess := &Session{kind: kindMCTS, game: h, mctsSearcher: searcher, mctsRoot: root, mctsIterLeft: iterations}
	sess.mctsSession = mcts.NewSession(searcher, root)
	leaf, ns := sess.pollMCTS()
	if ns == nil {
		s, a := ns2result(sess)
		return s, a, nil, nil
	}
	return nil, state.Action{}, leaf, ns
}

// alwaysSuspendMarker is a non-nil placeholder: mcts.Session only suspends
// when its Searcher.Oracle is non-nil, and it never actually invokes this
// function -- the real evaluation always comes back through Resume.
var alwaysSuspendMarker oracle.Func = func(*state.Game) ([]oracle.ScoredMove, float64) {
	panic("engine: mcts suspension marker invoked directly; evaluations must flow through Session.Resume")
}

// Resume supplies evaluations for the keys/leaf returned by the previous
// *Poll or Resume call and continues the search, returning the next
// suspension point or, when done, the final successor/action and a nil
// Session.
//
// For an alpha-beta/greedy Session, keys and values must be parallel slices
// covering (at least) needKeys from the prior call. For an MCTS Session,
// priors and value evaluate the single leaf from the prior call; keys/values
// are ignored.
func (sess *Session) Resume(keys [][]byte, values []float64, priors []oracle.ScoredMove, value float64) (successor *Game, action state.Action, needKeys [][]byte, needLeaf *state.Game, next *Session) {
	switch sess.kind {
	case kindAlphaBeta:
		for i, k := range keys {
			sess.abScores[string(k)] = values[i]
		}
		s, a, nk, ns := sess.pollAlphaBeta()
		return s, a, nk, nil, ns
	case kindGreedy:
		for i, k := range keys {
			sess.grScores[string(k)] = values[i]
		}
		s, a, nk, ns := sess.pollGreedy()
		return s, a, nk, nil, ns
	default: // kindMCTS
		sess.mctsSession.Resume(priors, value)
		sess.mctsIterLeft--
		leaf, ns := sess.pollMCTS()
		if ns == nil {
			s, a := ns2result(sess)
			return s, a, nil, nil, nil
		}
		return nil, state.Action{}, nil, leaf, ns
	}
}

func ns2result(sess *Session) (*Game, state.Action) {
	_, action := sess.mctsSearcher.BestAction(sess.mctsRoot)
	return sess.game.MoveTo(action.From, action.To), action
}

func (sess *Session) pollAlphaBeta() (*Game, state.Action, [][]byte, *Session) {
	s := alphabeta.New(sess.maxDepth, sess.source)
	succ, action, needKeys, done := s.SearchPoll(sess.game.g, sess.abScores)
	if done {
		return &Game{g: succ}, action, nil, nil
	}
	return nil, state.Action{}, needKeys, sess
}

func (sess *Session) pollGreedy() (*Game, state.Action, [][]byte, *Session) {
	s := greedy.New(sess.temperature, sess.source)
	succ, action, needKeys, done := s.SearchPoll(sess.game.g, sess.grScores)
	if done {
		return &Game{g: succ}, action, nil, nil
	}
	return nil, state.Action{}, needKeys, sess
}

func (sess *Session) pollMCTS() (*state.Game, *Session) {
	for sess.mctsIterLeft > 0 {
		leaf, needsOracle := sess.mctsSession.Poll()
		if needsOracle {
			return leaf, sess
		}
		sess.mctsIterLeft--
	}
	return nil, nil
}
