package mcts

import (
	"github.com/gomlx/exceptions"

	"github.com/janpfeifer/star/internal/oracle"
	"github.com/janpfeifer/star/internal/state"
)

// Session drives MCTS one rollout at a time, suspending instead of calling
// an oracle directly. It exists for callers whose evaluator lives out of
// process (batched, over a network, or otherwise not an in-memory
// oracle.Func): Poll runs selection down to a leaf and, whenever that leaf
// needs evaluation by an oracle, stops and hands the caller the leaf's game
// state; the caller supplies the evaluation via Resume, which expands the
// leaf and backs up the result. A Session configured with Searcher.Oracle ==
// nil never suspends: Poll completes each rollout synchronously exactly like
// Search, since there is no external evaluator to wait on.
type Session struct {
	s    *Searcher
	root *Node
	path []*Node // non-nil between a Poll that suspended and the matching Resume
}

// NewSession creates a Session rooted at root using s's configuration.
func NewSession(s *Searcher, root *Node) *Session {
	return &Session{s: s, root: root}
}

// Poll runs one rollout. If it completes without needing an oracle (the leaf
// was terminal, or no oracle is configured), it returns (nil, false) and the
// caller may Poll again immediately. Otherwise it returns the leaf's game
// state and true; the caller must evaluate it and call Resume before Polling
// again.
func (sess *Session) Poll() (leaf *state.Game, needsOracle bool) {
	if sess.path != nil {
		exceptions.Panicf("mcts: Poll called again before the previous suspension was Resumed")
	}

	n := sess.root
	path := []*Node{n}
	for n.expanded && len(n.children) > 0 {
		idx := n.selectChild(sess.s.CPuct)
		n = n.children[idx]
		path = append(path, n)
	}

	status := n.game.Status()
	if status != state.Unfinished {
		n.expanded = true
		backup(path, terminalValue(status, n.mover))
		return nil, false
	}

	if sess.s.Oracle == nil {
		leafValue := sess.s.expand(n)
		backup(path, leafValue)
		return nil, false
	}

	sess.path = path
	return n.game, true
}

// Resume supplies the evaluation for the leaf game state returned by the
// most recent Poll, expanding it and backing the result up the search path.
// Resume must not be called unless the preceding Poll returned needsOracle
// == true.
func (sess *Session) Resume(priors []oracle.ScoredMove, value float64) {
	leaf := sess.path[len(sess.path)-1]
	leaf.expandWithPriors(priors)
	backup(sess.path, -value)
	sess.path = nil
}
