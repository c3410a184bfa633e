// Package mcts implements Monte Carlo Tree Search with PUCT selection: an
// in-memory tree, expansion backed either by an external oracle or by
// uniform priors plus random rollout, root action sampling and subtree
// reuse.
package mcts

import (
	"github.com/chewxy/math32"
	"github.com/gomlx/exceptions"

	"github.com/janpfeifer/star/internal/oracle"
	"github.com/janpfeifer/star/internal/rng"
	"github.com/janpfeifer/star/internal/state"
)

// DefaultCPuct is this implementation's default exploration constant.
// DefaultCPuctReference (sqrt(2) ~= 1.41) matches the original
// implementation's constant and is offered as an alternate preset; see
// DESIGN.md.
const (
	DefaultCPuct          = 2.0
	DefaultCPuctReference = 1.41
)

// Node is a heap-allocated MCTS tree node. The parent exclusively owns its
// children; there is no parent pointer, so traversal is iterative over an
// explicit path rather than pointer-chasing upward.
type Node struct {
	game *state.Game

	// action is the move that produced this node; zero-valued at the root,
	// which is never itself selected as a child so the ambiguity with a
	// real move into cell 0 never matters.
	action state.Action

	// mover is 1 or 2: whichever player made the move leading into this
	// node. 0 at the root, which has no mover.
	mover int

	children []*Node
	expanded bool

	visits int
	q      float64 // running mean leaf value, from this node's mover's perspective
	prior  float64
}

// NewRoot creates a fresh, unexpanded root node for g.
func NewRoot(g *state.Game) *Node {
	return &Node{game: g}
}

// Visits reports how many rollouts have passed through n.
func (n *Node) Visits() int { return n.visits }

// Chroot returns the existing child reached by action, promoting its subtree
// to serve as the root of a later search and discarding the rest of the
// tree. Panics if action is not among the root's children.
func (n *Node) Chroot(action state.Action) *Node {
	for _, c := range n.children {
		if c.action.From == action.From && c.action.To == action.To {
			return c
		}
	}
	exceptions.Panicf("mcts: chroot action %+v not found among root's children", action)
	return nil
}

// Searcher runs PUCT tree search against a tree rooted at a Node returned by
// NewRoot or Chroot. Not safe for concurrent use; each worker should own one.
type Searcher struct {
	CPuct  float64
	Oracle oracle.Func // nil falls back to uniform priors plus random rollout
	Source *rng.Source
}

// New creates a Searcher. A nil o is a legal, common configuration: MCTS
// then evaluates every non-terminal leaf by uniform expansion plus rollout.
func New(cPuct float64, o oracle.Func, source *rng.Source) *Searcher {
	return &Searcher{CPuct: cPuct, Oracle: o, Source: source}
}

// Search runs exactly iterations rollouts from root, each selecting down to
// a leaf via PUCT, evaluating it, and backing the result up the path.
func (s *Searcher) Search(root *Node, iterations int) {
	for i := 0; i < iterations; i++ {
		s.rolloutOnce(root)
	}
}

func (s *Searcher) rolloutOnce(root *Node) {
	n := root
	path := []*Node{n}
	for n.expanded && len(n.children) > 0 {
		idx := n.selectChild(s.CPuct)
		n = n.children[idx]
		path = append(path, n)
	}

	status := n.game.Status()
	if status != state.Unfinished {
		n.expanded = true
		backup(path, terminalValue(status, n.mover))
		return
	}

	leafValue := s.expand(n)
	backup(path, leafValue)
}

// selectChild picks the child maximizing the PUCT score
// q + cPuct*prior*sqrt(parentVisits)/(1+childVisits). This is the hottest
// inner loop in the whole engine -- run once per node on every rollout --
// so, matching the donor's own mixed-precision convention, the score itself
// is computed in float32 via math32 even though q/prior are stored as
// float64 for parity with the persisted value table.
func (n *Node) selectChild(cPuct float64) int {
	if len(n.children) == 0 {
		exceptions.Panicf("mcts: selectChild called on a node with no children")
	}
	bestIdx := 0
	bestScore := math32.Inf(-1)
	cPuct32 := float32(cPuct)
	sqrtParent := math32.Sqrt(float32(n.visits))
	for i, child := range n.children {
		score := float32(child.q) + cPuct32*float32(child.prior)*sqrtParent/(1+float32(child.visits))
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	return bestIdx
}

// expand evaluates non-terminal leaf n: with an oracle configured, it calls
// it for priors and a value; without one, it expands uniformly and performs
// a random rollout. Either way it populates n.children and returns the leaf
// value from n.mover's perspective.
func (s *Searcher) expand(n *Node) float64 {
	if s.Oracle != nil {
		priors, value := s.Oracle(n.game)
		n.expandWithPriors(priors)
		return -value // the oracle's value is for the side to move at n.game, the opponent of n.mover
	}

	successors, actions := n.game.LegalSuccessors(true)
	if len(successors) == 0 {
		exceptions.Panicf("mcts: non-terminal status but no legal successors")
	}
	mover := childMover(n.game)
	prior := 1.0 / float64(len(successors))
	children := make([]*Node, len(successors))
	for i, succ := range successors {
		children[i] = &Node{game: succ, action: actions[i], mover: mover, prior: prior}
	}
	n.children = children
	n.expanded = true

	return s.rollout(n.game, n.mover)
}

// expandWithPriors populates n.children from an oracle's scored moves,
// matching them against the position's actual legal successors and
// renormalizing (the oracle's priors need not sum to 1).
func (n *Node) expandWithPriors(priors []oracle.ScoredMove) {
	successors, actions := n.game.LegalSuccessors(true)
	if len(successors) == 0 {
		exceptions.Panicf("mcts: non-terminal status but no legal successors")
	}

	type key struct{ from, to int8 }
	byMove := make(map[key]float64, len(priors))
	for _, p := range priors {
		byMove[key{p.From, p.To}] = p.Prior
	}

	raw := make([]float64, len(successors))
	sum := 0.0
	for i, a := range actions {
		p := byMove[key{a.From, a.To}]
		raw[i] = p
		sum += p
	}
	if sum <= 0 {
		for i := range raw {
			raw[i] = 1.0 / float64(len(raw))
		}
		sum = 1
	}

	mover := childMover(n.game)
	children := make([]*Node, len(successors))
	for i, succ := range successors {
		children[i] = &Node{game: succ, action: actions[i], mover: mover, prior: raw[i] / sum}
	}
	n.children = children
	n.expanded = true
}

func childMover(g *state.Game) int {
	if g.IsPlayer1ToMove() {
		return 1
	}
	return 2
}

// rollout plays uniformly random legal moves from g until a terminal
// position, returning +1/-1/0 from mover's perspective.
func (s *Searcher) rollout(g *state.Game, mover int) float64 {
	cur := g
	for {
		status := cur.Status()
		if status != state.Unfinished {
			return terminalValue(status, mover)
		}
		successors, _ := cur.LegalSuccessors(false)
		cur = successors[s.Source.Intn(len(successors))]
	}
}

func terminalValue(status state.Status, mover int) float64 {
	switch status {
	case state.Player1Won:
		if mover == 1 {
			return 1
		}
		return -1
	case state.Player2Won:
		if mover == 2 {
			return 1
		}
		return -1
	default: // Tie
		return 0
	}
}

// backup walks path in reverse, alternating the sign of value at each level
// (each ancestor's mover is the opponent of its child's), updating the
// running mean: visits += 1; q += (v - q) / visits.
func backup(path []*Node, value float64) {
	v := value
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		n.visits++
		n.q += (v - n.q) / float64(n.visits)
		v = -v
	}
}
