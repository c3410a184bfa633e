// Package state implements the game-state value type, its move generator
// (the jump/hop reachability kernel), the terminal test and the heuristic
// that the search algorithms consult.
package state

import (
	"sort"

	"github.com/gomlx/exceptions"

	"github.com/janpfeifer/star/internal/board"
)

// Status classifies a position.
type Status int

const (
	Unfinished Status = iota
	Player1Won
	Player2Won
	Tie
)

func (s Status) String() string {
	switch s {
	case Unfinished:
		return "unfinished"
	case Player1Won:
		return "player1_won"
	case Player2Won:
		return "player2_won"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Game is a compact position: callers never mutate a Game in place, MoveTo
// returns a new value. Pieces holds 2*Board.NPieces cells, the first half
// player 1's, the second half player 2's, each half kept sorted ascending --
// this makes equal positions byte-equal, which the value table exploits as
// its lookup key.
type Game struct {
	Board  *board.Definition
	Turn   int
	Pieces []int8
}

// New returns the starting position for the given board.
func New(b *board.Definition) *Game {
	pieces := make([]int8, len(b.StartingPieces))
	copy(pieces, b.StartingPieces)
	return &Game{Board: b, Turn: 0, Pieces: pieces}
}

// Clone returns an independent copy; the two share no backing array.
func (g *Game) Clone() *Game {
	pieces := make([]int8, len(g.Pieces))
	copy(pieces, g.Pieces)
	return &Game{Board: g.Board, Turn: g.Turn, Pieces: pieces}
}

// IsPlayer1ToMove reports whether it is player 1's turn (turn counter even).
func (g *Game) IsPlayer1ToMove() bool { return g.Turn%2 == 0 }

// IsPlayer2ToMove is the complement of IsPlayer1ToMove.
func (g *Game) IsPlayer2ToMove() bool { return g.Turn%2 == 1 }

// Player1Pieces returns the first half of Pieces, sorted ascending.
func (g *Game) Player1Pieces() []int8 { return g.Pieces[:g.Board.NPieces] }

// Player2Pieces returns the second half of Pieces, sorted ascending.
func (g *Game) Player2Pieces() []int8 { return g.Pieces[g.Board.NPieces:] }

// HasPiece reports whether any piece, either player's, occupies cell.
func (g *Game) HasPiece(cell int8) bool {
	return sortedContains(g.Player1Pieces(), cell) || sortedContains(g.Player2Pieces(), cell)
}

func sortedContains(sorted []int8, v int8) bool {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= v })
	return i < len(sorted) && sorted[i] == v
}

// MoveTo returns the successor reached by moving the piece at from to to. The
// caller must ensure the move is legal (from belongs to the side to move and
// to is a destination returned by ReachabilityMap for it). MoveTo panics if
// from is not a piece of the side to move or if to is occupied; it does not
// check that to is reachable from from.
func (g *Game) MoveTo(from, to int8) *Game {
	result := g.Clone()
	result.Turn++

	var moving []int8
	if g.IsPlayer1ToMove() {
		moving = result.Player1Pieces()
	} else {
		moving = result.Player2Pieces()
	}

	idx := sort.Search(len(moving), func(i int) bool { return moving[i] >= from })
	if idx >= len(moving) || moving[idx] != from {
		exceptions.Panicf("illegal move: piece at %d does not belong to the side to move", from)
	}
	if g.HasPiece(to) {
		exceptions.Panicf("illegal move: destination %d is occupied", to)
	}
	moving[idx] = to
	sort.Slice(moving, func(i, j int) bool { return moving[i] < moving[j] })
	return result
}

// Player1Distance sums the distance-to-goal of every player 1 piece.
func (g *Game) Player1Distance() int {
	total := 0
	for _, p := range g.Player1Pieces() {
		total += g.Board.P1Distance[p]
	}
	return total
}

// Player2Distance sums the distance-to-goal of every player 2 piece.
func (g *Game) Player2Distance() int {
	total := 0
	for _, p := range g.Player2Pieces() {
		total += g.Board.P2Distance[p]
	}
	return total
}

// Heuristic returns a static evaluation, positive favoring player 1. Each
// side's distance is clamped to zero once it is at or below MinDistance,
// widening the reward gap near terminal states.
func (g *Game) Heuristic() float64 {
	d1 := g.Player1Distance()
	if d1 <= g.Board.MinDistance {
		d1 = 0
	}
	d2 := g.Player2Distance()
	if d2 <= g.Board.MinDistance {
		d2 = 0
	}
	return float64(d2 - d1)
}

// Status classifies the position under the distance-based terminal
// convention: a side wins once its distance-sum reaches MinDistance; past
// TurnLimit the side with the smaller distance wins, ties going to player 2;
// otherwise the position is unfinished unless the side to move has no legal
// successors, in which case it is a tie.
func (g *Game) Status() Status {
	if g.Player1Distance() <= g.Board.MinDistance {
		return Player1Won
	}
	if g.Player2Distance() <= g.Board.MinDistance {
		return Player2Won
	}
	if g.Turn > g.Board.TurnLimit {
		if g.Player1Distance() < g.Player2Distance() {
			return Player1Won
		}
		return Player2Won
	}
	if !g.hasAnyLegalMove() {
		return Tie
	}
	return Unfinished
}

func (g *Game) hasAnyLegalMove() bool {
	moving := g.Player1Pieces()
	if g.IsPlayer2ToMove() {
		moving = g.Player2Pieces()
	}
	for _, piece := range moving {
		path := g.ReachabilityMap(piece)
		for dest, pred := range path {
			if pred != board.Sentinel && int8(dest) != piece {
				return true
			}
		}
	}
	return false
}

// PiecesKey returns the value-table lookup key for this position: the Pieces
// slice verbatim, turn intentionally omitted so that positions reached by
// transposition share statistics.
func (g *Game) PiecesKey() []byte {
	key := make([]byte, len(g.Pieces))
	for i, p := range g.Pieces {
		key[i] = byte(p)
	}
	return key
}

// Action records a single move: the piece moved, its destination, and the
// full reachability map it was chosen from, so a caller can reconstruct the
// slide/jump trace that realizes the move.
type Action struct {
	From int8
	To   int8
	Path []int8
}
