package state

import "github.com/janpfeifer/star/internal/board"

// ReachabilityMap computes, for the piece at origin, every cell reachable by
// a slide or a chain of jumps, as a predecessor map: result[c] is the cell
// the search arrived at c from, or board.Sentinel if c is unreached.
// result[origin] == origin.
//
// The search is a depth-first walk over a LIFO work list: pop a position,
// scan all 6 directions outward from it. Before the first occupied cell is
// crossed each empty step just counts distance; crossing exactly one
// occupied cell ("the pivot") starts a hop, which must land on an empty cell
// the same number of steps past the pivot as the pivot was from the
// take-off point. A second occupied cell encountered mid-hop blocks that
// direction entirely -- jumps do not chain without an intervening landing.
// After the BFS, single-step slides to empty neighbours of origin are added
// last, overwriting any predecessor already recorded for them, since a slide
// is always at least as short as any jump route to the same neighbour.
func (g *Game) ReachabilityMap(origin int8) []int8 {
	b := g.Board
	result := make([]int8, b.Size)
	for i := range result {
		result[i] = board.Sentinel
	}
	result[origin] = origin

	stack := []int8{origin}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for dir := 0; dir < board.NumDirections; dir++ {
			cp := pos
			steps := 0
			hopping := false

		walk:
			for {
				cp = b.Adjacency[cp][dir]
				if cp == board.Sentinel {
					break walk
				}
				occupied := cp != origin && g.HasPiece(cp)
				switch {
				case occupied && hopping:
					// Second pivot mid-hop: this direction is blocked.
					break walk
				case occupied && !hopping:
					hopping = true
				case !occupied && hopping && steps == 0:
					if result[cp] == board.Sentinel {
						stack = append(stack, cp)
						result[cp] = pos
					}
					break walk
				case !occupied && hopping:
					steps--
				default: // !occupied && !hopping
					steps++
				}
			}
		}
	}

	for dir := 0; dir < board.NumDirections; dir++ {
		next := b.Adjacency[origin][dir]
		if next == board.Sentinel || g.HasPiece(next) {
			continue
		}
		result[next] = origin
	}

	return result
}

// LegalSuccessors expands every move available to the side to move. If the
// position is already past the early-finish distance threshold for either
// side, it returns no successors (the position is terminal). When
// recordActions is true, the returned Action slice parallels the successors
// one-to-one; otherwise it is nil, saving the allocation.
func (g *Game) LegalSuccessors(recordActions bool) ([]*Game, []Action) {
	if g.Player1Distance() <= g.Board.MinDistance || g.Player2Distance() <= g.Board.MinDistance {
		return nil, nil
	}

	moving := g.Player1Pieces()
	if g.IsPlayer2ToMove() {
		moving = g.Player2Pieces()
	}

	var successors []*Game
	var actions []Action
	for _, piece := range moving {
		path := g.ReachabilityMap(piece)
		for dest, pred := range path {
			if pred == board.Sentinel || int8(dest) == piece {
				continue
			}
			successors = append(successors, g.MoveTo(piece, int8(dest)))
			if recordActions {
				actions = append(actions, Action{From: piece, To: int8(dest), Path: path})
			}
		}
	}
	return successors, actions
}
