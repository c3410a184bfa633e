// Package board holds the static, per-board-size tables the rest of the engine
// depends on: adjacency, starting arrangement, per-cell distance maps and the
// terminal-distance threshold. Boards are immutable for the life of the process.
package board

import "github.com/gomlx/exceptions"

// Sentinel marks a direction that walks off the board.
const Sentinel int8 = -1

// NumDirections is the fixed hexagonal fan-out of every cell.
const NumDirections = 6

// Definition is a static description of one star-board layout. Two concrete
// instances are provided, Small and Standard; both are safe for concurrent
// read-only use from any number of goroutines.
type Definition struct {
	// Name identifies the board, used in configuration and logging.
	Name string

	// NPieces is the number of pieces each player starts with.
	NPieces int

	// Size is the number of addressable cells, indices [0, Size).
	Size int

	// Adjacency maps cell -> direction -> neighbouring cell, or Sentinel.
	Adjacency [][NumDirections]int8

	// StartingPieces holds the initial arrangement: the first NPieces cells
	// belong to player 1, the second NPieces to player 2. Both halves sorted.
	StartingPieces []int8

	// P1Distance and P2Distance give, per cell, the remaining distance toward
	// each player's goal base. Summed over a player's pieces this yields the
	// distance-sum heuristic terms.
	P1Distance []int
	P2Distance []int

	// MinDistance is the smallest achievable sum-of-distances for a side whose
	// pieces exactly occupy the opposite base; reaching it is a win.
	MinDistance int

	// TurnLimit is the forced-end turn number; exceeding it ends the game by
	// distance comparison rather than base occupancy.
	TurnLimit int
}

// Validate checks internal consistency of the table data. It panics (a
// configuration bug, not a runtime condition) if the tables are malformed.
func (d *Definition) Validate() {
	if len(d.Adjacency) != d.Size {
		exceptions.Panicf("board %q: adjacency table has %d rows, want %d", d.Name, len(d.Adjacency), d.Size)
	}
	if len(d.P1Distance) != d.Size || len(d.P2Distance) != d.Size {
		exceptions.Panicf("board %q: distance maps must cover all %d cells", d.Name, d.Size)
	}
	if len(d.StartingPieces) != 2*d.NPieces {
		exceptions.Panicf("board %q: expected %d starting pieces, got %d", d.Name, 2*d.NPieces, len(d.StartingPieces))
	}
	for _, row := range d.Adjacency {
		for _, next := range row {
			if next != Sentinel && (int(next) < 0 || int(next) >= d.Size) {
				exceptions.Panicf("board %q: adjacency entry %d out of range [0,%d)", d.Name, next, d.Size)
			}
		}
	}
}

func init() {
	Small.Validate()
	Standard.Validate()
}

// ByName resolves a board by its configuration name ("small" or "standard").
func ByName(name string) *Definition {
	switch name {
	case "", "small":
		return Small
	case "standard":
		return Standard
	default:
		exceptions.Panicf("unknown board %q, want \"small\" or \"standard\"", name)
		return nil
	}
}
