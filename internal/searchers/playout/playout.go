// Package playout implements the distributional playout algorithm: a
// playout follows one sampled game to its end, and at each recursive step it
// samples that successor from a softmax over the whole frontier's value-table
// entries and blends every successor's value back into the value table at
// the current position, weighted by that same distribution.
package playout

import (
	"github.com/janpfeifer/star/internal/rng"
	"github.com/janpfeifer/star/internal/state"
	"github.com/janpfeifer/star/internal/valuetable"
)

// Searcher runs distributional playouts against a shared value table. Not
// safe for concurrent use; each worker should own one (sharing the *Table,
// which is itself concurrency-safe, and its own *rng.Source).
type Searcher struct {
	Table  *valuetable.Table
	Source *rng.Source
}

// New creates a Searcher writing into table.
func New(table *valuetable.Table, source *rng.Source) *Searcher {
	return &Searcher{Table: table, Source: source}
}

// Play runs one playout from g and returns the blended value backed up into
// g's own table entry. The caller must ensure g's key already has a table
// entry (Table.Query it once, e.g. with g.Heuristic as the default) before
// the first call from a fresh position such as the starting game -- every
// recursive call below satisfies this itself, since a position is always
// queried as a child before Play recurses into it.
func (s *Searcher) Play(g *state.Game) float64 {
	successors, _ := g.LegalSuccessors(false)
	if len(successors) == 0 {
		s.Table.RecordEnding(g.PiecesKey())
		return g.Heuristic()
	}

	s.Source.Shuffle(len(successors), func(i, j int) {
		successors[i], successors[j] = successors[j], successors[i]
	})

	values := make([]float64, len(successors))
	for i, succ := range successors {
		_, v := s.Table.Query(succ.PiecesKey(), succ.Heuristic)
		values[i] = v
	}

	probs := make([]float64, len(values))
	copy(probs, values)
	if g.IsPlayer2ToMove() {
		for i := range probs {
			probs[i] = -probs[i]
		}
	}
	rng.SoftmaxF64(probs, 1.0)

	chosen := s.Source.SampleCategorical(probs)
	values[chosen] = s.Play(successors[chosen])

	updated := 0.0
	for i, v := range values {
		updated += v * probs[i]
	}

	lr := 0.2 * float64(g.Turn) / float64(g.Board.TurnLimit)
	s.Table.Update(g.PiecesKey(), updated, lr)
	return updated
}
