package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/janpfeifer/star/internal/board"
	"github.com/janpfeifer/star/internal/parameters"
	"github.com/janpfeifer/star/internal/rng"
	"github.com/janpfeifer/star/internal/searchers/playout"
	"github.com/janpfeifer/star/internal/state"
	"github.com/janpfeifer/star/internal/valuetable"
)

// minVisitsBeforeReporting is the visit floor analyze tops successors up to
// before reporting on them, so early diagnostics aren't dominated by a
// single lucky/unlucky rollout.
const minVisitsBeforeReporting = 5

const sampledGamesForAverageLength = 32

func runAnalyze(_ context.Context, b *board.Definition, _ parameters.Params) error {
	table := valuetable.New(2 * b.NPieces)
	if err := table.Load(*flagTable); err != nil {
		return err
	}

	root := state.New(b)
	rootVisits, rootValue := table.Query(root.PiecesKey(), root.Heuristic)

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	fmt.Println(header.Render("=== star analyze ==="))
	fmt.Printf("root visits: %d, root value: %.4f\n", rootVisits, rootValue)

	source := rng.New(1, 0)
	totalTurns := 0
	for i := 0; i < sampledGamesForAverageLength; i++ {
		totalTurns += len(simulateGame(root, table, source))
	}
	fmt.Printf("average game length over %d sampled games: %.2f turns\n",
		sampledGamesForAverageLength, float64(totalTurns)/float64(sampledGamesForAverageLength))

	fmt.Println(header.Render("--- example game ---"))
	row := lipgloss.NewStyle().PaddingLeft(2)
	for _, step := range simulateGame(root, table, source) {
		fmt.Printf("turn %d: p1_distance=%d p2_distance=%d\n",
			step.game.Turn, step.game.Player1Distance(), step.game.Player2Distance())
		fmt.Println(row.Render(fmt.Sprintf("move %d -> %d (chosen of %d candidates, visits=%d)",
			step.from, step.to, len(step.values), step.visits)))
		fmt.Println(row.Render(fmt.Sprintf("values: %v", step.values)))
		fmt.Println(row.Render(fmt.Sprintf("probs: %v", step.probs)))
	}
	return nil
}

type gameStep struct {
	game          *state.Game
	from, to      int8
	values, probs []float64
	visits        uint64
}

// simulateGame mirrors the original implementation's diagnostic random_play:
// top every successor up to minVisitsBeforeReporting recorded playouts, then
// sample one weighted by a temperature-0.5 softmax over their table values
// and recurse.
func simulateGame(g *state.Game, table *valuetable.Table, source *rng.Source) []gameStep {
	successors, actions := g.LegalSuccessors(true)
	if len(successors) == 0 {
		return nil
	}

	s := playout.New(table, source)
	for _, succ := range successors {
		visits, _ := table.Query(succ.PiecesKey(), succ.Heuristic)
		for visits < minVisitsBeforeReporting {
			s.Play(succ)
			visits, _ = table.Query(succ.PiecesKey(), succ.Heuristic)
		}
	}

	values := make([]float64, len(successors))
	visitCounts := make([]uint64, len(successors))
	for i, succ := range successors {
		visitCounts[i], values[i] = table.Query(succ.PiecesKey(), succ.Heuristic)
	}

	probs := make([]float64, len(values))
	copy(probs, values)
	if g.IsPlayer2ToMove() {
		for i := range probs {
			probs[i] = -probs[i]
		}
	}
	rng.SoftmaxF64(probs, 0.5)
	choice := source.SampleCategorical(probs)

	step := gameStep{
		game:   g,
		from:   actions[choice].From,
		to:     actions[choice].To,
		values: values,
		probs:  probs,
		visits: visitCounts[choice],
	}
	return append([]gameStep{step}, simulateGame(successors[choice], table, source)...)
}
