// Package driver runs the distributional playout algorithm across a pool of
// worker goroutines sharing one value table, loading it at startup and
// dumping it on completion or interruption.
package driver

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/janpfeifer/star/internal/board"
	"github.com/janpfeifer/star/internal/rng"
	"github.com/janpfeifer/star/internal/searchers/playout"
	"github.com/janpfeifer/star/internal/state"
	"github.com/janpfeifer/star/internal/valuetable"
)

// counter is a simple concurrency-safe playout tally shared by every worker.
type counter struct {
	n atomic.Int64
}

func (c *counter) inc()     { c.n.Add(1) }
func (c *counter) get() int { return int(c.n.Load()) }

// Config parameterizes a Run.
type Config struct {
	Board *board.Definition

	// Workers is the number of concurrent playout goroutines. Defaults to 1
	// if <= 0.
	Workers int

	// MasterSeed seeds every worker's rng.Source, mixed with its index so
	// siblings never share a stream. A fixed seed with Workers == 1
	// reproduces one deterministic run.
	MasterSeed uint64

	// TablePath is where the value table is loaded from at startup (missing
	// file is not an error, see valuetable.Table.Load) and dumped to once the
	// workers stop, whether they finished, were canceled or failed. A Load
	// error returns before any worker starts and dumps nothing.
	TablePath string

	// DumpThreshold is the minimum visit count an entry needs to survive a
	// dump; see valuetable.DefaultDumpThreshold.
	DumpThreshold uint64
}

// Result summarizes one Run.
type Result struct {
	PlayoutsCompleted int
	Interrupted       bool
}

// Run loads the value table from cfg.TablePath, runs cfg.Workers goroutines
// each executing playouts from the starting position until they have
// together completed total playouts or ctx is canceled, then dumps the table
// back to cfg.TablePath regardless of how it stopped.
func Run(ctx context.Context, cfg Config, total int) (Result, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	table := valuetable.New(2 * cfg.Board.NPieces)
	if err := table.Load(cfg.TablePath); err != nil {
		return Result{}, errors.Wrapf(err, "loading value table from %q", cfg.TablePath)
	}

	root := state.New(cfg.Board)
	table.Query(root.PiecesKey(), root.Heuristic) // ensure the root node exists before any worker plays through it

	var completed counter
	group, groupCtx := errgroup.WithContext(ctx)
	perWorker := total / workers
	remainder := total % workers
	for w := 0; w < workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		source := rng.New(cfg.MasterSeed, w)
		group.Go(func() error {
			return runWorker(groupCtx, table, root, source, n, &completed)
		})
	}

	err := group.Wait()
	interrupted := ctx.Err() != nil
	if err != nil && !interrupted {
		dumpErr := table.Dump(cfg.TablePath, cfg.DumpThreshold)
		if dumpErr != nil {
			klog.Errorf("failed to dump value table after worker error: %+v", dumpErr)
		}
		return Result{PlayoutsCompleted: completed.get(), Interrupted: false}, err
	}

	if dumpErr := table.Dump(cfg.TablePath, cfg.DumpThreshold); dumpErr != nil {
		return Result{PlayoutsCompleted: completed.get(), Interrupted: interrupted}, errors.Wrapf(dumpErr, "dumping value table to %q", cfg.TablePath)
	}
	klog.V(1).Infof("driver: completed %d playouts (interrupted=%v)", completed.get(), interrupted)
	return Result{PlayoutsCompleted: completed.get(), Interrupted: interrupted}, nil
}

func runWorker(ctx context.Context, table *valuetable.Table, root *state.Game, source *rng.Source, n int, completed *counter) error {
	s := playout.New(table, source)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		s.Play(root)
		completed.inc()
	}
	return nil
}

// DefaultGracePeriod bounds how long Run's caller should wait after
// canceling ctx before forcing an exit; the final dump needs to complete in
// this window. See internal/ui/spinning.SafeInterrupt, which callers wire up
// around Run.
const DefaultGracePeriod = 10 * time.Second
