package main

import (
	"context"
	"runtime"

	"k8s.io/klog/v2"

	"github.com/janpfeifer/star/internal/board"
	"github.com/janpfeifer/star/internal/driver"
	"github.com/janpfeifer/star/internal/parameters"
)

func runPlayout(ctx context.Context, b *board.Definition, params parameters.Params) error {
	threads := *flagThreads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	dumpThreshold, err := parameters.PopParamOr(params, "dump_threshold", 5)
	if err != nil {
		return err
	}
	seed, err := parameters.PopParamOr(params, "seed", 1)
	if err != nil {
		return err
	}

	cfg := driver.Config{
		Board:         b,
		Workers:       threads,
		MasterSeed:    uint64(seed),
		TablePath:     *flagTable,
		DumpThreshold: uint64(dumpThreshold),
	}
	klog.Infof("playout: board=%s count=%d threads=%d table=%s", b.Name, *flagCount, threads, *flagTable)
	result, err := driver.Run(ctx, cfg, *flagCount)
	if err != nil {
		return err
	}
	klog.Infof("playout: completed %d/%d playouts (interrupted=%v)", result.PlayoutsCompleted, *flagCount, result.Interrupted)
	return nil
}
