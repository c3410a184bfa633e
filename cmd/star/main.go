// Command star runs distributional playouts against the star-board jump/hop
// engine and reports on the resulting value table.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"k8s.io/klog/v2"

	"github.com/janpfeifer/star/internal/board"
	"github.com/janpfeifer/star/internal/parameters"
	"github.com/janpfeifer/star/internal/profilers"
	"github.com/janpfeifer/star/internal/ui/spinning"
)

var (
	flagConfig = flag.String("config", "", "Comma-separated key=value configuration string, "+
		"e.g. \"dump_threshold=5,seed=1\" (keys consulted by the playout subcommand).")
	flagBoard   = flag.String("board", "small", "Board to play on: \"small\" or \"standard\".")
	flagCount   = flag.Int("count", 10000, "Number of playouts to run (playout subcommand only).")
	flagThreads = flag.Int("threads", 0, "Number of worker goroutines. 0 means one per GOMAXPROCS.")
	flagTable   = flag.String("table", "result.bin", "Path to the persisted value table.")

	globalCtx = context.Background()
)

const usage = `Usage:
  star playout [-board=small|standard] [-count=10000] [-threads=0] [-table=result.bin]
  star analyze [-board=small|standard] [-table=result.bin]
`

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 5*time.Second)
	defer cancel()

	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	if flag.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	b := board.ByName(*flagBoard)
	params := parameters.NewFromConfigString(*flagConfig)

	var err error
	switch flag.Arg(0) {
	case "playout":
		err = runPlayout(globalCtx, b, params)
	case "analyze":
		err = runAnalyze(globalCtx, b, params)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n%s", flag.Arg(0), usage)
		os.Exit(1)
	}
	if err != nil {
		klog.Errorf("star %s: %+v", flag.Arg(0), err)
		os.Exit(1)
	}
}
