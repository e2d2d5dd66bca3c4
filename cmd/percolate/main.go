// Command percolate replays a percolation trace and reports whether and
// when the grid percolates.
//
// Usage:
//
//	percolate [flags] [file]
//
// The trace is read from file, or from stdin when file is omitted or "-".
// An interrupt stops the replay between sites.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("percolate failed", "err", err)
		os.Exit(1)
	}
}
