// Command worker runs the outbox dispatcher.
// It claims pending outbox events in batches and routes them to their
// handlers: card summarization, stuck-card detection, and cover
// generation. Delivery is at-least-once; every handler write is
// guarded by the originating job id.
//
// Configuration comes from CONFIG_PATH (YAML) overridden by environment
// variables. Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hexbolt/taskboard-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunWorker(ctx); err != nil {
		slog.Error("worker exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
