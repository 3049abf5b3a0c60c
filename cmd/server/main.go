// Command server runs the task board HTTP API.
// It serves board, card, and hygiene endpoints backed by PostgreSQL,
// appending outbox events for the worker to process asynchronously.
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

	if err := app.Run(ctx); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
