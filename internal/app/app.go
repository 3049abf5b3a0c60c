package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hexbolt/taskboard-backend/internal/adapter/postgres"
	boardrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/board"
	cardrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/card"
	coverrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/cover"
	listrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/list"
	outboxrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/outbox"
	reportrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/report"
	summaryrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/summary"
	"github.com/hexbolt/taskboard-backend/internal/auth"
	"github.com/hexbolt/taskboard-backend/internal/config"
	"github.com/hexbolt/taskboard-backend/internal/service/hygiene"
	"github.com/hexbolt/taskboard-backend/internal/service/kanban"
	"github.com/hexbolt/taskboard-backend/internal/transport/middleware"
	"github.com/hexbolt/taskboard-backend/internal/transport/rest"
	"github.com/hexbolt/taskboard-backend/migrations"
)

// Run is the API server entry point. It loads configuration, connects
// to the database, wires services and transport, and serves until the
// context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting api server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := migrations.Up(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)
	boards := boardrepo.New(pool)
	lists := listrepo.New(pool)
	cards := cardrepo.New(pool)
	covers := coverrepo.New(pool)
	summaries := summaryrepo.New(pool)
	outbox := outboxrepo.New(pool)
	reports := reportrepo.New(pool)

	kanbanSvc := kanban.NewService(logger, boards, lists, cards, covers, summaries, outbox, tx)
	hygieneSvc := hygiene.NewService(logger, cfg.Hygiene, boards, reports, outbox, tx)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	mux := rest.NewRouter(rest.Handlers{
		Board:   rest.NewBoardHandler(kanbanSvc, logger),
		Card:    rest.NewCardHandler(kanbanSvc, logger),
		Hygiene: rest.NewHygieneHandler(hygieneSvc, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
		middleware.Logger(logger),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", slog.String("error", err.Error()))
		}
	}()

	logger.Info("listening", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("server stopped")
	return nil
}
