package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/habitflow-backend/internal/config"
	"github.com/heartmarshall/habitflow-backend/internal/service/entry"
	"github.com/heartmarshall/habitflow-backend/internal/service/habit"
	"github.com/heartmarshall/habitflow-backend/internal/service/settings"
	"github.com/heartmarshall/habitflow-backend/internal/service/stats"
	"github.com/heartmarshall/habitflow-backend/internal/service/suggestion"
	"github.com/heartmarshall/habitflow-backend/internal/store"
	"github.com/heartmarshall/habitflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/habitflow-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, opens the configured backend and serves the REST API until
// ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("backend", cfg.Storage.Backend),
	)

	backend, err := OpenBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(cfg, backend, newMessageClient(cfg.LLM), limiter, logger, nil),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// messageClient is the slice of the Anthropic SDK the suggestion service uses.
type messageClient interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// newMessageClient returns nil when no API key is configured, which turns
// every AI feature off.
func newMessageClient(cfg config.LLMConfig) messageClient {
	if cfg.APIKey == "" {
		return nil
	}
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &client.Messages
}

// NewHandler wires services and handlers over backend and wraps the router
// in the middleware chain. A nil clock means time.Now.
func NewHandler(
	cfg *config.Config,
	backend store.Backend,
	llm messageClient,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
	now func() time.Time,
) http.Handler {
	if now == nil {
		now = time.Now
	}

	habitSvc := habit.NewService(logger, backend.Habits, backend.Tx, now)
	entrySvc := entry.NewService(logger, backend.Entries, backend.Habits, now)
	statsSvc := stats.NewService(logger, backend.Habits, backend.Entries, now)
	settingsSvc := settings.NewService(logger, backend.Settings)
	suggestionSvc := suggestion.NewService(logger, llm, suggestion.Config{
		APIKey:         cfg.LLM.APIKey,
		Model:          cfg.LLM.Model,
		FallbackModels: cfg.LLM.FallbackModels,
		MaxTokens:      cfg.LLM.MaxTokens,
		Timeout:        cfg.LLM.Timeout,
	}, settingsSvc, backend.Habits, backend.Entries, now)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(backend.Pinger, backend.Name, BuildVersion(), now),
		Habits:   rest.NewHabitHandler(habitSvc, logger),
		Entries:  rest.NewEntryHandler(entrySvc, logger),
		Stats:    rest.NewStatsHandler(statsSvc, logger),
		Settings: rest.NewSettingsHandler(settingsSvc, logger),
		AI:       rest.NewAIHandler(suggestionSvc, logger),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.When(cfg.RateLimit.Enabled && limiter != nil, func() middleware.Middleware {
			return limiter.Limit(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		}),
	)(router)
}
