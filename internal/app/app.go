// Package app wires configuration, adapters, services and transport into a
// runnable process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AstroX11/word-vaildator-api/internal/adapter/postgres"
	pgwordlist "github.com/AstroX11/word-vaildator-api/internal/adapter/postgres/wordlist"
	"github.com/AstroX11/word-vaildator-api/internal/adapter/provider/datamuse"
	"github.com/AstroX11/word-vaildator-api/internal/adapter/provider/freedict"
	"github.com/AstroX11/word-vaildator-api/internal/adapter/provider/merriam"
	"github.com/AstroX11/word-vaildator-api/internal/adapter/wordlist"
	"github.com/AstroX11/word-vaildator-api/internal/config"
	"github.com/AstroX11/word-vaildator-api/internal/domain"
	"github.com/AstroX11/word-vaildator-api/internal/metrics"
	"github.com/AstroX11/word-vaildator-api/internal/service/validator"
	"github.com/AstroX11/word-vaildator-api/internal/transport/middleware"
	"github.com/AstroX11/word-vaildator-api/internal/transport/rest"
)

// localSource is satisfied by every word-list strategy.
type localSource interface {
	Contains(ctx context.Context, word domain.NormalizedWord) bool
}

// App holds the wired components of one process.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Metrics
	pool    *pgxpool.Pool
	chain   *validator.Chain
	svc     *validator.Service
	deps    []rest.Dependency
}

// New builds the local source selected by cfg, the provider chain and the
// validator service. Call Close when done. An unreachable word list or
// database is logged and does not fail New.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{
		cfg:     cfg,
		log:     logger,
		metrics: metrics.New(),
	}

	local := a.buildLocalSource(ctx)

	timeout := cfg.Chain.ProviderTimeout
	a.chain = validator.NewChain(logger, cfg.Chain, a.metrics,
		freedict.NewProviderWithURL(cfg.Providers.FreeDictURL, logger).WithTimeout(timeout),
		datamuse.NewProviderWithURL(cfg.Providers.DatamuseURL, logger).WithTimeout(timeout),
		merriam.NewProviderWithURL(cfg.Providers.MerriamURL, cfg.Providers.MerriamAPIKey, logger).WithTimeout(timeout),
	)
	a.svc = validator.NewService(logger, local, a.chain, a.metrics)

	return a, nil
}

// buildLocalSource never fails: an unusable word list or database leaves
// the service running with a source that misses.
func (a *App) buildLocalSource(ctx context.Context) localSource {
	path := a.cfg.WordList.Path

	switch a.cfg.WordList.Mode {
	case config.WordListStream:
		if _, err := os.Stat(path); err != nil {
			a.log.WarnContext(ctx, "word list not found, local lookups will miss",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
		a.log.InfoContext(ctx, "word list streamed per request", slog.String("path", path))
		return wordlist.NewScanner(path, a.log)

	case config.WordListPostgres:
		return a.buildPostgresSource(ctx)

	default:
		set, err := wordlist.Load(path)
		if err != nil {
			a.log.WarnContext(ctx, "word list could not be read completely",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
		if set == nil {
			set = wordlist.NewSet()
		}
		a.log.InfoContext(ctx, "word list loaded", slog.Int("words", set.Len()))
		return set
	}
}

func (a *App) buildPostgresSource(ctx context.Context) localSource {
	pool, err := postgres.NewPool(ctx, a.cfg.Database)
	if err != nil {
		a.log.WarnContext(ctx, "database unavailable, local lookups will miss", slog.String("error", err.Error()))
		src := unavailableSource{err: err}
		a.deps = append(a.deps, rest.Dependency{Name: "database", Pinger: src})
		return src
	}
	a.pool = pool

	if err := postgres.Migrate(ctx, pool, a.log); err != nil {
		a.log.WarnContext(ctx, "apply migrations", slog.String("error", err.Error()))
	}

	repo := pgwordlist.New(pool, postgres.NewTxManager(pool), a.log)
	a.deps = append(a.deps, rest.Dependency{Name: "database", Pinger: repo})

	if n, err := repo.Count(ctx); err != nil {
		a.log.WarnContext(ctx, "count stored words", slog.String("error", err.Error()))
	} else {
		a.log.InfoContext(ctx, "word list backed by postgres", slog.Int64("words", n))
	}
	return repo
}

// unavailableSource stands in for a database that could not be reached at
// startup. Lookups miss and readiness keeps failing with the startup error.
type unavailableSource struct {
	err error
}

func (unavailableSource) Contains(context.Context, domain.NormalizedWord) bool { return false }

func (u unavailableSource) Ping(context.Context) error {
	return fmt.Errorf("app: database unavailable since startup: %w", u.err)
}

// Service returns the validator service.
func (a *App) Service() *validator.Service {
	return a.svc
}

// Handler returns the full HTTP handler: routes wrapped in middleware.
func (a *App) Handler() http.Handler {
	routes := rest.Routes{
		Word:   rest.NewWordHandler(a.svc, Version, a.log),
		Health: rest.NewHealthHandler(BuildVersion(), a.deps...),
	}
	if a.cfg.Metrics.Enabled {
		routes.Metrics = a.metrics.Handler()
		routes.MetricsPath = a.cfg.Metrics.Path
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS),
		middleware.Metrics(a.metrics),
	)(rest.NewRouter(routes))
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      a.Handler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.log.Info("http server listening",
			slog.String("addr", srv.Addr),
			slog.String("chain_mode", a.cfg.Chain.Mode),
			slog.Any("providers", a.chain.Names()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	a.log.Info("server stopped gracefully")
	return nil
}

// Run is the application entry point for the serve command.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("wordlist_mode", cfg.WordList.Mode),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// Import loads the word list at path into the PostgreSQL words table,
// applying migrations first. It returns the number of new words.
func Import(ctx context.Context, cfg *config.Config, logger *slog.Logger, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("app: import: %w", err)
	}
	defer f.Close()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return 0, fmt.Errorf("app: import: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		return 0, fmt.Errorf("app: import: %w", err)
	}

	repo := pgwordlist.New(pool, postgres.NewTxManager(pool), logger)
	return repo.Import(ctx, f)
}
