package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/semstore/config"
	"github.com/c360studio/semstore/consolidator"
	"github.com/c360studio/semstore/convergence"
	"github.com/c360studio/semstore/embed"
	"github.com/c360studio/semstore/extract"
	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/storage"
	"github.com/c360studio/semstore/vocabulary"
)

// App wires the service and its collaborators for one CLI invocation.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	store    *graph.Store
	svc      *consolidator.Service
	natsConn *nats.Conn
}

// newApp loads configuration, configures logging, and builds the service.
// When configPath is empty the layered loader is used.
func newApp(ctx context.Context, configPath, logLevel string) (*App, error) {
	logger := newLogger(logLevel)
	slog.SetDefault(logger)

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
		if err == nil {
			err = cfg.Validate()
		}
	} else {
		cfg, err = config.NewLoader(logger).Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		store:  graph.NewStore(),
	}

	registry := vocabulary.NewRegistry()
	vocabulary.RegisterDefaults(registry)
	extractor := extract.New(cfg.Extraction, logger)
	engine := convergence.NewEngine(cfg.Convergence)

	opts := []consolidator.Option{
		consolidator.WithLogger(logger),
		consolidator.WithValidation(cfg.Store.Validation),
	}

	if cfg.NATS.URL != "" {
		persister, err := a.connectPersistence(ctx)
		if err != nil {
			return nil, err
		}
		opts = append(opts, consolidator.WithPersister(persister))
	}

	a.svc = consolidator.New(a.store, registry, extractor, engine, opts...)
	return a, nil
}

// withEmbedder attaches the configured embedding provider. Only commands
// that score documents pay the setup cost.
func (a *App) withEmbedder(ctx context.Context) error {
	embedder, err := embed.NewEmbedder(ctx, a.cfg.Embedding)
	if err != nil {
		return fmt.Errorf("create embedder: %w", err)
	}
	consolidator.WithEmbedder(embed.NewService(embedder))(a.svc)
	return nil
}

// connectPersistence connects to NATS and builds the KV persister.
func (a *App) connectPersistence(ctx context.Context) (graph.Persister, error) {
	url := a.cfg.NATS.URL
	if envURL := os.Getenv("SEMSTORE_NATS_URL"); envURL != "" {
		url = envURL
	}

	a.logger.Info("Connecting to NATS", "url", url)
	conn, err := nats.Connect(url,
		nats.Name("semstore"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second))
	if err != nil {
		return nil, wrapNATSError(err, url)
	}
	a.natsConn = conn

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	persister, err := storage.NewKVPersister(ctx, js)
	if err != nil {
		return nil, fmt.Errorf("create KV persister: %w", err)
	}
	return persister, nil
}

// restore loads the persisted snapshot when persistence is configured.
func (a *App) restore(ctx context.Context) error {
	if a.cfg.NATS.URL == "" {
		return nil
	}
	if err := a.svc.Restore(ctx); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	a.logger.Debug("snapshot restored", "triples", a.store.Len())
	return nil
}

// persist saves the snapshot when persistence is configured.
func (a *App) persist(ctx context.Context) error {
	if a.cfg.NATS.URL == "" {
		return nil
	}
	if err := a.svc.Persist(ctx); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	a.logger.Debug("snapshot persisted", "triples", a.store.Len())
	return nil
}

func (a *App) close() {
	if a.natsConn != nil {
		a.natsConn.Close()
	}
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// wrapNATSError provides helpful guidance when NATS connection fails.
func wrapNATSError(err error, url string) error {
	errStr := err.Error()

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no servers available") ||
		strings.Contains(errStr, "timeout") {
		return fmt.Errorf(`NATS connection failed: %w

NATS is not running at %s.

To start NATS:
  docker compose up -d nats

Or set SEMSTORE_NATS_URL environment variable to point to your NATS server.`, err, url)
	}

	return fmt.Errorf("NATS connection failed: %w", err)
}
