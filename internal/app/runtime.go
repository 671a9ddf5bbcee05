package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dwizi/dandi/internal/config"
	"github.com/dwizi/dandi/internal/httpapi"
	"github.com/dwizi/dandi/internal/store"
)

// Runtime serves the key API backed by the sqlite store.
type Runtime struct {
	cfg        config.Config
	logger     *slog.Logger
	store      *store.Store
	httpServer *http.Server
}

func New(cfg config.Config, logger *slog.Logger) (*Runtime, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	sqlStore, err := store.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := sqlStore.AutoMigrate(context.Background()); err != nil {
		sqlStore.Close()
		return nil, err
	}

	handler := httpapi.NewRouter(httpapi.Dependencies{
		Config: cfg,
		Store:  sqlStore,
		Logger: logger.With("component", "httpapi"),
	})
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		store:      sqlStore,
		httpServer: httpServer,
	}, nil
}

func (r *Runtime) Handler() http.Handler {
	return r.httpServer.Handler
}
