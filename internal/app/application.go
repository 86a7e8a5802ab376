// Package app ties configuration, storage and the registry service
// together into a runnable application.
package app

import (
	"fmt"
	"net/http"
	"os"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/httpapi"
	"github.com/mergington/activities/internal/logging"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/registry"
	"github.com/mergington/activities/internal/storage"
	"github.com/mergington/activities/internal/storage/memory"
)

// Application holds the wired components. A nil store defaults to the
// in-memory implementation populated from the configured seed.
type Application struct {
	cfg config.Config
	log *logging.Logger

	Store    storage.ActivityStore
	Registry *registry.Service
}

// New builds a fully initialised application.
func New(cfg config.Config, store storage.ActivityStore, log *logging.Logger) (*Application, error) {
	if log == nil {
		log = logging.New(os.Stderr, "app", cfg.LogLevel)
	}

	if store == nil {
		seed, err := cfg.Seed()
		if err != nil {
			return nil, fmt.Errorf("load activity seed: %w", err)
		}
		store = memory.New(seed)
		log.WithField("activities", len(seed)).Info("registry seeded")
	}

	return &Application{
		cfg:      cfg,
		log:      log,
		Store:    store,
		Registry: registry.New(store, log),
	}, nil
}

// Handler returns the HTTP handler with the standard middleware chain
// applied: metrics and access logging on every request, CORS, and rate
// limiting when configured.
func (a *Application) Handler() http.Handler {
	h := httpapi.NewHandler(a.Registry, a.cfg.StaticDir)

	h = middleware.NewCORS(a.cfg.CORSOrigins).Handler(h)
	if a.cfg.RateLimitPerSecond > 0 && a.cfg.RateLimitBurst > 0 {
		h = middleware.NewRateLimiter(a.cfg.RateLimitPerSecond, a.cfg.RateLimitBurst, a.log).Handler(h)
	}
	h = middleware.Metrics()(h)
	h = middleware.Logging(a.log)(h)
	return h
}
