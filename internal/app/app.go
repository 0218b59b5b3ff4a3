package app

import (
	"context"
	"net/http"

	"github.com/meridianhome/storefront/internal/adapters/httpserver"
	"github.com/meridianhome/storefront/internal/adapters/repo/memory"
	"github.com/meridianhome/storefront/internal/usecase"
)

// Config holds the process configuration, populated from the environment
// by the caller.
type Config struct {
	Port       string `envconfig:"PORT" default:"4000"`
	Env        string `envconfig:"APP_ENV" default:"development"`
	SeedPath   string `envconfig:"SEED_PATH" default:"data/seed.json"`
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"*"`
}

type App struct {
	Store     *memory.Store
	ProductUC *usecase.ProductUC
	ContactUC *usecase.ContactUC

	cors string
}

func New(cfg Config) *App {
	store := memory.NewStore(cfg.SeedPath)
	return &App{
		Store:     store,
		ProductUC: &usecase.ProductUC{Products: store},
		ContactUC: &usecase.ContactUC{Contacts: store},
		cors:      cfg.CORSOrigin,
	}
}

// LoadSeed performs the one-time seed load. A failure is reported to the
// caller; the store keeps serving whatever it already holds.
func (a *App) LoadSeed(ctx context.Context) error {
	return a.Store.Load(ctx)
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.ProductUC, a.ContactUC, a.cors)
}
