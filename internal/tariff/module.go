package tariff

import (
	"context"

	apphttp "majestyxpress_backend/internal/http"
	"majestyxpress_backend/platform/config"
	"majestyxpress_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the tariff bounded context module implementing http.Module.
type Module struct {
	store   Store
	handler *Handler
}

// NewModule creates the tariff module. With a database pool the active
// config lives in Postgres; without one the service runs on environment
// defaults.
func NewModule(pool *pgxpool.Pool, cfg config.TariffDefaults, log *logger.Logger) *Module {
	defaults := DefaultsFromConfig(cfg)

	var store Store
	if pool != nil {
		store = NewPGStore(pool, defaults, log)
	} else {
		log.Info("tariff store running on environment defaults: DATABASE_URL not configured")
		store = NewEnvStore(defaults)
	}

	return &Module{
		store:   store,
		handler: NewHandler(store),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "tariff"
}

// EnsureSchema creates the tariff table and seeds the default row when the
// store is database-backed. It is a no-op on environment defaults.
func (m *Module) EnsureSchema(ctx context.Context) error {
	if pg, ok := m.store.(*PGStore); ok {
		return pg.Ensure(ctx)
	}
	return nil
}

// Store returns the tariff store for use by other modules.
func (m *Module) Store() Store {
	return m.store
}

// RegisterRoutes mounts tariff routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/tariffs/active", m.handler.GetActive)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
