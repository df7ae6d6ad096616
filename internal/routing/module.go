// Package routing provides the distance estimation bounded context module.
package routing

import (
	apphttp "majestyxpress_backend/internal/http"
	"majestyxpress_backend/internal/tariff"
	"majestyxpress_backend/platform/config"
	"majestyxpress_backend/platform/logger"
)

// Module is the routing bounded context module implementing http.Module.
type Module struct {
	estimator *Estimator
	handler   *Handler
}

// NewModule creates the routing module. The distance-matrix provider is
// only wired when its API key is configured; without it every estimate uses
// the geometric fallback.
func NewModule(cfg config.RoutingConfig, resolver Resolver, tariffs tariff.Store, log *logger.Logger) (*Module, error) {
	// Assigned only on success so a nil client never hides inside a
	// non-nil interface value.
	var matrix matrixProvider
	if cfg.IsDistanceMatrixEnabled() {
		client, err := NewMatrixClient(cfg.GetDistanceMatrixAPIKey())
		if err != nil {
			return nil, err
		}
		matrix = client
		log.Info("distance matrix provider enabled")
	} else {
		log.Info("distance matrix provider disabled: DISTANCE_MATRIX_API_KEY not configured")
	}

	estimator := NewEstimator(resolver, matrix, tariffs, log)

	return &Module{
		estimator: estimator,
		handler:   NewHandler(estimator),
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "routing"
}

// Estimator returns the route estimator for use by other modules.
func (m *Module) Estimator() *Estimator {
	return m.estimator
}

// RegisterRoutes mounts routing routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/routes", ctx.QuoteRateLimiter.RateLimit(), m.handler.EstimateRoute)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
