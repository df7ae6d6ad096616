// Package quotes provides the price quotation bounded context module.
package quotes

import (
	"majestyxpress_backend/internal/events"
	apphttp "majestyxpress_backend/internal/http"
	"majestyxpress_backend/internal/quotes/handler"
	"majestyxpress_backend/internal/quotes/service"
	"majestyxpress_backend/internal/tariff"
	"majestyxpress_backend/platform/logger"
	"majestyxpress_backend/platform/validator"
)

// Module is the quotes bounded context module implementing http.Module.
type Module struct {
	service *service.Service
	handler *handler.Handler
}

// NewModule creates the quotes module.
func NewModule(estimator service.Estimator, tariffs tariff.Store, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(estimator, tariffs, bus, val, log)

	return &Module{
		service: svc,
		handler: handler.New(svc),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "quotes"
}

// RegisterRoutes mounts quote routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/quotes", ctx.QuoteRateLimiter.RateLimit(), m.handler.CreateQuote)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
