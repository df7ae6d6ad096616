// Package audit subscribes to domain events and writes a structured trail of
// resolutions and quotes to the application log.
package audit

import (
	"context"

	"majestyxpress_backend/internal/events"
	"majestyxpress_backend/platform/logger"
)

// Module is the audit event subscriber.
type Module struct {
	log *logger.Logger
}

// NewModule creates the audit module.
func NewModule(log *logger.Logger) *Module {
	return &Module{log: log}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "audit"
}

// RegisterHandlers subscribes to the events worth auditing.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LocationResolved{}.EventName(), m)
	bus.Subscribe(events.QuoteCalculated{}.EventName(), m)
}

// Handle routes events to the appropriate log entry.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LocationResolved:
		m.log.Info("location resolved",
			"address", e.Address,
			"matchType", e.MatchType,
			"approximate", e.IsApproximate,
			"lat", e.Latitude,
			"lng", e.Longitude,
		)
	case events.QuoteCalculated:
		m.log.Info("quote calculated",
			"quoteRef", e.QuoteRef,
			"origin", e.Origin,
			"destination", e.Destination,
			"distanceKm", e.DistanceKm,
			"serviceType", e.ServiceType,
			"finalPrice", e.FinalPrice,
			"currency", e.Currency,
			"estimateSource", e.EstimateSource,
		)
	}
	return nil
}

// Compile-time check that Module implements events.Handler
var _ events.Handler = (*Module)(nil)
