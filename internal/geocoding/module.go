// Package geocoding provides the location resolution bounded context module.
package geocoding

import (
	"majestyxpress_backend/internal/events"
	"majestyxpress_backend/internal/gazetteer"
	apphttp "majestyxpress_backend/internal/http"
	"majestyxpress_backend/platform/config"
	"majestyxpress_backend/platform/logger"
)

// Config combines the configuration interfaces the module consumes.
type Config interface {
	config.GeocodingConfig
	config.NominatimConfig
}

// Module is the geocoding bounded context module implementing http.Module.
type Module struct {
	resolver *Resolver
	handler  *Handler
}

// NewModule creates and initializes the geocoding module. The primary
// provider is only wired when its API key is configured; the gazetteer and
// the Nominatim fallback are always available.
func NewModule(cfg Config, gaz *gazetteer.Gazetteer, bus events.Bus, log *logger.Logger) (*Module, error) {
	var google *GoogleClient
	if cfg.IsGeocodingAPIEnabled() {
		client, err := NewGoogleClient(cfg.GetGeocodingAPIKey())
		if err != nil {
			return nil, err
		}
		google = client
		log.Info("primary geocoding provider enabled")
	} else {
		log.Info("primary geocoding provider disabled: GEOCODING_API_KEY not configured")
	}

	nominatim := NewNominatimClient(cfg.GetNominatimUserAgent(), log)
	resolver := NewResolver(gaz, google, nominatim, bus, log)

	return &Module{
		resolver: resolver,
		handler:  NewHandler(resolver),
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "geocoding"
}

// Resolver returns the location resolver for use by other modules.
func (m *Module) Resolver() *Resolver {
	return m.resolver
}

// RegisterRoutes mounts geocoding routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/geocode", m.handler.Geocode)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
