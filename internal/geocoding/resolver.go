// Package geocoding resolves free-text Nigerian addresses to coordinates
// through a layered fallback chain: offline gazetteer, primary geocoding
// provider, free Nominatim fallback, then a city-level approximation.
package geocoding

import (
	"context"
	"fmt"
	"strings"

	"majestyxpress_backend/internal/events"
	"majestyxpress_backend/internal/gazetteer"
	"majestyxpress_backend/platform/apperr"
	"majestyxpress_backend/platform/logger"
)

// strategy is one step in the resolution chain. A strategy returns
// (nil, nil) when it has no result, and an error only for provider
// failures; both cases fall through to the next strategy.
type strategy struct {
	name    string
	resolve func(ctx context.Context, address string) (*ResolvedLocation, error)
}

// Resolver runs the ordered fallback chain. First success wins.
type Resolver struct {
	strategies []strategy
	bus        events.Bus
	log        *logger.Logger
}

// NewResolver builds the resolution chain. The Google client may be nil
// (no API key configured); the gazetteer and Nominatim fallback are always
// registered.
func NewResolver(gaz *gazetteer.Gazetteer, google *GoogleClient, nominatim *NominatimClient, bus events.Bus, log *logger.Logger) *Resolver {
	r := &Resolver{bus: bus, log: log}

	r.strategies = append(r.strategies, strategy{
		name:    "gazetteer",
		resolve: gazetteerStrategy(gaz),
	})

	if google != nil {
		r.strategies = append(r.strategies,
			strategy{
				name: "google",
				resolve: func(ctx context.Context, address string) (*ResolvedLocation, error) {
					return google.Geocode(ctx, address, MatchExternalGeocode)
				},
			},
			strategy{
				name: "google_simplified",
				resolve: func(ctx context.Context, address string) (*ResolvedLocation, error) {
					return google.Geocode(ctx, gazetteer.Normalize(address)+", Nigeria", MatchExternalGeocodeSimplified)
				},
			},
		)
	}

	r.strategies = append(r.strategies,
		strategy{
			name:    "nominatim",
			resolve: nominatimStrategy(nominatim, false),
		},
		strategy{
			name:    "nominatim_simplified",
			resolve: nominatimStrategy(nominatim, true),
		},
		strategy{
			name:    "city_fallback",
			resolve: cityFallbackStrategy(gaz),
		},
	)

	return r
}

// Resolve runs the chain for the given address. Provider failures are
// logged and swallowed; only total exhaustion surfaces as an error.
func (r *Resolver) Resolve(ctx context.Context, address string) (ResolvedLocation, error) {
	trimmed := strings.TrimSpace(address)
	if len(trimmed) < 3 {
		return ResolvedLocation{}, apperr.Validation("address must be at least 3 characters")
	}

	for _, s := range r.strategies {
		location, err := s.resolve(ctx, trimmed)
		if err != nil {
			r.log.GeocodeStrategy(s.name, trimmed, err)
			continue
		}
		if location == nil || !validCoordinates(location) {
			r.log.GeocodeStrategy(s.name, trimmed, nil)
			continue
		}

		r.publishResolved(ctx, trimmed, location)
		return *location, nil
	}

	return ResolvedLocation{}, apperr.NotFound("could not locate address: " + trimmed)
}

func (r *Resolver) publishResolved(ctx context.Context, address string, location *ResolvedLocation) {
	if r.bus == nil {
		return
	}
	r.bus.Publish(ctx, events.LocationResolved{
		BaseEvent:        events.NewBaseEvent(),
		Address:          address,
		Latitude:         location.Latitude,
		Longitude:        location.Longitude,
		FormattedAddress: location.FormattedAddress,
		MatchType:        string(location.MatchType),
		IsApproximate:    location.IsApproximate,
		City:             location.City,
	})
}

func gazetteerStrategy(gaz *gazetteer.Gazetteer) func(ctx context.Context, address string) (*ResolvedLocation, error) {
	return func(ctx context.Context, address string) (*ResolvedLocation, error) {
		entry, ok := gaz.Lookup(gazetteer.Normalize(address))
		if !ok {
			return nil, nil
		}
		return &ResolvedLocation{
			Latitude:         entry.Lat,
			Longitude:        entry.Lng,
			FormattedAddress: entry.FormattedAddress(),
			MatchType:        MatchKnownLocation,
			City:             entry.City,
		}, nil
	}
}

func nominatimStrategy(client *NominatimClient, simplified bool) func(ctx context.Context, address string) (*ResolvedLocation, error) {
	return func(ctx context.Context, address string) (*ResolvedLocation, error) {
		query := address
		matchType := MatchExternalGeocode
		if simplified {
			query = gazetteer.Normalize(address) + ", Nigeria"
			matchType = MatchExternalGeocodeSimplified
		}

		result, err := client.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		if result == nil {
			return nil, nil
		}

		location, err := result.toLocation(address, matchType)
		if err != nil {
			return nil, err
		}
		return &location, nil
	}
}

// cityFallbackStrategy scans the raw lowercased address for any known place
// name and returns its coordinates flagged as approximate.
func cityFallbackStrategy(gaz *gazetteer.Gazetteer) func(ctx context.Context, address string) (*ResolvedLocation, error) {
	return func(ctx context.Context, address string) (*ResolvedLocation, error) {
		entry, ok := gaz.Lookup(strings.ToLower(address))
		if !ok {
			return nil, nil
		}
		return &ResolvedLocation{
			Latitude:         entry.Lat,
			Longitude:        entry.Lng,
			FormattedAddress: fmt.Sprintf("%s (approximate: %s)", address, gazetteer.TitleCase(entry.Name)),
			MatchType:        MatchCityFallback,
			IsApproximate:    true,
			City:             entry.City,
		}, nil
	}
}

func validCoordinates(location *ResolvedLocation) bool {
	return location.Latitude >= -90 && location.Latitude <= 90 &&
		location.Longitude >= -180 && location.Longitude <= 180
}
