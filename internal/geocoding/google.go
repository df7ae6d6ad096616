package geocoding

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// googleQPS caps outbound geocoding calls per second.
const googleQPS = 10

// GoogleClient wraps the Google Geocoding API as the primary provider.
// It is only constructed when an API key is configured.
type GoogleClient struct {
	client *maps.Client
}

// NewGoogleClient creates the primary geocoding client with the provider's
// built-in request throttle.
func NewGoogleClient(apiKey string) (*GoogleClient, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey), maps.WithRateLimit(googleQPS))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleClient{client: client}, nil
}

// Geocode resolves the address constrained to Nigeria. Returns nil when the
// provider has no result for the address.
func (g *GoogleClient) Geocode(ctx context.Context, address string, matchType MatchType) (*ResolvedLocation, error) {
	req := &maps.GeocodingRequest{
		Address: address,
		Region:  "ng",
		Components: map[maps.Component]string{
			maps.ComponentCountry: "NG",
		},
	}

	results, err := g.client.Geocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	best := results[0]
	return &ResolvedLocation{
		Latitude:         best.Geometry.Location.Lat,
		Longitude:        best.Geometry.Location.Lng,
		FormattedAddress: best.FormattedAddress,
		MatchType:        matchType,
		City:             cityFromComponents(best.AddressComponents),
	}, nil
}

// cityFromComponents extracts a city label from the provider's address
// components. Locality is preferred; Abuja addresses often only carry the
// administrative area.
func cityFromComponents(components []maps.AddressComponent) string {
	var adminArea string
	for _, component := range components {
		for _, kind := range component.Types {
			switch kind {
			case "locality":
				return component.LongName
			case "administrative_area_level_1":
				if adminArea == "" {
					adminArea = component.LongName
				}
			}
		}
	}
	return adminArea
}
