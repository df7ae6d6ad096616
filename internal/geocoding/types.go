package geocoding

// MatchType identifies which resolution strategy produced a location.
type MatchType string

const (
	// MatchKnownLocation means the address hit the offline gazetteer.
	MatchKnownLocation MatchType = "known_location"
	// MatchExternalGeocode means a geocoding provider matched the raw address.
	MatchExternalGeocode MatchType = "external_geocode"
	// MatchExternalGeocodeSimplified means a provider matched only after the
	// address was normalized and suffixed with the country.
	MatchExternalGeocodeSimplified MatchType = "external_geocode_simplified"
	// MatchCityFallback means only a city-level approximation was possible.
	MatchCityFallback MatchType = "city_fallback"
)

// ResolvedLocation is the result of resolving a free-text address.
// Values are created fresh per resolution and never persisted here.
type ResolvedLocation struct {
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	FormattedAddress string    `json:"formattedAddress"`
	MatchType        MatchType `json:"matchType"`
	IsApproximate    bool      `json:"isApproximate"`
	City             string    `json:"city,omitempty"`
}

// GeocodeRequest is the payload for POST /api/v1/geocode.
type GeocodeRequest struct {
	Address string `json:"address" binding:"required,min=3"`
}
