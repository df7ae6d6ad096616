package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"majestyxpress_backend/platform/logger"
)

const nominatimURL = "https://nominatim.openstreetmap.org/search"

// nominatimDelay is the courtesy delay before every request. The provider's
// usage policy allows at most one request per second.
const nominatimDelay = 1100 * time.Millisecond

// NominatimClient queries the free OSM geocoding service, restricted to
// Nigeria. Calls are serialized by a mutex and preceded by a synchronous
// delay to honor the provider's rate limit.
type NominatimClient struct {
	client    *http.Client
	userAgent string
	log       *logger.Logger

	mu sync.Mutex
}

// NewNominatimClient creates a Nominatim search client. The user agent must
// be descriptive; the provider rejects generic ones.
func NewNominatimClient(userAgent string, log *logger.Logger) *NominatimClient {
	return &NominatimClient{
		client:    &http.Client{Timeout: 10 * time.Second},
		userAgent: userAgent,
		log:       log,
	}
}

type nominatimAddress struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	Hamlet       string `json:"hamlet"`
}

// nominatimResult mirrors the relevant parts of the OSM search payload.
type nominatimResult struct {
	DisplayName string           `json:"display_name"`
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Address     nominatimAddress `json:"address"`
}

// Search returns the best match for the query, or nil when the provider has
// no result. Transport failures are returned as errors for the caller to
// swallow and fall through.
func (n *NominatimClient) Search(ctx context.Context, query string) (*nominatimResult, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	time.Sleep(nominatimDelay)

	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("limit", "1")
	params.Add("addressdetails", "1")
	params.Add("countrycodes", "ng")

	reqURL := fmt.Sprintf("%s?%s", nominatimURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &results[0], nil
}

// toLocation converts a raw result into a ResolvedLocation.
func (r *nominatimResult) toLocation(fallbackAddress string, matchType MatchType) (ResolvedLocation, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return ResolvedLocation{}, fmt.Errorf("invalid latitude %q", r.Lat)
	}
	lng, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return ResolvedLocation{}, fmt.Errorf("invalid longitude %q", r.Lon)
	}

	formatted := r.DisplayName
	if formatted == "" {
		formatted = fallbackAddress
	}

	return ResolvedLocation{
		Latitude:         lat,
		Longitude:        lng,
		FormattedAddress: formatted,
		MatchType:        matchType,
		City:             pickCity(r.Address),
	}, nil
}

func pickCity(address nominatimAddress) string {
	if address.City != "" {
		return address.City
	}
	if address.Town != "" {
		return address.Town
	}
	if address.Village != "" {
		return address.Village
	}
	if address.Municipality != "" {
		return address.Municipality
	}
	return address.Hamlet
}
