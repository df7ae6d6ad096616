package routing

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// matrixQPS caps outbound distance-matrix calls per second.
const matrixQPS = 10

// MatrixClient wraps the distance-matrix provider. Only constructed when
// its API key is configured.
type MatrixClient struct {
	client *maps.Client
}

// NewMatrixClient creates the distance-matrix client.
func NewMatrixClient(apiKey string) (*MatrixClient, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey), maps.WithRateLimit(matrixQPS))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &MatrixClient{client: client}, nil
}

// matrixResult is the provider's distance/duration for one origin/destination pair.
type matrixResult struct {
	distanceKm      float64
	durationSeconds int
}

// Distance queries the provider for travel distance and duration between two
// coordinate pairs.
func (m *MatrixClient) Distance(ctx context.Context, originLat, originLng, destLat, destLng float64, mode Mode) (matrixResult, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:      []string{fmt.Sprintf("%f,%f", originLat, originLng)},
		Destinations: []string{fmt.Sprintf("%f,%f", destLat, destLng)},
		Mode:         travelMode(mode),
		Units:        maps.UnitsMetric,
	}

	resp, err := m.client.DistanceMatrix(ctx, req)
	if err != nil {
		return matrixResult{}, fmt.Errorf("distance matrix api error: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return matrixResult{}, fmt.Errorf("distance matrix returned no elements")
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return matrixResult{}, fmt.Errorf("distance matrix element status %s", element.Status)
	}

	return matrixResult{
		distanceKm:      float64(element.Distance.Meters) / 1000.0,
		durationSeconds: int(element.Duration.Seconds()),
	}, nil
}

// Compile-time check that MatrixClient implements matrixProvider.
var _ matrixProvider = (*MatrixClient)(nil)

func travelMode(mode Mode) maps.Mode {
	switch mode {
	case ModeWalking:
		return maps.TravelModeWalking
	case ModeBicycling:
		return maps.TravelModeBicycling
	default:
		return maps.TravelModeDriving
	}
}
