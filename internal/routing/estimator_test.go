package routing

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"majestyxpress_backend/internal/geocoding"
	"majestyxpress_backend/internal/tariff"
	"majestyxpress_backend/platform/apperr"
	"majestyxpress_backend/platform/logger"
)

type stubResolver struct {
	locations map[string]geocoding.ResolvedLocation
}

func (s stubResolver) Resolve(ctx context.Context, address string) (geocoding.ResolvedLocation, error) {
	location, ok := s.locations[address]
	if !ok {
		return geocoding.ResolvedLocation{}, apperr.NotFound("could not locate address: " + address)
	}
	return location, nil
}

func testTariffs() tariff.Store {
	return tariff.NewEnvStore(tariff.Config{
		PricePerKm:   200,
		MinimumPrice: 500,
	})
}

func testEstimator(locations map[string]geocoding.ResolvedLocation) *Estimator {
	return NewEstimator(stubResolver{locations: locations}, nil, testTariffs(), logger.New("development"))
}

type stubMatrix struct {
	result matrixResult
	err    error
}

func (s stubMatrix) Distance(ctx context.Context, originLat, originLng, destLat, destLng float64, mode Mode) (matrixResult, error) {
	if s.err != nil {
		return matrixResult{}, s.err
	}
	return s.result, nil
}

func TestHaversineKm_KnownDistances(t *testing.T) {
	// Lagos to Abuja, roughly 526 km great-circle.
	got := HaversineKm(6.5244, 3.3792, 9.0765, 7.3986)
	if got < 515 || got > 540 {
		t.Fatalf("expected Lagos-Abuja around 526 km, got %v", got)
	}

	if got := HaversineKm(9.05, 7.49, 9.05, 7.49); got != 0 {
		t.Fatalf("expected zero distance for identical points, got %v", got)
	}
}

func TestEstimate_SameCityMultiplier(t *testing.T) {
	locations := map[string]geocoding.ResolvedLocation{
		"Kubwa, Abuja":   {Latitude: 9.0, Longitude: 7.4, City: "Abuja"},
		"Maitama, Abuja": {Latitude: 9.1, Longitude: 7.4, City: "Abuja"},
	}
	e := testEstimator(locations)

	estimate, err := e.Estimate(context.Background(), "Kubwa, Abuja", "Maitama, Abuja", ModeDriving)
	if err != nil {
		t.Fatalf("expected estimate, got %v", err)
	}

	if !estimate.IsSameCity {
		t.Fatalf("expected same-city trip")
	}
	if estimate.EstimateSource != SourceHeuristic {
		t.Fatalf("expected heuristic source, got %q", estimate.EstimateSource)
	}

	straight := HaversineKm(9.0, 7.4, 9.1, 7.4)
	want := math.Round(straight * 1.3 * 10) / 10
	if estimate.DrivingDistanceKm != want {
		t.Fatalf("expected 1.3x multiplier (%v km), got %v km", want, estimate.DrivingDistanceKm)
	}
}

func TestEstimate_InterCityMultiplier(t *testing.T) {
	locations := map[string]geocoding.ResolvedLocation{
		"Zaria":  {Latitude: 11.0667, Longitude: 7.7, City: "Zaria"},
		"Kaduna": {Latitude: 10.5222, Longitude: 7.4383, City: "Kaduna"},
	}
	e := testEstimator(locations)

	estimate, err := e.Estimate(context.Background(), "Zaria", "Kaduna", ModeDriving)
	if err != nil {
		t.Fatalf("expected estimate, got %v", err)
	}

	if estimate.IsSameCity {
		t.Fatalf("expected inter-city trip")
	}

	straight := HaversineKm(11.0667, 7.7, 10.5222, 7.4383)
	want := math.Round(straight * 1.25 * 10) / 10
	if estimate.DrivingDistanceKm != want {
		t.Fatalf("expected 1.25x multiplier (%v km), got %v km", want, estimate.DrivingDistanceKm)
	}
}

func TestEstimate_MinimumDistanceFloor(t *testing.T) {
	locations := map[string]geocoding.ResolvedLocation{
		"gate a": {Latitude: 9.0, Longitude: 7.4, City: "Abuja"},
		"gate b": {Latitude: 9.0001, Longitude: 7.4, City: "Abuja"},
	}
	e := testEstimator(locations)

	estimate, err := e.Estimate(context.Background(), "gate a", "gate b", ModeDriving)
	if err != nil {
		t.Fatalf("expected estimate, got %v", err)
	}

	if estimate.DrivingDistanceKm != 1 {
		t.Fatalf("expected 1 km floor, got %v", estimate.DrivingDistanceKm)
	}
	if estimate.BasePrice != 500 {
		t.Fatalf("expected minimum base price 500, got %v", estimate.BasePrice)
	}
}

func TestEstimate_DrivingAtLeastStraight(t *testing.T) {
	locations := map[string]geocoding.ResolvedLocation{
		"Ikeja, Lagos": {Latitude: 6.6018, Longitude: 3.3515, City: "Lagos"},
		"Lekki, Lagos": {Latitude: 6.4698, Longitude: 3.5852, City: "Lagos"},
	}
	e := testEstimator(locations)

	estimate, err := e.Estimate(context.Background(), "Ikeja, Lagos", "Lekki, Lagos", ModeDriving)
	if err != nil {
		t.Fatalf("expected estimate, got %v", err)
	}

	if estimate.DrivingDistanceKm < estimate.StraightDistanceKm {
		t.Fatalf("driving %v km below straight %v km", estimate.DrivingDistanceKm, estimate.StraightDistanceKm)
	}
}

func TestEstimate_BasePriceFromDistance(t *testing.T) {
	locations := map[string]geocoding.ResolvedLocation{
		"Ikeja, Lagos": {Latitude: 6.6018, Longitude: 3.3515, City: "Lagos"},
		"Lekki, Lagos": {Latitude: 6.4698, Longitude: 3.5852, City: "Lagos"},
	}
	e := testEstimator(locations)

	estimate, err := e.Estimate(context.Background(), "Ikeja, Lagos", "Lekki, Lagos", ModeDriving)
	if err != nil {
		t.Fatalf("expected estimate, got %v", err)
	}

	want := math.Round(estimate.DrivingDistanceKm*200*100) / 100
	if estimate.BasePrice != want {
		t.Fatalf("expected base price %v, got %v", want, estimate.BasePrice)
	}
}

func TestEstimate_WalkingModeSpeed(t *testing.T) {
	locations := map[string]geocoding.ResolvedLocation{
		"a": {Latitude: 9.0, Longitude: 7.4, City: "Abuja"},
		"b": {Latitude: 9.1, Longitude: 7.4, City: "Abuja"},
	}
	e := testEstimator(locations)

	driving, err := e.Estimate(context.Background(), "a", "b", ModeDriving)
	if err != nil {
		t.Fatalf("expected estimate, got %v", err)
	}
	walking, err := e.Estimate(context.Background(), "a", "b", ModeWalking)
	if err != nil {
		t.Fatalf("expected estimate, got %v", err)
	}

	if walking.DurationSeconds <= driving.DurationSeconds {
		t.Fatalf("expected walking (%ds) slower than driving (%ds)", walking.DurationSeconds, driving.DurationSeconds)
	}
}

func TestEstimate_ProviderResultUsed(t *testing.T) {
	locations := map[string]geocoding.ResolvedLocation{
		"Ikeja, Lagos": {Latitude: 6.6018, Longitude: 3.3515, City: "Lagos"},
		"Lekki, Lagos": {Latitude: 6.4698, Longitude: 3.5852, City: "Lagos"},
	}
	matrix := stubMatrix{result: matrixResult{distanceKm: 12.3, durationSeconds: 1740}}
	e := NewEstimator(stubResolver{locations: locations}, matrix, testTariffs(), logger.New("development"))

	estimate, err := e.Estimate(context.Background(), "Ikeja, Lagos", "Lekki, Lagos", ModeDriving)
	if err != nil {
		t.Fatalf("expected estimate, got %v", err)
	}

	if estimate.EstimateSource != SourceProvider {
		t.Fatalf("expected provider source, got %q", estimate.EstimateSource)
	}
	if estimate.DrivingDistanceKm != 12.3 {
		t.Fatalf("expected provider distance 12.3 km, got %v", estimate.DrivingDistanceKm)
	}
	if estimate.DurationSeconds != 1740 {
		t.Fatalf("expected provider duration 1740s, got %d", estimate.DurationSeconds)
	}
	if estimate.DurationText != "29 min" {
		t.Fatalf("expected duration text %q, got %q", "29 min", estimate.DurationText)
	}
	if estimate.BasePrice != 2460 {
		t.Fatalf("expected base price 2460 from provider distance, got %v", estimate.BasePrice)
	}
}

func TestEstimate_ProviderFailureFallsBackToHeuristic(t *testing.T) {
	locations := map[string]geocoding.ResolvedLocation{
		"Kubwa, Abuja":   {Latitude: 9.0, Longitude: 7.4, City: "Abuja"},
		"Maitama, Abuja": {Latitude: 9.1, Longitude: 7.4, City: "Abuja"},
	}
	matrix := stubMatrix{err: errors.New("connection timeout")}
	e := NewEstimator(stubResolver{locations: locations}, matrix, testTariffs(), logger.New("development"))

	estimate, err := e.Estimate(context.Background(), "Kubwa, Abuja", "Maitama, Abuja", ModeDriving)
	if err != nil {
		t.Fatalf("expected heuristic fallback, got %v", err)
	}

	if estimate.EstimateSource != SourceHeuristic {
		t.Fatalf("expected heuristic source after provider failure, got %q", estimate.EstimateSource)
	}

	straight := HaversineKm(9.0, 7.4, 9.1, 7.4)
	want := math.Round(straight * 1.3 * 10) / 10
	if estimate.DrivingDistanceKm != want {
		t.Fatalf("expected heuristic distance %v km, got %v km", want, estimate.DrivingDistanceKm)
	}
}

func TestEstimate_FailedOriginNamesSide(t *testing.T) {
	e := testEstimator(map[string]geocoding.ResolvedLocation{
		"Lekki, Lagos": {Latitude: 6.4698, Longitude: 3.5852, City: "Lagos"},
	})

	_, err := e.Estimate(context.Background(), "nowhere", "Lekki, Lagos", ModeDriving)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !strings.Contains(err.Error(), "could not locate origin") {
		t.Fatalf("expected error naming origin, got %q", err.Error())
	}

	_, err = e.Estimate(context.Background(), "Lekki, Lagos", "nowhere", ModeDriving)
	if err == nil || !strings.Contains(err.Error(), "could not locate destination") {
		t.Fatalf("expected error naming destination, got %v", err)
	}
}

func TestDurationText_Formatting(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{1740, "29 min"},
		{3540, "59 min"},
		{3600, "1 hr"},
		{5400, "1 hr 30 min"},
		{7200, "2 hr"},
		{9000, "2 hr 30 min"},
	}

	for _, tc := range cases {
		if got := durationText(tc.seconds); got != tc.want {
			t.Fatalf("durationText(%d): expected %q, got %q", tc.seconds, tc.want, got)
		}
	}
}
