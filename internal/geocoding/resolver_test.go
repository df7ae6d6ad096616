package geocoding

import (
	"context"
	"errors"
	"testing"

	"majestyxpress_backend/internal/gazetteer"
	"majestyxpress_backend/platform/apperr"
	"majestyxpress_backend/platform/logger"
)

func testResolver(t *testing.T, strategies ...strategy) *Resolver {
	t.Helper()
	return &Resolver{strategies: strategies, log: logger.New("development")}
}

func gazetteerOnlyResolver(t *testing.T) (*Resolver, *gazetteer.Gazetteer) {
	t.Helper()
	gaz, err := gazetteer.Load()
	if err != nil {
		t.Fatalf("expected gazetteer to load, got %v", err)
	}
	r := testResolver(t,
		strategy{name: "gazetteer", resolve: gazetteerStrategy(gaz)},
		strategy{name: "city_fallback", resolve: cityFallbackStrategy(gaz)},
	)
	return r, gaz
}

func TestResolve_RejectsShortAddress(t *testing.T) {
	r := testResolver(t)

	_, err := r.Resolve(context.Background(), "  ab ")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolve_KnownLocationWithoutNetwork(t *testing.T) {
	r, _ := gazetteerOnlyResolver(t)

	location, err := r.Resolve(context.Background(), "Chikakore, Kubwa, Abuja")
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if location.MatchType != MatchKnownLocation {
		t.Fatalf("expected known_location, got %q", location.MatchType)
	}
	if location.Latitude != 9.12 || location.Longitude != 7.37 {
		t.Fatalf("expected chikakore coordinates, got %v, %v", location.Latitude, location.Longitude)
	}
	if location.IsApproximate {
		t.Fatalf("expected exact match")
	}
	if location.FormattedAddress != "Chikakore, Abuja, Nigeria" {
		t.Fatalf("unexpected formatted address %q", location.FormattedAddress)
	}
}

func TestResolve_FirstSuccessWins(t *testing.T) {
	second := false
	r := testResolver(t,
		strategy{name: "first", resolve: func(ctx context.Context, address string) (*ResolvedLocation, error) {
			return &ResolvedLocation{Latitude: 9, Longitude: 7, MatchType: MatchKnownLocation}, nil
		}},
		strategy{name: "second", resolve: func(ctx context.Context, address string) (*ResolvedLocation, error) {
			second = true
			return &ResolvedLocation{Latitude: 1, Longitude: 1}, nil
		}},
	)

	location, err := r.Resolve(context.Background(), "somewhere")
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if location.Latitude != 9 {
		t.Fatalf("expected first strategy result, got %v", location.Latitude)
	}
	if second {
		t.Fatalf("expected chain to stop after first success")
	}
}

func TestResolve_ProviderFailureFallsThrough(t *testing.T) {
	r := testResolver(t,
		strategy{name: "flaky", resolve: func(ctx context.Context, address string) (*ResolvedLocation, error) {
			return nil, errors.New("connection timeout")
		}},
		strategy{name: "backup", resolve: func(ctx context.Context, address string) (*ResolvedLocation, error) {
			return &ResolvedLocation{Latitude: 6.6, Longitude: 3.35, MatchType: MatchExternalGeocode}, nil
		}},
	)

	location, err := r.Resolve(context.Background(), "Ikeja, Lagos")
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if location.MatchType != MatchExternalGeocode {
		t.Fatalf("expected backup strategy result, got %q", location.MatchType)
	}
}

func TestResolve_OutOfRangeCoordinatesRejected(t *testing.T) {
	r := testResolver(t,
		strategy{name: "broken", resolve: func(ctx context.Context, address string) (*ResolvedLocation, error) {
			return &ResolvedLocation{Latitude: 120, Longitude: 7}, nil
		}},
	)

	_, err := r.Resolve(context.Background(), "anywhere")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected exhaustion after invalid coordinates, got %v", err)
	}
}

func TestResolve_ExhaustionReturnsNotFound(t *testing.T) {
	r := testResolver(t,
		strategy{name: "empty", resolve: func(ctx context.Context, address string) (*ResolvedLocation, error) {
			return nil, nil
		}},
	)

	_, err := r.Resolve(context.Background(), "unknown place")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResolve_NoisyAddressStillMatchesGazetteer(t *testing.T) {
	r, _ := gazetteerOnlyResolver(t)

	location, err := r.Resolve(context.Background(), "Plot 4, Zaria Road, near the junction")
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if location.MatchType != MatchKnownLocation {
		t.Fatalf("expected known_location, got %q", location.MatchType)
	}
	if location.City != "Zaria" {
		t.Fatalf("expected Zaria, got %q", location.City)
	}
}

func TestResolve_CityFallbackFormattedAddress(t *testing.T) {
	gaz, err := gazetteer.Load()
	if err != nil {
		t.Fatalf("expected gazetteer to load, got %v", err)
	}
	r := testResolver(t,
		strategy{name: "city_fallback", resolve: cityFallbackStrategy(gaz)},
	)

	location, err := r.Resolve(context.Background(), "Somewhere along Independence Layout, Enugu")
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if location.MatchType != MatchCityFallback {
		t.Fatalf("expected city_fallback, got %q", location.MatchType)
	}
	if !location.IsApproximate {
		t.Fatalf("expected approximate flag")
	}
	want := "Somewhere along Independence Layout, Enugu (approximate: Independence Layout)"
	if location.FormattedAddress != want {
		t.Fatalf("expected %q, got %q", want, location.FormattedAddress)
	}

	// Re-resolving the formatted address must land on the same coordinates.
	again, err := r.Resolve(context.Background(), location.FormattedAddress)
	if err != nil {
		t.Fatalf("expected round-trip resolution, got %v", err)
	}
	if again.Latitude != location.Latitude || again.Longitude != location.Longitude {
		t.Fatalf("expected stable coordinates, got %v,%v vs %v,%v",
			again.Latitude, again.Longitude, location.Latitude, location.Longitude)
	}
}
