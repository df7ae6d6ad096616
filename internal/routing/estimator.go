// Package routing estimates travel distance and duration between two
// addresses, via a distance-matrix provider when configured or a
// deterministic geometric estimate otherwise.
package routing

import (
	"context"
	"fmt"
	"math"

	"majestyxpress_backend/internal/geocoding"
	"majestyxpress_backend/internal/tariff"
	"majestyxpress_backend/platform/apperr"
	"majestyxpress_backend/platform/logger"
)

// Road distance multipliers applied to the great-circle distance on the
// heuristic path. Same-city trips have more turns per kilometer; inter-city
// trips run closer to straight-line via highways.
const (
	sameCityMultiplier  = 1.3
	interCityMultiplier = 1.25
)

// Average speeds in km/h for heuristic duration estimates.
const (
	drivingCitySpeed    = 35.0
	drivingHighwaySpeed = 60.0
	walkingSpeed        = 5.0
	bicyclingSpeed      = 15.0
)

// minimumDistanceKm rounds up degenerate near-zero distances so downstream
// pricing never sees a zero-distance trip.
const minimumDistanceKm = 1.0

// Resolver resolves a free-text address to coordinates.
type Resolver interface {
	Resolve(ctx context.Context, address string) (geocoding.ResolvedLocation, error)
}

// matrixProvider supplies travel distance and duration between two
// coordinate pairs.
type matrixProvider interface {
	Distance(ctx context.Context, originLat, originLng, destLat, destLng float64, mode Mode) (matrixResult, error)
}

// Estimator produces route estimates. The matrix provider may be nil, in
// which case every estimate uses the geometric fallback.
type Estimator struct {
	resolver Resolver
	matrix   matrixProvider
	tariffs  tariff.Store
	log      *logger.Logger
}

// NewEstimator creates a route estimator.
func NewEstimator(resolver Resolver, matrix matrixProvider, tariffs tariff.Store, log *logger.Logger) *Estimator {
	return &Estimator{
		resolver: resolver,
		matrix:   matrix,
		tariffs:  tariffs,
		log:      log,
	}
}

// Estimate resolves both addresses sequentially and produces a route
// estimate for the given mode (default driving). A provider failure falls
// back to the geometric estimate; a resolution failure surfaces naming the
// failing side.
func (e *Estimator) Estimate(ctx context.Context, origin, destination string, mode Mode) (RouteEstimate, error) {
	if mode == "" {
		mode = ModeDriving
	}

	originLoc, err := e.resolver.Resolve(ctx, origin)
	if err != nil {
		return RouteEstimate{}, sideError("origin", origin, err)
	}
	destLoc, err := e.resolver.Resolve(ctx, destination)
	if err != nil {
		return RouteEstimate{}, sideError("destination", destination, err)
	}

	straightKm := HaversineKm(originLoc.Latitude, originLoc.Longitude, destLoc.Latitude, destLoc.Longitude)
	isSameCity := originLoc.City != "" && originLoc.City == destLoc.City

	estimate := RouteEstimate{
		StraightDistanceKm: round1(straightKm),
		Mode:               mode,
		Origin:             originLoc,
		Destination:        destLoc,
		IsSameCity:         isSameCity,
	}

	if e.matrix != nil {
		result, err := e.matrix.Distance(ctx, originLoc.Latitude, originLoc.Longitude, destLoc.Latitude, destLoc.Longitude, mode)
		if err == nil {
			e.fillFromProvider(&estimate, result)
			return e.priceBase(ctx, estimate)
		}
		e.log.ProviderError("distance_matrix", "distance", err)
	}

	e.fillFromHeuristic(&estimate, straightKm, mode, isSameCity)
	return e.priceBase(ctx, estimate)
}

func (e *Estimator) fillFromProvider(estimate *RouteEstimate, result matrixResult) {
	drivingKm := math.Max(result.distanceKm, minimumDistanceKm)
	estimate.DrivingDistanceKm = round1(drivingKm)
	estimate.DrivingDistanceText = fmt.Sprintf("%.1f km", estimate.DrivingDistanceKm)
	estimate.DurationSeconds = result.durationSeconds
	estimate.DurationText = durationText(result.durationSeconds)
	estimate.EstimateSource = SourceProvider
}

func (e *Estimator) fillFromHeuristic(estimate *RouteEstimate, straightKm float64, mode Mode, isSameCity bool) {
	multiplier := interCityMultiplier
	if isSameCity {
		multiplier = sameCityMultiplier
	}
	drivingKm := math.Max(straightKm*multiplier, minimumDistanceKm)

	speed := averageSpeed(mode, isSameCity)
	durationSeconds := int(drivingKm / speed * 3600)

	estimate.DrivingDistanceKm = round1(drivingKm)
	estimate.DrivingDistanceText = fmt.Sprintf("%.1f km", estimate.DrivingDistanceKm)
	estimate.DurationSeconds = durationSeconds
	estimate.DurationText = durationText(durationSeconds)
	estimate.EstimateSource = SourceHeuristic
}

// priceBase attaches the distance-derived base price. This is the first
// application of the minimum-price floor; the tariff calculator applies it
// again after the full adjustment chain.
func (e *Estimator) priceBase(ctx context.Context, estimate RouteEstimate) (RouteEstimate, error) {
	cfg, err := e.tariffs.GetActive(ctx)
	if err != nil {
		return RouteEstimate{}, err
	}
	estimate.BasePrice = round2(math.Max(estimate.DrivingDistanceKm*cfg.PricePerKm, cfg.MinimumPrice))
	return estimate, nil
}

func averageSpeed(mode Mode, isSameCity bool) float64 {
	switch mode {
	case ModeWalking:
		return walkingSpeed
	case ModeBicycling:
		return bicyclingSpeed
	case ModeDriving:
		if isSameCity {
			return drivingCitySpeed
		}
		return drivingHighwaySpeed
	default:
		return drivingCitySpeed
	}
}

// durationText formats seconds as "{m} min" under an hour, otherwise
// "{h} hr {m} min" with the minute segment omitted when zero.
func durationText(seconds int) string {
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	remainder := minutes % 60
	if remainder == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, remainder)
}

func sideError(side, address string, err error) error {
	kind := apperr.GetKind(err)
	if kind == apperr.KindUnknown {
		kind = apperr.KindNotFound
	}
	return apperr.Wrap(kind, fmt.Sprintf("could not locate %s: %s", side, address), err)
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
