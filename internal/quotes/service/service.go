// Package service orchestrates the full geocoding-to-price pipeline:
// resolve both addresses, estimate the route, fetch the active tariff, and
// run the price adjustment chain.
package service

import (
	"context"

	"majestyxpress_backend/internal/events"
	"majestyxpress_backend/internal/quotes/transport"
	"majestyxpress_backend/internal/routing"
	"majestyxpress_backend/internal/tariff"
	"majestyxpress_backend/platform/apperr"
	"majestyxpress_backend/platform/logger"
	"majestyxpress_backend/platform/validator"

	"github.com/google/uuid"
)

// Estimator produces a route estimate between two addresses.
type Estimator interface {
	Estimate(ctx context.Context, origin, destination string, mode routing.Mode) (routing.RouteEstimate, error)
}

// Service is the quote pipeline orchestrator.
type Service struct {
	estimator Estimator
	tariffs   tariff.Store
	bus       events.Bus
	val       *validator.Validator
	log       *logger.Logger
}

// New creates the quote service.
func New(estimator Estimator, tariffs tariff.Store, bus events.Bus, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{
		estimator: estimator,
		tariffs:   tariffs,
		bus:       bus,
		val:       val,
		log:       log,
	}
}

// Quote runs the pipeline for one booking request. The route estimate
// carries the distance-derived base price (first minimum-floor stage); the
// calculator applies the remaining chain and the final clamp.
func (s *Service) Quote(ctx context.Context, req transport.QuoteRequest) (transport.QuoteResponse, error) {
	if err := s.val.Struct(req); err != nil {
		return transport.QuoteResponse{}, apperr.Validation("origin and destination are required (min 3 chars)")
	}

	estimate, err := s.estimator.Estimate(ctx, req.Origin, req.Destination, req.Mode)
	if err != nil {
		return transport.QuoteResponse{}, err
	}

	cfg, err := s.tariffs.GetActive(ctx)
	if err != nil {
		return transport.QuoteResponse{}, err
	}

	quote := Calculate(
		estimate.BasePrice,
		req.WeightKg.Value(),
		req.DeclaredValue.Value(),
		req.ServiceType,
		req.InsuranceRequired,
		req.SignatureRequired,
		cfg,
	)

	response := transport.QuoteResponse{
		QuoteRef: uuid.NewString(),
		Route:    estimate,
		Quote:    quote,
	}

	s.publishCalculated(ctx, req, response)
	return response, nil
}

func (s *Service) publishCalculated(ctx context.Context, req transport.QuoteRequest, resp transport.QuoteResponse) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, events.QuoteCalculated{
		BaseEvent:      events.NewBaseEvent(),
		QuoteRef:       resp.QuoteRef,
		Origin:         req.Origin,
		Destination:    req.Destination,
		DistanceKm:     resp.Route.DrivingDistanceKm,
		ServiceType:    req.ServiceType,
		FinalPrice:     resp.Quote.FinalPrice,
		Currency:       resp.Quote.Currency,
		EstimateSource: string(resp.Route.EstimateSource),
	})
}
