package service

import (
	"context"
	"testing"

	"majestyxpress_backend/internal/quotes/transport"
	"majestyxpress_backend/internal/routing"
	"majestyxpress_backend/internal/tariff"
	"majestyxpress_backend/platform/apperr"
	"majestyxpress_backend/platform/logger"
	"majestyxpress_backend/platform/validator"
)

type stubEstimator struct {
	estimate routing.RouteEstimate
	err      error
}

func (s stubEstimator) Estimate(ctx context.Context, origin, destination string, mode routing.Mode) (routing.RouteEstimate, error) {
	if s.err != nil {
		return routing.RouteEstimate{}, s.err
	}
	return s.estimate, nil
}

func TestQuote_PipelineProducesItemizedQuote(t *testing.T) {
	estimator := stubEstimator{
		estimate: routing.RouteEstimate{
			DrivingDistanceKm: 10,
			BasePrice:         2000,
			EstimateSource:    routing.SourceHeuristic,
		},
	}
	svc := New(estimator, tariff.NewEnvStore(testConfig()), nil, validator.New(), logger.New("development"))

	resp, err := svc.Quote(context.Background(), transport.QuoteRequest{
		Origin:            "Kubwa, Abuja",
		Destination:       "Wuse 2, Abuja",
		WeightKg:          25,
		DeclaredValue:     10000,
		ServiceType:       "express",
		InsuranceRequired: true,
		SignatureRequired: true,
	})
	if err != nil {
		t.Fatalf("expected quote, got %v", err)
	}

	if resp.QuoteRef == "" {
		t.Fatalf("expected a quote reference")
	}
	if resp.Quote.FinalPrice != 5650 {
		t.Fatalf("expected final 5650, got %v", resp.Quote.FinalPrice)
	}
	if resp.Route.DrivingDistanceKm != 10 {
		t.Fatalf("expected route carried through, got %v km", resp.Route.DrivingDistanceKm)
	}
}

func TestQuote_ResolutionFailurePropagates(t *testing.T) {
	svc := New(
		stubEstimator{err: apperr.NotFound("could not locate origin: nowhere")},
		tariff.NewEnvStore(testConfig()),
		nil,
		validator.New(),
		logger.New("development"),
	)

	_, err := svc.Quote(context.Background(), transport.QuoteRequest{
		Origin:      "nowhere",
		Destination: "Wuse 2, Abuja",
	})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestQuote_InvalidRequestRejectedBeforeEstimation(t *testing.T) {
	svc := New(
		stubEstimator{estimate: routing.RouteEstimate{BasePrice: 500}},
		tariff.NewEnvStore(testConfig()),
		nil,
		validator.New(),
		logger.New("development"),
	)

	_, err := svc.Quote(context.Background(), transport.QuoteRequest{
		Origin:      "ab",
		Destination: "Wuse 2, Abuja",
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuote_UniqueReferences(t *testing.T) {
	svc := New(
		stubEstimator{estimate: routing.RouteEstimate{BasePrice: 500}},
		tariff.NewEnvStore(testConfig()),
		nil,
		validator.New(),
		logger.New("development"),
	)

	req := transport.QuoteRequest{Origin: "Kubwa, Abuja", Destination: "Wuse 2, Abuja"}
	first, err := svc.Quote(context.Background(), req)
	if err != nil {
		t.Fatalf("expected quote, got %v", err)
	}
	second, err := svc.Quote(context.Background(), req)
	if err != nil {
		t.Fatalf("expected quote, got %v", err)
	}

	if first.QuoteRef == second.QuoteRef {
		t.Fatalf("expected distinct quote references, both %q", first.QuoteRef)
	}
}
