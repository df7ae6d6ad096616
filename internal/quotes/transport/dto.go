// Package transport defines the request/response DTOs for the quotes module.
package transport

import (
	"majestyxpress_backend/internal/routing"
	"majestyxpress_backend/platform/numparse"
)

// QuoteRequest is the payload for POST /api/v1/quotes. Weight and declared
// value accept JSON numbers or free-form strings; garbage defaults to zero.
type QuoteRequest struct {
	Origin            string           `json:"origin" binding:"required,min=3" validate:"required,min=3"`
	Destination       string           `json:"destination" binding:"required,min=3" validate:"required,min=3"`
	Mode              routing.Mode     `json:"mode" binding:"omitempty,oneof=driving walking bicycling" validate:"omitempty,oneof=driving walking bicycling"`
	WeightKg          numparse.Lenient `json:"weightKg"`
	DeclaredValue     numparse.Lenient `json:"declaredValue"`
	ServiceType       string           `json:"serviceType"`
	InsuranceRequired bool             `json:"insuranceRequired"`
	SignatureRequired bool             `json:"signatureRequired"`
}

// PriceQuote is the fully itemized price breakdown. Every contribution of
// the adjustment chain is listed so the booking UI can display it.
type PriceQuote struct {
	BasePrice         float64 `json:"basePrice"`
	WeightSurcharge   float64 `json:"weightSurcharge"`
	ServiceMultiplier float64 `json:"serviceMultiplier"`
	InsuranceAmount   float64 `json:"insuranceAmount"`
	SignatureFee      float64 `json:"signatureFee"`
	MinimumAdjustment float64 `json:"minimumAdjustment"`
	FinalPrice        float64 `json:"finalPrice"`
	Currency          string  `json:"currency"`
}

// QuoteResponse combines the route estimate with the price quote.
type QuoteResponse struct {
	QuoteRef string                `json:"quoteRef"`
	Route    routing.RouteEstimate `json:"route"`
	Quote    PriceQuote            `json:"quote"`
}
