// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"majestyxpress_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Geocoding Domain Events
// =============================================================================

// LocationResolved is published when an address resolves to coordinates.
// Fallback strategies fire this too, so subscribers can see how often the
// resolver degrades to approximate matches.
type LocationResolved struct {
	BaseEvent
	Address          string  `json:"address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formattedAddress"`
	MatchType        string  `json:"matchType"`
	IsApproximate    bool    `json:"isApproximate"`
	City             string  `json:"city,omitempty"`
}

func (e LocationResolved) EventName() string { return "geocoding.location.resolved" }

// =============================================================================
// Quotes Domain Events
// =============================================================================

// QuoteCalculated is published when the pricing pipeline produces a quote.
type QuoteCalculated struct {
	BaseEvent
	QuoteRef       string  `json:"quoteRef"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DistanceKm     float64 `json:"distanceKm"`
	ServiceType    string  `json:"serviceType"`
	FinalPrice     float64 `json:"finalPrice"`
	Currency       string  `json:"currency"`
	EstimateSource string  `json:"estimateSource"`
}

func (e QuoteCalculated) EventName() string { return "quotes.quote.calculated" }
