package routing

import "majestyxpress_backend/internal/geocoding"

// Mode is the travel mode for an estimate.
type Mode string

const (
	ModeDriving   Mode = "driving"
	ModeWalking   Mode = "walking"
	ModeBicycling Mode = "bicycling"
)

// Source identifies how an estimate was produced.
type Source string

const (
	// SourceProvider means a live routing provider supplied distance/duration.
	SourceProvider Source = "provider"
	// SourceHeuristic means the estimate was derived geometrically.
	SourceHeuristic Source = "heuristic"
)

// RouteEstimate is the travel estimate between two resolved locations.
// DrivingDistanceKm is never below 1 and never below StraightDistanceKm on
// the heuristic path.
type RouteEstimate struct {
	DrivingDistanceKm   float64                    `json:"drivingDistanceKm"`
	DrivingDistanceText string                     `json:"drivingDistanceText"`
	StraightDistanceKm  float64                    `json:"straightDistanceKm"`
	DurationSeconds     int                        `json:"durationSeconds"`
	DurationText        string                     `json:"durationText"`
	Mode                Mode                       `json:"mode"`
	Origin              geocoding.ResolvedLocation `json:"origin"`
	Destination         geocoding.ResolvedLocation `json:"destination"`
	IsSameCity          bool                       `json:"isSameCity"`
	BasePrice           float64                    `json:"basePrice"`
	EstimateSource      Source                     `json:"estimateSource"`
}

// RouteRequest is the payload for POST /api/v1/routes.
type RouteRequest struct {
	Origin      string `json:"origin" binding:"required,min=3"`
	Destination string `json:"destination" binding:"required,min=3"`
	Mode        Mode   `json:"mode" binding:"omitempty,oneof=driving walking bicycling"`
}
