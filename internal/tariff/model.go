// Package tariff manages the configurable rate table governing delivery
// pricing: per-km rate, surcharges, service multipliers, and fees.
package tariff

import "majestyxpress_backend/platform/config"

// Config is the active tariff rate table. Exactly one config is active at a
// time; it is read on every price computation and never cached across
// changes.
type Config struct {
	PricePerKm           float64 `json:"pricePerKm"`
	MinimumPrice         float64 `json:"minimumPrice"`
	WeightSurchargePerKg float64 `json:"weightSurchargePerKg"`
	HeavySurchargePerKg  float64 `json:"heavySurchargePerKg"`
	InsuranceRate        float64 `json:"insuranceRate"`
	ExpressMultiplier    float64 `json:"expressMultiplier"`
	StandardMultiplier   float64 `json:"standardMultiplier"`
	EconomyMultiplier    float64 `json:"economyMultiplier"`
	SignatureFee         float64 `json:"signatureFee"`
}

// DefaultsFromConfig builds the environment-default tariff.
func DefaultsFromConfig(cfg config.TariffDefaults) Config {
	return Config{
		PricePerKm:           cfg.GetPricePerKm(),
		MinimumPrice:         cfg.GetMinimumPrice(),
		WeightSurchargePerKg: cfg.GetWeightSurchargePerKg(),
		HeavySurchargePerKg:  cfg.GetHeavySurchargePerKg(),
		InsuranceRate:        cfg.GetInsuranceRate(),
		ExpressMultiplier:    cfg.GetExpressMultiplier(),
		StandardMultiplier:   cfg.GetStandardMultiplier(),
		EconomyMultiplier:    cfg.GetEconomyMultiplier(),
		SignatureFee:         cfg.GetSignatureFee(),
	}
}

// MultiplierFor returns the service multiplier for the given service type.
// Unrecognized service types price at the neutral 1.0.
func (c Config) MultiplierFor(serviceType string) float64 {
	switch serviceType {
	case "express":
		return c.ExpressMultiplier
	case "standard":
		return c.StandardMultiplier
	case "economy":
		return c.EconomyMultiplier
	default:
		return 1.0
	}
}
