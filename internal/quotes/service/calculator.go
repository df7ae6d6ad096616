package service

import (
	"math"

	"majestyxpress_backend/internal/quotes/transport"
	"majestyxpress_backend/internal/tariff"
)

// Weight surcharge tiers in kg. Both tiers accumulate on the excess over
// their threshold: a 25 kg package pays 20 kg in tier 1 plus 5 kg in tier 2.
const (
	weightTierThresholdKg = 5.0
	heavyTierThresholdKg  = 20.0
)

const currencyNGN = "NGN"

// round2 rounds a monetary amount to 2 decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// weightSurcharge returns the tiered additive surcharge for the given
// weight. Negative weight contributes nothing.
func weightSurcharge(weightKg float64, cfg tariff.Config) float64 {
	var surcharge float64
	if weightKg > weightTierThresholdKg {
		surcharge += (weightKg - weightTierThresholdKg) * cfg.WeightSurchargePerKg
	}
	if weightKg > heavyTierThresholdKg {
		surcharge += (weightKg - heavyTierThresholdKg) * cfg.HeavySurchargePerKg
	}
	return surcharge
}

// insuranceAmount returns the insurance premium, based on declared value
// rather than the running total. Non-positive declared value contributes
// nothing even when insurance is requested.
func insuranceAmount(insuranceRequired bool, declaredValue float64, cfg tariff.Config) float64 {
	if !insuranceRequired || declaredValue <= 0 {
		return 0
	}
	return declaredValue * cfg.InsuranceRate
}

// Calculate runs the ordered price adjustment chain and never fails:
// degenerate inputs price as zero-effect rather than erroring.
//
// The chain is non-commutative: weight surcharges add to the base, the
// service multiplier scales the running total including those surcharges,
// insurance and signature fees add after the multiplier, and the minimum
// floor clamps last. baseDistancePrice arrives already floored once at the
// distance-pricing stage; the final clamp here is the deliberate second
// stage, protecting totals that an economy multiplier discounted below the
// minimum.
func Calculate(baseDistancePrice, weightKg, declaredValue float64, serviceType string, insuranceRequired, signatureRequired bool, cfg tariff.Config) transport.PriceQuote {
	total := baseDistancePrice

	surcharge := weightSurcharge(weightKg, cfg)
	total += surcharge

	multiplier := cfg.MultiplierFor(serviceType)
	total *= multiplier

	insurance := insuranceAmount(insuranceRequired, declaredValue, cfg)
	total += insurance

	var signatureFee float64
	if signatureRequired {
		signatureFee = cfg.SignatureFee
		total += signatureFee
	}

	var minimumAdjustment float64
	if total < cfg.MinimumPrice {
		minimumAdjustment = cfg.MinimumPrice - total
		total = cfg.MinimumPrice
	}

	return transport.PriceQuote{
		BasePrice:         round2(baseDistancePrice),
		WeightSurcharge:   round2(surcharge),
		ServiceMultiplier: multiplier,
		InsuranceAmount:   round2(insurance),
		SignatureFee:      round2(signatureFee),
		MinimumAdjustment: round2(minimumAdjustment),
		FinalPrice:        round2(total),
		Currency:          currencyNGN,
	}
}
