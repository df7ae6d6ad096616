package service

import (
	"testing"

	"majestyxpress_backend/internal/tariff"
)

func testConfig() tariff.Config {
	return tariff.Config{
		PricePerKm:           200,
		MinimumPrice:         500,
		WeightSurchargePerKg: 50,
		HeavySurchargePerKg:  100,
		InsuranceRate:        0.02,
		ExpressMultiplier:    1.5,
		StandardMultiplier:   1.0,
		EconomyMultiplier:    0.8,
		SignatureFee:         200,
	}
}

func TestCalculate_FullChain(t *testing.T) {
	// 10 km at 200/km gives a 2000 base. 25 kg pays 20 kg of tier-1 surcharge
	// plus 5 kg of tier-2, express scales everything so far, insurance and the
	// signature fee land on top.
	quote := Calculate(2000, 25, 10000, "express", true, true, testConfig())

	if quote.BasePrice != 2000 {
		t.Fatalf("expected base 2000, got %v", quote.BasePrice)
	}
	if quote.WeightSurcharge != 1500 {
		t.Fatalf("expected weight surcharge 1500, got %v", quote.WeightSurcharge)
	}
	if quote.ServiceMultiplier != 1.5 {
		t.Fatalf("expected multiplier 1.5, got %v", quote.ServiceMultiplier)
	}
	if quote.InsuranceAmount != 200 {
		t.Fatalf("expected insurance 200, got %v", quote.InsuranceAmount)
	}
	if quote.SignatureFee != 200 {
		t.Fatalf("expected signature fee 200, got %v", quote.SignatureFee)
	}
	if quote.MinimumAdjustment != 0 {
		t.Fatalf("expected no minimum adjustment, got %v", quote.MinimumAdjustment)
	}
	if quote.FinalPrice != 5650 {
		t.Fatalf("expected final 5650, got %v", quote.FinalPrice)
	}
	if quote.Currency != "NGN" {
		t.Fatalf("expected NGN, got %q", quote.Currency)
	}
}

func TestCalculate_MultiplierScalesWeightSurcharge(t *testing.T) {
	// Chain order matters: the multiplier applies after the surcharge joins
	// the total, not to the base alone.
	quote := Calculate(1000, 10, 0, "express", false, false, testConfig())

	// (1000 + 5*50) * 1.5 = 1875, not 1000*1.5 + 250 = 1750.
	if quote.FinalPrice != 1875 {
		t.Fatalf("expected 1875, got %v", quote.FinalPrice)
	}
}

func TestCalculate_MinimumFloorAfterEconomyDiscount(t *testing.T) {
	// A short economy trip discounted below the minimum gets clamped, and the
	// breakdown records exactly how much the clamp added.
	quote := Calculate(500, 0, 0, "economy", false, false, testConfig())

	if quote.FinalPrice != 500 {
		t.Fatalf("expected clamped final 500, got %v", quote.FinalPrice)
	}
	if quote.MinimumAdjustment != 100 {
		t.Fatalf("expected adjustment 100, got %v", quote.MinimumAdjustment)
	}
}

func TestCalculate_NegativeInputsAreNeutral(t *testing.T) {
	base := Calculate(2000, 0, 0, "standard", false, false, testConfig())
	negative := Calculate(2000, -5, -10000, "standard", true, false, testConfig())

	if negative.FinalPrice != base.FinalPrice {
		t.Fatalf("expected negative inputs to price as zero, got %v vs %v", negative.FinalPrice, base.FinalPrice)
	}
	if negative.WeightSurcharge != 0 {
		t.Fatalf("expected no surcharge for negative weight, got %v", negative.WeightSurcharge)
	}
	if negative.InsuranceAmount != 0 {
		t.Fatalf("expected no insurance for negative declared value, got %v", negative.InsuranceAmount)
	}
}

func TestCalculate_InsuranceFlagWithoutValue(t *testing.T) {
	quote := Calculate(2000, 0, 0, "standard", true, false, testConfig())
	if quote.InsuranceAmount != 0 {
		t.Fatalf("expected zero insurance without declared value, got %v", quote.InsuranceAmount)
	}
}

func TestCalculate_InsuranceOnDeclaredValueNotTotal(t *testing.T) {
	quote := Calculate(2000, 25, 10000, "express", true, false, testConfig())
	// 2% of the 10000 declared value, not of the 5250 running total.
	if quote.InsuranceAmount != 200 {
		t.Fatalf("expected insurance 200, got %v", quote.InsuranceAmount)
	}
}

func TestCalculate_UnrecognizedServiceTypeIsNeutral(t *testing.T) {
	quote := Calculate(2000, 0, 0, "same-day", false, false, testConfig())
	if quote.ServiceMultiplier != 1.0 {
		t.Fatalf("expected neutral multiplier, got %v", quote.ServiceMultiplier)
	}
	if quote.FinalPrice != 2000 {
		t.Fatalf("expected 2000, got %v", quote.FinalPrice)
	}
}

func TestCalculate_WeightTierBoundaries(t *testing.T) {
	cfg := testConfig()

	cases := []struct {
		weightKg float64
		want     float64
	}{
		{0, 0},
		{5, 0},
		{6, 50},
		{20, 750},
		{21, 900},
		{25, 1500},
	}

	for _, tc := range cases {
		quote := Calculate(2000, tc.weightKg, 0, "standard", false, false, cfg)
		if quote.WeightSurcharge != tc.want {
			t.Fatalf("weight %v kg: expected surcharge %v, got %v", tc.weightKg, tc.want, quote.WeightSurcharge)
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	first := Calculate(2000, 25, 10000, "express", true, true, testConfig())
	second := Calculate(2000, 25, 10000, "express", true, true, testConfig())

	if first != second {
		t.Fatalf("expected identical quotes, got %+v and %+v", first, second)
	}
}
