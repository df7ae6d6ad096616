package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults to load, got %v", err)
	}

	if cfg.PricePerKm != 200 {
		t.Fatalf("expected default price per km 200, got %v", cfg.PricePerKm)
	}
	if cfg.MinimumPrice != 500 {
		t.Fatalf("expected default minimum price 500, got %v", cfg.MinimumPrice)
	}
	if cfg.InsuranceRate != 0.02 {
		t.Fatalf("expected default insurance rate 0.02, got %v", cfg.InsuranceRate)
	}
}

func TestLoad_RejectsMalformedTariffValue(t *testing.T) {
	t.Setenv("PRICE_PER_KM", "abc")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed PRICE_PER_KM")
	}
}

func TestLoad_RejectsNegativeTariffValue(t *testing.T) {
	t.Setenv("MINIMUM_DELIVERY_PRICE", "-5")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative MINIMUM_DELIVERY_PRICE")
	}
}

func TestLoad_RejectsWildcardCORSWithCredentials(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for wildcard origins with credentials")
	}
}
