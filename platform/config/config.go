// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
	IsDatabaseEnabled() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// GeocodingConfig provides settings for the primary geocoding provider.
type GeocodingConfig interface {
	GetGeocodingAPIKey() string
	IsGeocodingAPIEnabled() bool
}

// RoutingConfig provides settings for the distance-matrix provider.
type RoutingConfig interface {
	GetDistanceMatrixAPIKey() string
	IsDistanceMatrixEnabled() bool
}

// NominatimConfig provides settings for the free OSM geocoding fallback.
type NominatimConfig interface {
	GetNominatimUserAgent() string
}

// TariffDefaults provides the environment-default tariff rates, used to seed
// the database row and to price quotes when no database is configured.
type TariffDefaults interface {
	GetPricePerKm() float64
	GetMinimumPrice() float64
	GetWeightSurchargePerKg() float64
	GetHeavySurchargePerKg() float64
	GetInsuranceRate() float64
	GetExpressMultiplier() float64
	GetStandardMultiplier() float64
	GetEconomyMultiplier() float64
	GetSignatureFee() float64
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowAll         bool
	CORSOrigins          []string
	CORSAllowCreds       bool
	GeocodingAPIKey      string
	DistanceMatrixAPIKey string
	NominatimUserAgent   string
	PricePerKm           float64
	MinimumPrice         float64
	WeightSurchargePerKg float64
	HeavySurchargePerKg  float64
	InsuranceRate        float64
	ExpressMultiplier    float64
	StandardMultiplier   float64
	EconomyMultiplier    float64
	SignatureFee         float64
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation. The database is optional: without it the
// service runs on environment tariff defaults.
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }
func (c *Config) IsDatabaseEnabled() bool {
	return c.DatabaseURL != ""
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// GeocodingConfig implementation
func (c *Config) GetGeocodingAPIKey() string { return c.GeocodingAPIKey }
func (c *Config) IsGeocodingAPIEnabled() bool {
	return c.GeocodingAPIKey != ""
}

// RoutingConfig implementation
func (c *Config) GetDistanceMatrixAPIKey() string { return c.DistanceMatrixAPIKey }
func (c *Config) IsDistanceMatrixEnabled() bool {
	return c.DistanceMatrixAPIKey != ""
}

// NominatimConfig implementation
func (c *Config) GetNominatimUserAgent() string { return c.NominatimUserAgent }

// TariffDefaults implementation
func (c *Config) GetPricePerKm() float64           { return c.PricePerKm }
func (c *Config) GetMinimumPrice() float64         { return c.MinimumPrice }
func (c *Config) GetWeightSurchargePerKg() float64 { return c.WeightSurchargePerKg }
func (c *Config) GetHeavySurchargePerKg() float64  { return c.HeavySurchargePerKg }
func (c *Config) GetInsuranceRate() float64        { return c.InsuranceRate }
func (c *Config) GetExpressMultiplier() float64    { return c.ExpressMultiplier }
func (c *Config) GetStandardMultiplier() float64   { return c.StandardMultiplier }
func (c *Config) GetEconomyMultiplier() float64    { return c.EconomyMultiplier }
func (c *Config) GetSignatureFee() float64         { return c.SignatureFee }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		GeocodingAPIKey:      getEnv("GEOCODING_API_KEY", ""),
		DistanceMatrixAPIKey: getEnv("DISTANCE_MATRIX_API_KEY", ""),
		NominatimUserAgent:   getEnv("NOMINATIM_USER_AGENT", "MajestyXpressLogistics/1.0 (contact@majestyxpress.com)"),
	}

	// A malformed tariff value must stop the boot, not price every trip at
	// the bare minimum.
	for _, field := range []struct {
		key      string
		fallback string
		dst      *float64
	}{
		{"PRICE_PER_KM", "200", &cfg.PricePerKm},
		{"MINIMUM_DELIVERY_PRICE", "500", &cfg.MinimumPrice},
		{"WEIGHT_SURCHARGE_PER_KG", "50", &cfg.WeightSurchargePerKg},
		{"HEAVY_SURCHARGE_PER_KG", "100", &cfg.HeavySurchargePerKg},
		{"INSURANCE_RATE", "0.02", &cfg.InsuranceRate},
		{"EXPRESS_MULTIPLIER", "1.5", &cfg.ExpressMultiplier},
		{"STANDARD_MULTIPLIER", "1.0", &cfg.StandardMultiplier},
		{"ECONOMY_MULTIPLIER", "0.8", &cfg.EconomyMultiplier},
		{"SIGNATURE_FEE", "200", &cfg.SignatureFee},
	} {
		value, err := parseFloat(field.key, getEnv(field.key, field.fallback))
		if err != nil {
			return nil, err
		}
		*field.dst = value
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.MinimumPrice < 0 || cfg.PricePerKm < 0 {
		return nil, fmt.Errorf("PRICE_PER_KM and MINIMUM_DELIVERY_PRICE must be non-negative")
	}
	if cfg.WeightSurchargePerKg < 0 || cfg.HeavySurchargePerKg < 0 || cfg.InsuranceRate < 0 || cfg.SignatureFee < 0 {
		return nil, fmt.Errorf("tariff surcharges and rates must be non-negative")
	}
	if cfg.ExpressMultiplier < 0 || cfg.StandardMultiplier < 0 || cfg.EconomyMultiplier < 0 {
		return nil, fmt.Errorf("service multipliers must be non-negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseFloat(key, value string) (float64, error) {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, value)
	}
	return result, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
