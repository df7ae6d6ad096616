// Command tariff-seed activates a tariff configuration in the database.
// Flags override the environment defaults; omitted flags keep them.
package main

import (
	"context"
	"flag"
	"fmt"

	"majestyxpress_backend/internal/tariff"
	"majestyxpress_backend/platform/config"
	"majestyxpress_backend/platform/db"
	"majestyxpress_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)

	if !cfg.IsDatabaseEnabled() {
		panic("DATABASE_URL must be configured to seed tariffs")
	}

	defaults := tariff.DefaultsFromConfig(cfg)

	pricePerKm := flag.Float64("price-per-km", defaults.PricePerKm, "price per kilometer in NGN")
	minimumPrice := flag.Float64("minimum-price", defaults.MinimumPrice, "minimum delivery price in NGN")
	weightSurcharge := flag.Float64("weight-surcharge-per-kg", defaults.WeightSurchargePerKg, "surcharge per kg above 5 kg")
	heavySurcharge := flag.Float64("heavy-surcharge-per-kg", defaults.HeavySurchargePerKg, "surcharge per kg above 20 kg")
	insuranceRate := flag.Float64("insurance-rate", defaults.InsuranceRate, "insurance premium as a fraction of declared value")
	expressMultiplier := flag.Float64("express-multiplier", defaults.ExpressMultiplier, "express service multiplier")
	standardMultiplier := flag.Float64("standard-multiplier", defaults.StandardMultiplier, "standard service multiplier")
	economyMultiplier := flag.Float64("economy-multiplier", defaults.EconomyMultiplier, "economy service multiplier")
	signatureFee := flag.Float64("signature-fee", defaults.SignatureFee, "flat fee for signature on delivery")
	flag.Parse()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	store := tariff.NewPGStore(pool, defaults, log)
	if err := store.Ensure(ctx); err != nil {
		log.Error("failed to ensure tariff schema", "error", err)
		panic("failed to ensure tariff schema: " + err.Error())
	}

	next := tariff.Config{
		PricePerKm:           *pricePerKm,
		MinimumPrice:         *minimumPrice,
		WeightSurchargePerKg: *weightSurcharge,
		HeavySurchargePerKg:  *heavySurcharge,
		InsuranceRate:        *insuranceRate,
		ExpressMultiplier:    *expressMultiplier,
		StandardMultiplier:   *standardMultiplier,
		EconomyMultiplier:    *economyMultiplier,
		SignatureFee:         *signatureFee,
	}

	if err := store.SetActive(ctx, next); err != nil {
		log.Error("failed to activate tariff config", "error", err)
		panic("failed to activate tariff config: " + err.Error())
	}

	active, err := store.GetActive(ctx)
	if err != nil {
		log.Error("failed to read back active tariff", "error", err)
		panic("failed to read back active tariff: " + err.Error())
	}

	log.Info("tariff config activated")
	fmt.Printf("active tariff: %+v\n", active)
}
