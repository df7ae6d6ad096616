package tariff

import (
	"context"
	"errors"

	"majestyxpress_backend/platform/apperr"
	"majestyxpress_backend/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides the currently active tariff configuration.
type Store interface {
	GetActive(ctx context.Context) (Config, error)
}

// EnvStore serves the environment-default tariff. Used when no database is
// configured.
type EnvStore struct {
	defaults Config
}

// NewEnvStore creates a store backed only by environment defaults.
func NewEnvStore(defaults Config) *EnvStore {
	return &EnvStore{defaults: defaults}
}

// GetActive returns the environment defaults.
func (s *EnvStore) GetActive(ctx context.Context) (Config, error) {
	return s.defaults, nil
}

// PGStore serves the active tariff row from Postgres, seeding a default row
// from environment defaults when none exists yet.
type PGStore struct {
	pool     *pgxpool.Pool
	defaults Config
	log      *logger.Logger
}

// NewPGStore creates a Postgres-backed tariff store.
func NewPGStore(pool *pgxpool.Pool, defaults Config, log *logger.Logger) *PGStore {
	return &PGStore{pool: pool, defaults: defaults, log: log}
}

// Ensure creates the tariff table if it does not exist yet.
func (s *PGStore) Ensure(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tariff_configs (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL DEFAULT 'default',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			price_per_km DOUBLE PRECISION NOT NULL,
			minimum_price DOUBLE PRECISION NOT NULL,
			weight_surcharge_per_kg DOUBLE PRECISION NOT NULL,
			heavy_surcharge_per_kg DOUBLE PRECISION NOT NULL,
			insurance_rate DOUBLE PRECISION NOT NULL,
			express_multiplier DOUBLE PRECISION NOT NULL,
			standard_multiplier DOUBLE PRECISION NOT NULL,
			economy_multiplier DOUBLE PRECISION NOT NULL,
			signature_fee DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

// GetActive returns the active tariff row. When no row is active yet, a
// default row is inserted from environment defaults and returned.
func (s *PGStore) GetActive(ctx context.Context) (Config, error) {
	cfg, err := s.queryActive(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		s.log.DatabaseError("tariff.get_active", err)
		return Config{}, apperr.Wrap(apperr.KindUnavailable, "tariff store unavailable", err)
	}

	if err := s.insertDefault(ctx); err != nil {
		s.log.DatabaseError("tariff.seed_default", err)
		return Config{}, apperr.Wrap(apperr.KindUnavailable, "tariff store unavailable", err)
	}
	s.log.Info("seeded default tariff config")
	return s.defaults, nil
}

// SetActive deactivates any current row and inserts the given config as the
// new active tariff. Used by the seeding CLI, not exposed over HTTP.
func (s *PGStore) SetActive(ctx context.Context, cfg Config) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `UPDATE tariff_configs SET is_active = FALSE, updated_at = now() WHERE is_active`); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO tariff_configs (
			price_per_km, minimum_price, weight_surcharge_per_kg, heavy_surcharge_per_kg,
			insurance_rate, express_multiplier, standard_multiplier, economy_multiplier, signature_fee
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		cfg.PricePerKm, cfg.MinimumPrice, cfg.WeightSurchargePerKg, cfg.HeavySurchargePerKg,
		cfg.InsuranceRate, cfg.ExpressMultiplier, cfg.StandardMultiplier, cfg.EconomyMultiplier, cfg.SignatureFee,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *PGStore) queryActive(ctx context.Context) (Config, error) {
	var cfg Config
	err := s.pool.QueryRow(ctx, `
		SELECT price_per_km, minimum_price, weight_surcharge_per_kg, heavy_surcharge_per_kg,
		       insurance_rate, express_multiplier, standard_multiplier, economy_multiplier, signature_fee
		FROM tariff_configs
		WHERE is_active
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(
		&cfg.PricePerKm, &cfg.MinimumPrice, &cfg.WeightSurchargePerKg, &cfg.HeavySurchargePerKg,
		&cfg.InsuranceRate, &cfg.ExpressMultiplier, &cfg.StandardMultiplier, &cfg.EconomyMultiplier, &cfg.SignatureFee,
	)
	return cfg, err
}

func (s *PGStore) insertDefault(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO tariff_configs (
			price_per_km, minimum_price, weight_surcharge_per_kg, heavy_surcharge_per_kg,
			insurance_rate, express_multiplier, standard_multiplier, economy_multiplier, signature_fee
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		s.defaults.PricePerKm, s.defaults.MinimumPrice, s.defaults.WeightSurchargePerKg, s.defaults.HeavySurchargePerKg,
		s.defaults.InsuranceRate, s.defaults.ExpressMultiplier, s.defaults.StandardMultiplier, s.defaults.EconomyMultiplier, s.defaults.SignatureFee,
	)
	return err
}

// Compile-time checks that both stores implement Store.
var (
	_ Store = (*EnvStore)(nil)
	_ Store = (*PGStore)(nil)
)
