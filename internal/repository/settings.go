package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConfigID is the key of the single settings row.
const ConfigID = "app_config"

// ErrSettingsNotFound signals that no settings row has been written yet.
// Callers treat this as the write-defaults-and-continue path, not a failure.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository handles the remote configuration record.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository instance.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get returns the raw configuration payload. The payload is handed to
// the settings resolver undecoded: a partially valid document must still
// resolve field-by-field.
func (r *SettingsRepository) Get(ctx context.Context) (json.RawMessage, error) {
	const query = `SELECT config FROM settings WHERE id = $1`

	var raw json.RawMessage
	err := r.pool.QueryRow(ctx, query, ConfigID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return raw, nil
}

// Upsert writes the configuration, creating the row if needed. Used to
// seed defaults on a fresh install.
func (r *SettingsRepository) Upsert(ctx context.Context, config any) error {
	const query = `
		INSERT INTO settings (id, config, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET config = EXCLUDED.config, updated_at = NOW()
	`

	payload, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, ConfigID, payload); err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}

// Update overwrites the existing configuration row.
func (r *SettingsRepository) Update(ctx context.Context, config any) error {
	const query = `UPDATE settings SET config = $2, updated_at = NOW() WHERE id = $1`

	payload, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, ConfigID, payload)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
