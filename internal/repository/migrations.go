package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// MemberUpdatesChannel is the NOTIFY channel carrying member row updates.
// The members table trigger publishes the full updated row as JSON, which
// is what the realtime reconciler listens for.
const MemberUpdatesChannel = "member_updates"

// Migrate applies the database schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	log.Info().Msg("Running database migrations...")

	// Migration 1: members table
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS members (
			member_id VARCHAR(16) PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			phone VARCHAR(32) NOT NULL,
			points INT NOT NULL DEFAULT 0,
			visits_in_cycle INT NOT NULL DEFAULT 0,
			rewards_available INT NOT NULL DEFAULT 0,
			is_following_social BOOLEAN NOT NULL DEFAULT FALSE,
			last_visit_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_members_points ON members(points DESC);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 1: members table created")

	// Migration 2: settings table (single row keyed by the fixed config id)
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS settings (
			id VARCHAR(64) PRIMARY KEY,
			config JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 2: settings table created")

	// Migration 3: member update notifications. Any UPDATE of a member
	// row is pushed to listeners with the full row as JSON, so a staff
	// scan at the register reaches the member's device out-of-band.
	_, err = pool.Exec(ctx, `
		CREATE OR REPLACE FUNCTION notify_member_update() RETURNS trigger AS $$
		BEGIN
			PERFORM pg_notify('`+MemberUpdatesChannel+`', row_to_json(NEW)::text);
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql;

		DROP TRIGGER IF EXISTS members_notify_update ON members;
		CREATE TRIGGER members_notify_update
			AFTER UPDATE ON members
			FOR EACH ROW
			EXECUTE FUNCTION notify_member_update();
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 3: member update trigger created")

	log.Info().Msg("All migrations completed successfully")
	return nil
}
