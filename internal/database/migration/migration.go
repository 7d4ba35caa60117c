// Package migration bootstraps the schema this service owns. The only
// table is job_preferences; everything else the service touches lives in
// external systems.
package migration

import (
	"context"

	"techshift/internal/database"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS job_preferences (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE,
		target_roles TEXT NOT NULL DEFAULT '',
		locations TEXT NOT NULL DEFAULT '',
		remote_preference TEXT NOT NULL DEFAULT 'remote',
		min_salary INTEGER,
		tech_stack TEXT NOT NULL DEFAULT '',
		auto_apply_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_preferences_updated_at ON job_preferences (updated_at DESC)`,
}

// Apply is idempotent and safe to run on every startup.
func Apply(ctx context.Context, db database.DB) error {
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
