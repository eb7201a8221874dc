package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"zoomboom/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  email         TEXT        PRIMARY KEY,
  name          TEXT        NOT NULL DEFAULT '',
  photo_url     TEXT        NOT NULL DEFAULT '',
  role          TEXT        NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'rider', 'admin')),
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  last_login_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_parcels",
		SQL: `CREATE TABLE IF NOT EXISTS parcels (
  id                UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  tracking_id       TEXT             NOT NULL UNIQUE,
  user_email        TEXT             NOT NULL,
  parcel_type       TEXT             NOT NULL CHECK (parcel_type IN ('document', 'not-document')),
  parcel_name       TEXT             NOT NULL,
  parcel_weight     DOUBLE PRECISION NOT NULL CHECK (parcel_weight > 0),
  sender_name       TEXT             NOT NULL,
  sender_phone      TEXT             NOT NULL,
  sender_district   TEXT             NOT NULL,
  sender_area       TEXT             NOT NULL,
  sender_address    TEXT             NOT NULL,
  receiver_name     TEXT             NOT NULL,
  receiver_phone    TEXT             NOT NULL,
  receiver_district TEXT             NOT NULL,
  receiver_area     TEXT             NOT NULL,
  receiver_address  TEXT             NOT NULL,
  total_cost        INTEGER          NOT NULL CHECK (total_cost > 0),
  status            TEXT             NOT NULL DEFAULT 'Pending',
  booked_at         TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ      NOT NULL DEFAULT now(),
  CHECK (sender_area <> receiver_area)
);`,
	},
	{
		Name: "create_index_parcels_user_email_booked_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_parcels_user_email_booked_at ON parcels (user_email, booked_at DESC);`,
	},
	{
		Name: "create_table_payments",
		SQL: `CREATE TABLE IF NOT EXISTS payments (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  parcel_id      UUID        NOT NULL REFERENCES parcels (id) ON DELETE RESTRICT,
  email          TEXT        NOT NULL,
  transaction_id TEXT        NOT NULL UNIQUE,
  price          INTEGER     NOT NULL CHECK (price > 0),
  status         TEXT        NOT NULL,
  paid_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_payments_email_paid_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_payments_email_paid_at ON payments (email, paid_at DESC);`,
	},
	{
		Name: "create_table_riders",
		SQL: `CREATE TABLE IF NOT EXISTS riders (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  email        TEXT        NOT NULL UNIQUE,
  full_name    TEXT        NOT NULL,
  phone        TEXT        NOT NULL,
  nid          TEXT        NOT NULL,
  region       TEXT        NOT NULL,
  district     TEXT        NOT NULL,
  license      TEXT        NOT NULL,
  bike_details TEXT        NOT NULL,
  bike_reg     TEXT        NOT NULL,
  bio          TEXT        NOT NULL,
  rider_image  TEXT        NOT NULL,
  user_photo   TEXT        NOT NULL DEFAULT '',
  status       TEXT        NOT NULL DEFAULT 'pending',
  role         TEXT        NOT NULL DEFAULT 'user',
  applied_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_riders_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_riders_status ON riders (status);`,
	},
}

// EnsureMigrated checks if the 'parcels' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *logging.Logger, dbHost string) error {
	start := time.Now()

	log.Log(map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.parcels') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		log.Log(map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Log(map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	log.Log(map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			log.Log(map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Log(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	log.Log(map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}
