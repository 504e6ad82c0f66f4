package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// screens.assigned_content_id deliberately has no foreign key into
// content_items: a pointer at deleted content must stay readable so the
// resolver can report it as dangling instead of the write failing.
var steps = []migrationStep{
	{
		Name: "create_table_content_items",
		SQL: `CREATE TABLE IF NOT EXISTS content_items (
  id          UUID        PRIMARY KEY,
  filename    TEXT        NOT NULL,
  storage_key TEXT        NOT NULL UNIQUE,
  mime_type   TEXT        NOT NULL,
  size        BIGINT      NOT NULL CHECK (size >= 0),
  uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  seq         BIGSERIAL
);`,
	},
	{
		Name: "create_index_content_items_uploaded_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_content_items_uploaded_at ON content_items (uploaded_at DESC, seq ASC);`,
	},
	{
		Name: "create_table_screens",
		SQL: `CREATE TABLE IF NOT EXISTS screens (
  id                  TEXT PRIMARY KEY,
  assigned_content_id UUID
);`,
	},
	{
		Name: "create_index_screens_assigned_content_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_screens_assigned_content_id ON screens (assigned_content_id);`,
	},
}

// EnsureMigrated checks if the 'content_items' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.content_items') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
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
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
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

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
