package history

import (
	"database/sql"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
)

const SchemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS schema_versions (
    version INTEGER PRIMARY KEY,
    applied_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS telemetry (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    sample INTEGER NOT NULL,
    timestamp INTEGER NOT NULL,
    host TEXT NOT NULL,
    category TEXT NOT NULL,
    type TEXT NOT NULL,
    record TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_telemetry_sample ON telemetry(sample);
CREATE INDEX IF NOT EXISTS idx_telemetry_category ON telemetry(category);
`

func initSchema(db *sql.DB) error {
	current, err := getSchemaVersion(db)
	if err != nil {
		return err
	}

	if current == SchemaVersion {
		return nil
	}

	if current > SchemaVersion {
		return errors.New().WithData(errors.ErrExport, map[string]any{
			"FileVersion":      current,
			"SupportedVersion": SchemaVersion,
		})
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return errors.New().Wrap(errors.ErrExport, err)
	}

	if _, err := db.Exec(
		"INSERT OR IGNORE INTO schema_versions (version, applied_at) VALUES (?, strftime('%s','now'))",
		SchemaVersion,
	); err != nil {
		return errors.New().Wrap(errors.ErrExport, err)
	}

	logger.Debug().Int("version", SchemaVersion).Msg("Archive schema initialized")

	return nil
}

func getSchemaVersion(db *sql.DB) (int, error) {
	exists, err := tableExists(db, "schema_versions")
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	var version int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&version)
	if err != nil {
		return 0, errors.New().Wrap(errors.ErrExport, err)
	}

	return version, nil
}

func tableExists(db *sql.DB, name string) (bool, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name,
	).Scan(&count)
	if err != nil {
		return false, errors.New().Wrap(errors.ErrExport, err)
	}

	return count > 0, nil
}
