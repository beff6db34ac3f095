// Package history persists collected telemetry into a SQLite file so a
// monitoring session can be inspected with ordinary SQL tooling after
// the run. Each invocation writes to the file it was given; nothing is
// read back during collection.
package history

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/telemetry"
)

// Archive is a session-scoped telemetry sink backed by SQLite.
type Archive struct {
	db *sql.DB
}

// Open creates or opens the archive file and ensures the schema is
// current.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrExport, err).WithData(path)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Archive{db: db}, nil
}

// Record stores every record of one sample in a single transaction, so
// a sample is either fully present or absent.
func (a *Archive) Record(sample int, records []telemetry.Record) error {
	tx, err := a.db.Begin()
	if err != nil {
		return errors.New().Wrap(errors.ErrExport, err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO telemetry (sample, timestamp, host, category, type, record) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return errors.New().Wrap(errors.ErrExport, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			return errors.New().Wrap(errors.ErrExport, err)
		}

		if _, err := stmt.Exec(
			sample,
			rec.Timestamp.Unix(),
			rec.Host,
			string(rec.Category),
			string(rec.Type),
			string(raw),
		); err != nil {
			return errors.New().Wrap(errors.ErrExport, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.New().Wrap(errors.ErrExport, err)
	}

	logger.Debug().
		Int("sample", sample).
		Int("records", len(records)).
		Msg("Sample archived")

	return nil
}

// Close checkpoints the WAL and releases the database handle.
func (a *Archive) Close() error {
	if _, err := a.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		logger.Warn().Err(err).Msg("WAL checkpoint failed on close")
	}

	return a.db.Close()
}
