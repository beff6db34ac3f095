package history

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/telemetry"
)

func testRecords(ts time.Time) []telemetry.Record {
	reading := 54.5

	sys := telemetry.Record{
		Timestamp:  ts,
		Host:       "bmc1",
		Category:   telemetry.CategorySystem,
		Type:       telemetry.TypeSystem,
		PowerState: "On",
	}
	temp := telemetry.Record{
		Timestamp:      ts,
		Host:           "bmc1",
		Category:       telemetry.CategoryThermal,
		Type:           telemetry.TypeTemperature,
		SensorName:     "CPU1 Temp",
		ReadingCelsius: &reading,
	}

	return []telemetry.Record{sys, temp}
}

func TestArchiveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	archive, err := Open(path)
	require.NoError(t, err)

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, archive.Record(1, testRecords(ts)))
	require.NoError(t, archive.Record(2, testRecords(ts.Add(10*time.Second))))
	require.NoError(t, archive.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var total int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM telemetry").Scan(&total))
	assert.Equal(t, 4, total)

	var thermal int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM telemetry WHERE sample = 2 AND category = 'thermal'",
	).Scan(&thermal))
	assert.Equal(t, 1, thermal)

	var raw string
	require.NoError(t, db.QueryRow(
		"SELECT record FROM telemetry WHERE sample = 1 AND category = 'system'",
	).Scan(&raw))
	assert.Contains(t, raw, `"power_state":"On"`)
}

func TestArchiveSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	archive, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, archive.Close())

	// Reopening an existing file keeps the schema as is.
	archive, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, archive.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var version int
	require.NoError(t, db.QueryRow("SELECT MAX(version) FROM schema_versions").Scan(&version))
	assert.Equal(t, SchemaVersion, version)
}

func TestArchiveRejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE schema_versions (version INTEGER PRIMARY KEY, applied_at INTEGER NOT NULL)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO schema_versions (version, applied_at) VALUES (?, strftime('%s','now'))", SchemaVersion+1)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(path)
	require.Error(t, err)
}
