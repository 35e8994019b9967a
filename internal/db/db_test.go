package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatmaphero/coverage.report/internal/survey"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "survey_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp(filepath.Join("..", "..", "migrations")))
	return db
}

func testRecord(x, y, rssi float64) survey.Record {
	return survey.Record{
		Timestamp:   "2025-01-15T10:30:00",
		Coordinates: survey.Coordinates{X: &x, Y: &y},
		WifiInfo: survey.WifiInfo{
			RSSI:      &rssi,
			SSID:      "OfficeNet",
			Frequency: "5240 MHz",
			TxRate:    "866 Mbps",
		},
		Latency: survey.LatencyInfo{
			AvgLatencyMs:      12.5,
			PacketLossPercent: 0.5,
			JitterMs:          1.2,
		},
		Throughput: survey.ThroughputInfo{
			TCPThroughputMbps: 312.4,
			UDPThroughputMbps: 95.1,
			TCPRetransmits:    3,
		},
	}
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.MigrateUp(filepath.Join("..", "..", "migrations")))

	version, dirty, err := db.MigrateVersion(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(1), version)
}

func TestSessionRoundTrip(t *testing.T) {
	db := openTestDB(t)

	id, err := db.CreateSession("morning walk")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	records := []survey.Record{
		testRecord(10, 20, -45),
		testRecord(30, 40, -60),
	}
	require.NoError(t, db.InsertRecords(id, records))

	got, err := db.Records(id)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 10.0, *got[0].Coordinates.X)
	assert.Equal(t, 20.0, *got[0].Coordinates.Y)
	assert.Equal(t, -45.0, *got[0].WifiInfo.RSSI)
	assert.Equal(t, "OfficeNet", got[0].WifiInfo.SSID)
	assert.Equal(t, "5240 MHz", got[0].WifiInfo.Frequency)
	assert.Equal(t, 12.5, got[0].Latency.AvgLatencyMs)
	assert.Equal(t, 312.4, got[0].Throughput.TCPThroughputMbps)
	assert.Equal(t, -60.0, *got[1].WifiInfo.RSSI)
}

func TestSessionsListsNewestFirst(t *testing.T) {
	db := openTestDB(t)

	first, err := db.CreateSession("first")
	require.NoError(t, err)
	require.NoError(t, db.InsertRecords(first, []survey.Record{testRecord(1, 2, -50)}))

	_, err = db.CreateSession("second")
	require.NoError(t, err)

	sessions, err := db.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	byName := make(map[string]Session, len(sessions))
	for _, s := range sessions {
		byName[s.Name] = s
	}
	assert.Equal(t, 1, byName["first"].Records)
	assert.Equal(t, 0, byName["second"].Records)
	assert.False(t, byName["first"].CreatedAt.IsZero())
}

func TestRecordsUnknownSession(t *testing.T) {
	db := openTestDB(t)

	got, err := db.Records("no-such-session")
	require.NoError(t, err)
	assert.Empty(t, got)
}
