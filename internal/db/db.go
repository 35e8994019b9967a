// Package db persists survey sessions and their records in SQLite.
//
// All SQL lives here; the survey and heatmap packages stay free of
// database concerns. The schema is managed with golang-migrate (see the
// migrations directory).
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/heatmaphero/coverage.report/internal/survey"
)

type DB struct {
	*sql.DB
}

// NewDB opens (and creates if needed) the SQLite database at path.
func NewDB(path string) (*DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; serialise access through a single
	// connection instead of failing with SQLITE_BUSY.
	sqldb.SetMaxOpenConns(1)
	if _, err := sqldb.Exec(`PRAGMA journal_mode = WAL; PRAGMA foreign_keys = ON;`); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return &DB{sqldb}, nil
}

// Session is one survey walk: a batch of records loaded together.
type Session struct {
	SessionID string
	Name      string
	CreatedAt time.Time
	Records   int
}

// CreateSession inserts a new session row and returns its id.
func (db *DB) CreateSession(name string) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO survey_sessions (session_id, name, created_at) VALUES (?, ?, ?)`,
		id, name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return id, nil
}

// InsertRecords stores a batch of survey records under a session.
func (db *DB) InsertRecords(sessionID string, records []survey.Record) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO survey_records (
			session_id, recorded_at, x, y,
			rssi, ssid, frequency, tx_rate,
			avg_latency_ms, packet_loss_percent, jitter_ms,
			tcp_throughput_mbps, udp_throughput_mbps, tcp_retransmits
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		_, err := stmt.Exec(
			sessionID, r.Timestamp, *r.Coordinates.X, *r.Coordinates.Y,
			*r.WifiInfo.RSSI, r.WifiInfo.SSID, r.WifiInfo.Frequency, r.WifiInfo.TxRate,
			r.Latency.AvgLatencyMs, r.Latency.PacketLossPercent, r.Latency.JitterMs,
			r.Throughput.TCPThroughputMbps, r.Throughput.UDPThroughputMbps, r.Throughput.TCPRetransmits,
		)
		if err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Sessions lists stored sessions, newest first.
func (db *DB) Sessions() ([]Session, error) {
	rows, err := db.Query(`
		SELECT s.session_id, s.name, s.created_at, COUNT(r.record_id)
		FROM survey_sessions s
		LEFT JOIN survey_records r ON r.session_id = s.session_id
		GROUP BY s.session_id
		ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var created string
		if err := rows.Scan(&s.SessionID, &s.Name, &created, &s.Records); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			s.CreatedAt = t
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Records loads the survey records of a session in insertion order.
func (db *DB) Records(sessionID string) ([]survey.Record, error) {
	rows, err := db.Query(`
		SELECT recorded_at, x, y,
			rssi, ssid, frequency, tx_rate,
			avg_latency_ms, packet_loss_percent, jitter_ms,
			tcp_throughput_mbps, udp_throughput_mbps, tcp_retransmits
		FROM survey_records
		WHERE session_id = ?
		ORDER BY record_id`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []survey.Record
	for rows.Next() {
		var r survey.Record
		var x, y, rssi float64
		if err := rows.Scan(
			&r.Timestamp, &x, &y,
			&rssi, &r.WifiInfo.SSID, &r.WifiInfo.Frequency, &r.WifiInfo.TxRate,
			&r.Latency.AvgLatencyMs, &r.Latency.PacketLossPercent, &r.Latency.JitterMs,
			&r.Throughput.TCPThroughputMbps, &r.Throughput.UDPThroughputMbps, &r.Throughput.TCPRetransmits,
		); err != nil {
			return nil, err
		}
		r.Coordinates.X = &x
		r.Coordinates.Y = &y
		r.WifiInfo.RSSI = &rssi
		records = append(records, r)
	}
	return records, rows.Err()
}
