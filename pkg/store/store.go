// Package store persists scan results, synthesized tokens, and drift
// groups in a local SQLite database. Structured payloads are stored as
// JSON TEXT columns; the wire shapes are the contract, not the schema.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/driftlens/driftlens/pkg/drift"
	"github.com/driftlens/driftlens/pkg/scanner"
	"github.com/driftlens/driftlens/pkg/synth"
)

const driverName = "sqlite"

// Store wraps the SQLite handle. Safe for concurrent use; writes
// serialize on a single connection.
type Store struct {
	path string
	db   *sql.DB
	mu   sync.Mutex
}

// ScanRecord is one persisted scan run.
type ScanRecord struct {
	ID        string
	Root      string
	CreatedAt time.Time
	Result    scanner.ScanResult
}

// Open creates or opens the database at path and applies migrations.
func Open(path string) (*Store, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("store path must not be empty")
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("store path %q is a directory, expected file", cleanPath)
	}

	dir := filepath.Dir(cleanPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory %q: %w", dir, err)
		}
	}

	// busy_timeout + WAL reduce lock conflicts during watch-mode churn.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", cleanPath)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", cleanPath, err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping store %q: %w", cleanPath, err)
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize store schema %q: %w", cleanPath, err)
	}

	return &Store{path: cleanPath, db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScan persists a scan result and returns its generated id.
func (s *Store) SaveScan(root string, result *scanner.ScanResult) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode scan result: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO scans (id, root, created_at_utc, result_json) VALUES (?, ?, ?, ?)`,
		id, root, time.Now().UTC().Format(time.RFC3339), string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("insert scan: %w", err)
	}
	return id, nil
}

// SaveTokens persists a synthesis result for a scan.
func (s *Store) SaveTokens(scanID string, result synth.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(result.Tokens)
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO token_sets (scan_id, tokens_json, css, created_at_utc) VALUES (?, ?, ?, ?)`,
		scanID, string(payload), result.CSS, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert token set: %w", err)
	}
	return nil
}

// SaveDrift persists a drift aggregation result for a scan.
func (s *Store) SaveDrift(scanID string, result drift.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode drift result: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO drift_results (scan_id, result_json, created_at_utc) VALUES (?, ?, ?)`,
		scanID, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert drift result: %w", err)
	}
	return nil
}

// GetScan loads one scan by id.
func (s *Store) GetScan(id string) (*ScanRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, root, created_at_utc, result_json FROM scans WHERE id = ?`, id)
	return scanFromRow(row)
}

// LatestScan loads the most recent scan, or nil when none exist.
func (s *Store) LatestScan() (*ScanRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, root, created_at_utc, result_json FROM scans ORDER BY created_at_utc DESC, id DESC LIMIT 1`)
	rec, err := scanFromRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// ListScans returns scan ids and roots, newest first.
func (s *Store) ListScans() ([]ScanRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, root, created_at_utc FROM scans ORDER BY created_at_utc DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	var out []ScanRecord
	for rows.Next() {
		var rec ScanRecord
		var created string
		if err := rows.Scan(&rec.ID, &rec.Root, &created); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetTokens loads the synthesis result for a scan, or nil when absent.
func (s *Store) GetTokens(scanID string) (*synth.Result, error) {
	var tokensJSON, css string
	err := s.db.QueryRow(
		`SELECT tokens_json, css FROM token_sets WHERE scan_id = ?`, scanID).
		Scan(&tokensJSON, &css)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load token set: %w", err)
	}

	res := synth.Result{CSS: css}
	if err := json.Unmarshal([]byte(tokensJSON), &res.Tokens); err != nil {
		return nil, fmt.Errorf("decode tokens: %w", err)
	}
	return &res, nil
}

// GetDrift loads the drift result for a scan, or nil when absent.
func (s *Store) GetDrift(scanID string) (*drift.Result, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT result_json FROM drift_results WHERE scan_id = ?`, scanID).
		Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load drift result: %w", err)
	}

	var res drift.Result
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return nil, fmt.Errorf("decode drift result: %w", err)
	}
	return &res, nil
}

func scanFromRow(row *sql.Row) (*ScanRecord, error) {
	var rec ScanRecord
	var created, payload string
	if err := row.Scan(&rec.ID, &rec.Root, &created, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("load scan: %w", err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
	if err := json.Unmarshal([]byte(payload), &rec.Result); err != nil {
		return nil, fmt.Errorf("decode scan result: %w", err)
	}
	return &rec, nil
}
