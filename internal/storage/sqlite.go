// Package storage provides SQLite-based persistence for completed farm
// runs and their economy ledgers.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents one completed simulation run.
type RunEntry struct {
	ID         int64
	ScenarioID string
	Days       int
	Money      int
	CreatedAt  time.Time
}

// Ledger entry kinds.
const (
	EntryBuy     = "buy"
	EntrySell    = "sell"
	EntryHarvest = "harvest"
)

// LedgerEntry represents a single economy event within a run: a purchase,
// a sale, or a harvest. Amount is the money delta (zero for harvests).
type LedgerEntry struct {
	ID       int64
	RunID    int64
	Day      int
	Kind     string
	Item     string
	Quantity int
	Amount   int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			days INTEGER NOT NULL,
			money INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario_id ON runs(scenario_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(scenario_id, money DESC);

		CREATE TABLE IF NOT EXISTS ledger (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL,
			day INTEGER NOT NULL,
			kind TEXT NOT NULL,
			item TEXT NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 0,
			amount INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (run_id) REFERENCES runs(id)
		);
		CREATE INDEX IF NOT EXISTS idx_ledger_run_id ON ledger(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a completed run and returns its ID.
func (s *Store) SaveRun(scenarioID string, days, money int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (scenario_id, days, money) VALUES (?, ?, ?)",
		scenarioID, days, money,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// AppendEntries records the economy events of a run in one transaction.
func (s *Store) AppendEntries(runID int64, entries []LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	for _, e := range entries {
		if _, err := tx.Exec(
			"INSERT INTO ledger (run_id, day, kind, item, quantity, amount) VALUES (?, ?, ?, ?, ?, ?)",
			runID, e.Day, e.Kind, e.Item, e.Quantity, e.Amount,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot append ledger entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit ledger entries: %w", err)
	}
	return nil
}

// TopRuns retrieves the best runs for the given scenario, ordered by
// closing money descending.
func (s *Store) TopRuns(scenarioID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scenario_id, days, money, created_at
		 FROM runs
		 WHERE scenario_id = ?
		 ORDER BY money DESC
		 LIMIT ?`,
		scenarioID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ScenarioID, &e.Days, &e.Money, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestMoney returns the highest closing money recorded for the scenario.
// Returns 0 if no runs exist.
func (s *Store) BestMoney(scenarioID string) (int, error) {
	var money sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(money) FROM runs WHERE scenario_id = ?",
		scenarioID,
	).Scan(&money)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best money: %w", err)
	}

	if !money.Valid {
		return 0, nil
	}

	return int(money.Int64), nil
}

// RunLedger retrieves the economy events of a run in insertion order.
func (s *Store) RunLedger(runID int64) ([]LedgerEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, day, kind, item, quantity, amount
		 FROM ledger
		 WHERE run_id = ?
		 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ledger: %w", err)
	}
	defer rows.Close()

	var entries []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Day, &e.Kind, &e.Item, &e.Quantity, &e.Amount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearRuns deletes all runs and ledger entries for the given scenario
// in one transaction.
func (s *Store) ClearRuns(scenarioID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	if _, err := tx.Exec(
		"DELETE FROM ledger WHERE run_id IN (SELECT id FROM runs WHERE scenario_id = ?)",
		scenarioID,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot clear ledger: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE scenario_id = ?", scenarioID); err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// ScenarioStats contains aggregated statistics for one scenario.
type ScenarioStats struct {
	ScenarioID string
	RunsCount  int
	BestMoney  int
	AvgMoney   float64
	TotalDays  int64
	LastPlayed time.Time
}

// GetScenarioStats retrieves aggregated statistics for a scenario.
func (s *Store) GetScenarioStats(scenarioID string) (*ScenarioStats, error) {
	stats := &ScenarioStats{ScenarioID: scenarioID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(money), 0), COALESCE(AVG(money), 0), COALESCE(SUM(days), 0)
		 FROM runs WHERE scenario_id = ?`,
		scenarioID,
	).Scan(&stats.RunsCount, &stats.BestMoney, &stats.AvgMoney, &stats.TotalDays)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE scenario_id = ? ORDER BY created_at DESC LIMIT 1`,
		scenarioID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// parseCreatedAt handles the driver returning either time.Time or string.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
