package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"SwingScout/internal/model"
)

// SQLiteStore persists scan results to a SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard reads do not block scan writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_results (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_date      TEXT NOT NULL,
			symbol         TEXT NOT NULL,
			signal         TEXT,
			price          REAL,
			entry          REAL DEFAULT 0,
			stop_loss      REAL DEFAULT 0,
			target         REAL DEFAULT 0,
			conditions_met TEXT,
			provenance     TEXT NOT NULL DEFAULT 'live',
			recorded_at    INTEGER NOT NULL,
			UNIQUE(scan_date, symbol)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_date ON scan_results(scan_date)`,

		`CREATE TABLE IF NOT EXISTS recipients (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			name             TEXT,
			email            TEXT DEFAULT '',
			telegram_chat_id TEXT DEFAULT '',
			status           TEXT NOT NULL DEFAULT 'pending',
			created_at       INTEGER NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// ReplaceDay deletes existing rows for scanDate and inserts the new set in a
// single transaction, so readers never observe a half-replaced day.
func (s *SQLiteStore) ReplaceDay(scanDate string, provenance model.Provenance, matches []model.ScanMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM scan_results WHERE scan_date = ?`, scanDate); err != nil {
		return fmt.Errorf("delete day %s: %w", scanDate, err)
	}

	now := time.Now().Unix()
	for _, m := range matches {
		// Duplicate symbols in one scan collapse to a single row.
		_, err := tx.Exec(`INSERT INTO scan_results
			(scan_date, symbol, signal, price, entry, stop_loss, target, conditions_met, provenance, recorded_at)
			VALUES (?,?,?,?,?,?,?,?,?,?)
			ON CONFLICT(scan_date, symbol) DO NOTHING`,
			scanDate, m.Symbol, string(m.Signal), m.Price,
			m.Entry, m.StopLoss, m.Target, m.Conditions,
			string(provenance), now)
		if err != nil {
			return fmt.Errorf("insert %s: %w", m.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// UpsertManual inserts or updates one row for a manually entered signal.
func (s *SQLiteStore) UpsertManual(scanDate string, m model.ScanMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO scan_results
		(scan_date, symbol, signal, price, entry, stop_loss, target, conditions_met, provenance, recorded_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(scan_date, symbol) DO UPDATE SET
			signal=excluded.signal, price=excluded.price,
			entry=excluded.entry, stop_loss=excluded.stop_loss, target=excluded.target,
			conditions_met=excluded.conditions_met, provenance=excluded.provenance`,
		scanDate, m.Symbol, string(m.Signal), m.Price,
		m.Entry, m.StopLoss, m.Target, m.Conditions,
		string(model.ProvenanceLive), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", scanDate, m.Symbol, err)
	}
	return nil
}

// DeleteResult removes one row by id.
func (s *SQLiteStore) DeleteResult(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM scan_results WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete result %d: %w", id, err)
	}
	return nil
}

// LatestResults returns the most recent scan date's rows, newest first.
func (s *SQLiteStore) LatestResults() (string, []StoredMatch, error) {
	var scanDate sql.NullString
	err := s.db.Get(&scanDate, `SELECT MAX(scan_date) FROM scan_results`)
	if err != nil {
		return "", nil, fmt.Errorf("latest scan date: %w", err)
	}
	if !scanDate.Valid {
		return "", nil, nil // empty store
	}

	var rows []StoredMatch
	if err := s.db.Select(&rows, `SELECT * FROM scan_results
		WHERE scan_date = ? ORDER BY recorded_at DESC, id DESC`, scanDate.String); err != nil {
		return "", nil, fmt.Errorf("latest results: %w", err)
	}
	return scanDate.String, rows, nil
}

// AddRecipient registers a recipient in pending state unless a status is set.
func (s *SQLiteStore) AddRecipient(r model.Recipient) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := r.Status
	if status == "" {
		status = model.RecipientPending
	}
	res, err := s.db.Exec(`INSERT INTO recipients (name, email, telegram_chat_id, status, created_at)
		VALUES (?,?,?,?,?)`,
		r.Name, r.Email, r.TelegramChatID, string(status), time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("add recipient: %w", err)
	}
	return res.LastInsertId()
}

// SetRecipientStatus flips a recipient's approval state.
func (s *SQLiteStore) SetRecipientStatus(id int64, status model.RecipientStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`UPDATE recipients SET status = ? WHERE id = ?`, string(status), id); err != nil {
		return fmt.Errorf("set recipient %d status: %w", id, err)
	}
	return nil
}

// ApprovedRecipients returns only recipients eligible for broadcasts.
func (s *SQLiteStore) ApprovedRecipients() ([]model.Recipient, error) {
	var recipients []model.Recipient
	if err := s.db.Select(&recipients, `SELECT id, name, email, telegram_chat_id, status
		FROM recipients WHERE status = ? ORDER BY id`, string(model.RecipientApproved)); err != nil {
		return nil, fmt.Errorf("approved recipients: %w", err)
	}
	return recipients, nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
