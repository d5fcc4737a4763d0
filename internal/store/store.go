package store

import (
	"time"

	"SwingScout/internal/model"
)

// StoredMatch is one persisted scan result row.
type StoredMatch struct {
	ID         int64   `db:"id"`
	ScanDate   string  `db:"scan_date"`
	Symbol     string  `db:"symbol"`
	Signal     string  `db:"signal"`
	Price      float64 `db:"price"`
	Entry      float64 `db:"entry"`
	StopLoss   float64 `db:"stop_loss"`
	Target     float64 `db:"target"`
	Conditions string  `db:"conditions_met"`
	Provenance string  `db:"provenance"`
	RecordedAt int64   `db:"recorded_at"`
}

// Match converts a stored row back to the domain type.
func (s *StoredMatch) Match() model.ScanMatch {
	return model.ScanMatch{
		Symbol:     s.Symbol,
		Signal:     model.Signal(s.Signal),
		Price:      s.Price,
		Conditions: s.Conditions,
		Entry:      s.Entry,
		StopLoss:   s.StopLoss,
		Target:     s.Target,
	}
}

// Store persists scan results and the notification recipient registry. It is
// the sole writer of the durable result set.
type Store interface {
	// ReplaceDay atomically deletes all rows for scanDate and inserts the new
	// set with the given provenance. No partial visibility.
	ReplaceDay(scanDate string, provenance model.Provenance, matches []model.ScanMatch) error
	// UpsertManual updates the (scanDate, symbol) row if present, else inserts.
	// Manual rows always carry live provenance.
	UpsertManual(scanDate string, match model.ScanMatch) error
	// DeleteResult removes a single row by id.
	DeleteResult(id int64) error
	// LatestResults returns the most recent scan date's full row set, newest
	// insertion first.
	LatestResults() (string, []StoredMatch, error)

	AddRecipient(r model.Recipient) (int64, error)
	SetRecipientStatus(id int64, status model.RecipientStatus) error
	ApprovedRecipients() ([]model.Recipient, error)

	Close() error
}

// DateKey formats a time as the calendar key results are stored under.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
