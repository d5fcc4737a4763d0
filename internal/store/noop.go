package store

import "SwingScout/internal/model"

// NoopStore is a no-op implementation used when SQLite is not configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) ReplaceDay(_ string, _ model.Provenance, _ []model.ScanMatch) error { return nil }
func (n *NoopStore) UpsertManual(_ string, _ model.ScanMatch) error                     { return nil }
func (n *NoopStore) DeleteResult(_ int64) error                                         { return nil }
func (n *NoopStore) LatestResults() (string, []StoredMatch, error)                      { return "", nil, nil }
func (n *NoopStore) AddRecipient(_ model.Recipient) (int64, error)                      { return 0, nil }
func (n *NoopStore) SetRecipientStatus(_ int64, _ model.RecipientStatus) error          { return nil }
func (n *NoopStore) ApprovedRecipients() ([]model.Recipient, error)                     { return nil, nil }
func (n *NoopStore) Close() error                                                       { return nil }
