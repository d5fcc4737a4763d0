package store

import (
	"path/filepath"
	"testing"

	"SwingScout/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func buyMatch(symbol string, price float64) model.ScanMatch {
	return model.ScanMatch{
		Symbol:     symbol,
		Signal:     model.SignalBuy,
		Price:      price,
		Conditions: "EMA✓ RSI:55 Vol:2.0x High:83%",
	}
}

func TestReplaceDay_Idempotent(t *testing.T) {
	s := newTestStore(t)
	matches := []model.ScanMatch{buyMatch("RELIANCE", 100), buyMatch("TCS", 3500)}

	if err := s.ReplaceDay("2026-08-31", model.ProvenanceLive, matches); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := s.ReplaceDay("2026-08-31", model.ProvenanceLive, matches); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	date, rows, err := s.LatestResults()
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if date != "2026-08-31" {
		t.Errorf("unexpected date %q", date)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after repeated replace, got %d", len(rows))
	}
}

func TestReplaceDay_FullDaySemantics(t *testing.T) {
	s := newTestStore(t)

	if err := s.ReplaceDay("2026-08-31", model.ProvenanceLive,
		[]model.ScanMatch{buyMatch("RELIANCE", 100)}); err != nil {
		t.Fatal(err)
	}
	// Manual upsert adds a row, then an empty replace wipes the whole day.
	if err := s.UpsertManual("2026-08-31", model.ScanMatch{
		Symbol: "XYZ", Signal: model.SignalBuy, Price: 50,
		Entry: 49, StopLoss: 45, Target: 60,
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceDay("2026-08-31", model.ProvenanceLive, nil); err != nil {
		t.Fatal(err)
	}

	_, rows, err := s.LatestResults()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("expected empty day after replace with no matches, got %d rows", len(rows))
	}
}

func TestUpsertManual_UpdateThenInsert(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertManual("2026-08-31", model.ScanMatch{
		Symbol: "XYZ", Signal: model.SignalBuy, Price: 50,
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertManual("2026-08-31", model.ScanMatch{
		Symbol: "XYZ", Signal: model.SignalBuy, Price: 55, Entry: 54,
	}); err != nil {
		t.Fatal(err)
	}

	_, rows, err := s.LatestResults()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected single row after upsert of same key, got %d", len(rows))
	}
	if rows[0].Price != 55 || rows[0].Entry != 54 {
		t.Errorf("upsert did not update fields: %+v", rows[0])
	}
}

func TestLatestResults_PicksMostRecentDay(t *testing.T) {
	s := newTestStore(t)

	if err := s.ReplaceDay("2026-08-28", model.ProvenanceLive,
		[]model.ScanMatch{buyMatch("OLD", 10)}); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceDay("2026-08-31", model.ProvenanceDemo,
		[]model.ScanMatch{buyMatch("NEW", 20)}); err != nil {
		t.Fatal(err)
	}

	date, rows, err := s.LatestResults()
	if err != nil {
		t.Fatal(err)
	}
	if date != "2026-08-31" {
		t.Errorf("expected latest day, got %q", date)
	}
	if len(rows) != 1 || rows[0].Symbol != "NEW" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[0].Provenance != string(model.ProvenanceDemo) {
		t.Errorf("demo provenance not persisted: %q", rows[0].Provenance)
	}
}

func TestLatestResults_EmptyStore(t *testing.T) {
	s := newTestStore(t)
	date, rows, err := s.LatestResults()
	if err != nil {
		t.Fatalf("empty store read should not error: %v", err)
	}
	if date != "" || len(rows) != 0 {
		t.Errorf("expected empty result, got %q / %d rows", date, len(rows))
	}
}

func TestDeleteResult(t *testing.T) {
	s := newTestStore(t)
	if err := s.ReplaceDay("2026-08-31", model.ProvenanceLive,
		[]model.ScanMatch{buyMatch("RELIANCE", 100)}); err != nil {
		t.Fatal(err)
	}
	_, rows, _ := s.LatestResults()
	if len(rows) != 1 {
		t.Fatal("setup failed")
	}
	if err := s.DeleteResult(rows[0].ID); err != nil {
		t.Fatal(err)
	}
	_, rows, _ = s.LatestResults()
	if len(rows) != 0 {
		t.Errorf("expected row deleted, got %d", len(rows))
	}
}

func TestRecipients_ApprovalFilter(t *testing.T) {
	s := newTestStore(t)

	id1, err := s.AddRecipient(model.Recipient{Name: "a", TelegramChatID: "111"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddRecipient(model.Recipient{Name: "b", Email: "b@example.com"}); err != nil {
		t.Fatal(err)
	}

	approved, err := s.ApprovedRecipients()
	if err != nil {
		t.Fatal(err)
	}
	if len(approved) != 0 {
		t.Fatalf("pending recipients must not broadcast, got %d", len(approved))
	}

	if err := s.SetRecipientStatus(id1, model.RecipientApproved); err != nil {
		t.Fatal(err)
	}
	approved, err = s.ApprovedRecipients()
	if err != nil {
		t.Fatal(err)
	}
	if len(approved) != 1 || approved[0].TelegramChatID != "111" {
		t.Fatalf("unexpected approved set: %+v", approved)
	}
}
