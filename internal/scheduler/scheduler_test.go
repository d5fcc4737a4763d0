package scheduler

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"SwingScout/internal/model"
	"SwingScout/internal/store"
)

func newTestScheduler(t *testing.T) (*Scheduler, *store.SQLiteStore) {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewScheduler(context.Background(), nil, nil, st, nil, "1"), st
}

func TestHandleCommand_Add(t *testing.T) {
	timeNow = func() time.Time { return time.Date(2026, 8, 31, 17, 0, 0, 0, time.UTC) }
	defer func() { timeNow = time.Now }()

	s, st := newTestScheduler(t)
	reply := s.HandleCommand("/add xyz 100 99 95 120 gap watch")
	if !strings.Contains(reply, "✅ XYZ added for 2026-08-31") {
		t.Fatalf("unexpected reply %q", reply)
	}

	date, rows, err := st.LatestResults()
	if err != nil {
		t.Fatal(err)
	}
	if date != "2026-08-31" || len(rows) != 1 {
		t.Fatalf("row not persisted: %q / %d", date, len(rows))
	}
	if rows[0].Symbol != "XYZ" || rows[0].Entry != 99 || rows[0].StopLoss != 95 || rows[0].Target != 120 {
		t.Errorf("fields wrong: %+v", rows[0])
	}
	if !strings.Contains(rows[0].Conditions, "gap watch") {
		t.Errorf("notes missing from conditions: %q", rows[0].Conditions)
	}
}

func TestHandleCommand_AddValidation(t *testing.T) {
	s, _ := newTestScheduler(t)
	if reply := s.HandleCommand("/add XYZ 100"); !strings.Contains(reply, "Usage") {
		t.Errorf("expected usage reply, got %q", reply)
	}
	if reply := s.HandleCommand("/add XYZ abc 1 2 3"); !strings.Contains(reply, "Bad number") {
		t.Errorf("expected parse error, got %q", reply)
	}
}

func TestHandleCommand_ApproveAndLatest(t *testing.T) {
	s, st := newTestScheduler(t)

	id, err := st.AddRecipient(model.Recipient{Name: "a", TelegramChatID: "42"})
	if err != nil {
		t.Fatal(err)
	}
	reply := s.HandleCommand("/approve " + "1")
	if !strings.Contains(reply, "approved") {
		t.Fatalf("unexpected reply %q", reply)
	}
	approved, err := st.ApprovedRecipients()
	if err != nil {
		t.Fatal(err)
	}
	if len(approved) != 1 || approved[0].ID != id {
		t.Fatalf("approval not persisted: %+v", approved)
	}

	if reply := s.HandleCommand("/latest"); !strings.Contains(reply, "No scan results") {
		t.Errorf("unexpected empty-state reply %q", reply)
	}
	if err := st.ReplaceDay("2026-08-31", model.ProvenanceDemo,
		[]model.ScanMatch{{Symbol: "RELIANCE", Signal: model.SignalBuy, Price: 100}}); err != nil {
		t.Fatal(err)
	}
	reply = s.HandleCommand("/latest")
	if !strings.Contains(reply, "RELIANCE") || !strings.Contains(reply, "(demo)") {
		t.Errorf("latest reply should list matches and flag demo provenance: %q", reply)
	}
}

func TestHandleCommand_Register(t *testing.T) {
	s, st := newTestScheduler(t)

	reply := s.HandleCommand("/register ravi 424242")
	if !strings.Contains(reply, "registered") {
		t.Fatalf("unexpected reply %q", reply)
	}
	approved, err := st.ApprovedRecipients()
	if err != nil {
		t.Fatal(err)
	}
	if len(approved) != 0 {
		t.Fatalf("new recipient must be pending, got %+v", approved)
	}

	if reply := s.HandleCommand("/approve 1"); !strings.Contains(reply, "approved") {
		t.Fatalf("unexpected reply %q", reply)
	}
	approved, err = st.ApprovedRecipients()
	if err != nil {
		t.Fatal(err)
	}
	if len(approved) != 1 || approved[0].Name != "ravi" || approved[0].TelegramChatID != "424242" {
		t.Fatalf("approval not persisted: %+v", approved)
	}

	s.HandleCommand("/register mira mira@example.com")
	s.HandleCommand("/approve 2")
	approved, _ = st.ApprovedRecipients()
	if len(approved) != 2 || approved[1].Email != "mira@example.com" || approved[1].TelegramChatID != "" {
		t.Fatalf("email recipient wrong: %+v", approved)
	}

	if reply := s.HandleCommand("/register onlyname"); !strings.Contains(reply, "Usage") {
		t.Errorf("expected usage reply, got %q", reply)
	}
}

func TestHandleCommand_LatestMixedProvenance(t *testing.T) {
	s, st := newTestScheduler(t)

	if err := st.ReplaceDay("2026-08-31", model.ProvenanceDemo,
		[]model.ScanMatch{{Symbol: "RELIANCE", Signal: model.SignalBuy, Price: 100}}); err != nil {
		t.Fatal(err)
	}
	if err := st.UpsertManual("2026-08-31",
		model.ScanMatch{Symbol: "TCS", Signal: model.SignalBuy, Price: 4100}); err != nil {
		t.Fatal(err)
	}

	// The manual upsert is the newest write, so the day reads as live.
	reply := s.HandleCommand("/latest")
	if !strings.Contains(reply, "RELIANCE") || !strings.Contains(reply, "TCS") {
		t.Fatalf("latest reply should list both rows: %q", reply)
	}
	if strings.Contains(reply, "(demo)") {
		t.Errorf("day with a later live write must not be flagged demo: %q", reply)
	}
}

func TestHandleCommand_Help(t *testing.T) {
	s, _ := newTestScheduler(t)
	if reply := s.HandleCommand("/bogus"); !strings.Contains(reply, "Available commands") {
		t.Errorf("unexpected reply %q", reply)
	}
}
