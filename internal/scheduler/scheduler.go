package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"SwingScout/internal/model"
	"SwingScout/internal/notifier"
	"SwingScout/internal/scanner"
	"SwingScout/internal/store"
)

// timeNow is swappable in tests.
var timeNow = time.Now

// Scheduler owns the cron lifecycle and translates triggers (timer, admin
// command) into scan runs and broadcasts.
type Scheduler struct {
	Cron         *cron.Cron
	Orchestrator *scanner.Orchestrator
	Dispatcher   *notifier.Dispatcher
	Store        store.Store
	Notifier     *notifier.TelegramNotifier
	AdminChatID  string
	Ctx          context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, orch *scanner.Orchestrator, disp *notifier.Dispatcher, st store.Store, tn *notifier.TelegramNotifier, adminChatID string) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Orchestrator: orch,
		Dispatcher:   disp,
		Store:        st,
		Notifier:     tn,
		AdminChatID:  adminChatID,
		Ctx:          ctx,
	}
}

// RegisterAll registers the daily scan trigger.
func (s *Scheduler) RegisterAll(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	report, err := s.Orchestrator.Run(s.Ctx)
	if errors.Is(err, scanner.ErrScanInProgress) {
		log.Println("[WARN] scan trigger ignored: already running")
		return
	}
	if err != nil {
		log.Printf("[ERROR] scan failed: %v", err)
		s.notifyAdmin(fmt.Sprintf("❌ Scan failed: %v", err))
		return
	}
	s.Dispatcher.Broadcast(s.Ctx, report)
}

// HandleCommand processes an admin command and returns the reply text.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}

	switch fields[0] {
	case "/scan":
		go s.scanTask()
		return "🔍 Scan started. Results will be broadcast when complete."

	case "/latest":
		scanDate, rows, err := s.Store.LatestResults()
		if err != nil {
			return fmt.Sprintf("❌ Read failed: %v", err)
		}
		matches := make([]model.ScanMatch, len(rows))
		for i, r := range rows {
			matches[i] = r.Match()
		}
		// Rows come back newest first; the day's provenance follows the
		// most recent write.
		provenance := model.ProvenanceLive
		if len(rows) > 0 {
			provenance = model.Provenance(rows[0].Provenance)
		}
		return notifier.FormatLatestResults(scanDate, matches, provenance)

	case "/add":
		return s.handleAdd(fields[1:])

	case "/register":
		return s.handleRegister(fields[1:])

	case "/approve":
		if len(fields) != 2 {
			return "Usage: /approve <recipient-id>"
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return "Usage: /approve <recipient-id>"
		}
		if err := s.Store.SetRecipientStatus(id, model.RecipientApproved); err != nil {
			return fmt.Sprintf("❌ Approve failed: %v", err)
		}
		return fmt.Sprintf("✅ Recipient %d approved", id)

	default:
		return helpText
	}
}

// handleAdd upserts a manually entered signal:
// /add SYMBOL PRICE ENTRY SL TP [notes...]
func (s *Scheduler) handleAdd(args []string) string {
	if len(args) < 5 {
		return "Usage: /add SYMBOL PRICE ENTRY SL TP [notes]"
	}
	symbol := strings.ToUpper(strings.TrimSpace(args[0]))
	nums := make([]float64, 4)
	for i, raw := range args[1:5] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Sprintf("❌ Bad number %q", raw)
		}
		nums[i] = v
	}
	notes := strings.Join(args[5:], " ")

	match := model.ScanMatch{
		Symbol:     symbol,
		Signal:     model.SignalBuy,
		Price:      nums[0],
		Entry:      nums[1],
		StopLoss:   nums[2],
		Target:     nums[3],
		Conditions: notifier.FormatManualConditions(nums[1], nums[2], nums[3], notes),
	}
	today := store.DateKey(timeNow())
	if err := s.Store.UpsertManual(today, match); err != nil {
		return fmt.Sprintf("❌ Add failed: %v", err)
	}
	log.Printf("[INFO] admin added stock: %s Entry:%g SL:%g TP:%g", symbol, nums[1], nums[2], nums[3])
	return fmt.Sprintf("✅ %s added for %s", symbol, today)
}

// handleRegister adds a broadcast recipient in pending state:
// /register NAME <chat-id|email>
func (s *Scheduler) handleRegister(args []string) string {
	if len(args) != 2 {
		return "Usage: /register NAME <chat-id|email>"
	}
	r := model.Recipient{Name: args[0]}
	if strings.Contains(args[1], "@") {
		r.Email = args[1]
	} else {
		r.TelegramChatID = args[1]
	}
	id, err := s.Store.AddRecipient(r)
	if err != nil {
		return fmt.Sprintf("❌ Register failed: %v", err)
	}
	log.Printf("[INFO] recipient %d (%s) registered pending approval", id, r.Name)
	return fmt.Sprintf("✅ Recipient %d (%s) registered. Approve with /approve %d", id, r.Name, id)
}

func (s *Scheduler) notifyAdmin(text string) {
	if s.Notifier == nil || s.AdminChatID == "" {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, s.AdminChatID, text, 3); err != nil {
		log.Printf("[ERROR] send admin notification: %v", err)
	}
}

const helpText = "Available commands:\n" +
	"• /scan — run the scan now\n" +
	"• /latest — show the latest result set\n" +
	"• /add SYMBOL PRICE ENTRY SL TP [notes]\n" +
	"• /register NAME <chat-id|email>\n" +
	"• /approve <recipient-id>"
