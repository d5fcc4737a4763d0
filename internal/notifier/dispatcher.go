package notifier

import (
	"context"
	"fmt"
	"log"

	"SwingScout/internal/model"
)

// RecipientSource provides the broadcast recipient list.
type RecipientSource interface {
	ApprovedRecipients() ([]model.Recipient, error)
}

// Dispatcher broadcasts a completed scan's summary to every approved
// recipient over their configured channels. It only reads the result set.
type Dispatcher struct {
	Telegram   *TelegramNotifier
	Email      *EmailNotifier
	Recipients RecipientSource
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(tg *TelegramNotifier, em *EmailNotifier, rs RecipientSource) *Dispatcher {
	return &Dispatcher{Telegram: tg, Email: em, Recipients: rs}
}

// Broadcast delivers the report to all approved recipients and returns how
// many were reached on at least one channel. Per-recipient failures are
// logged and never interrupt the rest of the broadcast.
func (d *Dispatcher) Broadcast(ctx context.Context, report *model.ScanReport) int {
	recipients, err := d.Recipients.ApprovedRecipients()
	if err != nil {
		log.Printf("[ERROR] load recipients: %v", err)
		return 0
	}
	if len(recipients) == 0 {
		log.Println("[INFO] no approved recipients, skipping broadcast")
		return 0
	}

	text := FormatScanSummary(report)
	htmlBody := FormatScanEmail(report)
	subject := fmt.Sprintf("📊 %d Swing Signals — %s", report.MatchCount(), report.ScanDate)

	delivered := 0
	for _, r := range recipients {
		reached := false

		if r.TelegramChatID != "" && d.Telegram != nil {
			if err := d.Telegram.SendWithRetry(ctx, r.TelegramChatID, text, 2); err != nil {
				log.Printf("[WARN] telegram delivery to %s failed: %v", r.TelegramChatID, err)
			} else {
				reached = true
			}
		}
		if r.Email != "" && d.Email != nil && d.Email.Configured() {
			if err := d.Email.Send(r.Email, subject, htmlBody); err != nil {
				log.Printf("[WARN] email delivery to %s failed: %v", r.Email, err)
			} else {
				reached = true
			}
		}

		if reached {
			delivered++
		}
	}

	log.Printf("[INFO] broadcast complete: %d/%d recipients reached", delivered, len(recipients))
	return delivered
}
