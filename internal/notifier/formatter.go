package notifier

import (
	"fmt"
	"strings"

	"SwingScout/internal/model"
)

// FormatScanSummary formats a scan report as a Telegram broadcast message.
func FormatScanSummary(report *model.ScanReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>SwingScout — Daily Scan (%s)</b>\n\n", report.ScanDate))
	b.WriteString(fmt.Sprintf("✅ %d signals found\n", report.MatchCount()))
	if report.Demo() {
		b.WriteString("⚠️ <b>Demo data</b> — live scan produced no signals\n")
	}
	b.WriteString("\n")

	symbols := make([]string, 0, 10)
	for i, m := range report.Matches {
		if i == 10 {
			break
		}
		symbols = append(symbols, m.Symbol)
	}
	b.WriteString(fmt.Sprintf("<b>Stocks:</b> %s\n\n", strings.Join(symbols, ", ")))
	b.WriteString("Login to view full details.")

	return b.String()
}

// FormatScanEmail formats a scan report as an HTML email body.
func FormatScanEmail(report *model.ScanReport) string {
	var b strings.Builder

	b.WriteString("<h2>SwingScout — Daily Scan Results</h2>\n")
	b.WriteString(fmt.Sprintf("<p><b>Date:</b> %s</p>\n", report.ScanDate))
	b.WriteString(fmt.Sprintf("<p><b>%d signals found</b></p>\n", report.MatchCount()))
	if report.Demo() {
		b.WriteString("<p><b>Note:</b> demo data — the live scan produced no signals.</p>\n")
	}
	b.WriteString("<table border='1' cellpadding='8' style='border-collapse:collapse'>\n")
	b.WriteString("<tr><th>Symbol</th><th>Signal</th><th>Price</th><th>Conditions</th></tr>\n")
	for _, m := range report.Matches {
		b.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>₹%.2f</td><td>%s</td></tr>\n",
			m.Symbol, m.Signal, m.Price, m.Conditions))
	}
	b.WriteString("</table>\n")

	return b.String()
}

// FormatLatestResults formats a persisted result set for a command reply.
func FormatLatestResults(scanDate string, matches []model.ScanMatch, provenance model.Provenance) string {
	if scanDate == "" {
		return "No scan results recorded yet."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Latest scan</b> | %s", scanDate))
	if provenance == model.ProvenanceDemo {
		b.WriteString(" (demo)")
	}
	b.WriteString("\n\n")
	for _, m := range matches {
		b.WriteString(fmt.Sprintf("• %s %s @ ₹%.2f — %s\n", m.Symbol, m.Signal, m.Price, m.Conditions))
	}
	return b.String()
}

// FormatManualConditions builds the condition summary for admin-entered rows.
func FormatManualConditions(entry, stopLoss, target float64, notes string) string {
	conditions := fmt.Sprintf("Entry:₹%g SL:₹%g TP:₹%g", entry, stopLoss, target)
	if notes != "" {
		conditions += " | " + notes
	}
	return conditions
}
