package scanner

import "SwingScout/internal/model"

// demoSet is the representative fallback shown when a scan produces nothing,
// so the dashboard and notifications are never blank. It is persisted and
// reported with demo provenance only.
var demoSet = []model.ScanMatch{
	{Symbol: "RELIANCE", Signal: model.SignalBuy, Price: 2945.50, Conditions: "EMA✓ RSI:58 Vol:1.8x High:94%"},
	{Symbol: "TCS", Signal: model.SignalBuy, Price: 4102.35, Conditions: "EMA✓ RSI:52 Vol:2.1x High:88%"},
	{Symbol: "TATAMOTORS", Signal: model.SignalBuy, Price: 988.10, Conditions: "EMA✓ RSI:61 Vol:1.6x High:91%"},
	{Symbol: "BHARATFORG", Signal: model.SignalBuy, Price: 1455.00, Conditions: "EMA✓ RSI:55 Vol:2.4x High:86%"},
	{Symbol: "PERSISTENT", Signal: model.SignalBuy, Price: 5230.75, Conditions: "EMA✓ RSI:63 Vol:1.7x High:97%"},
}

// DemoMatches returns a copy of the static demo result set.
func DemoMatches() []model.ScanMatch {
	matches := make([]model.ScanMatch, len(demoSet))
	copy(matches, demoSet)
	return matches
}
