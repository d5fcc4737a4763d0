package strategy

import (
	"strings"
	"testing"

	"SwingScout/internal/model"
)

func defaultCriteria() Criteria {
	return Criteria{RSIMin: 45, RSIMax: 68, VolumeMultiple: 1.5, ProximityRatio: 0.70}
}

// passingSnapshot satisfies all four conditions:
// close=100 > EMA20=95 > EMA50=90, RSI=55 in [45,68],
// volume 200 >= 1.5*100, close 100 >= 0.70*120.
func passingSnapshot() *model.IndicatorSnapshot {
	return &model.IndicatorSnapshot{
		Symbol:    "RELIANCE.NS",
		Close:     100,
		EMAShort:  95,
		EMALong:   90,
		RSI:       55,
		Volume:    200,
		VolAvg:    100,
		VolAvgOK:  true,
		High52w:   120,
		High52wOK: true,
	}
}

func TestClassify_AllConditionsPass(t *testing.T) {
	match := NewClassifier(defaultCriteria()).Classify(passingSnapshot())
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.Symbol != "RELIANCE" {
		t.Errorf("expected suffix stripped, got %q", match.Symbol)
	}
	if match.Signal != model.SignalBuy {
		t.Errorf("expected BUY, got %s", match.Signal)
	}
	if match.Price != 100.0 {
		t.Errorf("expected price 100.0, got %f", match.Price)
	}
	if !strings.Contains(match.Conditions, "Vol:2.0x") {
		t.Errorf("conditions should record the volume multiple, got %q", match.Conditions)
	}
	if !strings.Contains(match.Conditions, "High:83%") {
		t.Errorf("conditions should record percent-of-high, got %q", match.Conditions)
	}
}

func TestClassify_SingleConditionNegations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.IndicatorSnapshot)
	}{
		{"uptrend broken", func(s *model.IndicatorSnapshot) { s.EMAShort = 101 }},
		{"ema inversion", func(s *model.IndicatorSnapshot) { s.EMALong = 96 }},
		{"rsi oversold", func(s *model.IndicatorSnapshot) { s.RSI = 44 }},
		{"rsi overbought", func(s *model.IndicatorSnapshot) { s.RSI = 69 }},
		{"volume weak", func(s *model.IndicatorSnapshot) { s.Volume = 149 }},
		{"far from high", func(s *model.IndicatorSnapshot) { s.High52w = 150 }},
	}
	cls := NewClassifier(defaultCriteria())
	for _, tt := range tests {
		snap := passingSnapshot()
		tt.mutate(snap)
		if match := cls.Classify(snap); match != nil {
			t.Errorf("%s: expected no match, got %+v", tt.name, match)
		}
	}
}

func TestClassify_InclusiveBoundaries(t *testing.T) {
	cls := NewClassifier(defaultCriteria())

	snap := passingSnapshot()
	snap.RSI = 45
	if cls.Classify(snap) == nil {
		t.Error("RSI at the lower bound should pass (inclusive)")
	}
	snap.RSI = 68
	if cls.Classify(snap) == nil {
		t.Error("RSI at the upper bound should pass (inclusive)")
	}

	snap = passingSnapshot()
	snap.Volume = 150 // exactly 1.5x
	if cls.Classify(snap) == nil {
		t.Error("volume at exactly the multiple should pass")
	}

	snap = passingSnapshot()
	snap.Close = 84 // exactly 0.70 * 120
	snap.EMAShort = 80
	snap.EMALong = 75
	if cls.Classify(snap) == nil {
		t.Error("close at exactly the proximity ratio should pass")
	}
}

func TestClassify_UndefinedIndicatorsFail(t *testing.T) {
	cls := NewClassifier(defaultCriteria())

	snap := passingSnapshot()
	snap.VolAvgOK = false
	if cls.Classify(snap) != nil {
		t.Error("undefined volume average must fail the volume condition")
	}

	snap = passingSnapshot()
	snap.High52wOK = false
	if cls.Classify(snap) != nil {
		t.Error("undefined 52-week high must fail the proximity condition")
	}
}
