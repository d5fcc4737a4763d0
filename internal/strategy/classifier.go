package strategy

import (
	"fmt"
	"math"
	"strings"

	"SwingScout/internal/model"
)

// Criteria holds the breakout thresholds. Zero values are not defaulted here;
// config owns the defaults.
type Criteria struct {
	RSIMin         float64
	RSIMax         float64
	VolumeMultiple float64
	ProximityRatio float64
}

// Classifier evaluates one symbol's indicator snapshot against the breakout
// pattern: uptrend alignment, momentum band, volume confirmation, proximity
// to the 52-week high. All four must hold.
type Classifier struct {
	Criteria Criteria
}

// NewClassifier creates a Classifier.
func NewClassifier(c Criteria) *Classifier {
	return &Classifier{Criteria: c}
}

// Classify returns a BUY match when every condition passes, nil otherwise.
// A nil result is a normal outcome, not an error.
func (c *Classifier) Classify(snap *model.IndicatorSnapshot) *model.ScanMatch {
	uptrend := snap.Close > snap.EMAShort && snap.EMAShort > snap.EMALong
	momentum := snap.RSI >= c.Criteria.RSIMin && snap.RSI <= c.Criteria.RSIMax
	volumeOK := snap.VolAvgOK && snap.VolAvg > 0 &&
		snap.Volume >= snap.VolAvg*c.Criteria.VolumeMultiple
	nearHigh := snap.High52wOK && snap.High52w > 0 &&
		snap.Close >= snap.High52w*c.Criteria.ProximityRatio

	if !uptrend || !momentum || !volumeOK || !nearHigh {
		return nil
	}

	volRatio := math.Round(snap.Volume/snap.VolAvg*10) / 10
	highPct := math.Round(snap.Close / snap.High52w * 100)

	return &model.ScanMatch{
		Symbol: strings.TrimSuffix(snap.Symbol, ".NS"),
		Signal: model.SignalBuy,
		Price:  math.Round(snap.Close*100) / 100,
		Conditions: fmt.Sprintf("EMA✓ RSI:%.0f Vol:%.1fx High:%.0f%%",
			snap.RSI, volRatio, highPct),
	}
}
