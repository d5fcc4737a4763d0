package model

// IndicatorSnapshot holds the computed indicator values for the most recent
// bar of one symbol's series. VolAvgOK / High52wOK are false when the series
// is shorter than the corresponding rolling window; the dependent condition
// then fails instead of erroring.
type IndicatorSnapshot struct {
	Symbol    string
	Close     float64
	EMAShort  float64
	EMALong   float64
	RSI       float64
	Volume    float64
	VolAvg    float64
	VolAvgOK  bool
	High52w   float64
	High52wOK bool
}
