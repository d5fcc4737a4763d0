package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SwingScout/internal/calculator"
	"SwingScout/internal/model"
)

// ErrInsufficientData indicates a symbol's series is shorter than the minimum
// length required before indicators are trusted. Soft failure: skip, not abort.
var ErrInsufficientData = errors.New("price series too short")

// Params controls series acquisition and indicator windows.
type Params struct {
	LookbackDays int
	MinBars      int
	EMAShortSpan int
	EMALongSpan  int
	RSIPeriod    int
	VolumeWindow int
	HighWindow   int
}

// Collector fetches one symbol's series and computes its indicator snapshot.
type Collector struct {
	Fetcher Fetcher
	Params  Params
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, params Params) *Collector {
	return &Collector{Fetcher: fetcher, Params: params}
}

// Snapshot fetches the symbol's daily history and computes indicator values
// for the most recent bar. Returns ErrNoData or ErrInsufficientData as soft
// failures; indicators whose rolling window exceeds the series length are
// marked invalid on the snapshot rather than erroring.
func (c *Collector) Snapshot(ctx context.Context, symbol string) (*model.IndicatorSnapshot, error) {
	bars, err := c.Fetcher.FetchDailyBars(ctx, symbol, c.Params.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	if len(bars) < c.Params.MinBars {
		return nil, fmt.Errorf("%s: %d bars: %w", symbol, len(bars), ErrInsufficientData)
	}

	closes := calculator.ExtractCloses(bars)
	volumes := calculator.ExtractVolumes(bars)
	last := bars[len(bars)-1]

	snap := &model.IndicatorSnapshot{
		Symbol: symbol,
		Close:  last.Close,
		Volume: last.Volume,
	}

	if snap.EMAShort, err = calculator.CalculateEMA(closes, c.Params.EMAShortSpan); err != nil {
		return nil, fmt.Errorf("%s: ema%d: %w", symbol, c.Params.EMAShortSpan, err)
	}
	if snap.EMALong, err = calculator.CalculateEMA(closes, c.Params.EMALongSpan); err != nil {
		return nil, fmt.Errorf("%s: ema%d: %w", symbol, c.Params.EMALongSpan, err)
	}
	if snap.RSI, err = calculator.CalculateRSI(closes, c.Params.RSIPeriod); err != nil {
		return nil, fmt.Errorf("%s: rsi: %w", symbol, err)
	}

	if avg, err := calculator.RollingMean(volumes, c.Params.VolumeWindow); err == nil {
		snap.VolAvg = avg
		snap.VolAvgOK = true
	}
	if high, err := calculator.RollingMax(closes, c.Params.HighWindow); err == nil {
		snap.High52w = high
		snap.High52wOK = true
	}

	return snap, nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Data  map[string][]model.OHLCV
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol string, days int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.Data[symbol]; ok {
		return bars, nil
	}
	return GenerateMockBars(m.Price, days), nil
}

// GenerateMockBars produces a gently trending synthetic series.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
