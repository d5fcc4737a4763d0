package calculator

import (
	"errors"
	"math"

	"SwingScout/internal/model"
)

// ErrWindowTooLarge is returned when a series has fewer points than the
// requested rolling window; the indicator is undefined for that bar.
var ErrWindowTooLarge = errors.New("not enough data for rolling window")

// RollingMean returns the simple average of the trailing `window` values.
func RollingMean(values []float64, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(values) < window {
		return 0, ErrWindowTooLarge
	}
	sum := 0.0
	for i := len(values) - window; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(window), nil
}

// RollingMax returns the maximum of the trailing `window` values.
func RollingMax(values []float64, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(values) < window {
		return 0, ErrWindowTooLarge
	}
	max := math.Inf(-1)
	for i := len(values) - window; i < len(values); i++ {
		if values[i] > max {
			max = values[i]
		}
	}
	return max, nil
}

// ExtractCloses pulls the close column from a bar series.
func ExtractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// ExtractVolumes pulls the volume column from a bar series.
func ExtractVolumes(bars []model.OHLCV) []float64 {
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		volumes[i] = b.Volume
	}
	return volumes
}
