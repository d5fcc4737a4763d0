package calculator

import "errors"

// CalculateRSI computes the rolling-window RSI over the given period: the
// average of positive deltas over the average magnitude of negative deltas
// across the trailing `period` changes, mapped to 0-100.
// Requires at least period+1 values. When the average loss is zero the score
// saturates at 100.
func CalculateRSI(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period+1 {
		return 0, errors.New("not enough data for RSI calculation")
	}

	var avgGain, avgLoss float64
	for i := len(values) - period; i < len(values); i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
