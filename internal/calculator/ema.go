package calculator

import "errors"

// CalculateEMA computes the exponential moving average of the given values
// with smoothing span, returning the value at the final point.
// The series' first value seeds the recurrence, so the early portion is an
// approximation until the window warms up.
func CalculateEMA(values []float64, span int) (float64, error) {
	if span <= 0 {
		return 0, errors.New("span must be positive")
	}
	if len(values) == 0 {
		return 0, errors.New("no data for EMA calculation")
	}
	alpha := 2.0 / (float64(span) + 1.0)
	ema := values[0]
	for _, v := range values[1:] {
		ema = alpha*v + (1-alpha)*ema
	}
	return ema, nil
}
