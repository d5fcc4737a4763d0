package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateEMA_Recurrence(t *testing.T) {
	// alpha = 2/(3+1) = 0.5; seed = 10
	// 10 -> 0.5*20+0.5*10 = 15 -> 0.5*30+0.5*15 = 22.5
	ema, err := CalculateEMA([]float64{10, 20, 30}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(ema-22.5) > 1e-9 {
		t.Errorf("expected 22.5, got %f", ema)
	}
}

func TestCalculateEMA_Errors(t *testing.T) {
	if _, err := CalculateEMA(nil, 20); err == nil {
		t.Error("expected error for empty series")
	}
	if _, err := CalculateEMA([]float64{1}, 0); err == nil {
		t.Error("expected error for non-positive span")
	}
}

func TestCalculateEMA_ConstantSeries(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 42.0
	}
	ema, err := CalculateEMA(values, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(ema-42.0) > 1e-9 {
		t.Errorf("EMA of constant series should be the constant, got %f", ema)
	}
}

func TestCalculateRSI_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"alternating", []float64{10, 12, 11, 13, 12, 14, 13, 15, 14, 16, 15, 17, 16, 18, 17}},
		{"falling", []float64{30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 19, 18, 17, 16}},
		{"rising", []float64{16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30}},
	}
	for _, tt := range tests {
		rsi, err := CalculateRSI(tt.values, 14)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if rsi < 0 || rsi > 100 {
			t.Errorf("%s: RSI out of bounds: %f", tt.name, rsi)
		}
	}
}

func TestCalculateRSI_SaturatesOnAllGains(t *testing.T) {
	values := make([]float64, 15)
	for i := range values {
		values[i] = float64(100 + i)
	}
	rsi, err := CalculateRSI(values, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 100.0 {
		t.Errorf("expected saturation at 100 for all-positive deltas, got %f", rsi)
	}
}

func TestCalculateRSI_AllLosses(t *testing.T) {
	values := make([]float64, 15)
	for i := range values {
		values[i] = float64(100 - i)
	}
	rsi, err := CalculateRSI(values, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 0.0 {
		t.Errorf("expected 0 for all-negative deltas, got %f", rsi)
	}
}

func TestCalculateRSI_InsufficientData(t *testing.T) {
	if _, err := CalculateRSI([]float64{1, 2, 3}, 14); err == nil {
		t.Error("expected error for short series")
	}
}

func TestRollingMean(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	mean, err := RollingMean(values, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mean != 5.0 {
		t.Errorf("expected trailing mean 5.0, got %f", mean)
	}

	if _, err := RollingMean(values, 7); !errors.Is(err, ErrWindowTooLarge) {
		t.Errorf("expected ErrWindowTooLarge, got %v", err)
	}
}

func TestRollingMax(t *testing.T) {
	values := []float64{9, 1, 2, 8, 3, 4}
	max, err := RollingMax(values, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if max != 8.0 {
		t.Errorf("expected trailing max 8.0, got %f", max)
	}

	if _, err := RollingMax(values, 252); !errors.Is(err, ErrWindowTooLarge) {
		t.Errorf("expected ErrWindowTooLarge, got %v", err)
	}
}
