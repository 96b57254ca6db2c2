package calculator

import (
	"testing"
)

func TestCalculateSMA(t *testing.T) {
	got, err := CalculateSMA([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Errorf("expected 4, got %v", got)
	}
	if _, err := CalculateSMA([]float64{1, 2}, 3); err == nil {
		t.Error("expected error for short series")
	}
	if _, err := CalculateSMA([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for zero period")
	}
}

func TestCalculateRSI(t *testing.T) {
	rising := make([]float64, 30)
	for i := range rising {
		rising[i] = float64(100 + i)
	}
	rsi, err := CalculateRSI(rising, 14)
	if err != nil {
		t.Fatal(err)
	}
	if rsi != 100 {
		t.Errorf("monotonic rise: expected 100, got %v", rsi)
	}

	falling := make([]float64, 30)
	for i := range falling {
		falling[i] = float64(100 - i)
	}
	rsi, err = CalculateRSI(falling, 14)
	if err != nil {
		t.Fatal(err)
	}
	if rsi != 0 {
		t.Errorf("monotonic fall: expected 0, got %v", rsi)
	}

	if _, err := CalculateRSI(rising[:14], 14); err == nil {
		t.Error("expected error with period closes")
	}
}

func TestCalculatePosition(t *testing.T) {
	tests := []struct {
		current, high, low, want float64
	}{
		{150, 200, 100, 0.5},
		{250, 200, 100, 1},
		{50, 200, 100, 0},
		{100, 100, 100, 0.5},
	}
	for _, tt := range tests {
		got, err := CalculatePosition(tt.current, tt.high, tt.low)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("position(%v,%v,%v): expected %v, got %v", tt.current, tt.high, tt.low, tt.want, got)
		}
	}
	if _, err := CalculatePosition(1, 1, 2); err == nil {
		t.Error("expected error for high < low")
	}
}

func TestTrend_ShortTableLeavesLongIndicatorsUnset(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = float64(100 + i%5)
	}
	snap, err := Trend(tableOf(closes...))
	if err != nil {
		t.Fatal(err)
	}
	if !snap.SMA20OK || !snap.RSI14OK || !snap.Range52wOK {
		t.Errorf("expected SMA20, RSI14 and range to be set: %+v", snap)
	}
	if snap.SMA50OK || snap.SMA200OK {
		t.Errorf("expected SMA50/SMA200 unset for 30 rows: %+v", snap)
	}
	if snap.LastClose != closes[len(closes)-1] {
		t.Errorf("last close: %v", snap.LastClose)
	}
	// tableOf sets High = close+1, Low = close-1.
	if snap.High52w != 105 || snap.Low52w != 99 {
		t.Errorf("52w range: %v..%v", snap.Low52w, snap.High52w)
	}
}

func TestTrend_Empty(t *testing.T) {
	if _, err := Trend(tableOf()); err == nil {
		t.Error("expected error for empty table")
	}
}
