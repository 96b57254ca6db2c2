package calculator

import (
	"errors"
	"math"

	"StockFetcher/internal/model"
)

// TradingDays52w is the number of daily rows treated as one year.
const TradingDays52w = 252

// CalculateHighLow scans the most recent window rows and returns the highest high and lowest low.
func CalculateHighLow(rows []model.OHLCV, window int) (high, low float64, err error) {
	if len(rows) == 0 {
		return 0, 0, errors.New("no rows provided")
	}
	start := len(rows) - window
	if window <= 0 || start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, r := range rows[start:] {
		if r.High > high {
			high = r.High
		}
		if r.Low < low {
			low = r.Low
		}
	}
	return high, low, nil
}

// CalculatePosition returns where current sits within [low, high], clamped to 0.0~1.0.
func CalculatePosition(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (current - low) / (high - low)
	return math.Max(0, math.Min(1, pos)), nil
}

// Trend assembles moving averages, RSI(14) and the trailing 52-week range.
// Indicators the table is too short for are left unset.
func Trend(table *model.HistoricalTable) (*model.TrendSnapshot, error) {
	if table.Empty() {
		return nil, ErrNoData
	}
	closes := table.Closes()
	snap := &model.TrendSnapshot{LastClose: table.Last().Close}

	if v, err := CalculateSMA(closes, 20); err == nil {
		snap.SMA20, snap.SMA20OK = v, true
	}
	if v, err := CalculateSMA(closes, 50); err == nil {
		snap.SMA50, snap.SMA50OK = v, true
	}
	if v, err := CalculateSMA(closes, 200); err == nil {
		snap.SMA200, snap.SMA200OK = v, true
	}
	if v, err := CalculateRSI(closes, 14); err == nil {
		snap.RSI14, snap.RSI14OK = v, true
	}
	if h, l, err := CalculateHighLow(table.Rows, TradingDays52w); err == nil {
		if pos, err := CalculatePosition(snap.LastClose, h, l); err == nil {
			snap.High52w, snap.Low52w, snap.Position52w, snap.Range52wOK = h, l, pos, true
		}
	}
	return snap, nil
}
