package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// HistoricalTable holds the rows returned by one history fetch.
// A table with zero rows is valid and distinct from a failed fetch.
type HistoricalTable struct {
	Symbol    string
	Period    Period
	Interval  Interval
	Location  *time.Location // exchange timezone the row times are expressed in
	FetchedAt time.Time
	Rows      []OHLCV
}

func (t *HistoricalTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *HistoricalTable) Empty() bool { return t.Len() == 0 }

// Closes extracts the closing-price column.
func (t *HistoricalTable) Closes() []float64 {
	if t == nil {
		return nil
	}
	closes := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		closes[i] = r.Close
	}
	return closes
}

func (t *HistoricalTable) First() OHLCV { return t.Rows[0] }

func (t *HistoricalTable) Last() OHLCV { return t.Rows[len(t.Rows)-1] }

// Head returns at most n leading rows.
func (t *HistoricalTable) Head(n int) []OHLCV {
	if n > t.Len() {
		n = t.Len()
	}
	return t.Rows[:n]
}

// Loc returns the table's timezone, falling back to UTC.
func (t *HistoricalTable) Loc() *time.Location {
	if t == nil || t.Location == nil {
		return time.UTC
	}
	return t.Location
}

// TimeLayout renders row times the way the provider indexes them,
// e.g. "2024-01-02 00:00:00-05:00".
const TimeLayout = "2006-01-02 15:04:05-07:00"
