package model

// Metric is a derived ratio that is undefined when its denominator is zero.
type Metric struct {
	Value   float64
	Defined bool
}

// StatsSummary describes the closing-price column of a HistoricalTable.
type StatsSummary struct {
	Count float64
	Mean  float64
	Std   float64
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64

	PriceRange        float64 // Max - Min
	IQRRange          float64 // P75 - P25
	PercentIncrease   Metric  // PriceRange / Min * 100
	VolatilityPercent Metric  // Std / Mean * 100
}

// TrendSnapshot holds technical indicators over the most recent rows.
// Each OK flag is false when the table is too short for that indicator.
type TrendSnapshot struct {
	LastClose float64

	SMA20, SMA50, SMA200       float64
	SMA20OK, SMA50OK, SMA200OK bool

	RSI14   float64
	RSI14OK bool

	High52w     float64
	Low52w      float64
	Position52w float64 // 0.0 ~ 1.0
	Range52wOK  bool
}
