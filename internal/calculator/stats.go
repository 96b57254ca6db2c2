package calculator

import (
	"errors"
	"math"
	"sort"

	"StockFetcher/internal/model"
)

// ErrNoData is returned when a statistic is requested over an empty series.
var ErrNoData = errors.New("no data points")

// Description is the pandas-style describe() of a numeric series.
type Description struct {
	Count float64
	Mean  float64
	Std   float64 // sample standard deviation (n-1)
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// Describe computes count, mean, sample std, min, quartiles and max.
// Std is 0 for a single value.
func Describe(values []float64) (Description, error) {
	n := len(values)
	if n == 0 {
		return Description{}, ErrNoData
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	std := 0.0
	if n > 1 {
		sq := 0.0
		for _, v := range sorted {
			sq += (v - mean) * (v - mean)
		}
		std = math.Sqrt(sq / float64(n-1))
	}

	return Description{
		Count: float64(n),
		Mean:  mean,
		Std:   std,
		Min:   sorted[0],
		P25:   quantileSorted(sorted, 0.25),
		P50:   quantileSorted(sorted, 0.50),
		P75:   quantileSorted(sorted, 0.75),
		Max:   sorted[n-1],
	}, nil
}

// Quantile returns the q-th quantile (0..1) using linear interpolation
// between closest ranks, h = (n-1)q.
func Quantile(values []float64, q float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoData
	}
	if q < 0 || q > 1 {
		return 0, errors.New("quantile must be within [0, 1]")
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return quantileSorted(sorted, q), nil
}

func quantileSorted(sorted []float64, q float64) float64 {
	h := float64(len(sorted)-1) * q
	lo := math.Floor(h)
	hi := math.Ceil(h)
	if lo == hi {
		return sorted[int(lo)]
	}
	return sorted[int(lo)] + (h-lo)*(sorted[int(hi)]-sorted[int(lo)])
}

// PercentOf returns num/den*100, undefined when den is zero.
func PercentOf(num, den float64) model.Metric {
	if den == 0 {
		return model.Metric{}
	}
	return model.Metric{Value: num / den * 100, Defined: true}
}

// Summarize describes the closing prices and derives range, IQR, swing and volatility.
func Summarize(table *model.HistoricalTable) (*model.StatsSummary, error) {
	d, err := Describe(table.Closes())
	if err != nil {
		return nil, err
	}
	priceRange := d.Max - d.Min
	return &model.StatsSummary{
		Count:             d.Count,
		Mean:              d.Mean,
		Std:               d.Std,
		Min:               d.Min,
		P25:               d.P25,
		P50:               d.P50,
		P75:               d.P75,
		Max:               d.Max,
		PriceRange:        priceRange,
		IQRRange:          d.P75 - d.P25,
		PercentIncrease:   PercentOf(priceRange, d.Min),
		VolatilityPercent: PercentOf(d.Std, d.Mean),
	}, nil
}
