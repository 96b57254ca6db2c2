package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"StockFetcher/internal/collector"
	"StockFetcher/internal/model"
	"StockFetcher/internal/store"
)

func TestFormatProfile_Full(t *testing.T) {
	out := FormatProfile("JPM", collector.ProfileResult{Profile: &model.Profile{
		Name:      "JPMorgan Chase & Co.",
		Sector:    "Financial Services",
		Industry:  "Banks - Diversified",
		MarketCap: 570123456789,
		Currency:  "USD",
	}})
	assert.Contains(t, out, "--- Stock Information for JPM ---")
	assert.Contains(t, out, "Company: JPMorgan Chase & Co.")
	assert.Contains(t, out, "Market Cap: $570,123,456,789")
	assert.Contains(t, out, "Currency: USD")
}

func TestFormatProfile_MissingFields(t *testing.T) {
	out := FormatProfile("XYZ", collector.ProfileResult{Profile: &model.Profile{}})
	assert.Contains(t, out, "Company: N/A")
	assert.Contains(t, out, "Sector: N/A")
	assert.Contains(t, out, "Industry: N/A")
	assert.Contains(t, out, "Market Cap: $0")
	assert.Contains(t, out, "Currency: N/A")
}

func TestFormatProfile_Warning(t *testing.T) {
	out := FormatProfile("XYZ", collector.ProfileResult{Warning: errors.New("status 401")})
	assert.Equal(t, "Could not fetch stock info: status 401\n", out)
}

func TestFormatPreview_LimitsRows(t *testing.T) {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	table := &model.HistoricalTable{}
	for i := 0; i < 8; i++ {
		table.Rows = append(table.Rows, model.OHLCV{Time: start.AddDate(0, 0, i), Close: 100, Volume: 5})
	}
	out := FormatPreview(table, 5)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// title, header, five rows
	assert.Len(t, lines, 7)
	assert.Contains(t, lines[2], "2024-01-02 00:00:00+00:00")
	assert.NotContains(t, out, "2024-01-07")
}

func TestFormatStory_Defined(t *testing.T) {
	s := &model.StatsSummary{
		Count: 252, Mean: 175, Std: 12, Min: 150, P25: 165, P50: 175, P75: 185, Max: 200,
		PriceRange: 50, IQRRange: 20,
		PercentIncrease:   model.Metric{Value: 33.333, Defined: true},
		VolatilityPercent: model.Metric{Value: 6.857, Defined: true},
	}
	out := FormatStory("JPM", s)
	assert.Contains(t, out, "1. JPM averaged $175")
	assert.Contains(t, out, "that's a $50 spread (about 33% increase from low to high!)")
	assert.Contains(t, out, "between $165 and $185")
	assert.Contains(t, out, "varied by about 7% from average")
}

func TestFormatStory_UndefinedRatios(t *testing.T) {
	s := &model.StatsSummary{Count: 3, PriceRange: 0}
	out := FormatStory("ZERO", s)
	assert.Contains(t, out, "percent increase undefined")
	assert.Contains(t, out, "relative volatility is N/A")
	assert.NotContains(t, out, "NaN")
	assert.NotContains(t, out, "Inf")
}

func TestFormatStatistics(t *testing.T) {
	out := FormatStatistics(&model.StatsSummary{Count: 3, Mean: 2, Std: 1, Min: 1, P25: 1.5, P50: 2, P75: 2.5, Max: 3})
	assert.Contains(t, out, "count: 3.000000")
	assert.Contains(t, out, "across all 3 days")
	assert.Contains(t, out, "25%: 1.500000 (First Quartile)")
	assert.Contains(t, out, "closed at or below $2.50.")
}

func TestFormatTrend(t *testing.T) {
	out := FormatTrend(&model.TrendSnapshot{
		LastClose: 101, SMA20: 100, SMA20OK: true, RSI14: 55.5, RSI14OK: true,
		High52w: 110, Low52w: 90, Position52w: 0.55, Range52wOK: true,
	})
	assert.Contains(t, out, "SMA20: 100.00 | SMA50: N/A (not enough data) | SMA200: N/A (not enough data)")
	assert.Contains(t, out, "RSI(14): 55.50")
	assert.Contains(t, out, "52-week range: 90.00 - 110.00 (position 55%)")
}

func TestFormatSaved(t *testing.T) {
	out := FormatSaved(&store.Result{Path: "data/JPM_20240614.csv", Bytes: 2048})
	assert.Equal(t, "Data saved to: data/JPM_20240614.csv\nFile size: 2.00 KB\n", out)
}
