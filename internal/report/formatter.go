package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"StockFetcher/internal/collector"
	"StockFetcher/internal/model"
	"StockFetcher/internal/store"
)

const (
	SuccessMarker = "✅ Data fetch complete!"
	FailureMarker = "❌ Failed to fetch data"
)

func rule(n int) string { return strings.Repeat("=", n) }

// FormatBanner formats the run header.
func FormatBanner() string {
	return fmt.Sprintf("%s\nStock Data Fetcher\n%s\n", rule(50), rule(50))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// FormatProfile formats company metadata, or the warning explaining why it is missing.
func FormatProfile(symbol string, res collector.ProfileResult) string {
	if res.Warning != nil {
		return fmt.Sprintf("Could not fetch stock info: %v\n", res.Warning)
	}
	p := res.Profile
	if p == nil {
		p = &model.Profile{}
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n--- Stock Information for %s ---\n", symbol))
	b.WriteString(fmt.Sprintf("Company: %s\n", orNA(p.Name)))
	b.WriteString(fmt.Sprintf("Sector: %s\n", orNA(p.Sector)))
	b.WriteString(fmt.Sprintf("Industry: %s\n", orNA(p.Industry)))
	b.WriteString(fmt.Sprintf("Market Cap: $%s\n", humanize.Comma(p.MarketCap)))
	b.WriteString(fmt.Sprintf("Currency: %s\n", orNA(p.Currency)))
	return b.String()
}

// FormatPreview formats the first n rows as an aligned table.
func FormatPreview(table *model.HistoricalTable, n int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\nFirst %d rows of data:\n", n))
	b.WriteString(fmt.Sprintf("%-25s %12s %12s %12s %12s %12s\n", "Date", "Open", "High", "Low", "Close", "Volume"))
	loc := table.Loc()
	for _, r := range table.Head(n) {
		b.WriteString(fmt.Sprintf("%-25s %12.6f %12.6f %12.6f %12.6f %12d\n",
			r.Time.In(loc).Format(model.TimeLayout), r.Open, r.High, r.Low, r.Close, r.Volume))
	}
	return b.String()
}

// FormatStatistics formats the describe() block with a plain-language note per line.
func FormatStatistics(s *model.StatsSummary) string {
	var b strings.Builder
	b.WriteString("\nBasic Statistics:\n")

	b.WriteString(fmt.Sprintf("\ncount: %.6f\n", s.Count))
	b.WriteString("What it means: The number of data points (trading days) in your dataset.\n")

	b.WriteString(fmt.Sprintf("\nmean: %.6f\n", s.Mean))
	b.WriteString(fmt.Sprintf("What it means: The average closing price across all %d days.\n", int(s.Count)))

	b.WriteString(fmt.Sprintf("\nstd: %.6f (Standard Deviation)\n", s.Std))
	b.WriteString("What it means: How much the stock price varies or spreads out from the average.\n")

	b.WriteString(fmt.Sprintf("\nmin: %.6f\n", s.Min))
	b.WriteString("What it means: The lowest closing price in the dataset.\n")

	b.WriteString(fmt.Sprintf("\n25%%: %.6f (First Quartile)\n", s.P25))
	b.WriteString(fmt.Sprintf("What it means: 25%% of the days, the stock closed at or below $%.2f.\n", s.P25))

	b.WriteString(fmt.Sprintf("\n50%%: %.6f (Median)\n", s.P50))
	b.WriteString("What it means: The middle value. Half the days were above this price, half were below.\n")

	b.WriteString(fmt.Sprintf("\n75%%: %.6f (Third Quartile)\n", s.P75))
	b.WriteString(fmt.Sprintf("What it means: 75%% of the days, the stock closed at or below $%.2f.\n", s.P75))

	b.WriteString(fmt.Sprintf("\nmax: %.6f\n", s.Max))
	b.WriteString("What it means: The highest closing price in the dataset.\n")
	return b.String()
}

// percent renders a whole-number percentage, or N/A when the ratio is undefined.
func percent(m model.Metric) string {
	if !m.Defined {
		return "N/A"
	}
	return fmt.Sprintf("%.0f%%", m.Value)
}

// FormatStory ties the statistics together in four sentences.
func FormatStory(symbol string, s *model.StatsSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n%s\nPutting It All Together - The Story\n%s\n", rule(60), rule(60)))
	b.WriteString("These stats tell us:\n")
	b.WriteString(fmt.Sprintf("1. %s averaged $%.0f over the period\n", symbol, s.Mean))

	swing := "percent increase undefined: the low was $0"
	if s.PercentIncrease.Defined {
		swing = fmt.Sprintf("about %s increase from low to high!", percent(s.PercentIncrease))
	}
	b.WriteString(fmt.Sprintf("2. Prices ranged from $%.0f to $%.0f - that's a $%.0f spread (%s)\n",
		s.Min, s.Max, s.PriceRange, swing))
	b.WriteString(fmt.Sprintf("3. Most days (50%% of them) the stock was between $%.0f and $%.0f (the 25%%-75%% range, a $%.0f band)\n",
		s.P25, s.P75, s.IQRRange))

	if s.VolatilityPercent.Defined {
		b.WriteString(fmt.Sprintf("4. Standard deviation of $%.0f means daily prices typically varied by about %s from average\n",
			s.Std, percent(s.VolatilityPercent)))
	} else {
		b.WriteString(fmt.Sprintf("4. Standard deviation of $%.0f; relative volatility is N/A because the average price is $0\n", s.Std))
	}
	return b.String()
}

func optional(v float64, ok bool) string {
	if !ok || math.IsNaN(v) {
		return "N/A (not enough data)"
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatTrend formats moving averages, RSI and the 52-week position.
func FormatTrend(t *model.TrendSnapshot) string {
	var b strings.Builder
	b.WriteString("\nTrend Snapshot:\n")
	b.WriteString(fmt.Sprintf("Last close: %.2f\n", t.LastClose))
	b.WriteString(fmt.Sprintf("SMA20: %s | SMA50: %s | SMA200: %s\n",
		optional(t.SMA20, t.SMA20OK), optional(t.SMA50, t.SMA50OK), optional(t.SMA200, t.SMA200OK)))
	b.WriteString(fmt.Sprintf("RSI(14): %s\n", optional(t.RSI14, t.RSI14OK)))
	if t.Range52wOK {
		b.WriteString(fmt.Sprintf("52-week range: %.2f - %.2f (position %.0f%%)\n", t.Low52w, t.High52w, t.Position52w*100))
	}
	return b.String()
}

// FormatSaved reports where the CSV went and how big it is.
func FormatSaved(r *store.Result) string {
	return fmt.Sprintf("Data saved to: %s\nFile size: %.2f KB\n", r.Path, r.KiB())
}
