package collector

import (
	"strings"
	"time"

	"github.com/scmhub/calendar"

	"StockFetcher/internal/model"
)

// micSuffixes maps Yahoo ticker suffixes to ISO 10383 market identifiers.
var micSuffixes = map[string]string{
	".L":  "xlon",
	".PA": "xpar",
	".DE": "xfra",
	".AS": "xams",
	".MI": "xmil",
	".MC": "xmad",
	".TO": "xtse",
	".T":  "xtks",
	".HK": "xhkg",
	".AX": "xasx",
	".SS": "xshg",
	".SZ": "xshe",
}

// MICForSymbol picks the exchange calendar for a ticker, defaulting to NYSE.
func MICForSymbol(symbol string) string {
	if i := strings.LastIndex(symbol, "."); i > 0 {
		if mic, ok := micSuffixes[strings.ToUpper(symbol[i:])]; ok {
			return mic
		}
	}
	return "xnys"
}

// Coverage compares fetched daily rows against the exchange's business days.
type Coverage struct {
	MIC      string
	Rows     int
	Expected int
}

// SessionCoverage counts business days between the first and last row inclusive.
// ok is false for non-daily tables or when no calendar is available.
func SessionCoverage(table *model.HistoricalTable) (cov Coverage, ok bool) {
	if table.Empty() || table.Interval != model.Interval1d {
		return Coverage{}, false
	}
	mic := MICForSymbol(table.Symbol)
	cal := calendar.GetCalendar(mic)
	if cal == nil {
		return Coverage{}, false
	}

	loc := cal.Loc
	if loc == nil {
		loc = time.UTC
	}
	first, last := table.First().Time, table.Last().Time
	day := time.Date(first.Year(), first.Month(), first.Day(), 12, 0, 0, 0, loc)
	end := time.Date(last.Year(), last.Month(), last.Day(), 12, 0, 0, 0, loc)

	expected := 0
	for !day.After(end) {
		if cal.IsBusinessDay(day) {
			expected++
		}
		day = day.AddDate(0, 0, 1)
	}
	return Coverage{MIC: strings.ToUpper(mic), Rows: table.Len(), Expected: expected}, true
}
