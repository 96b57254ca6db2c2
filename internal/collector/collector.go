package collector

import (
	"fmt"
	"io"
	"log"

	"StockFetcher/internal/model"
)

// ProfileResult carries either a profile or the warning explaining its absence.
type ProfileResult struct {
	Profile *model.Profile
	Warning error
}

// Collector fetches and validates data for one symbol, narrating progress to Out.
type Collector struct {
	Client QuoteClient
	Symbol string
	Out    io.Writer
}

// NewCollector creates a new Collector.
func NewCollector(client QuoteClient, symbol string, out io.Writer) *Collector {
	return &Collector{Client: client, Symbol: symbol, Out: out}
}

// Fetch retrieves history and reports its size and range.
// An empty table and a client error both yield (nil, false); callers must stop there.
func (c *Collector) Fetch(period model.Period, interval model.Interval) (*model.HistoricalTable, bool) {
	fmt.Fprintf(c.Out, "Fetching data for %s...\n", c.Symbol)

	table, err := c.Client.FetchHistory(c.Symbol, period, interval)
	if err != nil {
		log.Printf("[ERROR] fetch history %s via %s: %v", c.Symbol, c.Client.Name(), err)
		fmt.Fprintf(c.Out, "Error fetching data: %v\n", err)
		return nil, false
	}
	if table.Empty() {
		fmt.Fprintf(c.Out, "No data found for %s\n", c.Symbol)
		return nil, false
	}

	loc := table.Loc()
	fmt.Fprintf(c.Out, "Successfully fetched %d rows of data\n", table.Len())
	fmt.Fprintf(c.Out, "Date range: %s to %s\n",
		table.First().Time.In(loc).Format(model.TimeLayout),
		table.Last().Time.In(loc).Format(model.TimeLayout))

	if cov, ok := SessionCoverage(table); ok {
		fmt.Fprintf(c.Out, "Trading sessions: %d of %d expected (%s)\n", cov.Rows, cov.Expected, cov.MIC)
	}
	return table, true
}

// Profile fetches company metadata. Failures come back as a warning, never as a hard error.
func (c *Collector) Profile() ProfileResult {
	p, err := c.Client.FetchProfile(c.Symbol)
	if err != nil {
		log.Printf("[WARN] fetch profile %s: %v", c.Symbol, err)
		return ProfileResult{Warning: err}
	}
	if p == nil {
		p = &model.Profile{}
	}
	return ProfileResult{Profile: p}
}
