package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log"

	"StockFetcher/internal/calculator"
	"StockFetcher/internal/collector"
	"StockFetcher/internal/model"
	"StockFetcher/internal/report"
	"StockFetcher/internal/store"
)

// PreviewRows is how many leading rows are echoed after a fetch.
const PreviewRows = 5

// ErrNoData means the fetch produced nothing to summarize or persist.
var ErrNoData = errors.New("no data fetched")

// Target names what one run fetches.
type Target struct {
	Ticker   string
	Period   model.Period
	Interval model.Interval
}

// Persister writes a fetched table somewhere durable.
type Persister interface {
	Persist(table *model.HistoricalTable, ticker string) (*store.Result, error)
}

// Pipeline runs profile -> fetch -> summarize -> persist for a single target.
type Pipeline struct {
	Client    collector.QuoteClient
	Persister Persister
	Target    Target
	Out       io.Writer
}

// New creates a new Pipeline.
func New(client collector.QuoteClient, persister Persister, target Target, out io.Writer) *Pipeline {
	return &Pipeline{Client: client, Persister: persister, Target: target, Out: out}
}

// Run executes one pass. It returns ErrNoData when the fetch came back empty or failed,
// in which case nothing is summarized or written.
func (p *Pipeline) Run() error {
	log.Printf("[INFO] running %s %s/%s via %s", p.Target.Ticker, p.Target.Period, p.Target.Interval, p.Client.Name())
	p.print(report.FormatBanner())

	col := collector.NewCollector(p.Client, p.Target.Ticker, p.Out)
	p.print(report.FormatProfile(p.Target.Ticker, col.Profile()))

	table, ok := col.Fetch(p.Target.Period, p.Target.Interval)
	if !ok {
		p.print("\n" + report.FailureMarker + "\n")
		return ErrNoData
	}

	p.print(report.FormatPreview(table, PreviewRows))

	summary, err := calculator.Summarize(table)
	if err != nil {
		p.print("\n" + report.FailureMarker + "\n")
		return fmt.Errorf("summarize: %w", err)
	}
	p.print(report.FormatStatistics(summary))
	p.print(report.FormatStory(p.Target.Ticker, summary))

	if table.Interval == model.Interval1d {
		if trend, err := calculator.Trend(table); err != nil {
			log.Printf("[WARN] trend snapshot: %v", err)
		} else {
			p.print(report.FormatTrend(trend))
		}
	}

	p.print("\n")
	res, err := p.Persister.Persist(table, p.Target.Ticker)
	if err != nil {
		log.Printf("[ERROR] persist %s: %v", p.Target.Ticker, err)
		p.print(fmt.Sprintf("Could not save data: %v\n", err))
		p.print("\n" + report.FailureMarker + "\n")
		return fmt.Errorf("persist: %w", err)
	}
	p.print(report.FormatSaved(res))

	p.print("\n" + report.SuccessMarker + "\n")
	return nil
}

func (p *Pipeline) print(s string) {
	if _, err := io.WriteString(p.Out, s); err != nil {
		log.Printf("[ERROR] write output: %v", err)
	}
}
