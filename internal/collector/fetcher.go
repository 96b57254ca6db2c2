package collector

import "StockFetcher/internal/model"

// QuoteClient defines the interface for fetching market data.
//
//go:generate mockgen -destination=mocks/mock_quote_client.go -package=mocks -source=fetcher.go QuoteClient
type QuoteClient interface {
	FetchHistory(symbol string, period model.Period, interval model.Interval) (*model.HistoricalTable, error)
	FetchProfile(symbol string) (*model.Profile, error)
	Name() string
}
