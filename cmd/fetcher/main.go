package main

import (
	"errors"
	"log"
	"os"

	"StockFetcher/internal/collector"
	"StockFetcher/internal/config"
	"StockFetcher/internal/pipeline"
	"StockFetcher/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init client
	var client collector.QuoteClient
	switch cfg.DataSource.Provider {
	case "synthetic":
		client = &collector.SyntheticClient{Price: cfg.DataSource.Price}
	default:
		opts := []collector.YahooOption{collector.WithProxy(cfg.Proxy)}
		if cfg.DataSource.BaseURL != "" {
			opts = append(opts, collector.WithBaseURL(cfg.DataSource.BaseURL))
		}
		client = collector.NewYahooClient(opts...)
	}
	log.Printf("[INFO] data source: %s", client.Name())

	target := pipeline.Target{
		Ticker:   cfg.Target.Ticker,
		Period:   cfg.Period(),
		Interval: cfg.Interval(),
	}
	p := pipeline.New(client, store.NewCSVWriter(cfg.Output.Folder), target, os.Stdout)

	if err := p.Run(); err != nil {
		if errors.Is(err, pipeline.ErrNoData) {
			log.Printf("[ERROR] %s: %v", target.Ticker, err)
		} else {
			log.Printf("[ERROR] run failed: %v", err)
		}
		os.Exit(1)
	}
}
