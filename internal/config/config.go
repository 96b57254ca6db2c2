package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"StockFetcher/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Target struct {
		Ticker   string `yaml:"ticker"`
		Period   string `yaml:"period"`
		Interval string `yaml:"interval"`
	} `yaml:"target"`
	DataSource struct {
		Provider string  `yaml:"provider"` // "yahoo" or "synthetic"
		BaseURL  string  `yaml:"base_url"`
		Price    float64 `yaml:"synthetic_price"`
	} `yaml:"data_source"`
	Output struct {
		Folder string `yaml:"folder"`
	} `yaml:"output"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults reproduce the stock JPM/1y/1d run.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCK_TICKER"); v != "" {
		cfg.Target.Ticker = v
	}
	if v := os.Getenv("STOCK_PERIOD"); v != "" {
		cfg.Target.Period = v
	}
	if v := os.Getenv("STOCK_INTERVAL"); v != "" {
		cfg.Target.Interval = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Folder = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Target.Ticker == "" {
		cfg.Target.Ticker = "JPM"
	}
	cfg.Target.Ticker = strings.ToUpper(strings.TrimSpace(cfg.Target.Ticker))
	if cfg.Target.Period == "" {
		cfg.Target.Period = string(model.Period1y)
	}
	if cfg.Target.Interval == "" {
		cfg.Target.Interval = string(model.Interval1d)
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.DataSource.Price == 0 {
		cfg.DataSource.Price = 175
	}
	if cfg.Output.Folder == "" {
		cfg.Output.Folder = "data"
	}

	return cfg, nil
}

// Validate checks that all fields hold supported values.
func (c *Config) Validate() error {
	if c.Target.Ticker == "" {
		return fmt.Errorf("target.ticker is required")
	}
	if strings.ContainsAny(c.Target.Ticker, `/\ `) {
		return fmt.Errorf("target.ticker %q contains path or space characters", c.Target.Ticker)
	}
	if _, err := model.ParsePeriod(c.Target.Period); err != nil {
		return fmt.Errorf("target.period: %w", err)
	}
	if _, err := model.ParseInterval(c.Target.Interval); err != nil {
		return fmt.Errorf("target.interval: %w", err)
	}
	switch c.DataSource.Provider {
	case "yahoo", "synthetic":
	default:
		return fmt.Errorf("data_source.provider must be yahoo or synthetic, got %q", c.DataSource.Provider)
	}
	if c.DataSource.Price < 0 {
		return fmt.Errorf("data_source.synthetic_price must not be negative")
	}
	return nil
}

// Period returns the validated period. Call after Validate.
func (c *Config) Period() model.Period { return model.Period(c.Target.Period) }

// Interval returns the validated interval. Call after Validate.
func (c *Config) Interval() model.Interval { return model.Interval(c.Target.Interval) }
