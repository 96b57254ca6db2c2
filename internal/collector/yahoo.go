package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockFetcher/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -destination=mocks/mock_http_client.go -package=mocks -source=yahoo.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// YahooClient implements QuoteClient using Yahoo Finance public API.
type YahooClient struct {
	baseURL    string
	httpClient HTTPClient
	symbolMap  map[string]string // maps internal symbol to Yahoo ticker
}

// YahooOption is a configuration option for the Yahoo client.
type YahooOption func(*YahooClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) YahooOption {
	return func(c *YahooClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) YahooOption {
	return func(c *YahooClient) {
		c.httpClient = httpClient
	}
}

// WithProxy routes requests through proxyURL. Ignored when proxyURL is empty or unparsable.
func WithProxy(proxyURL string) YahooOption {
	return func(c *YahooClient) {
		if proxyURL == "" {
			return
		}
		u, err := url.Parse(proxyURL)
		if err != nil {
			return
		}
		c.httpClient = &http.Client{
			Timeout:   30 * time.Second,
			Transport: &http.Transport{Proxy: http.ProxyURL(u)},
		}
	}
}

// NewYahooClient creates a new Yahoo Finance client.
func NewYahooClient(options ...YahooOption) *YahooClient {
	c := &YahooClient{
		baseURL:    yahooBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		symbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *YahooClient) Name() string { return "yahoo" }

func (c *YahooClient) yahooSymbol(symbol string) string {
	if mapped, ok := c.symbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from Yahoo Finance chart API.
// Quote values are pointers because Yahoo emits null for missing bars.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency             string `json:"currency"`
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// yahooSummary is the response structure from the quoteSummary API.
type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
				Currency  string `json:"currency"`
				MarketCap struct {
					Raw int64 `json:"raw"`
				} `json:"marketCap"`
			} `json:"price"`
			AssetProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"quoteSummary"`
}

func (c *YahooClient) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// FetchHistory returns the bars for symbol over period at interval.
// A symbol with no bars in range yields an empty table and a nil error.
func (c *YahooClient) FetchHistory(symbol string, period model.Period, interval model.Interval) (*model.HistoricalTable, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s&includePrePost=false",
		c.baseURL, url.PathEscape(c.yahooSymbol(symbol)), url.QueryEscape(string(interval)), url.QueryEscape(string(period)))

	body, err := c.get(u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}

	table := &model.HistoricalTable{
		Symbol:    symbol,
		Period:    period,
		Interval:  interval,
		Location:  time.UTC,
		FetchedAt: time.Now(),
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return table, nil
	}

	result := chart.Chart.Result[0]
	if tz := result.Meta.ExchangeTimezoneName; tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			table.Location = loc
		}
	}
	if len(result.Indicators.Quote) == 0 {
		return table, nil
	}
	quote := result.Indicators.Quote[0]
	n := len(result.Timestamp)
	if len(quote.Open) != n || len(quote.High) != n || len(quote.Low) != n ||
		len(quote.Close) != n || len(quote.Volume) != n {
		return nil, fmt.Errorf("yahoo: data alignment error for %s", symbol)
	}

	seen := make(map[int64]bool, n)
	rows := make([]model.OHLCV, 0, n)
	for i, ts := range result.Timestamp {
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue // null bars (holidays, halts)
		}
		t := time.Unix(ts, 0).In(table.Location)
		if !interval.Intraday() {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, table.Location)
		}
		if seen[t.Unix()] {
			continue
		}
		seen[t.Unix()] = true

		var vol int64
		if quote.Volume[i] != nil && *quote.Volume[i] > 0 {
			vol = int64(*quote.Volume[i])
		}
		rows = append(rows, model.OHLCV{
			Time:   t,
			Open:   *quote.Open[i],
			High:   *quote.High[i],
			Low:    *quote.Low[i],
			Close:  *quote.Close[i],
			Volume: vol,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Time.Before(rows[j].Time) })
	table.Rows = rows
	return table, nil
}

// FetchProfile returns descriptive company metadata for symbol.
func (c *YahooClient) FetchProfile(symbol string) (*model.Profile, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price,assetProfile",
		c.baseURL, url.PathEscape(c.yahooSymbol(symbol)))

	body, err := c.get(u)
	if err != nil {
		return nil, err
	}

	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no profile returned for %s", symbol)
	}

	r := summary.QuoteSummary.Result[0]
	name := r.Price.LongName
	if name == "" {
		name = r.Price.ShortName
	}
	return &model.Profile{
		Name:      name,
		Sector:    r.AssetProfile.Sector,
		Industry:  r.AssetProfile.Industry,
		MarketCap: r.Price.MarketCap.Raw,
		Currency:  r.Price.Currency,
	}, nil
}
