package collector_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"StockFetcher/internal/collector"
	"StockFetcher/internal/collector/mocks"
	"StockFetcher/internal/model"
)

// 2024-01-02 14:30 UTC, 2024-01-03 14:30 UTC, 2024-01-04 14:30 UTC
const chartJSON = `{"chart":{"result":[{
  "meta":{"currency":"USD","exchangeTimezoneName":"America/New_York"},
  "timestamp":[1704205800,1704292200,1704378600],
  "indicators":{"quote":[{
    "open":[170.0,null,172.5],
    "high":[171.5,null,174.0],
    "low":[169.0,null,171.0],
    "close":[171.0,null,173.25],
    "volume":[1200000,null,900000]
  }]}}],"error":null}}`

const summaryJSON = `{"quoteSummary":{"result":[{
  "price":{"longName":"JPMorgan Chase & Co.","currency":"USD","marketCap":{"raw":570000000000,"fmt":"570B"}},
  "assetProfile":{"sector":"Financial Services","industry":"Banks - Diversified"}}],"error":null}}`

func newServer(t *testing.T, handler http.HandlerFunc) *collector.YahooClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return collector.NewYahooClient(collector.WithBaseURL(srv.URL))
}

func TestYahooClient_FetchHistory(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery string
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		fmt.Fprint(w, chartJSON)
	})

	table, err := client.FetchHistory("JPM", model.Period1y, model.Interval1d)
	require.NoError(t, err)
	require.Equal(t, "/v8/finance/chart/JPM", gotPath)
	require.Contains(t, gotQuery, "range=1y")
	require.Contains(t, gotQuery, "interval=1d")

	// Null bar skipped.
	require.Equal(t, 2, table.Len())
	require.Equal(t, "JPM", table.Symbol)
	require.Equal(t, "America/New_York", table.Loc().String())

	first := table.First()
	require.Equal(t, "2024-01-02 00:00:00-05:00", first.Time.Format(model.TimeLayout))
	require.Equal(t, 171.0, first.Close)
	require.Equal(t, int64(1200000), first.Volume)
	require.Equal(t, 173.25, table.Last().Close)
}

func TestYahooClient_FetchHistory_IntradayKeepsTime(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartJSON)
	})

	table, err := client.FetchHistory("JPM", model.Period5d, model.Interval1h)
	require.NoError(t, err)
	require.Equal(t, "2024-01-02 09:30:00-05:00", table.First().Time.Format(model.TimeLayout))
}

func TestYahooClient_FetchHistory_EmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{},"indicators":{"quote":[{}]}}],"error":null}}`)
	})

	table, err := client.FetchHistory("DELISTED", model.Period1y, model.Interval1d)
	require.NoError(t, err)
	require.True(t, table.Empty())
}

func TestYahooClient_FetchHistory_APIError(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	})

	_, err := client.FetchHistory("NOPE", model.Period1y, model.Interval1d)
	require.ErrorContains(t, err, "symbol may be delisted")
}

func TestYahooClient_FetchHistory_BadStatus(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
	})

	_, err := client.FetchHistory("JPM", model.Period1y, model.Interval1d)
	require.ErrorContains(t, err, "status 429")
}

func TestYahooClient_SymbolMapping(t *testing.T) {
	t.Parallel()

	var gotPath string
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, chartJSON)
	})

	_, err := client.FetchHistory("SPX500", model.Period1mo, model.Interval1d)
	require.NoError(t, err)
	require.Equal(t, "/v8/finance/chart/^GSPC", gotPath)
}

func TestYahooClient_FetchProfile(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/v10/finance/quoteSummary/JPM"))
		assert.Equal(t, "price,assetProfile", r.URL.Query().Get("modules"))
		fmt.Fprint(w, summaryJSON)
	})

	p, err := client.FetchProfile("JPM")
	require.NoError(t, err)
	require.Equal(t, &model.Profile{
		Name:      "JPMorgan Chase & Co.",
		Sector:    "Financial Services",
		Industry:  "Banks - Diversified",
		MarketCap: 570000000000,
		Currency:  "USD",
	}, p)
}

func TestYahooClient_FetchProfile_TransportError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "Mozilla/5.0", req.Header.Get("User-Agent"))
			return nil, errors.New("connection refused")
		}).
		Times(1)

	client := collector.NewYahooClient(collector.WithHTTPClient(httpClient))
	_, err := client.FetchProfile("JPM")
	require.ErrorContains(t, err, "connection refused")
}

func TestSyntheticClient_WeekdaysOnly(t *testing.T) {
	t.Parallel()

	end := time.Date(2024, 6, 14, 18, 0, 0, 0, time.UTC) // Friday
	client := &collector.SyntheticClient{Price: 150, Rows: 20, Now: func() time.Time { return end }}

	table, err := client.FetchHistory("JPM", model.Period1mo, model.Interval1d)
	require.NoError(t, err)
	require.Equal(t, 20, table.Len())
	require.Equal(t, "2024-06-14", table.Last().Time.Format("2006-01-02"))
	for i, r := range table.Rows {
		require.NotEqual(t, time.Saturday, r.Time.Weekday())
		require.NotEqual(t, time.Sunday, r.Time.Weekday())
		require.Greater(t, r.Close, 0.0)
		if i > 0 {
			require.True(t, r.Time.After(table.Rows[i-1].Time))
		}
	}
}
