package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"StockFetcher/internal/model"
)

// ReadCSV loads a file written by CSVWriter back into a table.
// Symbol, period and interval are not stored in the file and are left empty.
func ReadCSV(path string) (*model.HistoricalTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(Header)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: missing header", path)
	}
	for i, col := range Header {
		if records[0][i] != col {
			return nil, fmt.Errorf("read %s: unexpected column %q at %d", path, records[0][i], i)
		}
	}

	table := &model.HistoricalTable{Location: time.UTC, Rows: make([]model.OHLCV, 0, len(records)-1)}
	for n, rec := range records[1:] {
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", path, n+2, err)
		}
		if n == 0 {
			table.Location = row.Time.Location()
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func parseRecord(rec []string) (model.OHLCV, error) {
	t, err := time.Parse(model.TimeLayout, rec[0])
	if err != nil {
		return model.OHLCV{}, fmt.Errorf("parse date: %w", err)
	}
	prices := make([]float64, 4)
	for i := range prices {
		d, err := decimal.NewFromString(rec[i+1])
		if err != nil {
			return model.OHLCV{}, fmt.Errorf("parse %s: %w", Header[i+1], err)
		}
		prices[i], _ = d.Float64()
	}
	vol, err := strconv.ParseInt(rec[5], 10, 64)
	if err != nil {
		return model.OHLCV{}, fmt.Errorf("parse volume: %w", err)
	}
	return model.OHLCV{Time: t, Open: prices[0], High: prices[1], Low: prices[2], Close: prices[3], Volume: vol}, nil
}
