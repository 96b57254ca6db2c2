package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"StockFetcher/internal/model"
)

// DefaultFolder is where CSV files land when no folder is configured.
const DefaultFolder = "data"

// ErrEmptyTable is returned when asked to persist a table with no rows.
var ErrEmptyTable = errors.New("no data to save")

// Header is the column order written to every file.
var Header = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// Result describes a written file.
type Result struct {
	Path  string
	Bytes int64
}

// KiB returns the file size in kibibytes.
func (r *Result) KiB() float64 { return float64(r.Bytes) / 1024 }

// CSVWriter persists historical tables as {Folder}/{TICKER}_{YYYYMMDD}.csv.
type CSVWriter struct {
	Folder string
	Now    func() time.Time
}

// NewCSVWriter creates a writer rooted at folder, using the local clock for file dates.
func NewCSVWriter(folder string) *CSVWriter {
	if folder == "" {
		folder = DefaultFolder
	}
	return &CSVWriter{Folder: folder, Now: time.Now}
}

// PathFor returns the file a same-day run for ticker writes to.
func (w *CSVWriter) PathFor(ticker string) string {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	return filepath.Join(w.Folder, fmt.Sprintf("%s_%s.csv", ticker, now().Format("20060102")))
}

// Persist writes table to its dated file, replacing any earlier file from the same day.
func (w *CSVWriter) Persist(table *model.HistoricalTable, ticker string) (*Result, error) {
	if table.Empty() {
		return nil, ErrEmptyTable
	}
	if err := os.MkdirAll(w.Folder, 0o755); err != nil {
		return nil, fmt.Errorf("create folder %s: %w", w.Folder, err)
	}

	path := w.PathFor(ticker)
	if err := writeCSV(path, table); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &Result{Path: path, Bytes: info.Size()}, nil
}

func writeCSV(path string, table *model.HistoricalTable) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	cw := csv.NewWriter(f)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	loc := table.Loc()
	for _, r := range table.Rows {
		record := []string{
			r.Time.In(loc).Format(model.TimeLayout),
			formatPrice(r.Open),
			formatPrice(r.High),
			formatPrice(r.Low),
			formatPrice(r.Close),
			strconv.FormatInt(r.Volume, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", record[0], err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatPrice(v float64) string {
	return decimal.NewFromFloat(v).String()
}
