package collector

import (
	"math"
	"time"

	"StockFetcher/internal/model"
)

// SyntheticClient returns controllable generated data for offline runs and testing.
type SyntheticClient struct {
	Price   float64
	Rows    int // bars per history call; 0 means 252
	Profile *model.Profile
	Now     func() time.Time
}

func (s *SyntheticClient) Name() string { return "synthetic" }

func (s *SyntheticClient) FetchHistory(symbol string, period model.Period, interval model.Interval) (*model.HistoricalTable, error) {
	count := s.Rows
	if count == 0 {
		count = 252
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return &model.HistoricalTable{
		Symbol:    symbol,
		Period:    period,
		Interval:  interval,
		Location:  time.UTC,
		FetchedAt: now(),
		Rows:      generateSyntheticBars(s.Price, count, now().UTC()),
	}, nil
}

func (s *SyntheticClient) FetchProfile(symbol string) (*model.Profile, error) {
	if s.Profile != nil {
		p := *s.Profile
		return &p, nil
	}
	return &model.Profile{Name: symbol + " (synthetic)", Currency: "USD"}, nil
}

// generateSyntheticBars walks back from end over weekdays, oscillating around basePrice.
func generateSyntheticBars(basePrice float64, count int, end time.Time) []model.OHLCV {
	if basePrice <= 0 {
		basePrice = 100
	}
	day := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	days := make([]time.Time, 0, count)
	for len(days) < count {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, day)
		}
		day = day.AddDate(0, 0, -1)
	}

	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001 + 0.02*math.Sin(float64(i)/5))
		p = math.Round(p*100) / 100
		bars[i] = model.OHLCV{
			Time:   days[count-1-i],
			Open:   math.Round(p*0.999*100) / 100,
			High:   math.Round(p*1.005*100) / 100,
			Low:    math.Round(p*0.995*100) / 100,
			Close:  p,
			Volume: 1000000 + int64(i)*100,
		}
	}
	return bars
}
