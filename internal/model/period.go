package model

import "fmt"

// Period is the total span of history requested.
type Period string

const (
	Period1d  Period = "1d"
	Period5d  Period = "5d"
	Period1mo Period = "1mo"
	Period3mo Period = "3mo"
	Period6mo Period = "6mo"
	Period1y  Period = "1y"
	Period2y  Period = "2y"
	Period5y  Period = "5y"
	PeriodMax Period = "max"
)

var periods = []Period{Period1d, Period5d, Period1mo, Period3mo, Period6mo, Period1y, Period2y, Period5y, PeriodMax}

func (p Period) Valid() bool {
	for _, v := range periods {
		if p == v {
			return true
		}
	}
	return false
}

// ParsePeriod validates s against the supported periods.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !p.Valid() {
		return "", fmt.Errorf("unsupported period %q (want one of %v)", s, periods)
	}
	return p, nil
}

// Interval is the sampling granularity within a period.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval1h  Interval = "1h"
	Interval1d  Interval = "1d"
	Interval1wk Interval = "1wk"
	Interval1mo Interval = "1mo"
)

var intervals = []Interval{Interval1m, Interval5m, Interval15m, Interval1h, Interval1d, Interval1wk, Interval1mo}

func (i Interval) Valid() bool {
	for _, v := range intervals {
		if i == v {
			return true
		}
	}
	return false
}

// Intraday reports whether rows carry a time of day.
func (i Interval) Intraday() bool {
	switch i {
	case Interval1m, Interval5m, Interval15m, Interval1h:
		return true
	}
	return false
}

// ParseInterval validates s against the supported intervals.
func ParseInterval(s string) (Interval, error) {
	i := Interval(s)
	if !i.Valid() {
		return "", fmt.Errorf("unsupported interval %q (want one of %v)", s, intervals)
	}
	return i, nil
}
