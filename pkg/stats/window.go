package stats

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	MinDays = 1
	MaxDays = 365

	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// ParseDays reads the reporting window length. Empty or malformed input gives def;
// the result is clamped to [MinDays, MaxDays].
func ParseDays(raw string, def int) int {
	days := def
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		days = n
	}
	return clampDays(days)
}

func clampDays(days int) int {
	switch {
	case days < MinDays:
		return MinDays
	case days > MaxDays:
		return MaxDays
	}
	return days
}

// Window is a run of whole UTC days ending with the day of now.
type Window struct {
	Days  int
	Start time.Time
}

func NewWindow(days int, now time.Time) Window {
	days = clampDays(days)
	today := startOfDay(now)
	return Window{Days: days, Start: today.AddDate(0, 0, -(days - 1))}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// fillDays turns sparse per-day counts into one entry per day of the window, oldest first.
func fillDays(w Window, counts map[string]int) []DayCount {
	out := make([]DayCount, 0, w.Days)
	for i := 0; i < w.Days; i++ {
		key := w.Start.AddDate(0, 0, i).Format(dayLayout)
		out = append(out, DayCount{Date: key, Count: counts[key]})
	}
	return out
}

// fillMonths returns n calendar months ending with the month of now, oldest first.
func fillMonths(now time.Time, n int, counts map[string]int) []MonthCount {
	first := startOfMonth(now).AddDate(0, -(n - 1), 0)
	out := make([]MonthCount, 0, n)
	for i := 0; i < n; i++ {
		key := first.AddDate(0, i, 0).Format(monthLayout)
		out = append(out, MonthCount{Month: key, Count: counts[key]})
	}
	return out
}

// SafeRate is num/den as a percentage rounded to two decimals; 0 when den is 0.
func SafeRate(num, den int) float64 {
	return SafeRatio(num*100, den)
}

// SafeRatio is num/den rounded to two decimals; 0 when den is 0.
func SafeRatio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return math.Round(float64(num)/float64(den)*100) / 100
}
