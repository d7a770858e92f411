// Package calendar holds the date arithmetic behind the planner views.
// Calendar fields are always read in the location of the time passed in.
package calendar

import (
	"math"
	"time"
)

const lastMillisecond = 999 * int(time.Millisecond)

// WeekStart returns Monday 00:00 of the week containing t. Sunday belongs to
// the week that started six days earlier.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	offset := 1
	if weekday == 0 {
		offset = -6
	}
	return time.Date(t.Year(), t.Month(), t.Day()-weekday+offset, 0, 0, 0, 0, t.Location())
}

// WeekEnd returns the last millisecond of the Sunday ending t's week.
func WeekEnd(t time.Time) time.Time {
	return EndOfDay(WeekStart(t).AddDate(0, 0, 6))
}

// WeekDays returns the seven days starting at weekStart.
func WeekDays(weekStart time.Time) [7]time.Time {
	var out [7]time.Time
	for i := range out {
		out[i] = weekStart.AddDate(0, 0, i)
	}
	return out
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, lastMillisecond, t.Location())
}

func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func MonthEnd(t time.Time) time.Time {
	return EndOfDay(MonthStart(t).AddDate(0, 1, -1))
}

// MonthGrid returns the Monday-first weeks covering t's month. Days outside
// the month are included to fill the first and last rows.
func MonthGrid(t time.Time) [][7]time.Time {
	first := WeekStart(MonthStart(t))
	last := MonthEnd(t)
	var out [][7]time.Time
	for ws := first; !ws.After(last); ws = ws.AddDate(0, 0, 7) {
		out = append(out, WeekDays(ws))
	}
	return out
}

// Within reports whether start <= t <= end.
func Within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// SameDay compares calendar dates, reading b in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func IsToday(t, now time.Time) bool {
	return SameDay(now, t)
}

func IsTomorrow(t, now time.Time) bool {
	return SameDay(now.AddDate(0, 0, 1), t)
}

// DaysUntil rounds the distance to t up to whole days. It is negative or zero
// once t has passed.
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}
