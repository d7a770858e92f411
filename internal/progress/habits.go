package progress

import (
	"sort"
	"time"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
)

type Day struct {
	Date time.Time
	Progress
}

// HabitDays reports habit completion for each of the last days local days
// ending today, oldest first.
func HabitDays(habits []model.Habit, now time.Time, days int) []Day {
	if days <= 0 {
		return nil
	}
	today := calendar.StartOfDay(now)
	out := make([]Day, days)
	for i := range out {
		out[i].Date = today.AddDate(0, 0, i-days+1)
	}
	for _, h := range habits {
		for i := range out {
			if calendar.SameDay(out[i].Date, h.Date) {
				out[i].Total++
				if h.Completed {
					out[i].Completed++
				}
				break
			}
		}
	}
	return out
}

// AverageRate averages the per-day rates of days that had habits.
func AverageRate(days []Day) float64 {
	var sum float64
	n := 0
	for _, d := range days {
		if d.Total == 0 {
			continue
		}
		sum += d.Rate()
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// HabitStreak is one habit name tracked across its daily records.
type HabitStreak struct {
	Name   string
	Type   model.HabitType
	Days   int
	Done   int
	Streak int
}

// ByHabit groups daily habit records by name. Streak counts consecutive
// completed days ending today, or yesterday when today is still open.
func ByHabit(habits []model.Habit, now time.Time) []HabitStreak {
	byName := make(map[string][]model.Habit)
	order := make([]string, 0)
	for _, h := range habits {
		if _, ok := byName[h.Name]; !ok {
			order = append(order, h.Name)
		}
		byName[h.Name] = append(byName[h.Name], h)
	}
	out := make([]HabitStreak, 0, len(order))
	for _, name := range order {
		records := byName[name]
		hs := HabitStreak{Name: name, Type: records[0].Type, Days: len(records)}
		done := make(map[string]bool, len(records))
		for _, h := range records {
			if h.Completed {
				hs.Done++
				done[dayKey(h.Date.In(now.Location()))] = true
			}
		}
		day := calendar.StartOfDay(now)
		if !done[dayKey(day)] {
			day = day.AddDate(0, 0, -1)
		}
		for done[dayKey(day)] {
			hs.Streak++
			day = day.AddDate(0, 0, -1)
		}
		out = append(out, hs)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Streak > out[j].Streak })
	return out
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
