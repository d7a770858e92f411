// Package progress computes completion statistics over tasks and habits.
// Every function is pure; callers pass the collection and the current time.
package progress

import (
	"math"
	"time"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
)

// CompletionGoal is the completion percentage the progress view aims for.
const CompletionGoal = 75

type Progress struct {
	Completed int
	Total     int
}

// Rate is the completed share in [0, 1], zero for an empty set.
func (p Progress) Rate() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

func (p Progress) Percent() int {
	return int(math.Round(p.Rate() * 100))
}

func (p Progress) Pending() int {
	return p.Total - p.Completed
}

func Of(tasks []model.Task) Progress {
	out := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			out.Completed++
		}
	}
	return out
}

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodAll:
		return true
	default:
		return false
	}
}

// Next cycles week, month, all.
func (p Period) Next() Period {
	switch p {
	case PeriodWeek:
		return PeriodMonth
	case PeriodMonth:
		return PeriodAll
	default:
		return PeriodWeek
	}
}

// InPeriod keeps tasks due inside now's week or month. PeriodAll and unknown
// periods keep everything.
func InPeriod(tasks []model.Task, period Period, now time.Time) []model.Task {
	var start, end time.Time
	switch period {
	case PeriodWeek:
		start, end = calendar.WeekStart(now), calendar.WeekEnd(now)
	case PeriodMonth:
		start, end = calendar.MonthStart(now), calendar.MonthEnd(now)
	default:
		return append([]model.Task(nil), tasks...)
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if calendar.Within(t.DueDate.In(now.Location()), start, end) {
			out = append(out, t)
		}
	}
	return out
}

// GoalGap is how many percentage points rate (0..1) is below CompletionGoal.
// It is zero once the goal is met.
func GoalGap(rate float64) int {
	gap := CompletionGoal - int(math.Round(rate*100))
	if gap < 0 {
		return 0
	}
	return gap
}
