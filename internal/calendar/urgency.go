package calendar

import (
	"fmt"
	"time"
)

// SoonDays is the widest distance still labelled as due soon.
const SoonDays = 3

type Level int

const (
	LevelNone Level = iota
	LevelSoon
	LevelTomorrow
	LevelToday
	LevelOverdue
)

func (l Level) String() string {
	switch l {
	case LevelOverdue:
		return "overdue"
	case LevelToday:
		return "today"
	case LevelTomorrow:
		return "tomorrow"
	case LevelSoon:
		return "soon"
	default:
		return "none"
	}
}

type Urgency struct {
	Level Level
	// Days is set for LevelSoon.
	Days int
}

func (u Urgency) Label() string {
	switch u.Level {
	case LevelOverdue:
		return "Vencida"
	case LevelToday:
		return "Hoy"
	case LevelTomorrow:
		return "Mañana"
	case LevelSoon:
		return fmt.Sprintf("%d días", u.Days)
	default:
		return ""
	}
}

// Classify applies the rules in order, first match wins. Completion only
// suppresses the overdue level.
func Classify(due time.Time, completed bool, now time.Time) Urgency {
	switch {
	case !completed && due.Before(now):
		return Urgency{Level: LevelOverdue}
	case IsToday(due, now):
		return Urgency{Level: LevelToday}
	case IsTomorrow(due, now):
		return Urgency{Level: LevelTomorrow}
	}
	if d := DaysUntil(due, now); d > 0 && d <= SoonDays {
		return Urgency{Level: LevelSoon, Days: d}
	}
	return Urgency{Level: LevelNone}
}
