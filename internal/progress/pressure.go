package progress

import (
	"time"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
)

const maxPressure = 10

// Pressure scores the open backlog from 0 to 10.
type Pressure struct {
	Score int
	Label string
}

// BacklogPressure weighs overdue tasks at two points, plus one when the
// overdue task is high priority, and tasks due today at one point.
func BacklogPressure(tasks []model.Task, now time.Time) Pressure {
	score := 0
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		switch calendar.Classify(t.DueDate, false, now).Level {
		case calendar.LevelOverdue:
			score += 2
			if t.Priority == model.PriorityHigh {
				score++
			}
		case calendar.LevelToday:
			score++
		}
	}
	if score > maxPressure {
		score = maxPressure
	}
	out := Pressure{Score: score, Label: "low"}
	switch {
	case score >= 7:
		out.Label = "high"
	case score >= 4:
		out.Label = "medium"
	}
	return out
}
