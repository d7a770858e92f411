package store

import (
	"time"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
)

// DefaultUpcomingDays is the window Upcoming uses on the dashboards.
const DefaultUpcomingDays = 3

type TaskStore struct {
	c     collection[model.Task]
	now   func() time.Time
	newID func() string
}

func (s *TaskStore) All() []model.Task { return s.c.all() }

func (s *TaskStore) Get(id string) (model.Task, bool) { return s.c.get(id) }

// Add appends a task. The returned task is valid even when the error reports
// that it could not be persisted.
func (s *TaskStore) Add(in model.TaskInput) (model.Task, error) {
	t := model.Task{
		ID:          s.newID(),
		Name:        in.Name,
		Subject:     in.Subject,
		DueDate:     in.DueDate,
		Type:        in.Type,
		Priority:    in.Priority,
		Completed:   in.Completed,
		CreatedAt:   s.now(),
		Description: in.Description,
	}
	return t, s.c.add(t)
}

func (s *TaskStore) Update(id string, patch model.TaskPatch) error {
	return s.c.replace(id, patch.Apply)
}

func (s *TaskStore) Delete(id string) error { return s.c.remove(id) }

func (s *TaskStore) ToggleComplete(id string) error {
	return s.c.replace(id, func(t model.Task) model.Task {
		t.Completed = !t.Completed
		return t
	})
}

// Overdue returns open tasks due strictly before now.
func (s *TaskStore) Overdue(now time.Time) []model.Task {
	return s.c.filter(func(t model.Task) bool {
		return !t.Completed && t.DueDate.Before(now)
	})
}

// Upcoming returns open tasks due between now and withinDays days later,
// both ends inclusive.
func (s *TaskStore) Upcoming(now time.Time, withinDays int) []model.Task {
	end := now.AddDate(0, 0, withinDays)
	return s.c.filter(func(t model.Task) bool {
		return !t.Completed && calendar.Within(t.DueDate, now, end)
	})
}

// InWeek returns tasks due in [weekStart, weekStart+7d).
func (s *TaskStore) InWeek(weekStart time.Time) []model.Task {
	end := weekStart.AddDate(0, 0, 7)
	return s.c.filter(func(t model.Task) bool {
		return !t.DueDate.Before(weekStart) && t.DueDate.Before(end)
	})
}

// ByDay returns tasks due on day's local calendar date.
func (s *TaskStore) ByDay(day time.Time) []model.Task {
	return s.c.filter(func(t model.Task) bool {
		return calendar.SameDay(day, t.DueDate)
	})
}

func (s *TaskStore) BySubject(name string) []model.Task {
	return s.c.filter(func(t model.Task) bool { return t.Subject == name })
}

func (s *TaskStore) Completed() []model.Task {
	return s.c.filter(func(t model.Task) bool { return t.Completed })
}
