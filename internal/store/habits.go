package store

import (
	"time"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
)

type HabitStore struct {
	c     collection[model.Habit]
	newID func() string
}

func (s *HabitStore) All() []model.Habit { return s.c.all() }

func (s *HabitStore) Get(id string) (model.Habit, bool) { return s.c.get(id) }

func (s *HabitStore) Add(in model.HabitInput) (model.Habit, error) {
	h := model.Habit{
		ID:        s.newID(),
		Name:      in.Name,
		Type:      in.Type,
		Target:    in.Target,
		Unit:      in.Unit,
		Completed: in.Completed,
		Date:      in.Date,
	}
	return h, s.c.add(h)
}

func (s *HabitStore) Update(id string, patch model.HabitPatch) error {
	return s.c.replace(id, patch.Apply)
}

func (s *HabitStore) Delete(id string) error { return s.c.remove(id) }

func (s *HabitStore) ToggleComplete(id string) error {
	return s.c.replace(id, func(h model.Habit) model.Habit {
		h.Completed = !h.Completed
		return h
	})
}

// ForDay returns the habits recorded on day's local calendar date.
func (s *HabitStore) ForDay(day time.Time) []model.Habit {
	return s.c.filter(func(h model.Habit) bool {
		return calendar.SameDay(day, h.Date)
	})
}
