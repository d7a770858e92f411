package store

import (
	"slices"
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
)

type EventStore struct {
	c     collection[model.AcademicEvent]
	newID func() string
}

func (s *EventStore) All() []model.AcademicEvent { return s.c.all() }

func (s *EventStore) Get(id string) (model.AcademicEvent, bool) { return s.c.get(id) }

func (s *EventStore) Add(in model.EventInput) (model.AcademicEvent, error) {
	e := model.AcademicEvent{
		ID:          s.newID(),
		Title:       in.Title,
		Date:        in.Date,
		Type:        in.Type,
		Subject:     in.Subject,
		Description: in.Description,
	}
	return e, s.c.add(e)
}

func (s *EventStore) Update(id string, patch model.EventPatch) error {
	return s.c.replace(id, patch.Apply)
}

func (s *EventStore) Delete(id string) error { return s.c.remove(id) }

// InMonth returns events in month's calendar month, read in month's location.
func (s *EventStore) InMonth(month time.Time) []model.AcademicEvent {
	y, m := month.Year(), month.Month()
	return s.c.filter(func(e model.AcademicEvent) bool {
		d := e.Date.In(month.Location())
		return d.Year() == y && d.Month() == m
	})
}

// Upcoming returns up to limit events dated at or after now, soonest first.
// A non-positive limit returns them all.
func (s *EventStore) Upcoming(now time.Time, limit int) []model.AcademicEvent {
	out := s.c.filter(func(e model.AcademicEvent) bool { return !e.Date.Before(now) })
	slices.SortStableFunc(out, func(a, b model.AcademicEvent) int { return a.Date.Compare(b.Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
