package store

import (
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
)

type NoteStore struct {
	c     collection[model.Note]
	now   func() time.Time
	newID func() string
}

func (s *NoteStore) All() []model.Note { return s.c.all() }

func (s *NoteStore) Get(id string) (model.Note, bool) { return s.c.get(id) }

// Add puts the new note first.
func (s *NoteStore) Add(in model.NoteInput) (model.Note, error) {
	at := s.now()
	n := model.Note{
		ID:        s.newID(),
		Title:     in.Title,
		Content:   in.Content,
		Subject:   in.Subject,
		CreatedAt: at,
		UpdatedAt: at,
		Pinned:    in.Pinned,
	}
	return n, s.c.prepend(n)
}

func (s *NoteStore) Update(id string, patch model.NotePatch) error {
	return s.c.replace(id, func(n model.Note) model.Note {
		n = patch.Apply(n)
		n.UpdatedAt = s.touch(n)
		return n
	})
}

func (s *NoteStore) Delete(id string) error { return s.c.remove(id) }

func (s *NoteStore) TogglePin(id string) error {
	return s.c.replace(id, func(n model.Note) model.Note {
		n.Pinned = !n.Pinned
		n.UpdatedAt = s.touch(n)
		return n
	})
}

// touch never moves UpdatedAt before CreatedAt, even if the clock does.
func (s *NoteStore) touch(n model.Note) time.Time {
	at := s.now()
	if at.Before(n.CreatedAt) {
		return n.CreatedAt
	}
	return at
}

// Pinned and Unpinned filter in storage order. Pinning never reorders.
func (s *NoteStore) Pinned() []model.Note {
	return s.c.filter(func(n model.Note) bool { return n.Pinned })
}

func (s *NoteStore) Unpinned() []model.Note {
	return s.c.filter(func(n model.Note) bool { return !n.Pinned })
}

func (s *NoteStore) BySubject(name string) []model.Note {
	return s.c.filter(func(n model.Note) bool { return n.Subject == name })
}
