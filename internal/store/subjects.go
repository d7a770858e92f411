package store

import (
	"github.com/sandeepkv93/studyd/internal/model"
)

type SubjectStore struct {
	c     collection[model.Subject]
	newID func() string
}

func (s *SubjectStore) All() []model.Subject { return s.c.all() }

func (s *SubjectStore) Get(id string) (model.Subject, bool) { return s.c.get(id) }

// ByName finds the first subject with the given name. Tasks, notes and events
// refer to subjects by name only.
func (s *SubjectStore) ByName(name string) (model.Subject, bool) {
	for _, sub := range s.c.slot.Get() {
		if sub.Name == name {
			return sub, true
		}
	}
	return model.Subject{}, false
}

func (s *SubjectStore) Add(in model.SubjectInput) (model.Subject, error) {
	sub := model.Subject{
		ID:        s.newID(),
		Name:      in.Name,
		Color:     in.Color,
		Code:      in.Code,
		Professor: in.Professor,
		Credits:   in.Credits,
		Classroom: in.Classroom,
	}
	return sub, s.c.add(sub)
}

func (s *SubjectStore) Update(id string, patch model.SubjectPatch) error {
	return s.c.replace(id, patch.Apply)
}

// Delete removes the subject only. Entities naming it keep the name.
func (s *SubjectStore) Delete(id string) error { return s.c.remove(id) }
