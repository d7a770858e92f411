package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sandeepkv93/studyd/internal/codec"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/storage"
)

// Storage keys, one slot per collection.
const (
	KeyTasks    = "university-tasks"
	KeySubjects = "university-subjects"
	KeyNotes    = "university-notes"
	KeyHabits   = "university-habits"
	KeyEvents   = "university-events"
	KeyProfile  = "user-profile"
)

// Keys lists every slot the planner owns.
func Keys() []string {
	return []string{KeyTasks, KeySubjects, KeyNotes, KeyHabits, KeyEvents, KeyProfile}
}

type Options struct {
	Now      func() time.Time
	NewID    func() string
	Logger   *zerolog.Logger
	Location *time.Location
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}

type slotHandle interface {
	Key() string
	Reload()
	Status() storage.SaveStatus
}

// Planner is the single owner of every collection. Build it once and share it.
type Planner struct {
	Tasks    *TaskStore
	Subjects *SubjectStore
	Notes    *NoteStore
	Habits   *HabitStore
	Events   *EventStore
	Profile  *ProfileGate

	backend storage.Backend
	log     zerolog.Logger
	slots   []slotHandle
	now     func() time.Time
}

// Open loads every collection from backend. Slots that are missing or cannot
// be decoded start from their first-run value.
func Open(backend storage.Backend, opts Options) (*Planner, error) {
	if backend == nil {
		return nil, errors.New("store: nil backend")
	}
	opts = opts.withDefaults()
	log := opts.Logger.With().Str("component", "store").Logger()
	loc := opts.Location
	// Clock readings land in the same location as decoded dates.
	now := func() time.Time { return opts.Now().In(loc) }

	tasks := storage.NewSlot(backend, KeyTasks, []model.Task{}, codec.Tasks(loc), log)
	subjects := storage.NewSlot(backend, KeySubjects, model.DefaultSubjects(), codec.Subjects(), log)
	notes := storage.NewSlot(backend, KeyNotes, []model.Note{}, codec.Notes(loc), log)
	habits := storage.NewSlot(backend, KeyHabits, []model.Habit{}, codec.Habits(loc), log)
	events := storage.NewSlot(backend, KeyEvents, []model.AcademicEvent{}, codec.Events(loc), log)
	profile := storage.NewSlot(backend, KeyProfile, model.ProfileUnset, codec.Profile{}, log)

	p := &Planner{
		Tasks:    &TaskStore{c: collection[model.Task]{slot: tasks, id: taskID}, now: now, newID: opts.NewID},
		Subjects: &SubjectStore{c: collection[model.Subject]{slot: subjects, id: subjectID}, newID: opts.NewID},
		Notes:    &NoteStore{c: collection[model.Note]{slot: notes, id: noteID}, now: now, newID: opts.NewID},
		Habits:   &HabitStore{c: collection[model.Habit]{slot: habits, id: habitID}, newID: opts.NewID},
		Events:   &EventStore{c: collection[model.AcademicEvent]{slot: events, id: eventID}, newID: opts.NewID},
		Profile:  &ProfileGate{slot: profile},
		backend:  backend,
		log:      log,
		slots:    []slotHandle{tasks, subjects, notes, habits, events, profile},
		now:      now,
	}
	log.Info().
		Int("tasks", len(tasks.Get())).
		Int("subjects", len(subjects.Get())).
		Int("notes", len(notes.Get())).
		Int("habits", len(habits.Get())).
		Int("events", len(events.Get())).
		Str("profile", profile.Get().String()).
		Msg("planner loaded")
	return p, nil
}

// Reset deletes all stored data and returns every store to its first-run
// state, with default subjects and no profile.
func (p *Planner) Reset(ctx context.Context) error {
	if err := p.backend.Clear(ctx); err != nil {
		return fmt.Errorf("clear backend: %w", err)
	}
	for _, s := range p.slots {
		s.Reload()
	}
	p.log.Warn().Msg("planner data reset")
	return nil
}

// Export returns the stored payload of every planner slot that exists.
func (p *Planner) Export(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(p.slots))
	for _, key := range Keys() {
		raw, err := p.backend.Read(ctx, key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", key, err)
		}
		out[key] = raw
	}
	return out, nil
}

// Now reads the planner clock in the planner's location.
func (p *Planner) Now() time.Time { return p.now() }

type SlotStatus struct {
	Key string
	storage.SaveStatus
}

// SaveStatus reports the first slot holding unsaved changes.
func (p *Planner) SaveStatus() (SlotStatus, bool) {
	for _, s := range p.slots {
		if st := s.Status(); st.Dirty {
			return SlotStatus{Key: s.Key(), SaveStatus: st}, true
		}
	}
	return SlotStatus{}, false
}

// LastSavedAt is the most recent successful write across all slots.
func (p *Planner) LastSavedAt() time.Time {
	var last time.Time
	for _, s := range p.slots {
		if at := s.Status().LastSavedAt; at.After(last) {
			last = at
		}
	}
	return last
}

func taskID(t model.Task) string           { return t.ID }
func subjectID(s model.Subject) string     { return s.ID }
func noteID(n model.Note) string           { return n.ID }
func habitID(h model.Habit) string         { return h.ID }
func eventID(e model.AcademicEvent) string { return e.ID }
