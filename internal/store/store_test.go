package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/storage"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

func setupPlanner(t *testing.T, backend storage.Backend) (*Planner, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)}
	p, err := Open(backend, Options{Now: clock.Now, NewID: sequentialIDs(), Location: time.UTC})
	if err != nil {
		t.Fatalf("open planner: %v", err)
	}
	return p, clock
}

func day(d, hour int) time.Time {
	return time.Date(2024, 6, d, hour, 0, 0, 0, time.UTC)
}

func taskInput(name string, due time.Time) model.TaskInput {
	return model.TaskInput{Name: name, Subject: "Historia", DueDate: due, Type: model.TaskTypeHomework, Priority: model.PriorityMedium}
}

func TestOpenRejectsNilBackend(t *testing.T) {
	if _, err := Open(nil, Options{}); err == nil {
		t.Fatal("expected error for nil backend")
	}
}

func TestFirstRunState(t *testing.T) {
	backend := storage.NewMemoryBackend()
	p, _ := setupPlanner(t, backend)

	if got := len(p.Tasks.All()); got != 0 {
		t.Fatalf("expected no tasks, got %d", got)
	}
	subjects := p.Subjects.All()
	if len(subjects) != 4 || subjects[0].Name != "Matemáticas" || subjects[3].Code != "LIT101" {
		t.Fatalf("unexpected default subjects: %#v", subjects)
	}
	if !p.Profile.NeedsSelection() {
		t.Fatal("expected profile selection to be needed")
	}
	if backend.Writes() != 0 {
		t.Fatalf("first run must not write, got %d writes", backend.Writes())
	}
}

func TestAddAssignsUniqueIDsAndTimestamps(t *testing.T) {
	p, clock := setupPlanner(t, storage.NewMemoryBackend())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		task, err := p.Tasks.Add(taskInput(fmt.Sprintf("t%d", i), day(12, 9)))
		if err != nil {
			t.Fatalf("add task: %v", err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %q", task.ID)
		}
		seen[task.ID] = true
		if !task.CreatedAt.Equal(clock.now) {
			t.Fatalf("unexpected createdAt %s", task.CreatedAt)
		}
		got, ok := p.Tasks.Get(task.ID)
		if !ok || got != task {
			t.Fatalf("added task not readable: %#v", got)
		}
	}
	all := p.Tasks.All()
	if len(all) != 50 || all[0].Name != "t0" || all[49].Name != "t49" {
		t.Fatal("tasks must be appended in insertion order")
	}
}

func TestUnknownIDMutationsAreNoOps(t *testing.T) {
	backend := storage.NewMemoryBackend()
	p, _ := setupPlanner(t, backend)
	if _, err := p.Tasks.Add(taskInput("a", day(12, 9))); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := p.Notes.Add(model.NoteInput{Title: "n"}); err != nil {
		t.Fatalf("add note: %v", err)
	}
	if _, err := p.Habits.Add(model.HabitInput{Name: "h", Type: model.HabitTypeStudy, Target: 1, Unit: "h", Date: day(10, 0)}); err != nil {
		t.Fatalf("add habit: %v", err)
	}
	beforeTasks := p.Tasks.All()
	beforeNotes := p.Notes.All()
	beforeHabits := p.Habits.All()
	beforeSubjects := p.Subjects.All()
	beforeEvents := p.Events.All()
	writes := backend.Writes()

	name := "changed"
	checks := []error{
		p.Tasks.Update("missing", model.TaskPatch{Name: &name}),
		p.Tasks.Delete("missing"),
		p.Tasks.ToggleComplete("missing"),
		p.Notes.Update("missing", model.NotePatch{Title: &name}),
		p.Notes.Delete("missing"),
		p.Notes.TogglePin("missing"),
		p.Habits.Update("missing", model.HabitPatch{Name: &name}),
		p.Habits.Delete("missing"),
		p.Habits.ToggleComplete("missing"),
		p.Subjects.Update("missing", model.SubjectPatch{Name: &name}),
		p.Subjects.Delete("missing"),
		p.Events.Update("missing", model.EventPatch{Title: &name}),
		p.Events.Delete("missing"),
	}
	for i, err := range checks {
		if err != nil {
			t.Fatalf("check %d: expected nil error, got %v", i, err)
		}
	}
	if backend.Writes() != writes {
		t.Fatalf("expected no writes, got %d new", backend.Writes()-writes)
	}
	assertSame(t, "tasks", beforeTasks, p.Tasks.All())
	assertSame(t, "notes", beforeNotes, p.Notes.All())
	assertSame(t, "habits", beforeHabits, p.Habits.All())
	if len(beforeSubjects) != len(p.Subjects.All()) {
		t.Fatal("subjects changed")
	}
	if len(beforeEvents) != len(p.Events.All()) {
		t.Fatal("events changed")
	}
}

func assertSame[T comparable](t *testing.T, label string, want, got []T) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%s: length %d != %d", label, len(got), len(want))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("%s[%d]: %#v != %#v", label, i, got[i], want[i])
		}
	}
}

func TestTaskUpdateDeleteToggle(t *testing.T) {
	p, _ := setupPlanner(t, storage.NewMemoryBackend())
	a, _ := p.Tasks.Add(taskInput("a", day(12, 9)))
	b, _ := p.Tasks.Add(taskInput("b", day(13, 9)))

	prio := model.PriorityHigh
	if err := p.Tasks.Update(a.ID, model.TaskPatch{Priority: &prio}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := p.Tasks.Get(a.ID)
	if got.Priority != model.PriorityHigh || got.Name != "a" || got.ID != a.ID || !got.CreatedAt.Equal(a.CreatedAt) {
		t.Fatalf("unexpected updated task: %#v", got)
	}

	if err := p.Tasks.ToggleComplete(b.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if done := p.Tasks.Completed(); len(done) != 1 || done[0].ID != b.ID {
		t.Fatalf("unexpected completed list: %#v", done)
	}
	if err := p.Tasks.ToggleComplete(b.ID); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if len(p.Tasks.Completed()) != 0 {
		t.Fatal("expected toggle to flip back")
	}

	if err := p.Tasks.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := p.Tasks.Get(a.ID); ok {
		t.Fatal("expected task to be gone")
	}
	if len(p.Tasks.All()) != 1 {
		t.Fatal("expected one task left")
	}
}

func TestAllReturnsACopy(t *testing.T) {
	p, _ := setupPlanner(t, storage.NewMemoryBackend())
	_, _ = p.Tasks.Add(taskInput("a", day(12, 9)))
	snapshot := p.Tasks.All()
	snapshot[0].Name = "mutated"
	if got := p.Tasks.All()[0].Name; got != "a" {
		t.Fatalf("store changed through returned slice: %q", got)
	}
}

func TestTaskQueries(t *testing.T) {
	p, clock := setupPlanner(t, storage.NewMemoryBackend())
	now := clock.now

	overdue, _ := p.Tasks.Add(taskInput("overdue", day(9, 12)))
	doneOverdue, _ := p.Tasks.Add(taskInput("done-overdue", day(8, 12)))
	_ = p.Tasks.ToggleComplete(doneOverdue.ID)
	exactlyNow, _ := p.Tasks.Add(taskInput("now", now))
	edge, _ := p.Tasks.Add(taskInput("edge", now.AddDate(0, 0, 3)))
	_, _ = p.Tasks.Add(taskInput("late", now.AddDate(0, 0, 3).Add(time.Second)))
	sunday, _ := p.Tasks.Add(taskInput("sunday", day(16, 23)))
	_, _ = p.Tasks.Add(taskInput("next-week", day(17, 0)))
	other := taskInput("math", day(11, 8))
	other.Subject = "Matemáticas"
	math, _ := p.Tasks.Add(other)

	ids := func(tasks []model.Task) []string {
		out := make([]string, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, t.ID)
		}
		return out
	}
	assertSame(t, "overdue", []string{overdue.ID}, ids(p.Tasks.Overdue(now)))
	assertSame(t, "upcoming", []string{exactlyNow.ID, edge.ID, math.ID}, ids(p.Tasks.Upcoming(now, DefaultUpcomingDays)))

	ws := day(10, 0)
	week := ids(p.Tasks.InWeek(ws))
	if len(week) != 5 || week[len(week)-2] != sunday.ID {
		t.Fatalf("unexpected week tasks: %v", week)
	}
	assertSame(t, "subject", []string{math.ID}, ids(p.Tasks.BySubject("Matemáticas")))
	assertSame(t, "by day", []string{exactlyNow.ID}, ids(p.Tasks.ByDay(day(10, 23))))
}

func TestNotesOrderingAndPinning(t *testing.T) {
	p, clock := setupPlanner(t, storage.NewMemoryBackend())
	a, _ := p.Notes.Add(model.NoteInput{Title: "A"})
	clock.Advance(time.Minute)
	b, _ := p.Notes.Add(model.NoteInput{Title: "B"})
	clock.Advance(time.Minute)
	c, _ := p.Notes.Add(model.NoteInput{Title: "C"})

	titles := func(notes []model.Note) []string {
		out := make([]string, 0, len(notes))
		for _, n := range notes {
			out = append(out, n.Title)
		}
		return out
	}
	assertSame(t, "order", []string{"C", "B", "A"}, titles(p.Notes.All()))

	clock.Advance(time.Hour)
	if err := p.Notes.TogglePin(a.ID); err != nil {
		t.Fatalf("pin: %v", err)
	}
	assertSame(t, "order after pin", []string{"C", "B", "A"}, titles(p.Notes.All()))
	assertSame(t, "pinned", []string{"A"}, titles(p.Notes.Pinned()))
	assertSame(t, "unpinned", []string{"C", "B"}, titles(p.Notes.Unpinned()))

	pinned, _ := p.Notes.Get(a.ID)
	if !pinned.UpdatedAt.Equal(clock.now) || !pinned.CreatedAt.Equal(a.CreatedAt) {
		t.Fatalf("pin must refresh updatedAt only: %#v", pinned)
	}

	clock.Advance(time.Minute)
	content := "## Tema 2"
	if err := p.Notes.Update(b.ID, model.NotePatch{Content: &content}); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, _ := p.Notes.Get(b.ID)
	if updated.Content != content || !updated.UpdatedAt.Equal(clock.now) {
		t.Fatalf("unexpected updated note: %#v", updated)
	}

	clock.now = c.CreatedAt.Add(-time.Hour)
	_ = p.Notes.TogglePin(c.ID)
	back, _ := p.Notes.Get(c.ID)
	if back.UpdatedAt.Before(back.CreatedAt) {
		t.Fatal("updatedAt moved before createdAt")
	}
}

func TestHabitsForDayAndToggle(t *testing.T) {
	p, _ := setupPlanner(t, storage.NewMemoryBackend())
	in := model.HabitInput{Name: "Leer", Type: model.HabitTypeStudy, Target: 30, Unit: "min", Date: day(10, 7)}
	today, _ := p.Habits.Add(in)
	in.Date = day(9, 7)
	_, _ = p.Habits.Add(in)

	got := p.Habits.ForDay(day(10, 22))
	if len(got) != 1 || got[0].ID != today.ID {
		t.Fatalf("unexpected habits for day: %#v", got)
	}
	_ = p.Habits.ToggleComplete(today.ID)
	h, _ := p.Habits.Get(today.ID)
	if !h.Completed {
		t.Fatal("expected habit completed")
	}
}

func TestEventQueries(t *testing.T) {
	p, clock := setupPlanner(t, storage.NewMemoryBackend())
	add := func(title string, at time.Time) model.AcademicEvent {
		e, err := p.Events.Add(model.EventInput{Title: title, Date: at, Type: model.EventTypeExam})
		if err != nil {
			t.Fatalf("add event: %v", err)
		}
		return e
	}
	add("past", day(1, 9))
	late := add("late", day(28, 9))
	soon := add("soon", day(11, 9))
	add("july", time.Date(2024, 7, 2, 9, 0, 0, 0, time.UTC))

	june := p.Events.InMonth(day(15, 0))
	if len(june) != 3 {
		t.Fatalf("expected 3 june events, got %d", len(june))
	}
	up := p.Events.Upcoming(clock.now, 2)
	if len(up) != 2 || up[0].ID != soon.ID || up[1].ID != late.ID {
		t.Fatalf("unexpected upcoming events: %#v", up)
	}
	if len(p.Events.Upcoming(clock.now, 0)) != 3 {
		t.Fatal("expected non-positive limit to return all upcoming")
	}
}

func TestSubjectDeleteOrphansTasks(t *testing.T) {
	p, _ := setupPlanner(t, storage.NewMemoryBackend())
	task, _ := p.Tasks.Add(taskInput("essay", day(12, 9)))
	hist, ok := p.Subjects.ByName("Historia")
	if !ok {
		t.Fatal("expected default Historia subject")
	}
	if err := p.Subjects.Delete(hist.ID); err != nil {
		t.Fatalf("delete subject: %v", err)
	}
	got, _ := p.Tasks.Get(task.ID)
	if got.Subject != "Historia" {
		t.Fatalf("orphaned task lost its subject name: %#v", got)
	}
	if _, ok := p.Subjects.ByName("Historia"); ok {
		t.Fatal("expected subject gone")
	}
}
