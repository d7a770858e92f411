package model

import (
	"errors"
	"testing"
	"time"
)

func TestSubjectInputValidateColor(t *testing.T) {
	in := SubjectInput{Name: "Física", Color: "#10B981"}
	if err := in.Validate(); err != nil {
		t.Fatalf("expected valid subject, got: %v", err)
	}
	in.Color = "green"
	if err := in.Validate(); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got: %v", err)
	}
}

func TestSubjectPatchClearsCredits(t *testing.T) {
	credits := 6
	s := Subject{ID: "1", Name: "Matemáticas", Credits: &credits}
	var none *int
	got := SubjectPatch{Credits: &none}.Apply(s)
	if got.Credits != nil {
		t.Fatalf("expected credits cleared, got %v", *got.Credits)
	}
	if s.Credits == nil {
		t.Fatal("source subject mutated")
	}
}

func TestDefaultSubjects(t *testing.T) {
	subjects := DefaultSubjects()
	if len(subjects) != 4 {
		t.Fatalf("expected 4 default subjects, got %d", len(subjects))
	}
	wantCodes := []string{"MATH101", "HIST201", "SCI301", "LIT101"}
	for i, s := range subjects {
		if s.Code != wantCodes[i] {
			t.Fatalf("subject %d: expected code %q, got %q", i, wantCodes[i], s.Code)
		}
		if err := (SubjectInput{Name: s.Name, Color: s.Color}).Validate(); err != nil {
			t.Fatalf("default subject %q invalid: %v", s.Name, err)
		}
	}
	subjects[0].Name = "changed"
	if DefaultSubjects()[0].Name != "Matemáticas" {
		t.Fatal("DefaultSubjects must return a fresh slice")
	}
}

func TestHabitInputValidate(t *testing.T) {
	in := HabitInput{Name: "Estudiar", Type: HabitTypeStudy, Target: 2, Unit: "horas", Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)}
	if err := in.Validate(); err != nil {
		t.Fatalf("expected valid habit, got: %v", err)
	}
	in.Target = 0
	if err := in.Validate(); err == nil {
		t.Fatal("expected error for zero target")
	}
	in.Target = 1
	in.Type = HabitType("yoga")
	if err := in.Validate(); !errors.Is(err, ErrInvalidHabitType) {
		t.Fatalf("expected ErrInvalidHabitType, got: %v", err)
	}
}

func TestEventInputValidate(t *testing.T) {
	in := EventInput{Title: "Parcial", Date: time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC), Type: EventTypeExam}
	if err := in.Validate(); err != nil {
		t.Fatalf("expected valid event, got: %v", err)
	}
	in.Type = "party"
	if err := in.Validate(); !errors.Is(err, ErrInvalidEventType) {
		t.Fatalf("expected ErrInvalidEventType, got: %v", err)
	}
}

func TestNoteInputValidate(t *testing.T) {
	if err := (NoteInput{Title: "  "}).Validate(); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestProfileIsValid(t *testing.T) {
	if !ProfileUniversity.IsValid() || !ProfileSchool.IsValid() {
		t.Fatal("expected selectable profiles to be valid")
	}
	if ProfileUnset.IsValid() || Profile("college").IsValid() {
		t.Fatal("expected unset and unknown profiles to be invalid")
	}
	if ProfileUnset.String() != "unset" {
		t.Fatalf("unexpected unset string: %q", ProfileUnset.String())
	}
}

func TestAlertValidate(t *testing.T) {
	due := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)
	a := Alert{ID: "task:t1", Source: AlertSourceTask, RefID: "t1", Title: "Ensayo", DueAt: due, TriggerAt: due.Add(-time.Hour)}
	if err := a.Validate(); err != nil {
		t.Fatalf("expected valid alert, got: %v", err)
	}
	a.Source = "habit"
	if err := a.Validate(); !errors.Is(err, ErrInvalidAlertSource) {
		t.Fatalf("expected ErrInvalidAlertSource, got: %v", err)
	}
	a.Source = AlertSourceEvent
	a.TriggerAt = due.Add(time.Minute)
	if err := a.Validate(); err == nil {
		t.Fatal("expected error when trigger is after due")
	}
}
