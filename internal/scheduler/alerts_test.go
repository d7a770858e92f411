package scheduler

import (
	"testing"
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
)

func TestAlertsForSkipsDoneAndPast(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "far", Name: "Ensayo", DueDate: now.Add(5 * time.Hour)},
		{ID: "near", Name: "Lectura", DueDate: now.Add(20 * time.Minute)},
		{ID: "done", Name: "Hecho", DueDate: now.Add(3 * time.Hour), Completed: true},
		{ID: "past", Name: "Vencida", DueDate: now.Add(-time.Hour)},
	}
	events := []model.AcademicEvent{
		{ID: "exam", Title: "Parcial", Date: now.Add(2 * time.Hour)},
		{ID: "gone", Title: "Feriado", Date: now.Add(-24 * time.Hour)},
	}

	got := AlertsFor(tasks, events, now, time.Hour)
	if len(got) != 3 {
		t.Fatalf("expected 3 alerts, got %d: %#v", len(got), got)
	}
	if got[0].ID != "task:near" || !got[0].TriggerAt.Equal(now) {
		t.Fatalf("expected near task to fire immediately, got %#v", got[0])
	}
	if got[1].ID != "event:exam" || !got[1].TriggerAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected second alert %#v", got[1])
	}
	if got[2].ID != "task:far" || got[2].Title != "Ensayo" || !got[2].DueAt.Equal(now.Add(5*time.Hour)) {
		t.Fatalf("unexpected third alert %#v", got[2])
	}
	for _, a := range got {
		if err := a.Validate(); err != nil {
			t.Fatalf("alert %s invalid: %v", a.ID, err)
		}
	}
}
