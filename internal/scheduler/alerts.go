package scheduler

import (
	"sort"
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
)

// AlertsFor builds one alert per open task and per event that is still ahead
// of now. Each fires lead before its deadline, or immediately when that
// moment has already passed.
func AlertsFor(tasks []model.Task, events []model.AcademicEvent, now time.Time, lead time.Duration) []model.Alert {
	out := make([]model.Alert, 0, len(tasks)+len(events))
	for _, t := range tasks {
		if t.Completed || !t.DueDate.After(now) {
			continue
		}
		out = append(out, newAlert(model.AlertSourceTask, t.ID, t.Name, t.DueDate, now, lead))
	}
	for _, e := range events {
		if !e.Date.After(now) {
			continue
		}
		out = append(out, newAlert(model.AlertSourceEvent, e.ID, e.Title, e.Date, now, lead))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TriggerAt.Before(out[j].TriggerAt) })
	return out
}

func newAlert(src model.AlertSource, refID, title string, due, now time.Time, lead time.Duration) model.Alert {
	trigger := due.Add(-lead)
	if trigger.Before(now) {
		trigger = now
	}
	return model.Alert{
		ID:        string(src) + ":" + refID,
		Source:    src,
		RefID:     refID,
		Title:     title,
		DueAt:     due,
		TriggerAt: trigger,
	}
}
