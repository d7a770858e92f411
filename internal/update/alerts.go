package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/scheduler"
)

const alertLogSize = 20

// rescheduleAlerts replaces the engine queue with alerts for the current
// tasks and events.
func (m *Model) rescheduleAlerts() {
	if m.Scheduler == nil {
		return
	}
	alerts := scheduler.AlertsFor(m.Planner.Tasks.All(), m.Planner.Events.All(), m.now(), m.cfg.AlertLead)
	if err := m.Scheduler.Replace(alerts); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("alert schedule failed: %v", err), IsError: true}
	}
}

// applyAlert records a fired alert unless its source went away or was
// completed after it was queued.
func (m *Model) applyAlert(a model.Alert) bool {
	switch a.Source {
	case model.AlertSourceTask:
		t, ok := m.Planner.Tasks.Get(a.RefID)
		if !ok || t.Completed || !t.DueDate.Equal(a.DueAt) {
			return false
		}
	case model.AlertSourceEvent:
		e, ok := m.Planner.Events.Get(a.RefID)
		if !ok || !e.Date.Equal(a.DueAt) {
			return false
		}
	}
	m.AlertLog = append(m.AlertLog, a)
	if len(m.AlertLog) > alertLogSize {
		m.AlertLog = m.AlertLog[len(m.AlertLog)-alertLogSize:]
	}
	u := calendar.Classify(a.DueAt, false, m.now())
	text := fmt.Sprintf("%s: %s (%s)", a.Source, a.Title, u.Label())
	m.Status = StatusBar{Text: "alert " + text}
	m.notify("Deadline", text, "info")
	return true
}

// rollover moves views that were showing the old day onto the new one.
func (m *Model) rollover(tick scheduler.Tick) {
	now := m.now()
	today := calendar.StartOfDay(now)
	yesterday := today.AddDate(0, 0, -1)
	if calendar.SameDay(m.Habits.Day, yesterday) {
		m.Habits.Day = today
	}
	if m.Week.Start.Equal(calendar.WeekStart(yesterday)) {
		m.Week.Start = calendar.WeekStart(today)
	}
	if m.Calendar.Month.Equal(calendar.MonthStart(yesterday)) {
		m.Calendar.Month = calendar.MonthStart(today)
	}
	m.rescheduleAlerts()
	if tick.Kind == scheduler.TickDaily {
		m.Status = StatusBar{Text: "new day: " + today.Format("Mon 02 Jan")}
	}
}

func waitForAlertCmd(ch <-chan model.Alert) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		a, ok := <-ch
		if !ok {
			return nil
		}
		return AlertDueMsg{Alert: a}
	}
}

func waitForRolloverCmd(ch <-chan scheduler.Tick) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-ch
		if !ok {
			return nil
		}
		return RolloverMsg{Tick: t}
	}
}
