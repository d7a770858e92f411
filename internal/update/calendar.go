package update

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/views"
)

func (m Model) monthEvents() []model.AcademicEvent {
	events := m.Planner.Events.InMonth(m.Calendar.Month)
	slices.SortStableFunc(events, func(a, b model.AcademicEvent) int { return a.Date.Compare(b.Date) })
	return events
}

func (m Model) selectedEvent() (model.AcademicEvent, bool) {
	events := m.monthEvents()
	if len(events) == 0 {
		return model.AcademicEvent{}, false
	}
	return events[clampCursor(m.Calendar.Cursor, len(events))], true
}

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.shiftCalendarMonth(-1)
	case "l", "right":
		m.shiftCalendarMonth(1)
	case "t":
		m.Calendar.Month = calendar.MonthStart(m.now())
		m.Calendar.Cursor = 0
	case "up", "k":
		if m.Calendar.Cursor > 0 {
			m.Calendar.Cursor--
		}
	case "down", "j":
		if m.Calendar.Cursor < len(m.monthEvents())-1 {
			m.Calendar.Cursor++
		}
	case "x":
		if e, ok := m.selectedEvent(); ok {
			m.applyMutation(m.Planner.Events.Delete(e.ID), "deleted event: "+e.Title)
			m.rescheduleAlerts()
		}
	}
	m.Calendar.Cursor = clampCursor(m.Calendar.Cursor, len(m.monthEvents()))
	return m
}

func (m *Model) shiftCalendarMonth(delta int) {
	m.Calendar.Month = calendar.MonthStart(m.Calendar.Month.AddDate(0, delta, 0))
	m.Calendar.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("calendar: %s", m.Calendar.Month.Format("January 2006"))}
}

func (m Model) calendarRows() []table.Row {
	events := m.monthEvents()
	loc := m.now().Location()
	rows := make([]table.Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, table.Row{e.Date.In(loc).Format("Mon 02"), string(e.Type), e.Title, e.Subject})
	}
	return rows
}

// monthGrid renders the month Monday-first. Days with events carry a star
// and today is bracketed.
func (m Model) monthGrid() string {
	now := m.now()
	events := m.monthEvents()
	var b strings.Builder
	b.WriteString(" Lu  Ma  Mi  Ju  Vi  Sá  Do\n")
	for _, week := range calendar.MonthGrid(m.Calendar.Month) {
		for _, day := range week {
			if day.Month() != m.Calendar.Month.Month() {
				b.WriteString("    ")
				continue
			}
			mark := " "
			for _, e := range events {
				if calendar.SameDay(day, e.Date) {
					mark = "*"
					break
				}
			}
			if calendar.IsToday(day, now) {
				b.WriteString(fmt.Sprintf("[%2d]", day.Day()))
				continue
			}
			b.WriteString(fmt.Sprintf(" %2d%s", day.Day(), mark))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderCalendarView() string {
	return views.RenderCalendar(views.CalendarData{
		Month:     m.Calendar.Month.Format("January 2006"),
		Grid:      m.monthGrid(),
		TableView: m.calendarTable.View(),
	})
}

func (m Model) renderUpcomingEvents() string {
	now := m.now()
	var lines []views.EventLine
	for _, e := range m.Planner.Events.Upcoming(now, m.cfg.UpcomingEvents) {
		u := calendar.Classify(e.Date, false, now)
		lines = append(lines, views.EventLine{
			ID:      e.ID,
			Title:   e.Title,
			Date:    e.Date.In(now.Location()).Format("02 Jan"),
			Type:    string(e.Type),
			Subject: e.Subject,
			Badge:   u.Label(),
			Level:   u.Level.String(),
		})
	}
	return views.RenderUpcomingEvents(lines)
}
