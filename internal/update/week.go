package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/views"
)

var weekdayNames = [7]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// weekTasks returns the visible week as seven day buckets, Monday first.
func (m Model) weekTasks() [7][]model.Task {
	var out [7][]model.Task
	days := calendar.WeekDays(m.Week.Start)
	for _, t := range m.Planner.Tasks.InWeek(m.Week.Start) {
		for i, day := range days {
			if calendar.SameDay(day, t.DueDate) {
				out[i] = append(out[i], t)
				break
			}
		}
	}
	return out
}

func (m Model) selectedWeekTask() (model.Task, bool) {
	i := 0
	cursor := m.Week.Cursor
	for _, day := range m.weekTasks() {
		for _, t := range day {
			if i == cursor {
				return t, true
			}
			i++
		}
	}
	return model.Task{}, false
}

func (m Model) weekTaskCount() int {
	n := 0
	for _, day := range m.weekTasks() {
		n += len(day)
	}
	return n
}

func (m Model) handleWeekKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.shiftWeek(-1)
	case "l", "right":
		m.shiftWeek(1)
	case "t":
		m.Week.Start = calendar.WeekStart(m.now())
		m.Week.Cursor = 0
		m.Status = StatusBar{Text: "week: current"}
	case "up", "k":
		if m.Week.Cursor > 0 {
			m.Week.Cursor--
		}
	case "down", "j":
		if m.Week.Cursor < m.weekTaskCount()-1 {
			m.Week.Cursor++
		}
	case " ", "enter":
		if t, ok := m.selectedWeekTask(); ok {
			m.toggleTask(t)
		}
	case "x":
		if t, ok := m.selectedWeekTask(); ok {
			m.deleteTask(t)
		}
	}
	m.Week.Cursor = clampCursor(m.Week.Cursor, m.weekTaskCount())
	return m
}

// shiftWeek moves by calendar days so DST changes keep the Monday start.
func (m *Model) shiftWeek(delta int) {
	m.Week.Start = calendar.WeekStart(m.Week.Start.AddDate(0, 0, 7*delta))
	m.Week.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("week of %s", m.Week.Start.Format("02 Jan 2006"))}
}

func (m Model) renderWeekView() string {
	now := m.now()
	days := calendar.WeekDays(m.Week.Start)
	buckets := m.weekTasks()
	data := views.WeekData{
		Range: fmt.Sprintf("%s - %s", days[0].Format("02 Jan"), days[6].Format("02 Jan 2006")),
	}
	i := 0
	for d, day := range days {
		wd := views.WeekDayData{
			Label:   fmt.Sprintf("%s %s", weekdayNames[d], day.Format("02")),
			IsToday: calendar.IsToday(day, now),
		}
		for _, t := range buckets[d] {
			line := taskLine(t, now, i == m.Week.Cursor)
			line.Due = ""
			if t.Type != "" {
				line.Due = strings.ReplaceAll(string(t.Type), "-", " ")
			}
			wd.Tasks = append(wd.Tasks, line)
			i++
		}
		data.Days = append(data.Days, wd)
	}
	return views.RenderWeek(data)
}
