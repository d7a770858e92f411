package update

import (
	"fmt"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/progress"
	"github.com/sandeepkv93/studyd/internal/views"
)

// dashboardTasks is the selectable list on the dashboard: overdue first,
// then the upcoming window.
func (m Model) dashboardTasks() (overdue, upcoming []model.Task) {
	now := m.now()
	return m.Planner.Tasks.Overdue(now), m.Planner.Tasks.Upcoming(now, m.cfg.UpcomingDays)
}

func (m Model) selectedDashboardTask() (model.Task, bool) {
	overdue, upcoming := m.dashboardTasks()
	all := slices.Concat(overdue, upcoming)
	if len(all) == 0 {
		return model.Task{}, false
	}
	return all[clampCursor(m.Dashboard.Cursor, len(all))], true
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) Model {
	overdue, upcoming := m.dashboardTasks()
	n := len(overdue) + len(upcoming)
	switch msg.String() {
	case "up", "k":
		if m.Dashboard.Cursor > 0 {
			m.Dashboard.Cursor--
		}
	case "down", "j":
		if m.Dashboard.Cursor < n-1 {
			m.Dashboard.Cursor++
		}
	case " ", "enter":
		if t, ok := m.selectedDashboardTask(); ok {
			m.toggleTask(t)
		}
	case "x":
		if t, ok := m.selectedDashboardTask(); ok {
			m.deleteTask(t)
		}
	}
	m.Dashboard.Cursor = clampCursor(m.Dashboard.Cursor, n)
	return m
}

func (m *Model) toggleTask(t model.Task) {
	err := m.Planner.Tasks.ToggleComplete(t.ID)
	state := "done"
	if t.Completed {
		state = "reopened"
	}
	m.applyMutation(err, fmt.Sprintf("%s: %s", state, t.Name))
	m.rescheduleAlerts()
}

func (m *Model) deleteTask(t model.Task) {
	m.applyMutation(m.Planner.Tasks.Delete(t.ID), "deleted task: "+t.Name)
	m.rescheduleAlerts()
}

func (m Model) renderDashboardView() string {
	now := m.now()
	tasks := m.Planner.Tasks.All()
	weekTasks := progress.InPeriod(tasks, progress.PeriodWeek, now)
	overdue, upcoming := m.dashboardTasks()

	data := views.DashboardData{
		Profile:  m.Planner.Profile.Profile().String(),
		Week:     m.progressLine("this week", progress.Of(weekTasks)),
		Pressure: m.pressureText(tasks, now),
	}

	cursor := clampCursor(m.Dashboard.Cursor, len(overdue)+len(upcoming))
	for i, t := range overdue {
		data.Overdue = append(data.Overdue, taskLine(t, now, i == cursor))
	}
	for i, t := range upcoming {
		data.Upcoming = append(data.Upcoming, taskLine(t, now, len(overdue)+i == cursor))
	}

	subjects := m.Planner.Subjects.All()
	if m.Planner.Profile.IsUniversity() {
		overall := progress.Of(tasks)
		line := m.progressLine("overall", overall)
		data.Overall = &line
		data.GoalGap = progress.GoalGap(overall.Rate())
		for _, g := range progress.BySubject(tasks, subjects) {
			data.Subjects = append(data.Subjects, m.progressLine(g.Key, g.Progress))
		}
	} else {
		data.GoalGap = progress.GoalGap(progress.Of(weekTasks).Rate())
		for _, g := range progress.BySubject(weekTasks, subjects) {
			data.Subjects = append(data.Subjects, m.progressLine(g.Key, g.Progress))
		}
	}

	if next := m.Planner.Events.Upcoming(now, 1); len(next) > 0 {
		e := next[0]
		data.NextEvent = fmt.Sprintf("%s %s (%s)", e.Date.In(now.Location()).Format("Mon 02 Jan"), e.Title, calendar.Classify(e.Date, false, now).Label())
	}
	return views.RenderDashboard(data)
}

func (m Model) progressLine(label string, p progress.Progress) views.ProgressLine {
	return views.ProgressLine{
		Label:     label,
		Bar:       m.progressBar.ViewAs(p.Rate()),
		Completed: p.Completed,
		Total:     p.Total,
		Percent:   p.Percent(),
	}
}

func (m Model) pressureText(tasks []model.Task, now time.Time) string {
	p := progress.BacklogPressure(tasks, now)
	if p.Score == 0 {
		return ""
	}
	return fmt.Sprintf("%d/10 (%s)", p.Score, p.Label)
}

func taskLine(t model.Task, now time.Time, selected bool) views.TaskLine {
	u := calendar.Classify(t.DueDate, t.Completed, now)
	line := views.TaskLine{
		ID:        t.ID,
		Name:      t.Name,
		Subject:   t.Subject,
		Due:       t.DueDate.In(now.Location()).Format("02 Jan"),
		Priority:  string(t.Priority),
		Completed: t.Completed,
		Selected:  selected,
		Level:     u.Level.String(),
	}
	if u.Level != calendar.LevelNone {
		line.Badge = u.Label()
	}
	return line
}
