package update

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/views"
)

// completedTasks lists finished tasks, latest due date first.
func (m Model) completedTasks() []model.Task {
	tasks := m.Planner.Tasks.Completed()
	slices.SortStableFunc(tasks, func(a, b model.Task) int { return b.DueDate.Compare(a.DueDate) })
	return tasks
}

func (m Model) handleCompletedKey(msg tea.KeyMsg) Model {
	tasks := m.completedTasks()
	switch msg.String() {
	case "up", "k":
		if m.Completed.Cursor > 0 {
			m.Completed.Cursor--
		}
	case "down", "j":
		if m.Completed.Cursor < len(tasks)-1 {
			m.Completed.Cursor++
		}
	case " ", "enter":
		if len(tasks) > 0 {
			m.toggleTask(tasks[clampCursor(m.Completed.Cursor, len(tasks))])
		}
	case "x":
		if len(tasks) > 0 {
			m.deleteTask(tasks[clampCursor(m.Completed.Cursor, len(tasks))])
		}
	}
	m.Completed.Cursor = clampCursor(m.Completed.Cursor, len(m.Planner.Tasks.Completed()))
	return m
}

func (m Model) renderCompletedView() string {
	now := m.now()
	tasks := m.completedTasks()
	cursor := clampCursor(m.Completed.Cursor, len(tasks))
	data := views.CompletedData{Total: len(tasks)}
	for i, t := range tasks {
		data.Tasks = append(data.Tasks, taskLine(t, now, i == cursor))
	}
	return views.RenderCompleted(data)
}
