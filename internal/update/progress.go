package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/progress"
	"github.com/sandeepkv93/studyd/internal/views"
)

func (m Model) handleProgressKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "p":
		m.Progress.Period = m.Progress.Period.Next()
		m.Status = StatusBar{Text: "progress period: " + string(m.Progress.Period)}
	}
	return m
}

func (m Model) renderProgressView() string {
	now := m.now()
	all := m.Planner.Tasks.All()
	tasks := progress.InPeriod(all, m.Progress.Period, now)
	overall := progress.Of(tasks)

	data := views.ProgressPanelData{
		Period:   string(m.Progress.Period),
		Overall:  m.progressLine("completed", overall),
		GoalGap:  progress.GoalGap(overall.Rate()),
		Pressure: m.pressureText(all, now),
	}
	for _, g := range progress.BySubject(tasks, m.Planner.Subjects.All()) {
		data.BySubject = append(data.BySubject, m.progressLine(g.Key, g.Progress))
	}
	for _, g := range progress.ByPriority(tasks) {
		data.ByPriority = append(data.ByPriority, m.progressLine(string(g.Key), g.Progress))
	}
	for _, g := range progress.ByType(tasks) {
		data.ByType = append(data.ByType, m.progressLine(string(g.Key), g.Progress))
	}
	return views.RenderProgressPanel(data)
}
