package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/progress"
	"github.com/sandeepkv93/studyd/internal/views"
)

func (m Model) dayHabits() []model.Habit {
	return m.Planner.Habits.ForDay(m.Habits.Day)
}

func (m Model) selectedHabit() (model.Habit, bool) {
	habits := m.dayHabits()
	if len(habits) == 0 {
		return model.Habit{}, false
	}
	return habits[clampCursor(m.Habits.Cursor, len(habits))], true
}

func (m Model) handleHabitsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.Habits.Day = m.Habits.Day.AddDate(0, 0, -1)
		m.Habits.Cursor = 0
	case "l", "right":
		m.Habits.Day = m.Habits.Day.AddDate(0, 0, 1)
		m.Habits.Cursor = 0
	case "t":
		m.Habits.Day = calendar.StartOfDay(m.now())
		m.Habits.Cursor = 0
	case "up", "k":
		if m.Habits.Cursor > 0 {
			m.Habits.Cursor--
		}
	case "down", "j":
		if m.Habits.Cursor < len(m.dayHabits())-1 {
			m.Habits.Cursor++
		}
	case " ", "enter":
		if h, ok := m.selectedHabit(); ok {
			text := "checked: " + h.Name
			if h.Completed {
				text = "unchecked: " + h.Name
			}
			m.applyMutation(m.Planner.Habits.ToggleComplete(h.ID), text)
		}
	case "x":
		if h, ok := m.selectedHabit(); ok {
			m.applyMutation(m.Planner.Habits.Delete(h.ID), "deleted habit: "+h.Name)
		}
	}
	m.Habits.Cursor = clampCursor(m.Habits.Cursor, len(m.dayHabits()))
	return m
}

func (m Model) renderHabitsView() string {
	now := m.now()
	habits := m.dayHabits()
	cursor := clampCursor(m.Habits.Cursor, len(habits))
	data := views.HabitsData{
		Day:     m.Habits.Day.Format("Mon 02 Jan 2006"),
		IsToday: calendar.IsToday(m.Habits.Day, now),
	}
	for i, h := range habits {
		data.Habits = append(data.Habits, views.HabitLine{
			ID:        h.ID,
			Name:      h.Name,
			Type:      string(h.Type),
			Target:    fmt.Sprintf("%g %s", h.Target, h.Unit),
			Completed: h.Completed,
			Selected:  i == cursor,
		})
	}

	all := m.Planner.Habits.All()
	days := progress.HabitDays(all, now, m.cfg.HabitHistoryDays)
	for _, d := range days {
		data.History = append(data.History, m.progressLine(d.Date.Format("Mon 02"), d.Progress))
	}
	data.Average = int(progress.AverageRate(days)*100 + 0.5)
	for _, s := range progress.ByHabit(all, now) {
		data.Streaks = append(data.Streaks, views.HabitStreakLine{Name: s.Name, Done: s.Done, Days: s.Days, Streak: s.Streak})
	}
	return views.RenderHabits(data)
}
