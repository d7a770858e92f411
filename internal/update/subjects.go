package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/views"
)

func (m Model) selectedSubject() (model.Subject, bool) {
	subjects := m.Planner.Subjects.All()
	if len(subjects) == 0 {
		return model.Subject{}, false
	}
	return subjects[clampCursor(m.Subjects.Cursor, len(subjects))], true
}

func (m Model) handleSubjectsKey(msg tea.KeyMsg) Model {
	n := len(m.Planner.Subjects.All())
	switch msg.String() {
	case "up", "k":
		if m.Subjects.Cursor > 0 {
			m.Subjects.Cursor--
		}
	case "down", "j":
		if m.Subjects.Cursor < n-1 {
			m.Subjects.Cursor++
		}
	case "x":
		if s, ok := m.selectedSubject(); ok {
			m.applyMutation(m.Planner.Subjects.Delete(s.ID), "deleted subject: "+s.Name)
			n--
		}
	}
	m.Subjects.Cursor = clampCursor(m.Subjects.Cursor, n)
	return m
}

// subjectsData shows the fields of the active profile's subject shape.
func (m Model) subjectsData() views.SubjectsData {
	now := m.now()
	university := m.Planner.Profile.IsUniversity()
	subjects := m.Planner.Subjects.All()
	cursor := clampCursor(m.Subjects.Cursor, len(subjects))
	data := views.SubjectsData{Profile: m.Planner.Profile.Profile().String()}

	for i, s := range subjects {
		line := views.SubjectLine{
			Name:      s.Name,
			Color:     s.Color,
			Professor: s.Professor,
			Selected:  i == cursor,
		}
		if university {
			line.Code = s.Code
			if s.Credits != nil {
				line.Credits = fmt.Sprintf("%d créditos", *s.Credits)
			}
		} else {
			line.Classroom = s.Classroom
		}
		for _, t := range m.Planner.Tasks.BySubject(s.Name) {
			line.Total++
			switch {
			case t.Completed:
				line.Completed++
			case t.DueDate.Before(now):
				line.Overdue++
				line.Pending++
			default:
				line.Pending++
			}
		}
		data.Subjects = append(data.Subjects, line)

		if i == cursor {
			for _, t := range m.Planner.Tasks.BySubject(s.Name) {
				data.Tasks = append(data.Tasks, taskLine(t, now, false))
			}
			data.NoteCount = len(m.Planner.Notes.BySubject(s.Name))
		}
	}
	return data
}

func (m Model) renderSubjectsView() string {
	return views.RenderSubjects(m.subjectsData())
}

func (m Model) renderSubjectDetail() string {
	data := m.subjectsData()
	if len(data.Subjects) == 0 {
		return ""
	}
	return views.RenderSubjectDetail(data)
}
