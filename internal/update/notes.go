package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/views"
)

// orderedNotes lists pinned notes first. Storage order is untouched.
func (m Model) orderedNotes() []model.Note {
	return append(m.Planner.Notes.Pinned(), m.Planner.Notes.Unpinned()...)
}

func (m Model) selectedNote() (model.Note, bool) {
	notes := m.orderedNotes()
	if len(notes) == 0 {
		return model.Note{}, false
	}
	return notes[clampCursor(m.Notes.Cursor, len(notes))], true
}

func (m Model) handleNotesKey(msg tea.KeyMsg) Model {
	n := len(m.orderedNotes())
	switch msg.String() {
	case "up", "k":
		if m.Notes.Cursor > 0 {
			m.Notes.Cursor--
			m.noteViewport.GotoTop()
		}
	case "down", "j":
		if m.Notes.Cursor < n-1 {
			m.Notes.Cursor++
			m.noteViewport.GotoTop()
		}
	case "pgdown", "ctrl+d":
		m.noteViewport.HalfViewDown()
	case "pgup", "ctrl+u":
		m.noteViewport.HalfViewUp()
	case "p":
		if note, ok := m.selectedNote(); ok {
			text := "pinned: " + note.Title
			if note.Pinned {
				text = "unpinned: " + note.Title
			}
			m.applyMutation(m.Planner.Notes.TogglePin(note.ID), text)
		}
	case "x":
		if note, ok := m.selectedNote(); ok {
			m.applyMutation(m.Planner.Notes.Delete(note.ID), "deleted note: "+note.Title)
		}
	}
	m.Notes.Cursor = clampCursor(m.Notes.Cursor, len(m.orderedNotes()))
	return m
}

func (m Model) notesData() views.NotesData {
	notes := m.orderedNotes()
	cursor := clampCursor(m.Notes.Cursor, len(notes))
	loc := m.now().Location()
	var data views.NotesData
	for i, n := range notes {
		line := views.NoteLine{
			ID:       n.ID,
			Title:    n.Title,
			Subject:  n.Subject,
			Updated:  n.UpdatedAt.In(loc).Format("02 Jan 2006 15:04"),
			Pinned:   n.Pinned,
			Selected: i == cursor,
		}
		if n.Pinned {
			data.Pinned = append(data.Pinned, line)
		} else {
			data.Others = append(data.Others, line)
		}
		if i == cursor {
			selected := line
			data.Selected = &selected
			data.Content = n.Content
		}
	}
	return data
}

func (m Model) renderNotesView() string {
	return views.RenderNotes(m.notesData())
}

func (m Model) renderNoteDetail() string {
	data := m.notesData()
	data.Content = m.noteViewport.View()
	return views.RenderNoteDetail(data)
}
