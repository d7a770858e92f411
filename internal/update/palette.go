package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/commands"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/store"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, m.paletteHandlers())
	switch {
	case err == nil:
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	case isPersistError(err):
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("%s (not saved: %v)", res.Message, err), IsError: true}
		m.notify("Not saved", err.Error(), "error")
	default:
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	}
	m.refreshSaveStatus()
	m.rescheduleAlerts()
	return m
}

// paletteHandlers binds every command to the planner. Mutations that fail to
// persist still return their message so the status bar can name the change.
func (m *Model) paletteHandlers() commands.Handlers {
	p := m.Planner
	return commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			in, err := a.Input(m.now())
			if err != nil {
				return commands.Result{}, err
			}
			if _, ok := p.Subjects.ByName(in.Subject); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeNotFound, Message: "unknown subject: " + in.Subject}
			}
			t, err := p.Tasks.Add(in)
			return commands.Result{Message: fmt.Sprintf("added task %s: %s", shortID(t.ID), t.Name)}, err
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			t, err := resolve(a.ID, p.Tasks.All(), taskIDOf)
			if err != nil {
				return commands.Result{}, err
			}
			state := "done"
			if t.Completed {
				state = "reopened"
			}
			return commands.Result{Message: state + ": " + t.Name}, p.Tasks.ToggleComplete(t.ID)
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			return deleteByKind(p, a)
		},
		Edit: func(a commands.EditArgs) (commands.Result, error) {
			return editByKind(p, a, m.now())
		},
		Note: func(a commands.NoteArgs) (commands.Result, error) {
			in, err := a.Input()
			if err != nil {
				return commands.Result{}, err
			}
			n, err := p.Notes.Add(in)
			return commands.Result{Message: fmt.Sprintf("added note %s: %s", shortID(n.ID), n.Title)}, err
		},
		Pin: func(a commands.TargetArgs) (commands.Result, error) {
			n, err := resolve(a.ID, p.Notes.All(), noteIDOf)
			if err != nil {
				return commands.Result{}, err
			}
			state := "pinned"
			if n.Pinned {
				state = "unpinned"
			}
			return commands.Result{Message: state + ": " + n.Title}, p.Notes.TogglePin(n.ID)
		},
		Habit: func(a commands.HabitArgs) (commands.Result, error) {
			in, err := a.Input(m.now())
			if err != nil {
				return commands.Result{}, err
			}
			h, err := p.Habits.Add(in)
			return commands.Result{Message: fmt.Sprintf("added habit %s: %s", shortID(h.ID), h.Name)}, err
		},
		Check: func(a commands.TargetArgs) (commands.Result, error) {
			h, err := resolve(a.ID, p.Habits.All(), habitIDOf)
			if err != nil {
				return commands.Result{}, err
			}
			state := "checked"
			if h.Completed {
				state = "unchecked"
			}
			return commands.Result{Message: state + ": " + h.Name}, p.Habits.ToggleComplete(h.ID)
		},
		Event: func(a commands.EventArgs) (commands.Result, error) {
			in, err := a.Input(m.now())
			if err != nil {
				return commands.Result{}, err
			}
			e, err := p.Events.Add(in)
			return commands.Result{Message: fmt.Sprintf("added event %s: %s", shortID(e.ID), e.Title)}, err
		},
		Subject: func(a commands.SubjectArgs) (commands.Result, error) {
			in, err := a.Input(p.Profile.Profile())
			if err != nil {
				return commands.Result{}, err
			}
			if _, ok := p.Subjects.ByName(in.Name); ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "subject already exists: " + in.Name}
			}
			s, err := p.Subjects.Add(in)
			return commands.Result{Message: "added subject: " + s.Name}, err
		},
		Profile: func(a commands.ProfileArgs) (commands.Result, error) {
			return applyProfile(p, a)
		},
	}
}

func applyProfile(p *store.Planner, a commands.ProfileArgs) (commands.Result, error) {
	if a.Action == "reset" {
		return commands.Result{Message: "profile reset"}, p.Profile.Reset()
	}
	target := a.Profile()
	if err := p.Profile.Select(target); err != nil {
		if isPersistError(err) {
			return commands.Result{Message: "profile: " + target.String()}, err
		}
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error(), Err: err}
	}
	return commands.Result{Message: "profile: " + target.String()}, nil
}

func deleteByKind(p *store.Planner, a commands.DeleteArgs) (commands.Result, error) {
	switch a.Kind {
	case commands.KindTask:
		t, err := resolve(a.ID, p.Tasks.All(), taskIDOf)
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: "deleted task: " + t.Name}, p.Tasks.Delete(t.ID)
	case commands.KindNote:
		n, err := resolve(a.ID, p.Notes.All(), noteIDOf)
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: "deleted note: " + n.Title}, p.Notes.Delete(n.ID)
	case commands.KindHabit:
		h, err := resolve(a.ID, p.Habits.All(), habitIDOf)
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: "deleted habit: " + h.Name}, p.Habits.Delete(h.ID)
	case commands.KindEvent:
		e, err := resolve(a.ID, p.Events.All(), eventIDOf)
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: "deleted event: " + e.Title}, p.Events.Delete(e.ID)
	case commands.KindSubject:
		s, err := resolve(a.ID, p.Subjects.All(), subjectIDOf)
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: "deleted subject: " + s.Name}, p.Subjects.Delete(s.ID)
	default:
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "unknown kind: " + string(a.Kind)}
	}
}

func editByKind(p *store.Planner, a commands.EditArgs, now time.Time) (commands.Result, error) {
	switch a.Kind {
	case commands.KindTask:
		t, err := resolve(a.ID, p.Tasks.All(), taskIDOf)
		if err != nil {
			return commands.Result{}, err
		}
		patch, err := a.TaskPatch(now)
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: "updated task: " + t.Name}, p.Tasks.Update(t.ID, patch)
	case commands.KindNote:
		n, err := resolve(a.ID, p.Notes.All(), noteIDOf)
		if err != nil {
			return commands.Result{}, err
		}
		patch, err := a.NotePatch()
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: "updated note: " + n.Title}, p.Notes.Update(n.ID, patch)
	case commands.KindHabit:
		h, err := resolve(a.ID, p.Habits.All(), habitIDOf)
		if err != nil {
			return commands.Result{}, err
		}
		patch, err := a.HabitPatch(now)
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: "updated habit: " + h.Name}, p.Habits.Update(h.ID, patch)
	case commands.KindEvent:
		e, err := resolve(a.ID, p.Events.All(), eventIDOf)
		if err != nil {
			return commands.Result{}, err
		}
		patch, err := a.EventPatch(now)
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: "updated event: " + e.Title}, p.Events.Update(e.ID, patch)
	case commands.KindSubject:
		s, err := resolve(a.ID, p.Subjects.All(), subjectIDOf)
		if err != nil {
			return commands.Result{}, err
		}
		patch, err := a.SubjectPatch(p.Profile.Profile())
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: "updated subject: " + s.Name}, p.Subjects.Update(s.ID, patch)
	default:
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "unknown kind: " + string(a.Kind)}
	}
}

// resolve finds the item whose id is prefix or uniquely starts with it.
func resolve[T any](prefix string, items []T, idOf func(T) string) (T, error) {
	var zero T
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = idOf(it)
	}
	id, err := commands.ResolveID(prefix, ids)
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if idOf(it) == id {
			return it, nil
		}
	}
	return zero, &commands.CommandError{Code: commands.ErrCodeNotFound, Message: "no item with id " + prefix}
}

func taskIDOf(t model.Task) string           { return t.ID }
func noteIDOf(n model.Note) string           { return n.ID }
func habitIDOf(h model.Habit) string         { return h.ID }
func eventIDOf(e model.AcademicEvent) string { return e.ID }
func subjectIDOf(s model.Subject) string     { return s.ID }
