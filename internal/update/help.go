package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/studyd/internal/commands"
	"github.com/sandeepkv93/studyd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	names := make([]string, 0, len(commands.Types()))
	for _, t := range commands.Types() {
		names = append(names, string(t))
	}
	plain = append(plain, "commands: "+strings.Join(names, " "))
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Dashboard + "-" + m.Keys.Completed, Action: "switch view"},
		{Key: "tab", Action: "next view"},
		{Key: "/", Action: "open command palette"},
		{Key: "a", Action: "acknowledge alerts"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewDashboard:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "toggle task done"},
			{Key: "x", Action: "delete task"},
		}
	case ViewWeek:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next week"},
			{Key: "t", Action: "this week"},
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "toggle task done"},
			{Key: "x", Action: "delete task"},
		}
	case ViewNotes:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "pgup/pgdown", Action: "scroll note"},
			{Key: "p", Action: "pin/unpin"},
			{Key: "x", Action: "delete note"},
		}
	case ViewHabits:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next day"},
			{Key: "t", Action: "today"},
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "check/uncheck"},
			{Key: "x", Action: "delete habit"},
		}
	case ViewCalendar:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next month"},
			{Key: "t", Action: "this month"},
			{Key: "j/k", Action: "move event cursor"},
			{Key: "x", Action: "delete event"},
		}
	case ViewProgress:
		return []KeyBinding{
			{Key: "p", Action: "cycle week/month/all"},
		}
	case ViewSubjects:
		return []KeyBinding{
			{Key: "j/k", Action: "select subject"},
			{Key: "x", Action: "delete subject"},
		}
	case ViewCompleted:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "reopen task"},
			{Key: "x", Action: "delete task"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
