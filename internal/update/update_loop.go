package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/views"
)

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.Scheduler != nil {
		m.rescheduleAlerts()
		cmds = append(cmds, waitForAlertCmd(m.Scheduler.C()))
	}
	if m.Rollover != nil {
		cmds = append(cmds, waitForRolloverCmd(m.Rollover.C()))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}

		if m.Planner.Profile.NeedsSelection() {
			return m.handleProfileKey(typed)
		}

		if m.Palette.Active {
			if keyStr == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			next := m.handlePaletteKey(typed)
			return next, nil
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			return m, nil
		case m.Keys.Week:
			m.CurrentView = ViewWeek
			return m, nil
		case m.Keys.Notes:
			m.CurrentView = ViewNotes
			return m, nil
		case m.Keys.Habits:
			m.CurrentView = ViewHabits
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Progress:
			m.CurrentView = ViewProgress
			return m, nil
		case m.Keys.Subjects:
			m.CurrentView = ViewSubjects
			return m, nil
		case m.Keys.Completed:
			m.CurrentView = ViewCompleted
			return m, nil
		case "tab":
			m.CurrentView = nextView(m.CurrentView)
			return m, nil
		case "a":
			for _, a := range m.AlertLog {
				m.AlertAck[a.ID] = true
			}
			m.Status = StatusBar{Text: "alerts acknowledged"}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewDashboard:
			return m.handleDashboardKey(typed), nil
		case ViewWeek:
			return m.handleWeekKey(typed), nil
		case ViewNotes:
			return m.handleNotesKey(typed), nil
		case ViewHabits:
			return m.handleHabitsKey(typed), nil
		case ViewCalendar:
			return m.handleCalendarKey(typed), nil
		case ViewProgress:
			return m.handleProgressKey(typed), nil
		case ViewSubjects:
			return m.handleSubjectsKey(typed), nil
		case ViewCompleted:
			return m.handleCompletedKey(typed), nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case AlertDueMsg:
		m.applyAlert(typed.Alert)
		if m.Scheduler != nil {
			return m, waitForAlertCmd(m.Scheduler.C())
		}
		return m, nil
	case AcknowledgeAlertMsg:
		if typed.ID != "" {
			m.AlertAck[typed.ID] = true
			m.Status = StatusBar{Text: fmt.Sprintf("alert acknowledged: %s", typed.ID), IsError: false}
		}
		return m, nil
	case RolloverMsg:
		m.rollover(typed.Tick)
		if m.Rollover != nil {
			return m, waitForRolloverCmd(m.Rollover.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var target model.Profile
	switch msg.String() {
	case "u":
		target = model.ProfileUniversity
	case "s":
		target = model.ProfileSchool
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}
	m.applyMutation(m.Planner.Profile.Select(target), "profile: "+target.String())
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	if m.Planner.Profile.NeedsSelection() {
		return views.RenderApp(views.AppData{
			Header:      "studyd",
			LeftPane:    views.RenderProfileSelector(views.ProfileSelectorData{}),
			StatusLine:  status,
			StatusError: m.Status.IsError,
			Warning:     m.unsavedWarning(),
			Footer:      "keys: u university | s school | q quit",
		})
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewDashboard:
		leftPane = m.renderDashboardView()
		rightPane = m.renderUpcomingEvents()
	case ViewWeek:
		leftPane = m.renderWeekView()
	case ViewNotes:
		leftPane = m.renderNotesView()
		rightPane = m.renderNoteDetail()
	case ViewHabits:
		leftPane = m.renderHabitsView()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderUpcomingEvents()
	case ViewProgress:
		leftPane = m.renderProgressView()
	case ViewSubjects:
		leftPane = m.renderSubjectsView()
		rightPane = m.renderSubjectDetail()
	case ViewCompleted:
		leftPane = m.renderCompletedView()
	}
	rightPane = joinPanes(rightPane, m.renderCommandPalette(), m.renderHelpIfVisible())

	notificationView := joinPanes(m.renderAlertsView(), m.renderNotificationsView())

	names := make([]string, 0, len(Views()))
	for _, v := range Views() {
		names = append(names, string(v))
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("studyd | profile: %s | view: %s", m.Planner.Profile.Profile(), m.CurrentView),
		Tabs:         views.RenderTabs(names, string(m.CurrentView)),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Warning:      m.unsavedWarning(),
		Notification: notificationView,
		Footer:       fmt.Sprintf("keys: %s-%s views | / cmd | a ack alerts | %s help | %s quit", m.Keys.Dashboard, m.Keys.Completed, m.Keys.Help, m.Keys.Quit),
	})
}

// syncBubbleData pushes store state into the bubbles components after every
// update.
func (m *Model) syncBubbleData() {
	rows := m.calendarRows()
	m.calendarTable.SetRows(rows)
	if len(rows) > 0 {
		m.calendarTable.SetCursor(clampCursor(m.Calendar.Cursor, len(rows)))
	}

	if m.CurrentView == ViewNotes {
		data := m.notesData()
		m.noteViewport.SetContent(views.RenderMarkdown(data.Content, m.cfg.NoteWidth))
	}
}

func joinPanes(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

func nextView(v View) View {
	all := Views()
	for i, candidate := range all {
		if candidate == v {
			return all[(i+1)%len(all)]
		}
	}
	return ViewDashboard
}

func isKnownView(v View) bool {
	for _, candidate := range Views() {
		if candidate == v {
			return true
		}
	}
	return false
}
