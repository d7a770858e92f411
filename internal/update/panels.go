package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/studyd/internal/views"
)

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return views.RenderCommandPalette(true, m.commandInput.View())
}

func (m Model) renderNotificationsView() string {
	if len(m.Notification) == 0 {
		return ""
	}
	n := m.Notification[len(m.Notification)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) renderAlertsView() string {
	lines := make([]views.AlertLine, 0, 3)
	for i := len(m.AlertLog) - 1; i >= 0 && len(lines) < 3; i-- {
		a := m.AlertLog[i]
		if m.AlertAck[a.ID] {
			continue
		}
		lines = append(lines, views.AlertLine{
			Title: a.Title,
			Kind:  string(a.Source),
			Due:   a.DueAt.In(m.now().Location()).Format("Mon 02 Jan 15:04"),
		})
	}
	return views.RenderAlerts(lines)
}

// applyMutation reports the outcome of a store write. A persist failure keeps
// the in-memory change and raises the unsaved warning.
func (m *Model) applyMutation(err error, okText string) {
	switch {
	case err == nil:
		m.Status = StatusBar{Text: okText}
	case isPersistError(err):
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("%s (not saved: %v)", okText, err), IsError: true}
		m.notify("Not saved", err.Error(), "error")
	default:
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
	m.refreshSaveStatus()
}

func (m *Model) refreshSaveStatus() {
	_, dirty := m.Planner.SaveStatus()
	m.Unsaved = dirty
}

func (m Model) unsavedWarning() string {
	if !m.Unsaved {
		return ""
	}
	st, ok := m.Planner.SaveStatus()
	if !ok {
		return "not saved"
	}
	return "not saved: " + st.Key
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notification = append(m.Notification, n)
	if len(m.Notification) > 40 {
		m.Notification = m.Notification[len(m.Notification)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}
