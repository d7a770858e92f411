package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
	studyprogress "github.com/sandeepkv93/studyd/internal/progress"
	"github.com/sandeepkv93/studyd/internal/scheduler"
	"github.com/sandeepkv93/studyd/internal/store"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewWeek      View = "Week"
	ViewNotes     View = "Notes"
	ViewHabits    View = "Habits"
	ViewCalendar  View = "Calendar"
	ViewProgress  View = "Progress"
	ViewSubjects  View = "Subjects"
	ViewCompleted View = "Completed"
)

// Views lists the tabs in key order.
func Views() []View {
	return []View{ViewDashboard, ViewWeek, ViewNotes, ViewHabits, ViewCalendar, ViewProgress, ViewSubjects, ViewCompleted}
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Week      string
	Notes     string
	Habits    string
	Calendar  string
	Progress  string
	Subjects  string
	Completed string
	Help      string
	Quit      string
}

type Model struct {
	CurrentView View
	Planner     *store.Planner
	Scheduler   *scheduler.Engine
	Rollover    *scheduler.Rollover

	Week         WeekState
	Notes        NotesState
	Habits       HabitsState
	Calendar     CalendarState
	Progress     ProgressState
	Dashboard    DashboardState
	Subjects     SubjectsState
	Completed    CompletedState
	Palette      CommandPaletteState
	HelpVisible  bool
	AlertLog     []model.Alert
	AlertAck     map[string]bool
	Notification []Notification

	DesktopEnabled bool
	notifier       DesktopNotifier
	cfg            RuntimeConfig

	Status StatusBar
	// Unsaved is set while any slot holds changes the backend rejected.
	Unsaved   bool
	Keys      GlobalKeyMap
	Quitting  bool
	LastError error

	commandInput  textinput.Model
	calendarTable table.Model
	noteViewport  viewport.Model
	progressBar   progress.Model
	helpModel     help.Model
}

type DashboardState struct {
	Cursor int
}

type SubjectsState struct {
	Cursor int
}

type CompletedState struct {
	Cursor int
}

type WeekState struct {
	Start  time.Time
	Cursor int
}

type NotesState struct {
	Cursor int
}

type HabitsState struct {
	Day    time.Time
	Cursor int
}

type CalendarState struct {
	Month  time.Time
	Cursor int
}

type ProgressState struct {
	Period studyprogress.Period
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AlertDueMsg struct {
	Alert model.Alert
}

type RolloverMsg struct {
	Tick scheduler.Tick
}

type AcknowledgeAlertMsg struct {
	ID string
}

// NewModel builds a model over planner without alerts or rollover.
func NewModel(planner *store.Planner, cfg RuntimeConfig) Model {
	return NewModelWithRuntime(planner, nil, nil, nil, cfg)
}

func NewModelWithRuntime(planner *store.Planner, engine *scheduler.Engine, rollover *scheduler.Rollover, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	cfg = cfg.withDefaults()
	now := planner.Now()
	m := Model{
		CurrentView:    ViewDashboard,
		Planner:        planner,
		Scheduler:      engine,
		Rollover:       rollover,
		Week:           WeekState{Start: calendar.WeekStart(now)},
		Habits:         HabitsState{Day: calendar.StartOfDay(now)},
		Calendar:       CalendarState{Month: calendar.MonthStart(now)},
		Progress:       ProgressState{Period: studyprogress.PeriodWeek},
		AlertAck:       make(map[string]bool),
		DesktopEnabled: cfg.DesktopNotifications,
		notifier:       NoopDesktopNotifier{},
		cfg:            cfg,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Week:      "2",
			Notes:     "3",
			Habits:    "4",
			Calendar:  "5",
			Progress:  "6",
			Subjects:  "7",
			Completed: "8",
			Help:      "?",
			Quit:      "q",
		},
	}
	if notifier != nil {
		m.notifier = notifier
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 40
	m.commandInput.Placeholder = `add "Ensayo" subject:Historia due:tomorrow`

	cols := []table.Column{
		{Title: "Date", Width: 11},
		{Title: "Type", Width: 10},
		{Title: "Title", Width: 22},
		{Title: "Subject", Width: 12},
	}
	m.calendarTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(8))

	m.noteViewport = viewport.New(42, 16)
	m.progressBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(20), progress.WithoutPercentage())
	m.helpModel = help.New()
}

func (m Model) now() time.Time {
	return m.Planner.Now()
}
