package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Urgency levels as rendered badges. Keys match calendar.Level strings.
var urgencyStyles = map[string]lipgloss.Style{
	"overdue":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	"today":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	"tomorrow": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"soon":     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	todayStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

type TaskLine struct {
	ID        string
	Name      string
	Subject   string
	Due       string
	Level     string
	Badge     string
	Priority  string
	Completed bool
	Selected  bool
}

type ProgressLine struct {
	Label     string
	Bar       string
	Completed int
	Total     int
	Percent   int
}

type ProfileSelectorData struct {
	Error string
}

type DashboardData struct {
	Profile   string
	Overall   *ProgressLine
	Week      ProgressLine
	Pressure  string
	Overdue   []TaskLine
	Upcoming  []TaskLine
	Subjects  []ProgressLine
	GoalGap   int
	NextEvent string
}

type WeekDayData struct {
	Label   string
	IsToday bool
	Tasks   []TaskLine
}

type WeekData struct {
	Range string
	Days  []WeekDayData
}

type NoteLine struct {
	ID       string
	Title    string
	Subject  string
	Updated  string
	Pinned   bool
	Selected bool
}

type NotesData struct {
	Pinned   []NoteLine
	Others   []NoteLine
	Selected *NoteLine
	Content  string
}

type HabitLine struct {
	ID        string
	Name      string
	Type      string
	Target    string
	Completed bool
	Selected  bool
}

type HabitStreakLine struct {
	Name   string
	Done   int
	Days   int
	Streak int
}

type HabitsData struct {
	Day     string
	IsToday bool
	Habits  []HabitLine
	History []ProgressLine
	Average int
	Streaks []HabitStreakLine
}

type EventLine struct {
	ID      string
	Title   string
	Date    string
	Type    string
	Subject string
	Badge   string
	Level   string
}

type CalendarData struct {
	Month     string
	Grid      string
	TableView string
	Upcoming  []EventLine
}

type ProgressPanelData struct {
	Period     string
	Overall    ProgressLine
	GoalGap    int
	BySubject  []ProgressLine
	ByPriority []ProgressLine
	ByType     []ProgressLine
	Pressure   string
}

// SubjectLine is one subject card. Code and Credits are shown for
// universities, Classroom for schools.
type SubjectLine struct {
	Name      string
	Color     string
	Code      string
	Professor string
	Credits   string
	Classroom string
	Total     int
	Completed int
	Pending   int
	Overdue   int
	Selected  bool
}

type SubjectsData struct {
	Profile  string
	Subjects []SubjectLine
	// Tasks and NoteCount describe the selected subject.
	Tasks     []TaskLine
	NoteCount int
}

type CompletedData struct {
	Total int
	Tasks []TaskLine
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

type AlertLine struct {
	Title string
	Due   string
	Kind  string
}

func RenderProfileSelector(data ProfileSelectorData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Bienvenido a studyd") + "\n\n")
	b.WriteString("choose a profile to start:\n")
	b.WriteString("  [u] university: credits, course codes, semester progress\n")
	b.WriteString("  [s] school: classrooms, weekly progress per subject\n\n")
	b.WriteString(mutedStyle.Render("the choice is stored and can only be changed with a reset"))
	if data.Error != "" {
		b.WriteString("\n" + errorStyle.Render(data.Error))
	}
	return b.String()
}

func RenderDashboard(data DashboardData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("dashboard (%s)", data.Profile)) + "\n")
	if data.Overall != nil {
		b.WriteString(renderProgressLine(*data.Overall) + "\n")
	}
	b.WriteString(renderProgressLine(data.Week) + "\n")
	if data.GoalGap > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d%% below the completion goal", data.GoalGap)) + "\n")
	}
	if data.Pressure != "" {
		b.WriteString("backlog pressure: " + data.Pressure + "\n")
	}

	renderTaskSection(&b, "overdue", data.Overdue)
	renderTaskSection(&b, "upcoming", data.Upcoming)

	b.WriteString("\n" + sectionStyle.Render("subjects") + "\n")
	if len(data.Subjects) == 0 {
		b.WriteString("  (no tasks yet)\n")
	}
	for _, s := range data.Subjects {
		b.WriteString(renderProgressLine(s) + "\n")
	}
	if data.NextEvent != "" {
		b.WriteString("\nnext event: " + data.NextEvent)
	}
	return strings.TrimSpace(b.String())
}

func RenderWeek(data WeekData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("week "+data.Range) + "\n")
	b.WriteString(mutedStyle.Render("actions: [h/l]week [t]this week [j/k]move [space]done") + "\n")
	for _, day := range data.Days {
		label := day.Label
		if day.IsToday {
			label = todayStyle.Render(label + " (hoy)")
		}
		b.WriteString("\n" + label + "\n")
		if len(day.Tasks) == 0 {
			b.WriteString(mutedStyle.Render("  -") + "\n")
			continue
		}
		for _, t := range day.Tasks {
			b.WriteString(renderTaskLine(t) + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderNotes(data NotesData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("notes") + "\n")
	b.WriteString(mutedStyle.Render("actions: [j/k]move [p]pin [x]delete") + "\n")
	renderNoteSection(&b, "pinned", data.Pinned)
	renderNoteSection(&b, "all notes", data.Others)
	return strings.TrimSpace(b.String())
}

// RenderNoteDetail shows the selected note with its rendered content.
func RenderNoteDetail(data NotesData) string {
	if data.Selected == nil {
		return "note:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString(sectionStyle.Render(data.Selected.Title) + "\n")
	meta := data.Selected.Updated
	if data.Selected.Subject != "" {
		meta = data.Selected.Subject + " | " + meta
	}
	b.WriteString(mutedStyle.Render(meta) + "\n\n")
	if strings.TrimSpace(data.Content) == "" {
		b.WriteString(mutedStyle.Render("(empty)"))
	} else {
		b.WriteString(data.Content)
	}
	return b.String()
}

func RenderHabits(data HabitsData) string {
	var b strings.Builder
	title := "habits " + data.Day
	if data.IsToday {
		title += " (hoy)"
	}
	b.WriteString(sectionStyle.Render(title) + "\n")
	b.WriteString(mutedStyle.Render("actions: [h/l]day [t]today [j/k]move [space]check [x]delete") + "\n\n")
	if len(data.Habits) == 0 {
		b.WriteString("  (no habits for this day)\n")
	}
	for _, h := range data.Habits {
		cursor := " "
		if h.Selected {
			cursor = ">"
		}
		box := "[ ]"
		name := h.Name
		if h.Completed {
			box = "[x]"
			name = doneStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s %s\n", cursor, box, name, mutedStyle.Render(h.Type), h.Target))
	}

	b.WriteString("\n" + sectionStyle.Render("last 7 days") + "\n")
	for _, d := range data.History {
		b.WriteString(renderProgressLine(d) + "\n")
	}
	b.WriteString(fmt.Sprintf("average: %d%%\n", data.Average))

	if len(data.Streaks) > 0 {
		b.WriteString("\n" + sectionStyle.Render("streaks") + "\n")
		for _, s := range data.Streaks {
			b.WriteString(fmt.Sprintf("  %s: %d day(s), %d/%d done\n", s.Name, s.Streak, s.Done, s.Days))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderCalendar(data CalendarData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("calendar "+data.Month) + "\n")
	b.WriteString(mutedStyle.Render("actions: [h/l]month [t]this month [j/k]events [x]delete") + "\n\n")
	b.WriteString(data.Grid + "\n\n")
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderUpcomingEvents(events []EventLine) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("upcoming events") + "\n")
	if len(events) == 0 {
		b.WriteString("(nothing scheduled)")
		return b.String()
	}
	for _, e := range events {
		b.WriteString(fmt.Sprintf("%s %s %s\n", e.Date, badge(e.Level, e.Badge), e.Title))
		if e.Subject != "" {
			b.WriteString(mutedStyle.Render("   "+e.Type+" | "+e.Subject) + "\n")
		} else {
			b.WriteString(mutedStyle.Render("   "+e.Type) + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderProgressPanel(data ProgressPanelData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("progress ("+data.Period+")") + "\n")
	b.WriteString(mutedStyle.Render("actions: [p]period") + "\n\n")
	b.WriteString(renderProgressLine(data.Overall) + "\n")
	if data.GoalGap > 0 {
		b.WriteString(fmt.Sprintf("goal: %d%% to go\n", data.GoalGap))
	} else {
		b.WriteString("goal: reached\n")
	}
	if data.Pressure != "" {
		b.WriteString("backlog pressure: " + data.Pressure + "\n")
	}
	renderProgressSection(&b, "by subject", data.BySubject)
	renderProgressSection(&b, "by priority", data.ByPriority)
	renderProgressSection(&b, "by type", data.ByType)
	return strings.TrimSpace(b.String())
}

func RenderSubjects(data SubjectsData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("subjects ("+data.Profile+")") + "\n")
	b.WriteString(mutedStyle.Render("actions: [j/k]move [x]delete | add with /subject") + "\n\n")
	if len(data.Subjects) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, s := range data.Subjects {
		cursor := " "
		if s.Selected {
			cursor = ">"
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("●")
		var meta []string
		for _, v := range []string{s.Code, s.Classroom, s.Credits} {
			if v != "" {
				meta = append(meta, v)
			}
		}
		if s.Professor != "" {
			meta = append(meta, "Prof: "+s.Professor)
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, dot, s.Name, mutedStyle.Render(strings.Join(meta, " | "))))
		b.WriteString(fmt.Sprintf("    total %d | done %d | pending %d | overdue %d\n", s.Total, s.Completed, s.Pending, s.Overdue))
	}
	return strings.TrimSpace(b.String())
}

func RenderSubjectDetail(data SubjectsData) string {
	var b strings.Builder
	for _, s := range data.Subjects {
		if s.Selected {
			b.WriteString(sectionStyle.Render(s.Name) + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("notes: %d\n", data.NoteCount))
	renderTaskSection(&b, "tasks", data.Tasks)
	return strings.TrimSpace(b.String())
}

func RenderCompleted(data CompletedData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("completed (%d)", data.Total)) + "\n")
	b.WriteString(mutedStyle.Render("actions: [j/k]move [space]reopen [x]delete") + "\n")
	renderTaskSection(&b, "done", data.Tasks)
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return "command:\n" + input
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderAlerts(alerts []AlertLine) string {
	if len(alerts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(sectionStyle.Render("alerts") + "\n")
	for _, a := range alerts {
		b.WriteString(fmt.Sprintf("! [%s] %s due %s\n", a.Kind, a.Title, a.Due))
	}
	return strings.TrimSpace(b.String())
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal and %s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderTaskSection(b *strings.Builder, title string, tasks []TaskLine) {
	b.WriteString("\n" + sectionStyle.Render(title) + "\n")
	if len(tasks) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, t := range tasks {
		b.WriteString(renderTaskLine(t) + "\n")
	}
}

func renderTaskLine(t TaskLine) string {
	cursor := " "
	if t.Selected {
		cursor = ">"
	}
	box := "[ ]"
	name := t.Name
	if t.Completed {
		box = "[x]"
		name = doneStyle.Render(name)
	}
	line := fmt.Sprintf("%s %s %s", cursor, box, name)
	if t.Badge != "" {
		line += " " + badge(t.Level, t.Badge)
	}
	meta := strings.TrimSpace(strings.Join([]string{t.Subject, t.Due, t.Priority}, " "))
	if meta != "" {
		line += " " + mutedStyle.Render(meta)
	}
	return line
}

func renderNoteSection(b *strings.Builder, title string, notes []NoteLine) {
	b.WriteString("\n" + sectionStyle.Render(title) + "\n")
	if len(notes) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, n := range notes {
		cursor := " "
		if n.Selected {
			cursor = ">"
		}
		pin := " "
		if n.Pinned {
			pin = "*"
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, pin, n.Title, mutedStyle.Render(n.Subject)))
	}
}

func renderProgressSection(b *strings.Builder, title string, lines []ProgressLine) {
	if len(lines) == 0 {
		return
	}
	b.WriteString("\n" + sectionStyle.Render(title) + "\n")
	for _, l := range lines {
		b.WriteString(renderProgressLine(l) + "\n")
	}
}

func renderProgressLine(p ProgressLine) string {
	return fmt.Sprintf("%-14s %s %3d%% (%d/%d)", truncate(p.Label, 14), p.Bar, p.Percent, p.Completed, p.Total)
}

func badge(level, label string) string {
	style, ok := urgencyStyles[level]
	if !ok {
		return mutedStyle.Render("[" + label + "]")
	}
	return style.Render("[" + label + "]")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
