package codec

import (
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
)

type taskRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	DueDate     string `json:"dueDate"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
	Description string `json:"description,omitempty"`
}

func Tasks(loc *time.Location) List[model.Task, taskRecord] {
	return List[model.Task, taskRecord]{
		loc: locOrLocal(loc),
		to: func(t model.Task) taskRecord {
			return taskRecord{
				ID:          t.ID,
				Name:        t.Name,
				Subject:     t.Subject,
				DueDate:     formatTime(t.DueDate),
				Type:        string(t.Type),
				Priority:    string(t.Priority),
				Completed:   t.Completed,
				CreatedAt:   formatTime(t.CreatedAt),
				Description: t.Description,
			}
		},
		from: func(r taskRecord, loc *time.Location) (model.Task, error) {
			due, err := parseTime("dueDate", r.DueDate, loc)
			if err != nil {
				return model.Task{}, err
			}
			created, err := parseTime("createdAt", r.CreatedAt, loc)
			if err != nil {
				return model.Task{}, err
			}
			return model.Task{
				ID:          r.ID,
				Name:        r.Name,
				Subject:     r.Subject,
				DueDate:     due,
				Type:        model.TaskType(r.Type),
				Priority:    model.Priority(r.Priority),
				Completed:   r.Completed,
				CreatedAt:   created,
				Description: r.Description,
			}, nil
		},
	}
}

type subjectRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Code      string `json:"code"`
	Professor string `json:"professor,omitempty"`
	Credits   *int   `json:"credits,omitempty"`
	Classroom string `json:"classroom,omitempty"`
}

func Subjects() List[model.Subject, subjectRecord] {
	return List[model.Subject, subjectRecord]{
		loc: time.Local,
		to: func(s model.Subject) subjectRecord {
			return subjectRecord(s)
		},
		from: func(r subjectRecord, _ *time.Location) (model.Subject, error) {
			return model.Subject(r), nil
		},
	}
}

type noteRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Subject   string `json:"subject,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Pinned    bool   `json:"pinned"`
}

func Notes(loc *time.Location) List[model.Note, noteRecord] {
	return List[model.Note, noteRecord]{
		loc: locOrLocal(loc),
		to: func(n model.Note) noteRecord {
			return noteRecord{
				ID:        n.ID,
				Title:     n.Title,
				Content:   n.Content,
				Subject:   n.Subject,
				CreatedAt: formatTime(n.CreatedAt),
				UpdatedAt: formatTime(n.UpdatedAt),
				Pinned:    n.Pinned,
			}
		},
		from: func(r noteRecord, loc *time.Location) (model.Note, error) {
			created, err := parseTime("createdAt", r.CreatedAt, loc)
			if err != nil {
				return model.Note{}, err
			}
			updated, err := parseTime("updatedAt", r.UpdatedAt, loc)
			if err != nil {
				return model.Note{}, err
			}
			return model.Note{
				ID:        r.ID,
				Title:     r.Title,
				Content:   r.Content,
				Subject:   r.Subject,
				CreatedAt: created,
				UpdatedAt: updated,
				Pinned:    r.Pinned,
			}, nil
		},
	}
}

type habitRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Target    float64 `json:"target"`
	Unit      string  `json:"unit"`
	Completed bool    `json:"completed"`
	Date      string  `json:"date"`
}

func Habits(loc *time.Location) List[model.Habit, habitRecord] {
	return List[model.Habit, habitRecord]{
		loc: locOrLocal(loc),
		to: func(h model.Habit) habitRecord {
			return habitRecord{
				ID:        h.ID,
				Name:      h.Name,
				Type:      string(h.Type),
				Target:    h.Target,
				Unit:      h.Unit,
				Completed: h.Completed,
				Date:      formatTime(h.Date),
			}
		},
		from: func(r habitRecord, loc *time.Location) (model.Habit, error) {
			date, err := parseTime("date", r.Date, loc)
			if err != nil {
				return model.Habit{}, err
			}
			return model.Habit{
				ID:        r.ID,
				Name:      r.Name,
				Type:      model.HabitType(r.Type),
				Target:    r.Target,
				Unit:      r.Unit,
				Completed: r.Completed,
				Date:      date,
			}, nil
		},
	}
}

type eventRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Subject     string `json:"subject,omitempty"`
	Description string `json:"description,omitempty"`
}

func Events(loc *time.Location) List[model.AcademicEvent, eventRecord] {
	return List[model.AcademicEvent, eventRecord]{
		loc: locOrLocal(loc),
		to: func(e model.AcademicEvent) eventRecord {
			return eventRecord{
				ID:          e.ID,
				Title:       e.Title,
				Date:        formatTime(e.Date),
				Type:        string(e.Type),
				Subject:     e.Subject,
				Description: e.Description,
			}
		},
		from: func(r eventRecord, loc *time.Location) (model.AcademicEvent, error) {
			date, err := parseTime("date", r.Date, loc)
			if err != nil {
				return model.AcademicEvent{}, err
			}
			return model.AcademicEvent{
				ID:          r.ID,
				Title:       r.Title,
				Date:        date,
				Type:        model.EventType(r.Type),
				Subject:     r.Subject,
				Description: r.Description,
			}, nil
		},
	}
}
