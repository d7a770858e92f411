package commands

import (
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
)

const defaultSubjectColor = "#6B7280"

func wrapInvalid(err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error(), Err: err}
}

// Input resolves the add arguments into a validated task input.
func (a AddArgs) Input(now time.Time) (model.TaskInput, error) {
	due, err := ParseDate(a.Due, now)
	if err != nil {
		return model.TaskInput{}, err
	}
	in := model.TaskInput{
		Name:        a.Name,
		Subject:     a.Subject,
		DueDate:     due,
		Type:        model.TaskTypeHomework,
		Priority:    model.PriorityMedium,
		Description: a.Description,
	}
	if a.Type != "" {
		in.Type = model.TaskType(strings.ToLower(a.Type))
	}
	if a.Priority != "" {
		in.Priority = model.Priority(strings.ToLower(a.Priority))
	}
	return in, wrapInvalid(in.Validate())
}

func (a NoteArgs) Input() (model.NoteInput, error) {
	in := model.NoteInput{Title: a.Title, Content: a.Body, Subject: a.Subject, Pinned: a.Pinned}
	return in, wrapInvalid(in.Validate())
}

// Input defaults to one "veces" of type other on today's date.
func (a HabitArgs) Input(now time.Time) (model.HabitInput, error) {
	in := model.HabitInput{
		Name:   a.Name,
		Type:   model.HabitTypeOther,
		Target: 1,
		Unit:   "veces",
	}
	if a.Type != "" {
		in.Type = model.HabitType(strings.ToLower(a.Type))
	}
	if a.Target != "" {
		target, err := strconv.ParseFloat(a.Target, 64)
		if err != nil {
			return model.HabitInput{}, invalidArg("invalid target %q", a.Target)
		}
		in.Target = target
	}
	if a.Unit != "" {
		in.Unit = a.Unit
	}
	day := "today"
	if a.Date != "" {
		day = a.Date
	}
	date, err := ParseDate(day, now)
	if err != nil {
		return model.HabitInput{}, err
	}
	in.Date = date
	return in, wrapInvalid(in.Validate())
}

func (a EventArgs) Input(now time.Time) (model.EventInput, error) {
	date, err := ParseDate(a.Date, now)
	if err != nil {
		return model.EventInput{}, err
	}
	in := model.EventInput{
		Title:       a.Title,
		Date:        date,
		Type:        model.EventTypeImportant,
		Subject:     a.Subject,
		Description: a.Description,
	}
	if a.Type != "" {
		in.Type = model.EventType(strings.ToLower(a.Type))
	}
	return in, wrapInvalid(in.Validate())
}

// Input builds a subject in profile's shape. University subjects need a code
// and carry credits; school subjects carry a classroom instead.
func (a SubjectArgs) Input(profile model.Profile) (model.SubjectInput, error) {
	set := map[string]string{"code": a.Code, "credits": a.Credits, "classroom": a.Classroom}
	for _, field := range []string{"code", "credits", "classroom"} {
		if set[field] == "" {
			continue
		}
		if err := subjectFieldAllowed(profile, field); err != nil {
			return model.SubjectInput{}, err
		}
	}
	if profile == model.ProfileUniversity && strings.TrimSpace(a.Code) == "" {
		return model.SubjectInput{}, invalidArg("university subjects need code:")
	}
	in := model.SubjectInput{
		Name:      a.Name,
		Color:     defaultSubjectColor,
		Code:      a.Code,
		Professor: a.Professor,
		Classroom: a.Classroom,
	}
	if a.Color != "" {
		in.Color = a.Color
	}
	if a.Credits != "" {
		credits, err := strconv.Atoi(a.Credits)
		if err != nil {
			return model.SubjectInput{}, invalidArg("invalid credits %q", a.Credits)
		}
		in.Credits = &credits
	}
	return in, wrapInvalid(in.Validate())
}

func (a ProfileArgs) Profile() model.Profile {
	switch a.Action {
	case "university":
		return model.ProfileUniversity
	case "school":
		return model.ProfileSchool
	default:
		return model.ProfileUnset
	}
}

func (a EditArgs) unknownField(name string) error {
	return invalidArg("%s has no editable field %q", a.Kind, name)
}

// TaskPatch builds a patch from the edit fields. Enum values are validated
// here since patches bypass input validation.
func (a EditArgs) TaskPatch(now time.Time) (model.TaskPatch, error) {
	var p model.TaskPatch
	for field, value := range a.Fields {
		v := value
		switch field {
		case "name", "title":
			p.Name = &v
		case "subject":
			p.Subject = &v
		case "description":
			p.Description = &v
		case "due", "date":
			due, err := ParseDate(v, now)
			if err != nil {
				return model.TaskPatch{}, err
			}
			p.DueDate = &due
		case "type":
			typ := model.TaskType(strings.ToLower(v))
			if !typ.IsValid() {
				return model.TaskPatch{}, invalidArg("invalid task type %q", v)
			}
			p.Type = &typ
		case "priority":
			prio := model.Priority(strings.ToLower(v))
			if !prio.IsValid() {
				return model.TaskPatch{}, invalidArg("invalid priority %q", v)
			}
			p.Priority = &prio
		case "completed":
			done, err := parseBool(v)
			if err != nil {
				return model.TaskPatch{}, err
			}
			p.Completed = &done
		default:
			return model.TaskPatch{}, a.unknownField(field)
		}
	}
	return p, nil
}

func (a EditArgs) NotePatch() (model.NotePatch, error) {
	var p model.NotePatch
	for field, value := range a.Fields {
		v := value
		switch field {
		case "title", "name":
			p.Title = &v
		case "body":
			p.Content = &v
		case "subject":
			p.Subject = &v
		case "pinned":
			pinned, err := parseBool(v)
			if err != nil {
				return model.NotePatch{}, err
			}
			p.Pinned = &pinned
		default:
			return model.NotePatch{}, a.unknownField(field)
		}
	}
	return p, nil
}

func (a EditArgs) HabitPatch(now time.Time) (model.HabitPatch, error) {
	var p model.HabitPatch
	for field, value := range a.Fields {
		v := value
		switch field {
		case "name", "title":
			p.Name = &v
		case "unit":
			p.Unit = &v
		case "type":
			typ := model.HabitType(strings.ToLower(v))
			if !typ.IsValid() {
				return model.HabitPatch{}, invalidArg("invalid habit type %q", v)
			}
			p.Type = &typ
		case "target":
			target, err := strconv.ParseFloat(v, 64)
			if err != nil || target <= 0 {
				return model.HabitPatch{}, invalidArg("invalid target %q", v)
			}
			p.Target = &target
		case "date":
			date, err := ParseDate(v, now)
			if err != nil {
				return model.HabitPatch{}, err
			}
			p.Date = &date
		case "completed":
			done, err := parseBool(v)
			if err != nil {
				return model.HabitPatch{}, err
			}
			p.Completed = &done
		default:
			return model.HabitPatch{}, a.unknownField(field)
		}
	}
	return p, nil
}

func (a EditArgs) EventPatch(now time.Time) (model.EventPatch, error) {
	var p model.EventPatch
	for field, value := range a.Fields {
		v := value
		switch field {
		case "title", "name":
			p.Title = &v
		case "subject":
			p.Subject = &v
		case "description":
			p.Description = &v
		case "date", "due":
			date, err := ParseDate(v, now)
			if err != nil {
				return model.EventPatch{}, err
			}
			p.Date = &date
		case "type":
			typ := model.EventType(strings.ToLower(v))
			if !typ.IsValid() {
				return model.EventPatch{}, invalidArg("invalid event type %q", v)
			}
			p.Type = &typ
		default:
			return model.EventPatch{}, a.unknownField(field)
		}
	}
	return p, nil
}

// SubjectPatch treats an empty credits value as clearing the field. Fields
// outside profile's subject shape are rejected.
func (a EditArgs) SubjectPatch(profile model.Profile) (model.SubjectPatch, error) {
	var p model.SubjectPatch
	for field, value := range a.Fields {
		v := value
		if err := subjectFieldAllowed(profile, field); err != nil {
			return model.SubjectPatch{}, err
		}
		switch field {
		case "name", "title":
			p.Name = &v
		case "color":
			if !model.ValidColor(v) {
				return model.SubjectPatch{}, invalidArg("invalid color %q", v)
			}
			p.Color = &v
		case "code":
			if profile == model.ProfileUniversity && strings.TrimSpace(v) == "" {
				return model.SubjectPatch{}, invalidArg("university subjects need code:")
			}
			p.Code = &v
		case "professor":
			p.Professor = &v
		case "classroom":
			p.Classroom = &v
		case "credits":
			var credits *int
			if v != "" {
				n, err := strconv.Atoi(v)
				if err != nil || n < 0 {
					return model.SubjectPatch{}, invalidArg("invalid credits %q", v)
				}
				credits = &n
			}
			p.Credits = &credits
		default:
			return model.SubjectPatch{}, a.unknownField(field)
		}
	}
	return p, nil
}

func subjectFieldAllowed(profile model.Profile, field string) error {
	switch {
	case profile == model.ProfileSchool && (field == "code" || field == "credits"):
		return invalidArg("%s: is only used by university subjects", field)
	case profile == model.ProfileUniversity && field == "classroom":
		return invalidArg("room: is only used by school subjects")
	}
	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return false, nil
	case "true", "yes", "y", "1", "si", "sí":
		return true, nil
	case "false", "no", "n", "0":
		return false, nil
	default:
		return false, invalidArg("invalid boolean %q", v)
	}
}
