package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeDone    Type = "done"
	TypeDelete  Type = "del"
	TypeEdit    Type = "edit"
	TypeNote    Type = "note"
	TypePin     Type = "pin"
	TypeHabit   Type = "habit"
	TypeCheck   Type = "check"
	TypeEvent   Type = "event"
	TypeSubject Type = "subject"
	TypeProfile Type = "profile"
)

// Types lists every command in palette help order.
func Types() []Type {
	return []Type{TypeAdd, TypeDone, TypeEdit, TypeDelete, TypeNote, TypePin, TypeHabit, TypeCheck, TypeEvent, TypeSubject, TypeProfile}
}

// Kind names the collection a del or edit command targets.
type Kind string

const (
	KindTask    Kind = "task"
	KindNote    Kind = "note"
	KindHabit   Kind = "habit"
	KindEvent   Kind = "event"
	KindSubject Kind = "subject"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindTask, KindNote, KindHabit, KindEvent, KindSubject:
		return true
	default:
		return false
	}
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
	ErrCodeNotFound        ErrorCode = "not_found"
	ErrCodeAmbiguousID     ErrorCode = "ambiguous_id"
)

type CommandError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CommandError) Unwrap() error { return e.Err }

func invalidArg(format string, args ...any) *CommandError {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

type AddArgs struct {
	Name        string
	Subject     string
	Due         string
	Type        string
	Priority    string
	Description string
}

type TargetArgs struct {
	ID string
}

type DeleteArgs struct {
	Kind Kind
	ID   string
}

type EditArgs struct {
	Kind   Kind
	ID     string
	Fields map[string]string
}

type NoteArgs struct {
	Title   string
	Subject string
	Body    string
	Pinned  bool
}

type HabitArgs struct {
	Name   string
	Type   string
	Target string
	Unit   string
	Date   string
}

type EventArgs struct {
	Title       string
	Date        string
	Type        string
	Subject     string
	Description string
}

type SubjectArgs struct {
	Name      string
	Color     string
	Code      string
	Professor string
	Credits   string
	Classroom string
}

type ProfileArgs struct {
	Action string
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Target  *TargetArgs
	Delete  *DeleteArgs
	Edit    *EditArgs
	Note    *NoteArgs
	Habit   *HabitArgs
	Event   *EventArgs
	Subject *SubjectArgs
	Profile *ProfileArgs
}

// optionAliases maps accepted option keys to their canonical name.
var optionAliases = map[string]string{
	"subject":     "subject",
	"sub":         "subject",
	"due":         "due",
	"type":        "type",
	"prio":        "priority",
	"priority":    "priority",
	"desc":        "description",
	"description": "description",
	"body":        "body",
	"content":     "body",
	"pinned":      "pinned",
	"target":      "target",
	"unit":        "unit",
	"date":        "date",
	"color":       "color",
	"code":        "code",
	"prof":        "professor",
	"professor":   "professor",
	"credits":     "credits",
	"room":        "classroom",
	"classroom":   "classroom",
	"name":        "name",
	"title":       "title",
	"done":        "completed",
	"completed":   "completed",
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts, err := splitArgs(raw)
	if err != nil {
		return Command{}, err
	}
	head := strings.ToLower(parts[0])
	words, opts := splitOptions(parts[1:])

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, words, opts)
	case TypeDone, TypePin, TypeCheck:
		return parseTarget(input, Type(head), words)
	case TypeDelete, "delete", "rm":
		return parseDelete(input, words)
	case TypeEdit:
		return parseEdit(input, words, opts)
	case TypeNote:
		return parseNote(input, words, opts)
	case TypeHabit:
		return parseHabit(input, words, opts)
	case TypeEvent:
		return parseEvent(input, words, opts)
	case TypeSubject:
		return parseSubject(input, words, opts)
	case TypeProfile:
		return parseProfile(input, words)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, words []string, opts map[string]string) (Command, error) {
	name := strings.Join(words, " ")
	if name == "" {
		return Command{}, invalidArg("add requires a name")
	}
	if opts["subject"] == "" || opts["due"] == "" {
		return Command{}, invalidArg("add requires subject: and due:")
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{
		Name:        name,
		Subject:     opts["subject"],
		Due:         opts["due"],
		Type:        opts["type"],
		Priority:    opts["priority"],
		Description: opts["description"],
	}}, nil
}

func parseTarget(raw string, typ Type, words []string) (Command, error) {
	if len(words) != 1 {
		return Command{}, invalidArg("%s requires exactly one id", typ)
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{ID: words[0]}}, nil
}

func parseKindAndID(verb string, words []string) (Kind, string, error) {
	if len(words) != 2 {
		return "", "", invalidArg("%s requires a kind and an id", verb)
	}
	kind := Kind(strings.ToLower(words[0]))
	if !kind.IsValid() {
		return "", "", invalidArg("unknown kind %q", words[0])
	}
	return kind, words[1], nil
}

func parseDelete(raw string, words []string) (Command, error) {
	kind, id, err := parseKindAndID("del", words)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Kind: kind, ID: id}}, nil
}

func parseEdit(raw string, words []string, opts map[string]string) (Command, error) {
	kind, id, err := parseKindAndID("edit", words)
	if err != nil {
		return Command{}, err
	}
	if len(opts) == 0 {
		return Command{}, invalidArg("edit requires at least one field:value")
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{Kind: kind, ID: id, Fields: opts}}, nil
}

func parseNote(raw string, words []string, opts map[string]string) (Command, error) {
	title := strings.Join(words, " ")
	if title == "" {
		return Command{}, invalidArg("note requires a title")
	}
	pinned, err := parseBool(opts["pinned"])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeNote, Raw: raw, Note: &NoteArgs{
		Title:   title,
		Subject: opts["subject"],
		Body:    opts["body"],
		Pinned:  pinned,
	}}, nil
}

func parseHabit(raw string, words []string, opts map[string]string) (Command, error) {
	name := strings.Join(words, " ")
	if name == "" {
		return Command{}, invalidArg("habit requires a name")
	}
	return Command{Type: TypeHabit, Raw: raw, Habit: &HabitArgs{
		Name:   name,
		Type:   opts["type"],
		Target: opts["target"],
		Unit:   opts["unit"],
		Date:   opts["date"],
	}}, nil
}

func parseEvent(raw string, words []string, opts map[string]string) (Command, error) {
	title := strings.Join(words, " ")
	if title == "" {
		return Command{}, invalidArg("event requires a title")
	}
	if opts["date"] == "" {
		return Command{}, invalidArg("event requires date:")
	}
	return Command{Type: TypeEvent, Raw: raw, Event: &EventArgs{
		Title:       title,
		Date:        opts["date"],
		Type:        opts["type"],
		Subject:     opts["subject"],
		Description: opts["description"],
	}}, nil
}

func parseSubject(raw string, words []string, opts map[string]string) (Command, error) {
	name := strings.Join(words, " ")
	if name == "" {
		return Command{}, invalidArg("subject requires a name")
	}
	return Command{Type: TypeSubject, Raw: raw, Subject: &SubjectArgs{
		Name:      name,
		Color:     opts["color"],
		Code:      opts["code"],
		Professor: opts["professor"],
		Credits:   opts["credits"],
		Classroom: opts["classroom"],
	}}, nil
}

func parseProfile(raw string, words []string) (Command, error) {
	if len(words) != 1 {
		return Command{}, invalidArg("profile requires university, school or reset")
	}
	action := strings.ToLower(words[0])
	switch action {
	case "university", "school", "reset":
	default:
		return Command{}, invalidArg("unknown profile action %q", words[0])
	}
	return Command{Type: TypeProfile, Raw: raw, Profile: &ProfileArgs{Action: action}}, nil
}

// splitArgs splits on whitespace, keeping double-quoted runs together.
func splitArgs(raw string) ([]string, error) {
	var (
		out     []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range raw {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case (r == ' ' || r == '\t') && !inQuote:
			if started {
				out = append(out, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, invalidArg("unterminated quote")
	}
	if started {
		out = append(out, cur.String())
	}
	if len(out) == 0 {
		return nil, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	return out, nil
}

// splitOptions separates key:value options from free words. Tokens whose key
// is not a known option stay words.
func splitOptions(parts []string) ([]string, map[string]string) {
	words := make([]string, 0, len(parts))
	opts := make(map[string]string)
	for _, p := range parts {
		key, value, ok := strings.Cut(p, ":")
		if ok {
			if canonical, known := optionAliases[strings.ToLower(key)]; known {
				opts[canonical] = strings.TrimSpace(value)
				continue
			}
		}
		words = append(words, p)
	}
	return words, opts
}
