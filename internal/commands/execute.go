package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Done    func(TargetArgs) (Result, error)
	Delete  func(DeleteArgs) (Result, error)
	Edit    func(EditArgs) (Result, error)
	Note    func(NoteArgs) (Result, error)
	Pin     func(TargetArgs) (Result, error)
	Habit   func(HabitArgs) (Result, error)
	Check   func(TargetArgs) (Result, error)
	Event   func(EventArgs) (Result, error)
	Subject func(SubjectArgs) (Result, error)
	Profile func(ProfileArgs) (Result, error)
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}

func dispatch[A any](t Type, fn func(A) (Result, error), args *A) (Result, error) {
	if fn == nil {
		return Result{}, missing(t)
	}
	if args == nil {
		return Result{}, invalidArg("%s command has no arguments", t)
	}
	return fn(*args)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		return dispatch(cmd.Type, handlers.Add, cmd.Add)
	case TypeDone:
		return dispatch(cmd.Type, handlers.Done, cmd.Target)
	case TypeDelete:
		return dispatch(cmd.Type, handlers.Delete, cmd.Delete)
	case TypeEdit:
		return dispatch(cmd.Type, handlers.Edit, cmd.Edit)
	case TypeNote:
		return dispatch(cmd.Type, handlers.Note, cmd.Note)
	case TypePin:
		return dispatch(cmd.Type, handlers.Pin, cmd.Target)
	case TypeHabit:
		return dispatch(cmd.Type, handlers.Habit, cmd.Habit)
	case TypeCheck:
		return dispatch(cmd.Type, handlers.Check, cmd.Target)
	case TypeEvent:
		return dispatch(cmd.Type, handlers.Event, cmd.Event)
	case TypeSubject:
		return dispatch(cmd.Type, handlers.Subject, cmd.Subject)
	case TypeProfile:
		return dispatch(cmd.Type, handlers.Profile, cmd.Profile)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
