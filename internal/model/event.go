package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidEventType = errors.New("model: invalid event type")

type EventType string

const (
	EventTypeExam       EventType = "exam"
	EventTypeAssignment EventType = "assignment"
	EventTypeHoliday    EventType = "holiday"
	EventTypeImportant  EventType = "important"
)

func (e EventType) IsValid() bool {
	switch e {
	case EventTypeExam, EventTypeAssignment, EventTypeHoliday, EventTypeImportant:
		return true
	default:
		return false
	}
}

// AcademicEvent is a calendar entry. It is not linked to any Task, even when
// both describe the same exam.
type AcademicEvent struct {
	ID          string
	Title       string
	Date        time.Time
	Type        EventType
	Subject     string
	Description string
}

type EventInput struct {
	Title       string
	Date        time.Time
	Type        EventType
	Subject     string
	Description string
}

type EventPatch struct {
	Title       *string
	Date        *time.Time
	Type        *EventType
	Subject     *string
	Description *string
}

func (p EventPatch) Apply(e AcademicEvent) AcademicEvent {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Subject != nil {
		e.Subject = *p.Subject
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	return e
}

func (in EventInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.New("model: event title is required")
	}
	if in.Date.IsZero() {
		return errors.New("model: event date is required")
	}
	if !in.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidEventType, in.Type)
	}
	return nil
}
