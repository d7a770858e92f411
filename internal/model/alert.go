package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidAlertSource = errors.New("model: invalid alert source")

type AlertSource string

const (
	AlertSourceTask  AlertSource = "task"
	AlertSourceEvent AlertSource = "event"
)

func (s AlertSource) IsValid() bool {
	switch s {
	case AlertSourceTask, AlertSourceEvent:
		return true
	default:
		return false
	}
}

// Alert is a pending deadline notice for a task or an academic event.
// It is derived from the collections and never persisted.
type Alert struct {
	ID        string
	Source    AlertSource
	RefID     string
	Title     string
	DueAt     time.Time
	TriggerAt time.Time
}

func (a Alert) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("model: alert id is required")
	}
	if strings.TrimSpace(a.RefID) == "" {
		return errors.New("model: alert ref_id is required")
	}
	if a.TriggerAt.IsZero() {
		return errors.New("model: alert trigger_at is required")
	}
	if a.TriggerAt.After(a.DueAt) {
		return errors.New("model: alert trigger_at must not be after due_at")
	}
	if !a.Source.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAlertSource, a.Source)
	}
	return nil
}
