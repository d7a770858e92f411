package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTaskType = errors.New("model: invalid task type")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

type TaskType string

const (
	TaskTypeHomework     TaskType = "homework"
	TaskTypeGroupWork    TaskType = "group-work"
	TaskTypeReading      TaskType = "reading"
	TaskTypeExam         TaskType = "exam"
	TaskTypeProject      TaskType = "project"
	TaskTypePresentation TaskType = "presentation"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeHomework, TaskTypeGroupWork, TaskTypeReading, TaskTypeExam, TaskTypeProject, TaskTypePresentation:
		return true
	default:
		return false
	}
}

// TaskTypes lists every task type in display order.
func TaskTypes() []TaskType {
	return []TaskType{TaskTypeHomework, TaskTypeGroupWork, TaskTypeReading, TaskTypeExam, TaskTypeProject, TaskTypePresentation}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Priorities lists priorities from most to least urgent.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Task is a dated piece of academic work. Subject holds a Subject name, not an id.
type Task struct {
	ID          string
	Name        string
	Subject     string
	DueDate     time.Time
	Type        TaskType
	Priority    Priority
	Completed   bool
	CreatedAt   time.Time
	Description string
}

// TaskInput is a task without the fields the store assigns.
type TaskInput struct {
	Name        string
	Subject     string
	DueDate     time.Time
	Type        TaskType
	Priority    Priority
	Completed   bool
	Description string
}

type TaskPatch struct {
	Name        *string
	Subject     *string
	DueDate     *time.Time
	Type        *TaskType
	Priority    *Priority
	Completed   *bool
	Description *string
}

func (p TaskPatch) Apply(t Task) Task {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Subject != nil {
		t.Subject = *p.Subject
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	return t
}

func (in TaskInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("model: task name is required")
	}
	if strings.TrimSpace(in.Subject) == "" {
		return errors.New("model: task subject is required")
	}
	if in.DueDate.IsZero() {
		return errors.New("model: task due date is required")
	}
	if !in.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskType, in.Type)
	}
	if !in.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, in.Priority)
	}
	return nil
}
