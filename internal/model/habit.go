package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidHabitType = errors.New("model: invalid habit type")

type HabitType string

const (
	HabitTypeStudy     HabitType = "study"
	HabitTypeSleep     HabitType = "sleep"
	HabitTypeExercise  HabitType = "exercise"
	HabitTypeNutrition HabitType = "nutrition"
	HabitTypeOther     HabitType = "other"
)

func (h HabitType) IsValid() bool {
	switch h {
	case HabitTypeStudy, HabitTypeSleep, HabitTypeExercise, HabitTypeNutrition, HabitTypeOther:
		return true
	default:
		return false
	}
}

// Habit is one habit on one day. Instances of the same habit on different
// days are unrelated records.
type Habit struct {
	ID        string
	Name      string
	Type      HabitType
	Target    float64
	Unit      string
	Completed bool
	Date      time.Time
}

type HabitInput struct {
	Name      string
	Type      HabitType
	Target    float64
	Unit      string
	Completed bool
	Date      time.Time
}

type HabitPatch struct {
	Name      *string
	Type      *HabitType
	Target    *float64
	Unit      *string
	Completed *bool
	Date      *time.Time
}

func (p HabitPatch) Apply(h Habit) Habit {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Type != nil {
		h.Type = *p.Type
	}
	if p.Target != nil {
		h.Target = *p.Target
	}
	if p.Unit != nil {
		h.Unit = *p.Unit
	}
	if p.Completed != nil {
		h.Completed = *p.Completed
	}
	if p.Date != nil {
		h.Date = *p.Date
	}
	return h
}

func (in HabitInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("model: habit name is required")
	}
	if strings.TrimSpace(in.Unit) == "" {
		return errors.New("model: habit unit is required")
	}
	if !in.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidHabitType, in.Type)
	}
	if in.Target <= 0 {
		return errors.New("model: habit target must be positive")
	}
	if in.Date.IsZero() {
		return errors.New("model: habit date is required")
	}
	return nil
}
