package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidColor = errors.New("model: invalid subject color")

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Subject is a course. Code and Credits belong to the university profile,
// Classroom to the school profile; both shapes share one type.
type Subject struct {
	ID        string
	Name      string
	Color     string
	Code      string
	Professor string
	Credits   *int
	Classroom string
}

type SubjectInput struct {
	Name      string
	Color     string
	Code      string
	Professor string
	Credits   *int
	Classroom string
}

type SubjectPatch struct {
	Name      *string
	Color     *string
	Code      *string
	Professor *string
	Credits   **int
	Classroom *string
}

func (p SubjectPatch) Apply(s Subject) Subject {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Color != nil {
		s.Color = *p.Color
	}
	if p.Code != nil {
		s.Code = *p.Code
	}
	if p.Professor != nil {
		s.Professor = *p.Professor
	}
	if p.Credits != nil {
		s.Credits = *p.Credits
	}
	if p.Classroom != nil {
		s.Classroom = *p.Classroom
	}
	return s
}

// ValidColor reports whether c is a #RRGGBB hex color.
func ValidColor(c string) bool { return hexColor.MatchString(c) }

func (in SubjectInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("model: subject name is required")
	}
	if !ValidColor(in.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, in.Color)
	}
	if in.Credits != nil && *in.Credits < 0 {
		return errors.New("model: subject credits must not be negative")
	}
	return nil
}

// DefaultSubjects is the first-run subject collection.
func DefaultSubjects() []Subject {
	return []Subject{
		{ID: "1", Name: "Matemáticas", Color: "#3B82F6", Code: "MATH101"},
		{ID: "2", Name: "Historia", Color: "#EF4444", Code: "HIST201"},
		{ID: "3", Name: "Ciencias", Color: "#10B981", Code: "SCI301"},
		{ID: "4", Name: "Literatura", Color: "#8B5CF6", Code: "LIT101"},
	}
}
