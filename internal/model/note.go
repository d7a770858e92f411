package model

import (
	"errors"
	"strings"
	"time"
)

type Note struct {
	ID        string
	Title     string
	Content   string
	Subject   string
	CreatedAt time.Time
	UpdatedAt time.Time
	Pinned    bool
}

type NoteInput struct {
	Title   string
	Content string
	Subject string
	Pinned  bool
}

type NotePatch struct {
	Title   *string
	Content *string
	Subject *string
	Pinned  *bool
}

func (p NotePatch) Apply(n Note) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Subject != nil {
		n.Subject = *p.Subject
	}
	if p.Pinned != nil {
		n.Pinned = *p.Pinned
	}
	return n
}

func (in NoteInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.New("model: note title is required")
	}
	return nil
}
