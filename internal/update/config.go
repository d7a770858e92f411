package update

import (
	"time"

	"github.com/sandeepkv93/studyd/internal/config"
	"github.com/sandeepkv93/studyd/internal/store"
)

type RuntimeConfig struct {
	DesktopNotifications bool
	UpcomingDays         int
	AlertLead            time.Duration
	HabitHistoryDays     int
	UpcomingEvents       int
	NoteWidth            int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		UpcomingDays:         store.DefaultUpcomingDays,
		AlertLead:            time.Hour,
		HabitHistoryDays:     7,
		UpcomingEvents:       5,
		NoteWidth:            40,
	}
}

// RuntimeConfigFrom maps the process configuration onto the view settings.
func RuntimeConfigFrom(cfg config.Config) RuntimeConfig {
	out := DefaultRuntimeConfig()
	out.DesktopNotifications = cfg.DesktopNotifications
	if cfg.UpcomingDays > 0 {
		out.UpcomingDays = cfg.UpcomingDays
	}
	if lead := cfg.AlertLead(); lead > 0 {
		out.AlertLead = lead
	}
	return out
}

func (c RuntimeConfig) withDefaults() RuntimeConfig {
	d := DefaultRuntimeConfig()
	if c.UpcomingDays <= 0 {
		c.UpcomingDays = d.UpcomingDays
	}
	if c.AlertLead <= 0 {
		c.AlertLead = d.AlertLead
	}
	if c.HabitHistoryDays <= 0 {
		c.HabitHistoryDays = d.HabitHistoryDays
	}
	if c.UpcomingEvents <= 0 {
		c.UpcomingEvents = d.UpcomingEvents
	}
	if c.NoteWidth <= 0 {
		c.NoteWidth = d.NoteWidth
	}
	return c
}
