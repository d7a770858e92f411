package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/studyd/internal/calendar"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/progress"
	"github.com/sandeepkv93/studyd/internal/store"
)

func summaryCmd() *cobra.Command {
	var events int
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print overdue and upcoming tasks, habits and events",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			return writeSummary(cmd.OutOrStdout(), a.planner, a.planner.Now(), a.cfg.UpcomingDays, events)
		},
	}
	cmd.Flags().IntVar(&events, "events", 5, "number of upcoming events to list")
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write every stored collection as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			return writeExport(cmd.Context(), cmd.OutOrStdout(), a.planner)
		},
	}
}

func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all planner data and forget the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset deletes all data; pass --yes to confirm")
			}
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.planner.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "planner data reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "profile [university|school|reset]",
		Short:     "Show or choose the planner profile",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"university", "school", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			action := ""
			if len(args) == 1 {
				action = args[0]
			}
			return applyProfileAction(cmd.OutOrStdout(), a.planner.Profile, action)
		},
	}
}

func applyProfileAction(w io.Writer, gate *store.ProfileGate, action string) error {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "":
	case "reset":
		if err := gate.Reset(); err != nil {
			return err
		}
	default:
		if err := gate.Select(model.Profile(strings.ToLower(action))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "profile: %s\n", gate.Profile())
	return err
}

func writeExport(ctx context.Context, w io.Writer, p *store.Planner) error {
	payload, err := p.Export(ctx)
	if err != nil {
		return err
	}
	out := make(map[string]json.RawMessage, len(payload))
	for k, v := range payload {
		if json.Valid([]byte(v)) {
			out[k] = json.RawMessage(v)
			continue
		}
		quoted, _ := json.Marshal(v)
		out[k] = quoted
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeSummary(w io.Writer, p *store.Planner, now time.Time, upcomingDays, eventLimit int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "studyd summary for %s (profile: %s)\n", now.Format(time.DateOnly), p.Profile.Profile())

	all := p.Tasks.All()
	overall := progress.Of(all)
	pressure := progress.BacklogPressure(all, now)
	fmt.Fprintf(&b, "progress: %d%% (%d/%d), pressure %d/10 (%s)\n",
		overall.Percent(), overall.Completed, overall.Total, pressure.Score, pressure.Label)

	writeTaskSection(&b, "overdue", p.Tasks.Overdue(now), now)
	writeTaskSection(&b, "due today", p.Tasks.ByDay(now), now)
	writeTaskSection(&b, fmt.Sprintf("upcoming %dd", upcomingDays), p.Tasks.Upcoming(now, upcomingDays), now)

	habits := p.Habits.ForDay(now)
	done := 0
	for _, h := range habits {
		if h.Completed {
			done++
		}
	}
	fmt.Fprintf(&b, "habits today: %d/%d\n", done, len(habits))

	events := p.Events.Upcoming(now, eventLimit)
	fmt.Fprintf(&b, "events (%d):\n", len(events))
	for _, e := range events {
		fmt.Fprintf(&b, "  %s  %-10s %s\n", e.Date.In(now.Location()).Format(time.DateOnly), e.Type, e.Title)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTaskSection(b *strings.Builder, title string, tasks []model.Task, now time.Time) {
	fmt.Fprintf(b, "%s (%d):\n", title, len(tasks))
	for _, t := range tasks {
		prefix := "  "
		if label := calendar.Classify(t.DueDate, t.Completed, now).Label(); label != "" {
			prefix += "[" + label + "] "
		}
		fmt.Fprintf(b, "%s%s (%s, %s)\n", prefix, t.Name, t.Subject, t.Priority)
	}
}
