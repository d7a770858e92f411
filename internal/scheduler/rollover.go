package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

type TickKind string

const (
	TickDaily    TickKind = "daily"
	TickInterval TickKind = "interval"
)

type Tick struct {
	Kind TickKind
	At   time.Time
}

// Rollover emits ticks on C at fixed wall-clock times and intervals so views
// can recompute anything derived from "now". Like Engine, it never blocks on
// a slow reader.
type Rollover struct {
	cron    *cron.Cron
	loc     *time.Location
	out     chan Tick
	dropped uint64
}

func NewRollover(loc *time.Location, bufferSize int) *Rollover {
	if loc == nil {
		loc = time.Local
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Rollover{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		loc:  loc,
		out:  make(chan Tick, bufferSize),
	}
}

func (r *Rollover) C() <-chan Tick { return r.out }

// Daily emits a TickDaily every day at HH:MM in the rollover's location.
func (r *Rollover) Daily(timeStr string) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	return r.cron.AddFunc(spec, func() { r.emit(TickDaily) })
}

// Midnight is Daily("00:00").
func (r *Rollover) Midnight() (cron.EntryID, error) {
	return r.Daily("00:00")
}

func (r *Rollover) Every(interval time.Duration) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	spec := fmt.Sprintf("@every %ds", seconds)
	return r.cron.AddFunc(spec, func() { r.emit(TickInterval) })
}

func (r *Rollover) Start() {
	r.cron.Start()
}

func (r *Rollover) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Rollover) Dropped() uint64 {
	return atomic.LoadUint64(&r.dropped)
}

func (r *Rollover) emit(kind TickKind) {
	select {
	case r.out <- Tick{Kind: kind, At: time.Now().In(r.loc)}:
	default:
		atomic.AddUint64(&r.dropped, 1)
	}
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	// second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
