package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/sandeepkv93/studyd/internal/config"
	"github.com/sandeepkv93/studyd/internal/logger"
	"github.com/sandeepkv93/studyd/internal/scheduler"
	"github.com/sandeepkv93/studyd/internal/storage"
	"github.com/sandeepkv93/studyd/internal/store"
	"github.com/sandeepkv93/studyd/internal/update"
)

// app is everything a command needs: the loaded config, the log sink and an
// open planner.
type app struct {
	cfg     config.Config
	loc     *time.Location
	log     zerolog.Logger
	logFile io.Closer
	backend storage.Backend
	planner *store.Planner
}

func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	log := logger.New("studyd", logFile, cfg.LogLevel)
	cfg.Log(log)

	loc, err := cfg.Location()
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	backend, err := storage.OpenBackend(storage.BackendKind(cfg.Backend), cfg.StoragePath())
	if err != nil {
		log.Error().Stack().Err(err).Msg("open backend")
		_ = logFile.Close()
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	planner, err := store.Open(backend, store.Options{Logger: &log, Location: loc})
	if err != nil {
		_ = storage.CloseBackend(backend)
		_ = logFile.Close()
		return nil, err
	}
	return &app{cfg: cfg, loc: loc, log: log, logFile: logFile, backend: backend, planner: planner}, nil
}

func (a *app) Close() {
	if err := storage.CloseBackend(a.backend); err != nil {
		a.log.Error().Stack().Err(err).Msg("close backend")
	}
	_ = a.logFile.Close()
}

func runTUI() error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	engine := scheduler.NewEngine(a.cfg.AlertBuffer)
	engine.Start()
	defer engine.Stop()

	rollover := scheduler.NewRollover(a.loc, 4)
	if _, err := rollover.Midnight(); err != nil {
		return fmt.Errorf("schedule rollover: %w", err)
	}
	rollover.Start()
	defer rollover.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if a.cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}
	m := update.NewModelWithRuntime(a.planner, engine, rollover, notifier, update.RuntimeConfigFrom(a.cfg))

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		a.log.Error().Stack().Err(err).Msg("tui exited with error")
		return err
	}
	if dropped := engine.Dropped(); dropped > 0 {
		a.log.Warn().Uint64("dropped", dropped).Msg("alerts dropped while the view was busy")
	}
	if st, dirty := a.planner.SaveStatus(); dirty {
		a.log.Error().Str("slot", st.Key).Err(st.LastErr).Msg("exiting with unsaved changes")
		return fmt.Errorf("unsaved changes in %s: %w", st.Key, st.LastErr)
	}
	return nil
}
