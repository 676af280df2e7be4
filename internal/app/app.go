// Package app wires together all adapters and domain logic.
// It provides lifecycle management for typey: create, start, stop.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jladdjr/typey-type/internal/adapters/bbolt"
	"github.com/jladdjr/typey-type/internal/adapters/fetch"
	fsw "github.com/jladdjr/typey-type/internal/adapters/fsnotify"
	"github.com/jladdjr/typey-type/internal/config"
	"github.com/jladdjr/typey-type/internal/domain/lesson"
	"github.com/jladdjr/typey-type/internal/domain/lookup"
)

// App is the top-level container wiring all components together.
type App struct {
	Config  *config.Config
	Paths   *Paths
	Logger  *slog.Logger
	Store   *bbolt.Store
	Fetcher *fetch.Fetcher
	Dicts   *Dictionaries
	Lessons *Lessons
	Watcher *fsw.Watcher // nil unless cfg.Watch
}

// New creates an App with all dependencies wired. Does not start loading
// dictionaries or watching files.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config required")
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	paths := NewPaths(cfg.DataDir)
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	opts, err := lessonOptions(cfg.Lookup)
	if err != nil {
		store.Close()
		return nil, err
	}

	fetcher := fetch.New(fetch.Options{
		Timeout:           cfg.Fetch.Timeout,
		MaxBytes:          cfg.Fetch.MaxBytes,
		CacheTTL:          cfg.Fetch.CacheTTL,
		RequestsPerSecond: cfg.Fetch.RequestsPerSecond,
		Burst:             cfg.Fetch.Burst,
		UserAgent:         cfg.Fetch.UserAgent,
	})
	dicts := NewDictionaries(cfg.Dictionaries, fetcher, logger.With("component", "dictionaries"))

	a := &App{
		Config:  cfg,
		Paths:   paths,
		Logger:  logger,
		Store:   store,
		Fetcher: fetcher,
		Dicts:   dicts,
		Lessons: NewLessons(dicts, store, cfg.Profile, opts...),
	}

	if cfg.Watch {
		w, err := fsw.NewWatcher()
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("create watcher: %w", err)
		}
		a.Watcher = w
	}
	return a, nil
}

func lessonOptions(cfg config.LookupConfig) ([]lesson.Option, error) {
	tb, err := lookup.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return nil, fmt.Errorf("lookup.tie_break: %w", err)
	}
	opts := []lesson.Option{lesson.WithTieBreak(tb)}
	if cfg.PhraseFallback {
		opts = append(opts, lesson.WithPhraseFallback())
	}
	return opts, nil
}

// Start triggers the background dictionary load and, when enabled, starts
// watching local dictionary files. A watcher failure is logged, not fatal.
func (a *App) Start(ctx context.Context) error {
	a.Dicts.EnsureLoaded(ctx)
	if a.Watcher != nil {
		if err := a.Dicts.Watch(ctx, a.Watcher); err != nil {
			a.Logger.Warn("dictionary watcher unavailable", "err", err)
		}
	}
	return nil
}

// LoadDictionaries loads every source and waits for the result. Commands
// that print a lesson once use this instead of the background trigger.
func (a *App) LoadDictionaries(ctx context.Context) error {
	if len(a.Config.Dictionaries) == 0 {
		return nil
	}
	return a.Dicts.Load(ctx)
}

// Profiles lists every profile with stored progress or settings, sorted.
func (a *App) Profiles() ([]string, error) {
	names, err := a.Store.Profiles()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

// DeleteProfile removes a profile's met words and settings. Deleting a
// profile with no data is not an error.
func (a *App) DeleteProfile(name string) error {
	if name == "" {
		return fmt.Errorf("profile name required")
	}
	if err := a.Store.DeleteProfile(name); err != nil {
		return fmt.Errorf("delete profile %q: %w", name, err)
	}
	a.Logger.Info("profile deleted", "profile", name)
	return nil
}

// Stop releases the watcher and closes the store.
func (a *App) Stop() error {
	if a.Watcher != nil {
		a.Watcher.Stop()
	}
	a.Paths.CleanEphemeral()
	return a.Store.Close()
}
