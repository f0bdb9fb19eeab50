// Package source holds the dataset served by the HTTP API.
//
// A [Store] decodes one GEDCOM file into an immutable [Snapshot] and swaps
// it in atomically, so readers never observe a partially loaded dataset.
// [Store.Watch] reloads the file when it changes on disk. A reload that
// fails leaves the previous snapshot in place.
package source

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/coopcast/flocktree/pkg/errors"
	"github.com/coopcast/flocktree/pkg/observability"
	"github.com/coopcast/flocktree/pkg/pedigree"
	"github.com/coopcast/flocktree/pkg/pipeline"
	"github.com/coopcast/flocktree/pkg/validate"
)

// DefaultDebounce is the quiet period after the last file event before a
// reload starts. Editors often write a file in several steps.
const DefaultDebounce = 200 * time.Millisecond

// Snapshot is one successfully loaded version of the dataset.
type Snapshot struct {
	Path        string
	Records     pedigree.Records
	RecordsHash string
	Validation  validate.Result
	LoadedAt    time.Time
}

// Store owns the current snapshot of a GEDCOM file.
type Store struct {
	path     string
	logger   *log.Logger
	debounce time.Duration
	onReload func(*Snapshot)

	current atomic.Pointer[Snapshot]
}

// Option configures a [Store].
type Option func(*Store)

// WithDebounce overrides [DefaultDebounce].
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// WithOnReload registers fn to run after every successful reload.
func WithOnReload(fn func(*Snapshot)) Option {
	return func(s *Store) { s.onReload = fn }
}

// New returns a store for the GEDCOM file at path. Nothing is read until
// [Store.Load] is called.
func New(path string, logger *log.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = log.Default()
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	s := &Store{
		path:     path,
		logger:   logger.WithPrefix("source"),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the absolute path of the watched file.
func (s *Store) Path() string { return s.path }

// Snapshot returns the current dataset, or nil before the first
// successful load.
func (s *Store) Snapshot() *Snapshot { return s.current.Load() }

// Load reads and decodes the file and makes it the current snapshot.
// On error the current snapshot is unchanged.
func (s *Store) Load(ctx context.Context) error {
	start := time.Now()
	recs, err := pipeline.LoadFile(s.path)
	dur := time.Since(start)
	observability.Source().OnReload(ctx, s.path, len(recs.Individuals), dur, err)
	if err != nil {
		return err
	}

	snap := &Snapshot{
		Path:        s.path,
		Records:     recs,
		RecordsHash: pipeline.RecordsHash(recs),
		Validation:  validate.Validate(recs),
		LoadedAt:    time.Now(),
	}
	s.current.Store(snap)

	s.logger.Info("loaded dataset",
		"path", s.path,
		"individuals", len(recs.Individuals),
		"families", len(recs.Families),
		"valid", snap.Validation.IsValid,
		"duration", dur)
	if s.onReload != nil {
		s.onReload(snap)
	}
	return nil
}

// Watch reloads the file whenever it is written, created or renamed into
// place, until ctx is cancelled. The parent directory is watched so that
// editors replacing the file atomically are still seen.
func (s *Store) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create watcher")
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(s.path)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "watch %s", filepath.Dir(s.path))
	}
	s.logger.Info("watching for changes", "path", s.path)

	var timer *time.Timer
	var fire <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(s.debounce)
			fire = timer.C
		} else {
			timer.Reset(s.debounce)
		}
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("watcher stopped")
			return nil

		case <-fire:
			if err := s.Load(ctx); err != nil {
				s.logger.Warn("reload failed, keeping previous dataset", "path", s.path, "error", err)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != s.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				s.logger.Debug("file changed", "op", ev.Op.String())
				schedule()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", watchErr)
		}
	}
}
