package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jladdjr/typey-type/internal/adapters/plover"
	"github.com/jladdjr/typey-type/internal/domain/lookup"
	"github.com/jladdjr/typey-type/internal/ports"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	loadKey          = "dictionaries"
	fetchConcurrency = 4
)

// Dictionaries owns the global lookup dictionary. It loads the configured
// sources and publishes immutable snapshots; readers take the current
// snapshot without locking and never see it change underneath them.
type Dictionaries struct {
	sources []ports.DictionarySource
	fetcher ports.DictionaryFetcher
	logger  *slog.Logger

	current atomic.Pointer[lookup.Dictionary]
	loaded  atomic.Bool // a load has run to completion, successful or not
	group   singleflight.Group
	loadMu  sync.Mutex // serializes loads so the latest one publishes last

	mu      sync.Mutex
	lastErr error
}

// NewDictionaries creates a holder with an empty snapshot. Nothing is
// loaded until EnsureLoaded or Load is called.
func NewDictionaries(sources []ports.DictionarySource, fetcher ports.DictionaryFetcher, logger *slog.Logger) *Dictionaries {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dictionaries{
		sources: slices.Clone(sources),
		fetcher: fetcher,
		logger:  logger,
	}
	d.current.Store(lookup.NewBuilder().Snapshot())
	return d
}

// Current returns the latest published snapshot. Never nil.
func (d *Dictionaries) Current() *lookup.Dictionary {
	return d.current.Load()
}

// Ready reports whether the current snapshot is usable.
func (d *Dictionaries) Ready() bool {
	return d.Current().Ready()
}

// Sources returns the configured sources in merge order.
func (d *Dictionaries) Sources() []ports.DictionarySource {
	return slices.Clone(d.sources)
}

// LastError returns the error from the most recent load, or nil.
func (d *Dictionaries) LastError() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// remoteInvalidator is implemented by fetchers that cache remote bodies.
type remoteInvalidator interface {
	Invalidate(rawURL string)
}

// Loaded reports whether a load has finished. A finished load may still
// have produced a dictionary that is not Ready.
func (d *Dictionaries) Loaded() bool {
	return d.loaded.Load()
}

// EnsureLoaded starts a background load if the current snapshot is not
// usable yet and no load has finished, and returns immediately. It never
// retries: once a load completes only Load or Reload load again.
// Concurrent calls share one load. The load outlives ctx's cancellation
// but keeps its values.
func (d *Dictionaries) EnsureLoaded(ctx context.Context) {
	if d.Ready() || d.Loaded() || len(d.sources) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		_ = d.Load(ctx)
	}()
}

// Load loads all sources, joining a load already in flight.
func (d *Dictionaries) Load(ctx context.Context) error {
	ch := d.group.DoChan(loadKey, func() (any, error) {
		return nil, d.load(ctx)
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reload starts a fresh load even if one is in flight, so changes made
// after that load began are picked up. Cached remote bodies are dropped
// first so remote sources are fetched again.
func (d *Dictionaries) Reload(ctx context.Context) error {
	if inv, ok := d.fetcher.(remoteInvalidator); ok {
		for _, src := range d.sources {
			if src.URL != "" {
				inv.Invalidate(src.URL)
			}
		}
	}
	return d.reload(ctx)
}

// reload is Reload without touching the remote cache.
func (d *Dictionaries) reload(ctx context.Context) error {
	d.group.Forget(loadKey)
	return d.Load(ctx)
}

// localPaths lists the on-disk sources in merge order.
func (d *Dictionaries) localPaths() []string {
	var paths []string
	for _, src := range d.sources {
		if src.Path != "" {
			paths = append(paths, src.Path)
		}
	}
	return paths
}

// Watch reloads whenever a local source file changes. Remote sources are
// served from cache on these reloads.
func (d *Dictionaries) Watch(ctx context.Context, w ports.Watcher) error {
	paths := d.localPaths()
	if len(paths) == 0 {
		return nil
	}
	return w.Watch(paths, func(path string) {
		d.logger.Info("dictionary changed", "path", path)
		if err := d.reload(ctx); err != nil {
			d.logger.Warn("dictionary reload failed", "err", err)
		}
	})
}

// load fetches every source concurrently, then merges them strictly in
// configured order so earlier sources keep stroke precedence.
//
// On a first load each merged source is published as it lands, but only
// once it holds at least as many words as the published snapshot, so
// readers never see the dictionary shrink. On a reload the old snapshot
// stays in place until the new one is complete, and is kept if any
// source failed.
func (d *Dictionaries) load(ctx context.Context) error {
	d.loadMu.Lock()
	defer d.loadMu.Unlock()

	start := time.Now()
	bodies, fetchErrs := d.fetchAll(ctx)
	if err := ctx.Err(); err != nil {
		d.setLastErr(err)
		return err
	}

	incremental := !d.Ready()
	b := lookup.NewBuilder()
	var errs []error

	for i, src := range d.sources {
		if fetchErrs[i] != nil {
			d.logger.Warn("dictionary fetch failed", "source", src.Label(), "err", fetchErrs[i])
			errs = append(errs, fetchErrs[i])
			continue
		}
		st, err := plover.Load(bytes.NewReader(bodies[i]), src.ResolvedFormat(), src.Label(), b)
		if err != nil {
			err = fmt.Errorf("dictionary %q: %w", src.Label(), err)
			d.logger.Warn("dictionary decode failed", "source", src.Label(), "err", err)
			errs = append(errs, err)
			continue
		}
		d.logger.Debug("dictionary merged",
			"source", src.Label(),
			"entries", st.Entries,
			"added", st.Added,
			"commands", st.Commands,
			"skipped", st.Skipped,
		)
		if incremental && b.Len() >= d.Current().Size() {
			d.current.Store(b.Snapshot())
		}
	}

	err := errors.Join(errs...)
	if err == nil || (incremental && b.Len() >= d.Current().Size()) {
		d.current.Store(b.Snapshot())
	}
	d.setLastErr(err)
	d.loaded.Store(true)

	cur := d.Current()
	d.logger.Info("dictionaries loaded",
		"sources", len(d.sources),
		"failed", len(errs),
		"words", cur.Size(),
		"version", cur.Version(),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return err
}

func (d *Dictionaries) fetchAll(ctx context.Context) ([][]byte, []error) {
	bodies := make([][]byte, len(d.sources))
	errs := make([]error, len(d.sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, src := range d.sources {
		g.Go(func() error {
			body, err := d.fetcher.Fetch(gctx, src)
			if err != nil {
				errs[i] = fmt.Errorf("dictionary %q: %w", src.Label(), err)
				return nil
			}
			bodies[i] = body
			return nil
		})
	}
	_ = g.Wait()
	return bodies, errs
}

func (d *Dictionaries) setLastErr(err error) {
	d.mu.Lock()
	d.lastErr = err
	d.mu.Unlock()
}
