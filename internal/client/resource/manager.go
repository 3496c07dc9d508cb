// Package resource keeps one resource family in sync between the API and the local cache.
package resource

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"mealplanner/internal/client/localcache"
	"mealplanner/internal/client/notify"
	"mealplanner/internal/client/transport"
	"mealplanner/internal/errors"
)

// ErrSubmitting is returned by Mutate while another mutation is running.
var ErrSubmitting = errors.New("a submission is already in progress")

// State is the manager lifecycle.
type State int32

const (
	Uninitialized State = iota
	Initializing
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Source tells where the current items came from.
type Source string

const (
	SourceNone   Source = "none"
	SourceRemote Source = "remote"
	SourceCache  Source = "cache"
	SourceSeed   Source = "seed"
)

// Options configures a Manager. Name and Fetch are required.
type Options[T any] struct {
	// Name identifies the resource in notifications and is the cache key.
	Name string
	// Fetch loads the full list from the API.
	Fetch func(ctx context.Context) ([]T, error)
	// Cache holds the last good snapshot. Nil disables fallback.
	Cache localcache.Store
	// Seed returns demo items used when both the API and the cache are empty-handed.
	Seed func() []T
	// Render is called with the items after each load and on repeated Init.
	Render func(items []T)
	// SetupListeners is run exactly once, at the end of the first Init.
	SetupListeners func()
	Notifier       notify.Notifier
	Logger         *slog.Logger
}

// Manager holds the items of one resource family.
type Manager[T any] struct {
	opts Options[T]

	mu                  sync.Mutex
	state               State
	ready               chan struct{}
	items               []T
	source              Source
	eventListenersSetup bool

	isSubmitting atomic.Bool
}

func NewManager[T any](opts Options[T]) *Manager[T] {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Manager[T]{
		opts:   opts,
		ready:  make(chan struct{}),
		source: SourceNone,
	}
}

// Name returns the resource name.
func (m *Manager[T]) Name() string {
	return m.opts.Name
}

// State returns the lifecycle state.
func (m *Manager[T]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Items returns a copy of the current items.
func (m *Manager[T]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]T(nil), m.items...)
}

// Source reports where the current items came from.
func (m *Manager[T]) Source() Source {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.source
}

// IsSubmitting reports whether a mutation is running.
func (m *Manager[T]) IsSubmitting() bool {
	return m.isSubmitting.Load()
}

// Init loads the resource the first time it is called. Later calls re-render
// from memory; calls made while the first one runs wait for it. Load failures
// are reported through the Notifier and never fail Init.
func (m *Manager[T]) Init(ctx context.Context) error {
	m.mu.Lock()
	switch m.state {
	case Ready:
		items := append([]T(nil), m.items...)
		m.mu.Unlock()
		m.render(items)

		return nil
	case Initializing:
		ready := m.ready
		m.mu.Unlock()

		select {
		case <-ready:
			return nil
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		}
	}
	m.state = Initializing
	m.mu.Unlock()

	if err := m.Load(ctx); err != nil {
		m.opts.Logger.WarnContext(ctx, "Initial load failed",
			slog.String("resource", m.opts.Name),
			slog.Any("error", err),
		)
	}

	m.setupListeners()

	m.mu.Lock()
	m.state = Ready
	close(m.ready)
	m.mu.Unlock()

	return nil
}

func (m *Manager[T]) setupListeners() {
	m.mu.Lock()
	if m.eventListenersSetup || m.opts.SetupListeners == nil {
		m.eventListenersSetup = true
		m.mu.Unlock()

		return
	}
	m.eventListenersSetup = true
	m.mu.Unlock()

	m.opts.SetupListeners()
}

// Load fetches from the API and refreshes the cache. When the API is unreachable
// or answers 5xx it falls back to the cached snapshot, then to the demo seed.
// The Notifier gets an error only when no fallback was shown. Other errors, such
// as an expired session, are reported and returned as is.
func (m *Manager[T]) Load(ctx context.Context) error {
	items, err := m.opts.Fetch(ctx)
	if err == nil {
		m.set(items, SourceRemote)
		m.writeCache(ctx, items)
		m.render(items)

		return nil
	}

	if !transport.IsUnavailable(err) {
		m.opts.Notifier.Error(m.opts.Name, err)

		return err
	}

	m.opts.Logger.WarnContext(ctx, "Remote load failed, falling back",
		slog.String("resource", m.opts.Name),
		slog.Any("error", err),
	)

	if cached, found := m.readCache(ctx); found {
		m.set(cached, SourceCache)
		m.opts.Notifier.Info(m.opts.Name, "Showing cached data")
		m.render(cached)

		return nil
	}

	if m.opts.Seed != nil {
		seed := m.opts.Seed()
		m.set(seed, SourceSeed)
		m.writeCache(ctx, seed)
		m.opts.Notifier.Info(m.opts.Name, "Showing demo data")
		m.render(seed)

		return nil
	}

	m.opts.Notifier.Error(m.opts.Name, err)
	m.render(m.Items())

	return err
}

// Mutate runs op unless another mutation is already running, then reloads.
func (m *Manager[T]) Mutate(ctx context.Context, op func(ctx context.Context) error) error {
	if !m.isSubmitting.CompareAndSwap(false, true) {
		return ErrSubmitting
	}
	defer m.isSubmitting.Store(false)

	if err := op(ctx); err != nil {
		m.opts.Notifier.Error(m.opts.Name, err)

		return err
	}

	return m.Load(ctx)
}

func (m *Manager[T]) set(items []T, source Source) {
	m.mu.Lock()
	m.items = items
	m.source = source
	m.mu.Unlock()
}

func (m *Manager[T]) render(items []T) {
	if m.opts.Render != nil {
		m.opts.Render(items)
	}
}

func (m *Manager[T]) cacheKey() string {
	return "resource." + m.opts.Name
}

func (m *Manager[T]) readCache(ctx context.Context) ([]T, bool) {
	if m.opts.Cache == nil {
		return nil, false
	}

	var items []T
	found, err := localcache.GetJSON(ctx, m.opts.Cache, m.cacheKey(), &items)
	if err != nil {
		m.opts.Logger.WarnContext(ctx, "Failed to read local cache",
			slog.String("resource", m.opts.Name),
			slog.Any("error", err),
		)

		return nil, false
	}

	return items, found
}

func (m *Manager[T]) writeCache(ctx context.Context, items []T) {
	if m.opts.Cache == nil {
		return
	}

	if err := localcache.PutJSON(ctx, m.opts.Cache, m.cacheKey(), items); err != nil {
		m.opts.Logger.WarnContext(ctx, "Failed to write local cache",
			slog.String("resource", m.opts.Name),
			slog.Any("error", err),
		)
	}
}
