package resource_test

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mealplanner/internal/client/localcache"
	"mealplanner/internal/client/resource"
	"mealplanner/internal/client/transport"
	"mealplanner/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

type recordingNotifier struct {
	mu     sync.Mutex
	errors []error
	infos  []string
}

func (n *recordingNotifier) Error(_ string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, err)
}

func (n *recordingNotifier) Info(_ string, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, message)
}

func (n *recordingNotifier) ReauthRequired(error) {}

func (n *recordingNotifier) snapshot() ([]error, []string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]error(nil), n.errors...), append([]string(nil), n.infos...)
}

type managerFixtures struct {
	manager  *resource.Manager[item]
	notifier *recordingNotifier
	cache    *localcache.MemoryStore
	fetches  *atomic.Int32
	renders  *atomic.Int32
	listens  *atomic.Int32
	fetchErr *atomic.Value
}

type fetchResult struct {
	err error
}

func createTestManager(t *testing.T, seed func() []item) managerFixtures {
	t.Helper()

	fx := managerFixtures{
		cache:    localcache.NewMemoryStore(),
		fetches:  &atomic.Int32{},
		renders:  &atomic.Int32{},
		listens:  &atomic.Int32{},
		fetchErr: &atomic.Value{},
		notifier: &recordingNotifier{},
	}
	fx.fetchErr.Store(fetchResult{})

	fx.manager = resource.NewManager(resource.Options[item]{
		Name: "items",
		Fetch: func(context.Context) ([]item, error) {
			fx.fetches.Add(1)
			if err := fx.fetchErr.Load().(fetchResult).err; err != nil {
				return nil, err
			}

			return []item{{Name: "remote"}}, nil
		},
		Cache:          fx.cache,
		Seed:           seed,
		Render:         func([]item) { fx.renders.Add(1) },
		SetupListeners: func() { fx.listens.Add(1) },
		Notifier:       fx.notifier,
	})

	return fx
}

func (fx managerFixtures) failWith(err error) {
	fx.fetchErr.Store(fetchResult{err: err})
}

func networkErr() error {
	return errors.Join(transport.ErrNetwork, errors.New("connection refused"))
}

func TestManager_InitIsIdempotent(t *testing.T) {
	fx := createTestManager(t, nil)
	ctx := context.Background()

	require.NoError(t, fx.manager.Init(ctx))
	require.NoError(t, fx.manager.Init(ctx))

	assert.Equal(t, resource.Ready, fx.manager.State())
	assert.Equal(t, int32(1), fx.fetches.Load())
	assert.Equal(t, int32(2), fx.renders.Load())
	assert.Equal(t, int32(1), fx.listens.Load())
	assert.Equal(t, []item{{Name: "remote"}}, fx.manager.Items())
	assert.Equal(t, resource.SourceRemote, fx.manager.Source())
}

func TestManager_ConcurrentInitWaitsForFirst(t *testing.T) {
	release := make(chan struct{})
	var fetches atomic.Int32
	manager := resource.NewManager(resource.Options[item]{
		Name: "items",
		Fetch: func(context.Context) ([]item, error) {
			fetches.Add(1)
			<-release

			return []item{{Name: "remote"}}, nil
		},
	})

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, manager.Init(context.Background()))
			assert.Equal(t, resource.Ready, manager.State())
		}()
	}

	require.Eventually(t, func() bool { return manager.State() == resource.Initializing }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), fetches.Load())
}

func TestManager_LoadRefreshesCache(t *testing.T) {
	fx := createTestManager(t, nil)
	ctx := context.Background()

	require.NoError(t, fx.manager.Load(ctx))

	var cached []item
	found, err := localcache.GetJSON(ctx, fx.cache, "resource.items", &cached)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []item{{Name: "remote"}}, cached)
}

func TestManager_FallsBackToCache(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "network", err: networkErr()},
		{name: "server error", err: &transport.APIError{Status: http.StatusServiceUnavailable}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestManager(t, nil)
			ctx := context.Background()
			require.NoError(t, localcache.PutJSON(ctx, fx.cache, "resource.items", []item{{Name: "cached"}}))
			fx.failWith(tt.err)

			require.NoError(t, fx.manager.Init(ctx))

			assert.Equal(t, resource.Ready, fx.manager.State())
			assert.Equal(t, []item{{Name: "cached"}}, fx.manager.Items())
			assert.Equal(t, resource.SourceCache, fx.manager.Source())

			errs, infos := fx.notifier.snapshot()
			assert.Empty(t, errs)
			assert.Equal(t, []string{"Showing cached data"}, infos)
		})
	}
}

func TestManager_SeedsWhenCacheEmpty(t *testing.T) {
	fx := createTestManager(t, func() []item { return []item{{Name: "demo"}} })
	ctx := context.Background()
	fx.failWith(networkErr())

	require.NoError(t, fx.manager.Load(ctx))

	assert.Equal(t, []item{{Name: "demo"}}, fx.manager.Items())
	assert.Equal(t, resource.SourceSeed, fx.manager.Source())

	errs, infos := fx.notifier.snapshot()
	assert.Empty(t, errs)
	assert.Equal(t, []string{"Showing demo data"}, infos)

	var cached []item
	found, err := localcache.GetJSON(ctx, fx.cache, "resource.items", &cached)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestManager_ClientErrorDoesNotFallBack(t *testing.T) {
	fx := createTestManager(t, func() []item { return []item{{Name: "demo"}} })
	ctx := context.Background()
	require.NoError(t, localcache.PutJSON(ctx, fx.cache, "resource.items", []item{{Name: "cached"}}))
	fx.failWith(&transport.APIError{Status: http.StatusUnauthorized, Code: "TOKEN_INVALID"})

	err := fx.manager.Load(ctx)

	require.Error(t, err)
	assert.Empty(t, fx.manager.Items())
	assert.Equal(t, resource.SourceNone, fx.manager.Source())

	errs, _ := fx.notifier.snapshot()
	assert.Len(t, errs, 1)

	// Init still completes.
	require.NoError(t, fx.manager.Init(ctx))
	assert.Equal(t, resource.Ready, fx.manager.State())
}

func TestManager_UnavailableWithoutCacheOrSeed(t *testing.T) {
	fx := createTestManager(t, nil)
	fx.failWith(networkErr())

	err := fx.manager.Load(context.Background())

	assert.ErrorIs(t, err, transport.ErrNetwork)
	assert.Empty(t, fx.manager.Items())

	errs, infos := fx.notifier.snapshot()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], transport.ErrNetwork)
	assert.Empty(t, infos)
}

func TestManager_MutateRejectsWhileSubmitting(t *testing.T) {
	fx := createTestManager(t, nil)
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan error)
	go func() {
		done <- fx.manager.Mutate(ctx, func(context.Context) error {
			close(started)
			<-release

			return nil
		})
	}()
	<-started

	assert.True(t, fx.manager.IsSubmitting())
	err := fx.manager.Mutate(ctx, func(context.Context) error {
		t.Fatal("second mutation must not run")

		return nil
	})
	assert.ErrorIs(t, err, resource.ErrSubmitting)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, fx.manager.IsSubmitting())
	assert.Equal(t, int32(1), fx.fetches.Load())
}

func TestManager_MutateFailureClearsGuard(t *testing.T) {
	fx := createTestManager(t, nil)
	want := errors.New("validation failed")

	err := fx.manager.Mutate(context.Background(), func(context.Context) error { return want })

	assert.ErrorIs(t, err, want)
	assert.False(t, fx.manager.IsSubmitting())
	assert.Zero(t, fx.fetches.Load())
}
