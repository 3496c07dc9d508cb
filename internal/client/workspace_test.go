package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mealplanner/internal/client"
	"mealplanner/internal/client/auth"
	"mealplanner/internal/client/localcache"
	"mealplanner/internal/client/resource"
	"mealplanner/internal/delivery/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI accepts exactly one access token at a time and rotates it on refresh.
type fakeAPI struct {
	mu            sync.Mutex
	accessToken   string
	refreshToken  string
	refreshCalls  atomic.Int32
	refreshDelay  time.Duration
	lateReject    time.Duration
	barrier       int32
	arrived       chan struct{}
	rejects       atomic.Int32
	logoutCalls   atomic.Int32
	mealPlanCalls atomic.Int32
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		body := dto.AuthResponse{AccessToken: f.accessToken, RefreshToken: f.refreshToken, User: &dto.UserResponse{Name: "Sari"}}
		f.mu.Unlock()
		respond(w, http.StatusOK, body)
	})

	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.refreshCalls.Add(1)
		time.Sleep(f.refreshDelay)

		var req dto.RefreshTokenRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		f.mu.Lock()
		defer f.mu.Unlock()
		if req.RefreshToken != f.refreshToken {
			fail(w, http.StatusUnauthorized, "REFRESH_TOKEN_INVALID")

			return
		}
		f.accessToken = "access-" + req.RefreshToken
		f.refreshToken = "rotated-" + req.RefreshToken
		respond(w, http.StatusOK, dto.AuthResponse{AccessToken: f.accessToken, RefreshToken: f.refreshToken})
	})

	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		f.logoutCalls.Add(1)
		respond(w, http.StatusOK, nil)
	})

	mux.HandleFunc("GET /mealplan", func(w http.ResponseWriter, r *http.Request) {
		if n := f.mealPlanCalls.Add(1); f.barrier > 0 {
			if n == f.barrier {
				close(f.arrived)
			}
			if n <= f.barrier {
				<-f.arrived
			}
		}
		f.mu.Lock()
		valid := r.Header.Get("Authorization") == "Bearer "+f.accessToken
		f.mu.Unlock()
		if !valid {
			if f.rejects.Add(1) == 2 {
				time.Sleep(f.lateReject)
			}
			fail(w, http.StatusUnauthorized, "TOKEN_INVALID")

			return
		}
		respond(w, http.StatusOK, []dto.MealPlanResponse{{Date: "2026-03-02", Weekday: "Monday"}})
	})

	return mux
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "code": status, "message": "OK", "data": data})
}

func fail(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false, "code": status, "message": "rejected",
		"error": map[string]any{"code": code},
	})
}

func newWorkspace(t *testing.T, baseURL string, cache localcache.Store, demoSeed bool) *client.Workspace {
	t.Helper()

	return client.New(client.Options{
		BaseURL:  baseURL,
		Timeout:  2 * time.Second,
		Cache:    cache,
		DemoSeed: demoSeed,
	})
}

func TestWorkspace_ExpiredTokenRefreshesOnceForConcurrentCalls(t *testing.T) {
	api := &fakeAPI{accessToken: "access-current", refreshToken: "r1", refreshDelay: 50 * time.Millisecond}
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	cache := localcache.NewMemoryStore()
	require.NoError(t, localcache.NewTokenStore(cache).SaveTokens(context.Background(), auth.Tokens{
		AccessToken:  "access-expired",
		RefreshToken: "r1",
	}))
	ws := newWorkspace(t, srv.URL, cache, false)

	const callers = 6
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			plans, err := ws.MealPlanAPI.List(context.Background())
			assert.NoError(t, err)
			assert.Len(t, plans, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, int32(2*callers), api.mealPlanCalls.Load())

	stored, err := localcache.NewTokenStore(cache).LoadTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-r1", stored.AccessToken)
	assert.Equal(t, "rotated-r1", stored.RefreshToken)
}

func TestWorkspace_LateRejectionReusesRotatedToken(t *testing.T) {
	api := &fakeAPI{
		accessToken:  "access-current",
		refreshToken: "r1",
		lateReject:   150 * time.Millisecond,
		barrier:      2,
		arrived:      make(chan struct{}),
	}
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	cache := localcache.NewMemoryStore()
	require.NoError(t, localcache.NewTokenStore(cache).SaveTokens(context.Background(), auth.Tokens{
		AccessToken:  "access-expired",
		RefreshToken: "r1",
	}))
	ws := newWorkspace(t, srv.URL, cache, false)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			plans, err := ws.MealPlanAPI.List(context.Background())
			assert.NoError(t, err)
			assert.Len(t, plans, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(2), api.rejects.Load())
	assert.Equal(t, int32(1), api.refreshCalls.Load())

	stored, err := localcache.NewTokenStore(cache).LoadTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rotated-r1", stored.RefreshToken)
}

func TestWorkspace_RefreshFailureLogsOut(t *testing.T) {
	api := &fakeAPI{accessToken: "access-current", refreshToken: "r-server"}
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	cache := localcache.NewMemoryStore()
	require.NoError(t, localcache.NewTokenStore(cache).SaveTokens(context.Background(), auth.Tokens{
		AccessToken:  "access-expired",
		RefreshToken: "r-stale",
	}))
	ws := newWorkspace(t, srv.URL, cache, false)

	_, err := ws.MealPlanAPI.List(context.Background())

	assert.ErrorIs(t, err, auth.ErrReauthRequired)
	assert.Equal(t, int32(1), api.mealPlanCalls.Load())

	stored, err := localcache.NewTokenStore(cache).LoadTokens(context.Background())
	require.NoError(t, err)
	assert.True(t, stored.IsZero())
}

func TestWorkspace_LoginThenInitAll(t *testing.T) {
	api := &fakeAPI{accessToken: "access-1", refreshToken: "r1"}
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	ws := newWorkspace(t, srv.URL, localcache.NewMemoryStore(), false)
	ctx := context.Background()

	user, err := ws.Login(ctx, &dto.LoginRequest{Email: "sari@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Sari", user.Name)

	require.NoError(t, ws.InitAll(ctx))

	assert.Equal(t, resource.Ready, ws.MealPlans.State())
	assert.Equal(t, resource.SourceRemote, ws.MealPlans.Source())
	assert.Len(t, ws.MealPlans.Items(), 1)
	// The fake has no shopping or snack routes; a 404 is reported but Init completes.
	assert.Equal(t, resource.Ready, ws.ShoppingLogs.State())
	assert.Equal(t, resource.Ready, ws.Snacks.State())

	require.NoError(t, ws.Logout(ctx))
	assert.Equal(t, int32(1), api.logoutCalls.Load())

	token, err := ws.Tokens.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestWorkspace_OfflineUsesDemoSeed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ws := newWorkspace(t, url, localcache.NewMemoryStore(), true)

	require.NoError(t, ws.InitAll(context.Background()))

	assert.Equal(t, resource.SourceSeed, ws.MealPlans.Source())
	assert.NotEmpty(t, ws.MealPlans.Items())
	assert.NotEmpty(t, ws.ShoppingLogs.Items())
	assert.NotEmpty(t, ws.Snacks.Items())
}
