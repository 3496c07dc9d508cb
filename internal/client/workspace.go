// Package client assembles the sync layer used by plannerctl: transport,
// token coordinator, local cache and one manager per resource family.
package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"mealplanner/config"
	"mealplanner/internal/client/api"
	"mealplanner/internal/client/auth"
	"mealplanner/internal/client/demo"
	"mealplanner/internal/client/localcache"
	"mealplanner/internal/client/notify"
	"mealplanner/internal/client/resource"
	"mealplanner/internal/client/transport"
	"mealplanner/internal/delivery/api/dto"
	"mealplanner/internal/errors"

	"golang.org/x/sync/errgroup"
)

const (
	ResourceMealPlans    = "mealplans"
	ResourceShoppingLogs = "shopping"
	ResourceSnacks       = "snacks"
)

// Options configures a Workspace.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Cache      localcache.Store
	DemoSeed   bool
	HTTPClient *http.Client
	Notifier   notify.Notifier
	Logger     *slog.Logger
}

// Workspace is the client-side view of one account.
type Workspace struct {
	Tokens *auth.Coordinator

	Auth        *api.AuthAPI
	MealPlanAPI *api.MealPlanAPI
	ShoppingAPI *api.ShoppingAPI
	SnackAPI    *api.SnackAPI

	MealPlans    *resource.Manager[dto.MealPlanResponse]
	ShoppingLogs *resource.Manager[dto.ShoppingLogResponse]
	Snacks       *resource.Manager[dto.SnackResponse]

	logger *slog.Logger
	closer io.Closer
}

// New wires a Workspace over opts.Cache, which also holds the tokens.
func New(opts Options) *Workspace {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Cache == nil {
		opts.Cache = localcache.NewMemoryStore()
	}

	transportOpts := []transport.Option{transport.WithLogger(opts.Logger)}
	if opts.HTTPClient != nil {
		transportOpts = append(transportOpts, transport.WithHTTPClient(opts.HTTPClient))
	}

	public := transport.New(opts.BaseURL, opts.Timeout, transportOpts...)
	// Refresh only touches the public client.
	refresh := api.NewAuthAPI(public, nil).Refresh
	tokens := auth.NewCoordinator(localcache.NewTokenStore(opts.Cache), refresh, opts.Notifier, opts.Logger)

	authed := transport.New(opts.BaseURL, opts.Timeout, append(transportOpts, transport.WithTokenSource(tokens))...)
	authAPI := api.NewAuthAPI(public, authed)

	w := &Workspace{
		Tokens:      tokens,
		Auth:        authAPI,
		MealPlanAPI: api.NewMealPlanAPI(authed),
		ShoppingAPI: api.NewShoppingAPI(authed),
		SnackAPI:    api.NewSnackAPI(authed),
		logger:      opts.Logger,
	}

	w.MealPlans = resource.NewManager(resource.Options[dto.MealPlanResponse]{
		Name:     ResourceMealPlans,
		Fetch:    w.MealPlanAPI.List,
		Cache:    opts.Cache,
		Seed:     seedIf(opts.DemoSeed, demo.MealPlans),
		Notifier: opts.Notifier,
		Logger:   opts.Logger,
	})
	w.ShoppingLogs = resource.NewManager(resource.Options[dto.ShoppingLogResponse]{
		Name:     ResourceShoppingLogs,
		Fetch:    w.ShoppingAPI.List,
		Cache:    opts.Cache,
		Seed:     seedIf(opts.DemoSeed, demo.ShoppingLogs),
		Notifier: opts.Notifier,
		Logger:   opts.Logger,
	})
	w.Snacks = resource.NewManager(resource.Options[dto.SnackResponse]{
		Name: ResourceSnacks,
		Fetch: func(ctx context.Context) ([]dto.SnackResponse, error) {
			return w.SnackAPI.List(ctx, "", "")
		},
		Cache:    opts.Cache,
		Seed:     seedIf(opts.DemoSeed, demo.Snacks),
		Notifier: opts.Notifier,
		Logger:   opts.Logger,
	})

	return w
}

func seedIf[T any](enabled bool, seed func() []T) func() []T {
	if !enabled {
		return nil
	}

	return seed
}

// Open builds a Workspace backed by the SQLite cache at cfg.CachePath.
func Open(cfg *config.ClientConfig, notifier notify.Notifier, logger *slog.Logger) (*Workspace, error) {
	store, err := localcache.OpenSQLite(cfg.CachePath)
	if err != nil {
		return nil, err
	}

	w := New(Options{
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
		Cache:    store,
		DemoSeed: cfg.DemoSeed,
		Notifier: notifier,
		Logger:   logger,
	})
	w.closer = store

	return w, nil
}

// Close releases the cache.
func (w *Workspace) Close() error {
	if w.closer == nil {
		return nil
	}

	return w.closer.Close()
}

// InitAll initialises every manager concurrently.
func (w *Workspace) InitAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.MealPlans.Init(ctx) })
	g.Go(func() error { return w.ShoppingLogs.Init(ctx) })
	g.Go(func() error { return w.Snacks.Init(ctx) })

	return errors.WithStack(g.Wait())
}

// Register creates an account and stores its tokens.
func (w *Workspace) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	out, err := w.Auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	return out.User, w.storeTokens(ctx, out)
}

// Login authenticates and stores the tokens.
func (w *Workspace) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	out, err := w.Auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	return out.User, w.storeTokens(ctx, out)
}

func (w *Workspace) storeTokens(ctx context.Context, out *dto.AuthResponse) error {
	return w.Tokens.SetToken(ctx, auth.Tokens{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken})
}

// Logout revokes the refresh token server-side when possible and always forgets it locally.
func (w *Workspace) Logout(ctx context.Context) error {
	refreshToken, err := w.Tokens.RefreshToken(ctx)
	if err != nil {
		return err
	}

	if refreshToken != "" {
		if err := w.Auth.Logout(ctx, refreshToken); err != nil {
			w.logger.WarnContext(ctx, "Server logout failed, clearing local session anyway", slog.Any("error", err))
		}
	}

	return w.Tokens.RemoveToken(ctx)
}
