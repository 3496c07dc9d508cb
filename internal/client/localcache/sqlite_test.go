package localcache_test

import (
	"context"
	"path/filepath"
	"testing"

	"mealplanner/internal/client/auth"
	"mealplanner/internal/client/localcache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "planner.db")
	ctx := context.Background()

	store, err := localcache.OpenSQLite(path)
	require.NoError(t, err)

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Put(ctx, "resource.snacks", []byte(`[{"itemName":"Cilok"}]`)))
	require.NoError(t, store.Put(ctx, "resource.snacks", []byte(`[{"itemName":"Batagor"}]`)))

	value, found, err := store.Get(ctx, "resource.snacks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"itemName":"Batagor"}]`, string(value))

	require.NoError(t, store.Delete(ctx, "resource.snacks"))
	_, found, err = store.Get(ctx, "resource.snacks")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Close())
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.db")
	ctx := context.Background()

	store, err := localcache.OpenSQLite(path)
	require.NoError(t, err)
	tokens := localcache.NewTokenStore(store)
	require.NoError(t, tokens.SaveTokens(ctx, auth.Tokens{AccessToken: "a", RefreshToken: "r"}))
	require.NoError(t, store.Close())

	reopened, err := localcache.OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := localcache.NewTokenStore(reopened).LoadTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.Tokens{AccessToken: "a", RefreshToken: "r"}, loaded)

	require.NoError(t, localcache.NewTokenStore(reopened).ClearTokens(ctx))
	loaded, err = localcache.NewTokenStore(reopened).LoadTokens(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.IsZero())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	store := localcache.NewMemoryStore()
	ctx := context.Background()
	value := []byte("abc")

	require.NoError(t, store.Put(ctx, "k", value))
	value[0] = 'x'

	got, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc", string(got))
}
