// Package localcache persists client data between runs: resource snapshots and tokens.
package localcache

import (
	"context"
	"encoding/json"
	"sync"

	"mealplanner/internal/client/auth"
	"mealplanner/internal/errors"
)

const tokensKey = "auth.tokens"

// Store is a key/value store for JSON snapshots.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// GetJSON decodes the value at key into out. found is false when the key is absent.
func GetJSON(ctx context.Context, store Store, key string, out any) (found bool, err error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrapf(err, "decode cache entry %q", key)
	}

	return true, nil
}

// PutJSON encodes value and stores it at key.
func PutJSON(ctx context.Context, store Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode cache entry %q", key)
	}

	return store.Put(ctx, key, raw)
}

// TokenStore keeps the auth token pair in a Store.
type TokenStore struct {
	store Store
}

var _ auth.TokenStore = (*TokenStore)(nil)

func NewTokenStore(store Store) *TokenStore {
	return &TokenStore{store: store}
}

func (s *TokenStore) LoadTokens(ctx context.Context) (auth.Tokens, error) {
	var tokens auth.Tokens
	if _, err := GetJSON(ctx, s.store, tokensKey, &tokens); err != nil {
		return auth.Tokens{}, err
	}

	return tokens, nil
}

func (s *TokenStore) SaveTokens(ctx context.Context, tokens auth.Tokens) error {
	return PutJSON(ctx, s.store, tokensKey, tokens)
}

func (s *TokenStore) ClearTokens(ctx context.Context) error {
	return s.store.Delete(ctx, tokensKey)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}

	return append([]byte(nil), value...), true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = append([]byte(nil), value...)

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}
