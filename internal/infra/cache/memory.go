package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// Memory implements domain.Cache with a bounded in-process expirable LRU.
// Entries expire after the configured TTL; the size bound adds LRU eviction
// on top so sustained unique-query traffic cannot grow the cache without
// limit.
type Memory struct {
	inner  *lru.LRU[string, []byte]
	logger *zap.Logger
}

// NewMemory creates an in-memory cache holding at most size entries, each
// expiring ttl after it was written. The per-entry TTL argument of Set is
// ignored; the expirable LRU applies one uniform TTL.
func NewMemory(size int, ttl time.Duration, logger *zap.Logger) *Memory {
	return &Memory{
		inner:  lru.NewLRU[string, []byte](size, nil, ttl),
		logger: logger,
	}
}

// Get retrieves a value by key. Returns nil for both missing and expired
// entries.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.inner.Get(key)
	if !ok {
		return nil, nil
	}

	m.logger.Debug("cache hit",
		zap.String("key", key),
		zap.Int("bytes", len(data)),
	)

	return data, nil
}

// Set stores a value. Last writer wins under concurrent writes to the same
// key; cached values are idempotent re-derivations of the same upstream
// query, so the race is harmless.
func (m *Memory) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.inner.Add(key, value)

	m.logger.Debug("cache set",
		zap.String("key", key),
		zap.Int("bytes", len(value)),
	)

	return nil
}

// Delete removes a value by key. Idempotent.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.inner.Remove(key)
	return nil
}

// Clear removes all cached values.
func (m *Memory) Clear(_ context.Context) error {
	m.inner.Purge()
	return nil
}

// Len returns the number of live entries.
func (m *Memory) Len() int {
	return m.inner.Len()
}
