package cache

import (
	"context"
	"sync"
	"time"
)

const evictionThreshold = 100

// Memory is a bounded in-process TTL cache. Once the map grows past
// evictionThreshold entries, stale entries are swept opportunistically on
// the next write.
type Memory struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	now  func() time.Time
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemory constructs an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

// Get returns the cached value if present and not expired.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok || m.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Set stores a value with the given TTL, sweeping stale entries when the
// map has grown past the eviction threshold.
func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.data) > evictionThreshold {
		for k, entry := range m.data {
			if now.After(entry.expiresAt) {
				delete(m.data, k)
			}
		}
	}
	m.data[key] = memoryEntry{value: value, expiresAt: now.Add(ttl)}
	return nil
}

// Len reports the current entry count, expired entries included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
