package repository

import (
	"sync"
	"time"
)

const cacheSweepInterval = time.Minute

type memoryEntry struct {
	value   string
	stored  time.Time
	expires time.Time // zero never expires
}

// MemoryCache is an in-process CacheRepository with optional expiry and a
// bound on the number of entries. Expired entries are swept in the
// background until Stop is called.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	stopSweep chan struct{}
	stopOnce  sync.Once
}

// NewMemoryCache creates a cache whose entries live for ttl; zero keeps them
// until evicted. maxEntries <= 0 leaves the size unbounded.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	m := &MemoryCache{
		data:       make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		stopSweep:  make(chan struct{}),
	}
	if ttl > 0 {
		go m.sweepLoop(min(ttl, cacheSweepInterval))
	}
	return m
}

func (m *MemoryCache) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

// sweep drops every expired entry.
func (m *MemoryCache) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(m.now())
}

func (m *MemoryCache) sweepLocked(now time.Time) {
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

// Stop ends the background sweep. It is safe to call more than once.
func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.stopSweep) })
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if entry.expired(m.now()) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(key string, value string) error {
	now := m.now()
	entry := memoryEntry{value: value, stored: now}
	if m.ttl > 0 {
		entry.expires = now.Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && m.maxEntries > 0 && len(m.data) >= m.maxEntries {
		m.sweepLocked(now)
		if len(m.data) >= m.maxEntries {
			m.evictOldestLocked()
		}
	}
	m.data[key] = entry
	return nil
}

func (m *MemoryCache) evictOldestLocked() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, entry := range m.data {
		if !found || entry.stored.Before(oldest) {
			oldestKey, oldest, found = key, entry.stored, true
		}
	}
	if found {
		delete(m.data, oldestKey)
	}
}

// Len reports the number of stored entries, expired ones not yet swept included.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
