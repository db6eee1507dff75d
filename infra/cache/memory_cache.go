package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/banking/pkg/cache"
	"github.com/amirasaad/banking/pkg/domain/kyc"
	"github.com/google/uuid"
)

// MemoryCache implements cache.KYCCache using in-memory storage.
type MemoryCache struct {
	entries map[uuid.UUID]*cacheEntry
	mu      sync.RWMutex
	now     func() time.Time
}

type cacheEntry struct {
	profile   profileEntry
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[uuid.UUID]*cacheEntry),
		now:     time.Now,
	}
}

// Get returns a copy of the cached profile, or nil when absent or expired.
func (c *MemoryCache) Get(_ context.Context, userID uuid.UUID) (*kyc.Profile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[userID]
	if !exists || c.now().After(entry.expiresAt) {
		return nil, nil
	}
	return entry.profile.profile(), nil
}

// Set stores a profile with TTL.
func (c *MemoryCache) Set(_ context.Context, p *kyc.Profile, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[p.UserID] = &cacheEntry{
		profile:   toEntry(p),
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, userID)
	return nil
}

// Run evicts expired entries every interval until ctx is done.
func (c *MemoryCache) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

func (c *MemoryCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

var _ cache.KYCCache = (*MemoryCache)(nil)
