package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

// CacheConfig sizes the user cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version  string      `json:"version"`
	User     domain.User `json:"user"`
	CachedAt time.Time   `json:"cached_at"`
}

// userCache is an LRU of users keyed by id with time-based expiration.
// Entries written under an older schema version are treated as misses.
type userCache struct {
	lru    *expirable.LRU[string, *cachedUserEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newUserCache(cfg CacheConfig) *userCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy of the cached user
func (c *userCache) Get(userID string) (*domain.User, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	u := entry.User
	return &u, true
}

func (c *userCache) Set(user domain.User) {
	c.lru.Add(user.ID, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     user,
		CachedAt: time.Now(),
	})
}

func (c *userCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

func (c *userCache) Clear() {
	c.lru.Purge()
}

func (c *userCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
