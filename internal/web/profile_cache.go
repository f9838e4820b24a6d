package web

import (
	"context"
	"sync"
	"time"

	"github.com/louisbranch/dronline.health/internal/profile"
	"github.com/louisbranch/dronline.health/internal/storage"
)

const profileCacheTTL = 30 * time.Second

// profileCache memoizes profile lookups for the navbar and permission checks.
// Profiles are immutable after sign-up, so a short TTL is only a hedge against
// unbounded growth, not a consistency requirement.
type profileCache struct {
	store storage.ProfileStore
	now   func() time.Time

	mu      sync.RWMutex
	entries map[string]profileCacheEntry
}

type profileCacheEntry struct {
	profile   profile.Profile
	expiresAt time.Time
}

func newProfileCache(store storage.ProfileStore) *profileCache {
	return &profileCache{
		store:   store,
		now:     time.Now,
		entries: make(map[string]profileCacheEntry),
	}
}

// get returns the profile for userID, fetching through the store on a miss.
// A missing profile surfaces as storage.ErrNotFound; any other error is the
// store's own, so callers can tell a deleted profile from a failing database.
func (c *profileCache) get(ctx context.Context, userID string) (profile.Profile, error) {
	if userID == "" {
		return profile.Profile{}, storage.ErrNotFound
	}

	c.mu.RLock()
	entry, ok := c.entries[userID]
	c.mu.RUnlock()
	if ok && entry.expiresAt.After(c.now()) {
		return entry.profile, nil
	}

	prof, err := c.store.GetProfile(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}

	c.mu.Lock()
	c.entries[userID] = profileCacheEntry{
		profile:   prof,
		expiresAt: c.now().Add(profileCacheTTL),
	}
	c.mu.Unlock()
	return prof, nil
}

// invalidate drops a cached profile, forcing the next get through the store.
func (c *profileCache) invalidate(userID string) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}
