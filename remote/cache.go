package remote

import (
	"sync"
	"time"

	"github.com/YarKhan02/Workshop-sub003/utils"
)

const (
	// DefaultFreshFor is how long a fetched value is served without going
	// back to the backend.
	DefaultFreshFor = 5 * time.Minute
	// DefaultRetainFor is how long an entry survives before the janitor
	// evicts it outright.
	DefaultRetainFor = 10 * time.Minute
)

type cacheEntry struct {
	body      []byte
	fetchedAt time.Time
}

// Cache is the in-process response cache. Values are kept as raw JSON so a
// hit decodes exactly like a remote read would.
type Cache struct {
	mu        sync.RWMutex
	entries   map[string]cacheEntry
	freshFor  time.Duration
	retainFor time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewCache() *Cache {
	return &Cache{
		entries:   make(map[string]cacheEntry),
		freshFor:  DefaultFreshFor,
		retainFor: DefaultRetainFor,
		stopChan:  make(chan struct{}),
	}
}

// Get returns the cached body for key if it is still fresh.
func (c *Cache) Get(key Key) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key.String()]
	if !ok || time.Since(entry.fetchedAt) >= c.freshFor {
		return nil, false
	}
	return entry.body, true
}

func (c *Cache) Put(key Key, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key.String()] = cacheEntry{body: body, fetchedAt: time.Now()}
}

// Invalidate drops the given keys so the next fetch goes remote.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k.String())
	}
}

// Sweep evicts every entry past the retention window and reports how many
// were dropped.
func (c *Cache) Sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	evicted := 0
	for k, entry := range c.entries {
		if now.Sub(entry.fetchedAt) >= c.retainFor {
			delete(c.entries, k)
			evicted++
		}
	}
	return evicted
}

// StartJanitor sweeps expired entries on the given interval until Stop.
func (c *Cache) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := c.Sweep(time.Now()); n > 0 {
					utils.InfoLogger.Printf("cache janitor evicted %d entries", n)
				}
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

func (c *Cache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
