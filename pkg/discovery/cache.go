package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"

	"github.com/luvbee/discovery/pkg/domain"
)

// Cache owns the population cooldown timestamps and the in-flight feed computations.
// Cooldown entries are never removed, durable hints are consulted only for keys unknown in memory.
type Cache struct {
	ttl   time.Duration
	hints CooldownHints
	now   func() time.Time

	mu        sync.Mutex
	populated map[string]time.Time
	inFlight  map[string]struct{}

	group singleflight.Group
}

// NewCache makes a cache with the given cooldown ttl, DefaultPopulateTTL if zero.
// Hints are optional.
func NewCache(ttl time.Duration, hints CooldownHints) *Cache {
	if ttl <= 0 {
		ttl = DefaultPopulateTTL
	}
	if hints == nil {
		hints = NoopHints{}
	}
	return &Cache{
		ttl:       ttl,
		hints:     hints,
		now:       time.Now,
		populated: map[string]time.Time{},
		inFlight:  map[string]struct{}{},
	}
}

// ShouldPopulate reports whether no population happened for the key within ttl
func (c *Cache) ShouldPopulate(ctx context.Context, key string) bool {
	hint, hinted := c.lookupHint(ctx, key)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allowed(key, hint, hinted)
}

// Reserve checks the cooldown and, if population is allowed, marks the key as populated now.
// Only one of the concurrent callers with the same key gets true.
func (c *Cache) Reserve(ctx context.Context, key string) bool {
	hint, hinted := c.lookupHint(ctx, key)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.allowed(key, hint, hinted) {
		return false
	}
	c.populated[key] = c.now()
	return true
}

// MarkPopulated records the population time for the key in memory and in the hints store.
// Hint failures are logged and ignored.
func (c *Cache) MarkPopulated(ctx context.Context, key string) {
	ts := c.now()
	c.mu.Lock()
	c.populated[key] = ts
	c.mu.Unlock()

	if err := c.hints.Set(ctx, key, ts); err != nil {
		lgr.Printf("[WARN] can't save cooldown hint for %s: %v", key, err)
	}
}

// Entries returns the number of known cooldown keys
func (c *Cache) Entries() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.populated)
}

// InFlight returns the number of running feed computations
func (c *Cache) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inFlight)
}

// Do runs fn once for all concurrent callers with the same key, they all get the same slice.
// The key is released when fn returns or panics.
func (c *Cache) Do(key string, fn func() []domain.FeedItem) (items []domain.FeedItem, shared bool) {
	v, err, shared := c.group.Do(key, func() (any, error) {
		c.mu.Lock()
		c.inFlight[key] = struct{}{}
		c.mu.Unlock()
		defer func() {
			c.mu.Lock()
			delete(c.inFlight, key)
			c.mu.Unlock()
		}()
		return fn(), nil
	})
	if err != nil {
		return nil, shared
	}
	items, _ = v.([]domain.FeedItem)
	return items, shared
}

// allowed checks the cooldown for key, must be called under lock.
// A hint is adopted only when memory has no entry for the key.
func (c *Cache) allowed(key string, hint time.Time, hinted bool) bool {
	last, ok := c.populated[key]
	if !ok && hinted {
		last, ok = hint, true
		c.populated[key] = hint
	}
	if !ok {
		return true
	}
	return c.now().Sub(last) > c.ttl
}

// lookupHint reads the hint for keys unknown in memory
func (c *Cache) lookupHint(ctx context.Context, key string) (time.Time, bool) {
	c.mu.Lock()
	_, known := c.populated[key]
	c.mu.Unlock()
	if known {
		return time.Time{}, false
	}

	ts, ok, err := c.hints.Get(ctx, key)
	if err != nil {
		lgr.Printf("[DEBUG] can't read cooldown hint for %s: %v", key, err)
		return time.Time{}, false
	}
	return ts, ok && !ts.IsZero()
}
