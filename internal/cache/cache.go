// Package cache provides a two-tier key/value cache with per-entry TTL:
// an in-process map for fast repeated reads backed by an optional
// persistent store that survives restarts.
package cache

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"
)

// DefaultTTL is applied when Set is called without an explicit TTL.
const DefaultTTL = 7 * 24 * time.Hour

// Store is the persistent tier. Implementations store opaque bytes; key
// enumeration is prefix-scoped so one shared store can host several
// namespaces.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}

// record is the stored envelope for one cache entry.
type record[V any] struct {
	Value     V             `json:"value"`
	CreatedAt time.Time     `json:"created_at"`
	TTL       time.Duration `json:"ttl"`
}

func (r record[V]) expired(now time.Time) bool {
	return now.Sub(r.CreatedAt) > r.TTL
}

type options struct {
	ttl  time.Duration
	now  func() time.Time
	logf func(format string, args ...any)
}

// Option configures a Cache.
type Option func(*options)

// WithTTL overrides the default TTL for entries set without one.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

// WithClock overrides the time source (for testing expiry).
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogf overrides where suppressed store failures are logged.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(o *options) { o.logf = logf }
}

// Cache is a namespaced TTL cache for values of type V.
//
// The in-memory tier is authoritative for the current process: persistent
// store failures are logged and suppressed, never surfaced to callers.
// Expiry is lazy (checked on read), with an explicit Cleanup sweep.
type Cache[V any] struct {
	mu     sync.Mutex
	prefix string
	store  Store // nil means memory-only
	mem    map[string]record[V]
	opts   options
}

// New creates a cache under the given key-space prefix. A nil store yields
// a memory-only cache.
func New[V any](prefix string, store Store, opts ...Option) *Cache[V] {
	o := options{
		ttl:  DefaultTTL,
		now:  time.Now,
		logf: log.Printf,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[V]{
		prefix: prefix,
		store:  store,
		mem:    make(map[string]record[V]),
		opts:   o,
	}
}

func (c *Cache[V]) fullKey(key string) string {
	return c.prefix + key
}

// Get returns the cached value for key, if present and unexpired. Expired
// records are removed from both tiers and reported as absent. A memory
// miss falls through to the persistent store and repopulates memory on a
// hit.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	now := c.opts.now()

	if rec, ok := c.mem[key]; ok {
		if rec.expired(now) {
			c.evict(key)
			return zero, false
		}
		return rec.Value, true
	}

	if c.store == nil {
		return zero, false
	}

	data, ok, err := c.store.Get(c.fullKey(key))
	if err != nil {
		c.opts.logf("cache: reading %q from store: %v", key, err)
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var rec record[V]
	if err := json.Unmarshal(data, &rec); err != nil {
		c.opts.logf("cache: decoding %q: %v", key, err)
		c.evict(key)
		return zero, false
	}
	if rec.expired(now) {
		c.evict(key)
		return zero, false
	}

	c.mem[key] = rec
	return rec.Value, true
}

// Set stores a value under the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.opts.ttl)
}

// SetWithTTL stores a value with an explicit TTL. Both tiers are written;
// a persistent-tier failure leaves the memory tier authoritative.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := record[V]{Value: value, CreatedAt: c.opts.now(), TTL: ttl}
	c.mem[key] = rec

	if c.store == nil {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		c.opts.logf("cache: encoding %q: %v", key, err)
		return
	}
	if err := c.store.Set(c.fullKey(key), data); err != nil {
		c.opts.logf("cache: writing %q to store: %v", key, err)
	}
}

// Has reports whether key holds an unexpired value.
func (c *Cache[V]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Delete removes key from both tiers.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evict(key)
}

// evict removes key from both tiers. Caller holds the lock.
func (c *Cache[V]) evict(key string) {
	delete(c.mem, key)
	if c.store == nil {
		return
	}
	if err := c.store.Delete(c.fullKey(key)); err != nil {
		c.opts.logf("cache: deleting %q from store: %v", key, err)
	}
}

// Clear removes every entry in this cache's namespace from both tiers.
// Entries outside the prefix in a shared store are untouched.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mem = make(map[string]record[V])

	if c.store == nil {
		return
	}
	keys, err := c.store.Keys(c.prefix)
	if err != nil {
		c.opts.logf("cache: listing store keys: %v", err)
		return
	}
	for _, k := range keys {
		if err := c.store.Delete(k); err != nil {
			c.opts.logf("cache: deleting %q from store: %v", k, err)
		}
	}
}

// Cleanup sweeps both tiers and removes expired entries. Returns the
// number of entries removed.
func (c *Cache[V]) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.opts.now()
	removed := 0

	for key, rec := range c.mem {
		if rec.expired(now) {
			c.evict(key)
			removed++
		}
	}

	if c.store == nil {
		return removed
	}
	keys, err := c.store.Keys(c.prefix)
	if err != nil {
		c.opts.logf("cache: listing store keys: %v", err)
		return removed
	}
	for _, full := range keys {
		key := strings.TrimPrefix(full, c.prefix)
		if _, ok := c.mem[key]; ok {
			continue // already checked above
		}
		data, ok, err := c.store.Get(full)
		if err != nil || !ok {
			continue
		}
		var rec record[V]
		if err := json.Unmarshal(data, &rec); err != nil || rec.expired(now) {
			if err := c.store.Delete(full); err != nil {
				c.opts.logf("cache: deleting %q from store: %v", full, err)
				continue
			}
			removed++
		}
	}
	return removed
}

// Len returns the number of entries in the memory tier, including any that
// have expired but not yet been evicted.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.mem)
}
