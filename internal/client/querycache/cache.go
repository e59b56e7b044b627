// Package querycache keeps server responses keyed by resource and filter so
// that screens share data and optimistic edits can be rolled back.
package querycache

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"
)

// Kind names a cached resource type.
type Kind string

const (
	KindWordSets     Kind = "word-sets"
	KindWordSetPage  Kind = "word-set-page"
	KindCardSettings Kind = "card-settings"
	KindCardCount    Kind = "card-count"
)

// Key identifies one cached response. Filter is a hash of the canonical
// filter parameters, so equal filters share an entry whatever their order.
type Key struct {
	Kind   Kind
	ID     int64
	Filter string
}

// NewKey builds a key from a resource and its filter parameters. Empty
// parameter values are ignored.
func NewKey(kind Kind, id int64, params map[string]string) Key {
	return Key{Kind: kind, ID: id, Filter: FilterHash(params)}
}

// FilterHash hashes params in key order. It returns "" when no parameter
// has a value.
func FilterHash(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
		b.WriteByte(0)
	}
	h := fnv.New64a()
	h.Write([]byte(b.String())) //nolint:errcheck
	return fmt.Sprintf("%016x", h.Sum64())
}

type entry struct {
	value    any
	storedAt time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	mu    sync.Mutex
	lru   *expirable.LRU[Key, entry]
	clock clockwork.Clock
	stale time.Duration
}

// New creates a cache holding at most size entries. Entries older than
// stale are misses. A nil clock means the real clock.
func New(size int, stale time.Duration, clock clockwork.Clock) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache{
		lru:   expirable.NewLRU[Key, entry](size, nil, stale),
		clock: clock,
		stale: stale,
	}
}

func (c *Cache) getLocked(key Key) (any, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if c.stale > 0 && c.clock.Since(e.storedAt) > c.stale {
		c.lru.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) setLocked(key Key, value any) {
	c.lru.Add(key, entry{value: value, storedAt: c.clock.Now()})
}

// Invalidate drops one entry.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(key)
}

// InvalidateResource drops every filter variant of one resource.
func (c *Cache) InvalidateResource(kind Kind, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range c.lru.Keys() {
		if k.Kind == kind && k.ID == id {
			c.lru.Remove(k)
		}
	}
}

// InvalidateKind drops every entry of a kind.
func (c *Cache) InvalidateKind(kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range c.lru.Keys() {
		if k.Kind == kind {
			c.lru.Remove(k)
		}
	}
}

// Purge empties the cache, for example on sign-out.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}

// Get returns the fresh value stored under key, if it has type T.
func Get[T any](c *Cache, key Key) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.getLocked(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Set stores value under key.
func Set[T any](c *Cache, key Key, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// Cloner is implemented by values that can copy themselves deeply.
type Cloner[T any] interface {
	Clone() T
}

// Mutate replaces the value under key with fn(copy of current value) and
// returns the new value with a rollback that restores the value seen
// before this call. ok is false, and nothing changes, when there is no
// fresh value of type T. Rollbacks of several mutations are applied in
// reverse order.
//
// The copy is deep when T implements Cloner[T]; otherwise fn must not
// modify its argument in place.
func Mutate[T any](c *Cache, key Key, fn func(T) T) (next T, rollback func(), ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, found := c.getLocked(key)
	if !found {
		return next, func() {}, false
	}
	prev, isT := v.(T)
	if !isT {
		return next, func() {}, false
	}

	cur := prev
	if cl, ok := any(prev).(Cloner[T]); ok {
		cur = cl.Clone()
	}
	next = fn(cur)
	c.setLocked(key, next)

	rollback = func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.setLocked(key, prev)
	}
	return next, rollback, true
}
