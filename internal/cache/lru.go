package cache

import (
	"container/list"
	"strings"
	"sync"
	"time"
)

// LRU is a fixed-capacity Cache with TTL expiry. Safe for concurrent
// use. Expired entries are dropped lazily on Get.
type LRU struct {
	capacity   int
	defaultTTL time.Duration

	mu      sync.Mutex
	entries map[string]*entry
	order   *list.List

	// now is replaceable in tests.
	now func() time.Time
}

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
	element   *list.Element
}

// NewLRU creates a Cache holding at most capacity entries, each living
// defaultTTL unless Set overrides it.
func NewLRU(capacity int, defaultTTL time.Duration) *LRU {
	if capacity <= 0 {
		capacity = 256
	}
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	return &LRU{
		capacity:   capacity,
		defaultTTL: defaultTTL,
		entries:    make(map[string]*entry),
		order:      list.New(),
		now:        time.Now,
	}
}

func (c *LRU) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.remove(e)
		return nil, false
	}
	c.order.MoveToFront(e.element)
	return e.value, true
}

func (c *LRU) Set(key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = c.now().Add(ttl)
		c.order.MoveToFront(e.element)
		return
	}

	for len(c.entries) >= c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.remove(oldest.Value.(*entry))
	}

	e := &entry{key: key, value: value, expiresAt: c.now().Add(ttl)}
	e.element = c.order.PushFront(e)
	c.entries[key] = e
}

func (c *LRU) InvalidatePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			c.remove(e)
			count++
		}
	}
	return count
}

// Len reports the number of live-or-expired entries currently held.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *LRU) remove(e *entry) {
	c.order.Remove(e.element)
	delete(c.entries, e.key)
}

var _ Cache = (*LRU)(nil)
