package services

import (
	"container/list"
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache is a thread-safe least recently used cache with per-entry TTL.
type LRUCache[V any] struct {
	capacity int
	mu       sync.Mutex
	cache    map[string]*list.Element
	lruList  *list.List
	now      func() time.Time
}

// NewLRUCache creates a cache holding at most capacity entries (minimum 1).
func NewLRUCache[V any](capacity int) *LRUCache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUCache[V]{
		capacity: capacity,
		cache:    make(map[string]*list.Element),
		lruList:  list.New(),
		now:      time.Now,
	}
}

// Get returns the live value for key.
func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	element, found := c.cache[key]
	if !found {
		return zero, false
	}
	entry := element.Value.(*cacheEntry[V])
	if c.now().After(entry.expiration) {
		c.removeElement(element)
		return zero, false
	}
	c.lruList.MoveToBack(element)
	return entry.value, true
}

// Set stores value for ttl, evicting the least recently used entry when full.
func (c *LRUCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(ttl)
	if element, found := c.cache[key]; found {
		c.lruList.MoveToBack(element)
		entry := element.Value.(*cacheEntry[V])
		entry.value = value
		entry.expiration = expiration
		return
	}

	if c.lruList.Len() >= c.capacity {
		if oldest := c.lruList.Front(); oldest != nil {
			c.removeElement(oldest)
		}
	}
	c.cache[key] = c.lruList.PushBack(&cacheEntry[V]{key: key, value: value, expiration: expiration})
}

// must hold c.mu
func (c *LRUCache[V]) removeElement(element *list.Element) {
	c.lruList.Remove(element)
	delete(c.cache, element.Value.(*cacheEntry[V]).key)
}
