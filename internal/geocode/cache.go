package geocode

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"swimcast/internal/types"
)

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache. Place names
// and coordinates are stable, so entries never expire; the LRU bound keeps
// memory flat under varied traffic.
type CachedGeocoder struct {
	inner Geocoder
	cache *lruCache
}

// NewCachedGeocoder creates a cache decorator around a geocoder.
func NewCachedGeocoder(inner Geocoder, maxEntries int) *CachedGeocoder {
	return &CachedGeocoder{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

func (c *CachedGeocoder) Search(ctx context.Context, name string, limit int) ([]types.GeoPlace, error) {
	key := fmt.Sprintf("search:%s|%d", strings.ToLower(strings.TrimSpace(name)), limit)
	if places, ok := c.cache.get(key); ok {
		return places, nil
	}
	places, err := c.inner.Search(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	// Empty result sets are not cached so transient provider gaps can heal.
	if len(places) > 0 {
		c.cache.put(key, places)
	}
	return places, nil
}

func (c *CachedGeocoder) Reverse(ctx context.Context, lat, lon float64) (types.GeoPlace, error) {
	key := fmt.Sprintf("reverse:%.4f,%.4f", lat, lon)
	if places, ok := c.cache.get(key); ok && len(places) == 1 {
		return places[0], nil
	}
	place, err := c.inner.Reverse(ctx, lat, lon)
	if err != nil {
		return types.GeoPlace{}, err
	}
	c.cache.put(key, []types.GeoPlace{place})
	return place, nil
}

var _ Geocoder = (*CachedGeocoder)(nil)

// lruCache is a thread-safe LRU over geocoding results.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value []types.GeoPlace
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]types.GeoPlace, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value []types.GeoPlace) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
