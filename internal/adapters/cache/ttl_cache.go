package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type ttlCacheEntry[T any] struct {
	data  T
	valid bool
}

type ttlCache[T any] struct {
	cache *ttlcache.Cache[string, ttlCacheEntry[T]]
}

func (c *ttlCache[T]) getOrClaim(key string) hitResult[T] {
	invalid := ttlCacheEntry[T]{valid: false}
	item, existed := c.cache.GetOrSet(key, invalid)

	return hitResult[T]{
		data:    item.Value().data,
		valid:   item.Value().valid,
		claimed: !existed,
	}
}

func (c *ttlCache[T]) set(key string, data T) {
	c.cache.Set(key, ttlCacheEntry[T]{data: data, valid: true}, ttlcache.DefaultTTL)
}

func (c *ttlCache[T]) delete(key string) {
	c.cache.Delete(key)
}

func (c *ttlCache[T]) wait() {
	time.Sleep(10 * time.Millisecond)
}

func NewTTLCache[T any](ttl time.Duration) Cache[T] {
	return NewBoundedTTLCache[T](ttl, 0)
}

// NewBoundedTTLCache holds at most capacity entries, evicting the least recently used
//
// A capacity of 0 means no limit.
func NewBoundedTTLCache[T any](ttl time.Duration, capacity uint64) Cache[T] {
	options := []ttlcache.Option[string, ttlCacheEntry[T]]{
		ttlcache.WithTTL[string, ttlCacheEntry[T]](ttl),
		ttlcache.WithDisableTouchOnHit[string, ttlCacheEntry[T]](),
	}
	if capacity > 0 {
		options = append(options, ttlcache.WithCapacity[string, ttlCacheEntry[T]](capacity))
	}

	cache := ttlcache.New[string, ttlCacheEntry[T]](options...)
	go cache.Start()
	return &ttlCache[T]{cache: cache}
}
