package primes

import (
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// DefaultCache lets self verification and the engine share one sieve per bound.
var DefaultCache = NewCache()

type Cache struct {
	lock   sync.Mutex
	tables *cache.Cache
}

func NewCache() *Cache {
	return &Cache{
		tables: cache.New(cache.NoExpiration, 0),
	}
}

func (c *Cache) Get(cfg Config, logger l.Wrapper) *Table {
	cfg = cfg.normalize()
	key := cast.ToString(cfg.Bound)

	if i, ok := c.tables.Get(key); ok {
		if t, ok := i.(*Table); ok {
			return t
		}
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if i, ok := c.tables.Get(key); ok {
		if t, ok := i.(*Table); ok {
			return t
		}
	}

	t := Generate(cfg, logger)
	c.tables.Set(key, t, cache.NoExpiration)

	return t
}

func (c *Cache) Forget(bound int64) {
	c.tables.Delete(cast.ToString(Config{Bound: bound}.normalize().Bound))
}

func (c *Cache) Len() int {
	return c.tables.ItemCount()
}
