package providers

import (
	"unsafe"

	"github.com/coocood/freecache"
	"likability/internal/structures"
)

// Cached renderings go stale the moment their user mutates, so entries are
// deleted on mutation and the TTL is only a backstop.
const cacheTTLSeconds = 300

type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Del(key string)
}

type CacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	logger.Infof(TypeApp, "Cache initialized: %dMB, TTL=%ds", conf.Cache.Size, cacheTTLSeconds)

	return &CacheProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   cacheTTLSeconds,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// Safe when the result is only read (not modified), which is the case
// for freecache — it copies keys internally.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *CacheProvider) Set(key string, value []byte) {
	_ = c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
}

func (c *CacheProvider) Del(key string) {
	c.cache.Del(unsafeStringToBytes(key))
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
func (n *noopCache) Del(_ string)                {}
