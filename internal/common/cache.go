package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheInterface is the contract shared by the in-memory and Redis caches.
// Only immutable lookups (username to id, event creator) are cached, so
// entries never need invalidation beyond their TTL.
type CacheInterface interface {
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the value and true if found, nil and false otherwise.
	Get(key string) (interface{}, bool)

	Delete(key string)

	// GetOrSet returns the cached value, or runs loader and caches its result.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	Close() error
}

const (
	DefaultCacheExpiration = 10 * time.Minute
	DefaultCacheCleanup    = 15 * time.Minute
)

// CacheService is the in-memory implementation, used when no Redis address
// is configured.
type CacheService struct {
	cache *cache.Cache
}

var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	return &CacheService{cache: cache.New(defaultExpiration, cleanUpInterval)}
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

func (cs *CacheService) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	if val, found := cs.Get(key); found {
		return val, nil
	}

	val, err := loader()
	if err != nil {
		return nil, err
	}

	cs.Set(key, val, duration)
	return val, nil
}

func (cs *CacheService) Close() error {
	return nil
}
