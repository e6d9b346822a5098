// pkg/memcache/lookup_cache.go
package mem

import (
	"sync"
	"time"
)

// LookupCache keeps recent external lookup results (video search,
// ingredient search) so repeated queries don't burn API quota.
type LookupCache interface {
	Set(key string, value interface{}, ttl time.Duration)
	Get(key string) (interface{}, bool)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

type lookupCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewLookupCache() LookupCache {
	return &lookupCache{
		data: make(map[string]entry),
	}
}

func (s *lookupCache) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *lookupCache) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key) // cleanup expired
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}
