package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Service wraps the in-process TTL cache. It is a best-effort read
// accelerator only, stale reads within the TTL window are accepted.
// Lifecycle writes call InvalidateByPrefix on the aggregate prefixes.
type Service struct {
	store *gocache.Cache
}

func NewService(defaultExpiration, cleanupInterval time.Duration) *Service {
	return &Service{store: gocache.New(defaultExpiration, cleanupInterval)}
}

func (s *Service) Get(key string) (interface{}, bool) {
	return s.store.Get(key)
}

func (s *Service) Set(key string, value interface{}, ttl time.Duration) {
	s.store.Set(key, value, ttl)
}

func (s *Service) Delete(key string) {
	s.store.Delete(key)
}

// InvalidateByPrefix drops every live entry whose key starts with prefix
// and returns how many entries were dropped.
func (s *Service) InvalidateByPrefix(prefix string) int {
	n := 0
	for key := range s.store.Items() {
		if strings.HasPrefix(key, prefix) {
			s.store.Delete(key)
			n++
		}
	}
	return n
}

func (s *Service) ItemCount() int {
	return s.store.ItemCount()
}

func (s *Service) Flush() {
	s.store.Flush()
}
