// Package dedup provides an atomic put-if-absent guard over the dedup
// cache, giving at-least-once Kafka delivery idempotence at
// (partner, unit) scope granularity.
package dedup

import (
	"time"

	"github.com/merkulovlad/orderpipe/internal/cache"
	"github.com/merkulovlad/orderpipe/internal/model"
)

// Service guards against concurrent or redelivered events with an
// identical dedup key from processing more than once within the TTL.
type Service struct {
	cache cache.InterfaceCache[int64]
}

// New wraps the given dedup cache; its size bound and TTL are the
// caller's to configure.
func New(c cache.InterfaceCache[int64]) *Service {
	return &Service{cache: c}
}

// TryAcquire returns true iff the event's dedup key was absent and has
// now been claimed for the remainder of its TTL.
func (s *Service) TryAcquire(e model.Event) bool {
	return s.cache.SetIfAbsent(e.DedupKey(), time.Now().Unix())
}
