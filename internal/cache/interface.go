package cache

// InterfaceCache is the contract the rest of the pipeline depends on,
// generic over the cached value type. Concrete callers instantiate
// Cache[model.Customer], Cache[int64] (dedup timestamps), etc. and pass
// them around behind this interface so tests can substitute fakes.
type InterfaceCache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	SetIfAbsent(key string, value V) bool
	Invalidate(key string)
	Stats() Stats
}

var _ InterfaceCache[int] = (*Cache[int])(nil)
