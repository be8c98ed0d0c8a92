package libcsd

import "github.com/bellrise/libcsd/internal/alloc"

// Option configures a List or Map at construction.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity preallocates slots for at least n elements, rounded up by the
// usual growth policy.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewListWith returns an empty list configured by opts.
func NewListWith[T any](opts ...Option) *List[T] {
	c := newConfig(opts)
	l := &List[T]{}
	if c.capacity > 0 {
		l.slots = alloc.Grow(l.slots, c.capacity)
	}
	return l
}

// NewMapWith returns an empty map configured by opts.
func NewMapWith[K comparable, V any](opts ...Option) *Map[K, V] {
	c := newConfig(opts)
	m := &Map[K, V]{}
	if c.capacity > 0 {
		m.pairs.reserve(c.capacity)
	}
	return m
}
