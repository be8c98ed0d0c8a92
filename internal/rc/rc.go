// Package rc provides the atomic reference counter behind libcsd.Box.
// Stdlib-only implementation.
// Safe for concurrent Inc/Dec from multiple goroutines.
package rc

import "sync/atomic"

// Counter is a signed atomic reference count.
// The zero value holds a count of zero; use Init or New to seed it.
type Counter struct {
	n atomic.Int64
}

// New returns a Counter holding value.
func New(value int64) *Counter {
	c := &Counter{}
	c.Init(value)
	return c
}

// Init stores value without any ordering against concurrent users.
// Only call before the counter is shared.
func (c *Counter) Init(value int64) {
	c.n.Store(value)
}

// Inc adds one and returns the new count.
func (c *Counter) Inc() int64 {
	return c.n.Add(1)
}

// Dec subtracts one and returns the new count.
// Exactly one caller observes the transition to zero.
func (c *Counter) Dec() int64 {
	return c.n.Add(-1)
}

// Load returns the current count.
func (c *Counter) Load() int64 {
	return c.n.Load()
}
