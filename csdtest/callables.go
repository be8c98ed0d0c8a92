package csdtest

import libcsd "github.com/bellrise/libcsd"

// Counter is a stateful callable: each call adds its argument to N and
// returns the new total. Clone gives an independent counter.
type Counter struct {
	N int
}

func (c *Counter) Call(delta int) int {
	c.N += delta
	return c.N
}

// Clone implements libcsd.Cloner.
func (c *Counter) Clone() *Counter {
	return &Counter{N: c.N}
}

// SharedCounter keeps its total in a Box. Cloning shares the box and takes
// a reference, so every copy observes the same total.
type SharedCounter struct {
	Total *libcsd.Box[int]
}

// NewSharedCounter boxes start.
func NewSharedCounter(start int) *SharedCounter {
	return &SharedCounter{Total: libcsd.NewBox(start)}
}

func (s *SharedCounter) Call(delta int) int {
	p := s.Total.Get()
	*p += delta
	return *p
}

// Clone implements libcsd.Cloner.
func (s *SharedCounter) Clone() *SharedCounter {
	return &SharedCounter{Total: s.Total.Clone()}
}

// Release implements libcsd.Releaser.
func (s *SharedCounter) Release() {
	s.Total.Drop()
}
