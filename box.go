package libcsd

import (
	"fmt"

	"github.com/bellrise/libcsd/internal/rc"
)

// Box is a reference-counted heap cell. Every handle sharing a cell holds one
// reference; the cell is freed exactly once, when the last handle is dropped.
//
// Handles are propagated with Clone only. A Box must not be copied by value,
// because a struct copy would share the cell without taking a reference.
//
//	a := NewBox(12)
//	b := a.Clone()
//	*b.Get() = 33
//	a.Value() // 33
//	a.Drop()
//	b.Drop() // frees the cell
//
// The counter is atomic, so handles of one family can be cloned and dropped
// from different goroutines. Access to the value itself is not synchronized.
type Box[T any] struct {
	ptr *T
	arc *rc.Counter
}

// NewBox allocates a cell holding value with a reference count of one.
func NewBox[T any](value T) *Box[T] {
	ptr := new(T)
	*ptr = value
	return &Box[T]{ptr: ptr, arc: rc.New(1)}
}

// Clone returns a new handle to the same cell and takes a reference.
// Cloning a nil Box returns nil.
func (b *Box[T]) Clone() *Box[T] {
	if b == nil {
		return nil
	}
	b.live()
	b.arc.Inc()
	return &Box[T]{ptr: b.ptr, arc: b.arc}
}

// Assign makes b refer to other's cell. The reference on other's cell is
// taken before b's old reference is released, so self-assignment is safe.
// A dropped handle may be re-armed with Assign.
func (b *Box[T]) Assign(other *Box[T]) {
	other.live()
	ptr, arc := other.ptr, other.arc
	arc.Inc()
	b.Drop()
	b.ptr = ptr
	b.arc = arc
}

// Drop releases this handle's reference. The last Drop of a family releases
// the value (see Releaser) and frees the cell. Dropping a handle twice is a
// no-op; any other use of a dropped handle panics.
func (b *Box[T]) Drop() {
	if b == nil || b.ptr == nil {
		return
	}
	if b.arc.Dec() == 0 {
		release(b.ptr)
		var zero T
		*b.ptr = zero
	}
	b.ptr = nil
	b.arc = nil
}

// Release implements Releaser, so containers holding boxes drop them on removal.
func (b *Box[T]) Release() { b.Drop() }

// Get returns a mutable reference to the boxed value. Never nil on a live handle.
func (b *Box[T]) Get() *T {
	b.live()
	return b.ptr
}

// Value returns a copy of the boxed value.
func (b *Box[T]) Value() T {
	b.live()
	return *b.ptr
}

// Refs returns the number of live handles sharing the cell, or 0 for a
// dropped handle.
func (b *Box[T]) Refs() int64 {
	if b == nil || b.arc == nil {
		return 0
	}
	return b.arc.Load()
}

// Alive reports whether the handle has not been dropped.
func (b *Box[T]) Alive() bool {
	return b != nil && b.ptr != nil
}

// SameReferenceAs reports whether both handles share one cell. Structural
// equality of the values is never considered.
func (b *Box[T]) SameReferenceAs(other *Box[T]) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.ptr != nil && b.ptr == other.ptr
}

// Equal is SameReferenceAs; it makes boxes usable in List.Equal and List.Index.
func (b *Box[T]) Equal(other *Box[T]) bool {
	return b.SameReferenceAs(other)
}

func (b *Box[T]) String() string {
	if !b.Alive() {
		return "<box dropped>"
	}
	return fmt.Sprintf("<box %p refs=%d>", b.ptr, b.arc.Load())
}

func (b *Box[T]) live() {
	if b == nil || b.ptr == nil {
		panic(&InvalidOperationError{Msg: "box: use of a dropped box"})
	}
}
