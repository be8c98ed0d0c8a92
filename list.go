package libcsd

import (
	"iter"
	"strings"

	"github.com/bellrise/libcsd/internal/alloc"
)

// List is a dynamically resizable array. Each element lives in its own heap
// cell and the list stores one pointer (slot) per element, so growing the
// list moves pointers and never copies elements.
//
// Slots [0, Len) always hold distinct cells; slots [Len, Cap) are nil.
// Capacity grows through powers of two up to 1024 and then in steps of 1024,
// and removals never shrink it.
//
// Indices may be negative: -1 is the last element. Any index that is still
// out of range after resolution fails with an *IndexError.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent mutation.
type List[T any] struct {
	slots []*T
	n     int
}

// NewList returns a list holding copies of values, in order.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	l.reserve(len(values))
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// Cap returns the number of allocated slots.
func (l *List[T]) Cap() int { return len(l.slots) }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.n == 0 }

// Append stores a copy of value in a new cell at the end of the list.
func (l *List[T]) Append(value T) *List[T] {
	l.reserve(l.n + 1)
	cell := new(T)
	*cell = copyOf(value)
	l.slots[l.n] = cell
	l.n++
	return l
}

// Extend appends copies of every element of other. Extending a list with
// itself doubles it.
func (l *List[T]) Extend(other *List[T]) *List[T] {
	n := other.n
	l.reserve(l.n + n)
	for i := 0; i < n; i++ {
		l.Append(*other.slots[i])
	}
	return l
}

// At returns the element at index.
func (l *List[T]) At(index int) (T, error) {
	i, err := l.resolve(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *l.slots[i], nil
}

// Ref returns a pointer to the element cell at index. The pointer stays valid
// until the element is removed.
func (l *List[T]) Ref(index int) (*T, error) {
	i, err := l.resolve(index)
	if err != nil {
		return nil, err
	}
	return l.slots[i], nil
}

// Set replaces the element at index with a copy of value, releasing the old one.
func (l *List[T]) Set(index int, value T) error {
	i, err := l.resolve(index)
	if err != nil {
		return err
	}
	c := copyOf(value)
	release(l.slots[i])
	*l.slots[i] = c
	return nil
}

// Remove frees the element at index and shifts later elements down by one.
func (l *List[T]) Remove(index int) error {
	i, err := l.resolve(index)
	if err != nil {
		return err
	}
	release(l.slots[i])
	l.detach(i)
	return nil
}

// Pop removes the element at index and returns it without releasing it.
func (l *List[T]) Pop(index int) (T, error) {
	i, err := l.resolve(index)
	if err != nil {
		var zero T
		return zero, err
	}
	v := *l.slots[i]
	l.detach(i)
	return v, nil
}

// RemoveMany removes every element named by indices. All indices are resolved
// before anything is freed, so a bad index leaves the list untouched.
// Duplicates name the same element once. Survivors keep their relative order.
func (l *List[T]) RemoveMany(indices ...int) error {
	if len(indices) == 0 {
		return nil
	}
	if len(indices) == 1 {
		return l.Remove(indices[0])
	}

	doomed := make([]bool, l.n)
	for _, index := range indices {
		i, err := l.resolve(index)
		if err != nil {
			return err
		}
		doomed[i] = true
	}

	for i, d := range doomed {
		if d {
			release(l.slots[i])
			l.slots[i] = nil
		}
	}

	// Stable compaction: shift live slots left over the holes.
	w := 0
	for r := 0; r < l.n; r++ {
		if l.slots[r] == nil {
			continue
		}
		if w != r {
			l.slots[w] = l.slots[r]
			l.slots[r] = nil
		}
		w++
	}
	l.n = w
	return nil
}

// RemoveItem removes the first element equal to item. It reports whether an
// element was removed.
func (l *List[T]) RemoveItem(item T) bool {
	i := l.Index(item)
	if i < 0 {
		return false
	}
	release(l.slots[i])
	l.detach(i)
	return true
}

// Filter keeps only the elements for which keep returns true. keep sees every
// element, in index order, before anything is removed.
//
//	numbers := NewList(1, 2, 3, 4, 5, 6)
//	numbers.Filter(func(n int) bool { return n < 3 })
//	// numbers is now [1, 2]
func (l *List[T]) Filter(keep func(T) bool) *List[T] {
	drop := NewList[int]()
	for i := 0; i < l.n; i++ {
		if !keep(*l.slots[i]) {
			drop.Append(i)
		}
	}
	// Indices come from the live range and cannot fail.
	_ = l.RemoveMany(drop.Slice()...)
	return l
}

// FilterRoutine is Filter driven by a Routine. An empty routine fails before
// the list is touched.
func (l *List[T]) FilterRoutine(keep Routine[T, bool]) error {
	if !keep.HasRoutine() {
		return &NullCallableError{Msg: "list: filter routine missing callable"}
	}
	drop := NewList[int]()
	for i := 0; i < l.n; i++ {
		ok, err := keep.Call(*l.slots[i])
		if err != nil {
			return err
		}
		if !ok {
			drop.Append(i)
		}
	}
	return l.RemoveMany(drop.Slice()...)
}

// Apply calls fn with a reference to every element, in index order.
func (l *List[T]) Apply(fn func(*T)) *List[T] {
	for i := 0; i < l.n; i++ {
		fn(l.slots[i])
	}
	return l
}

// ApplyRoutine is Apply driven by a Routine.
func (l *List[T]) ApplyRoutine(fn Routine[*T, Unit]) error {
	if !fn.HasRoutine() {
		return &NullCallableError{Msg: "list: apply routine missing callable"}
	}
	for i := 0; i < l.n; i++ {
		if _, err := fn.Call(l.slots[i]); err != nil {
			return err
		}
	}
	return nil
}

// Clear releases every element and frees the slot array.
func (l *List[T]) Clear() {
	for i := 0; i < l.n; i++ {
		release(l.slots[i])
		l.slots[i] = nil
	}
	l.slots = nil
	l.n = 0
}

// Clone returns a deep copy; every element is copied through Cloner when
// the element type implements it.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{}
	c.reserve(l.n)
	for i := 0; i < l.n; i++ {
		c.Append(*l.slots[i])
	}
	return c
}

// Take moves the contents into a new list and leaves l empty.
func (l *List[T]) Take() *List[T] {
	moved := &List[T]{slots: l.slots, n: l.n}
	l.slots = nil
	l.n = 0
	return moved
}

// Index returns the position of the first element equal to item, or -1.
func (l *List[T]) Index(item T) int {
	for i := 0; i < l.n; i++ {
		if eq, _ := equalValues(*l.slots[i], item); eq {
			return i
		}
	}
	return -1
}

// Contains reports whether any element equals item.
func (l *List[T]) Contains(item T) bool {
	return l.Index(item) >= 0
}

// Equal reports whether both lists have the same length and pairwise equal
// elements. Element types without equality never compare equal.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.n != other.n {
		return false
	}
	for i := 0; i < l.n; i++ {
		eq, ok := equalValues(*l.slots[i], *other.slots[i])
		if !ok || !eq {
			return false
		}
	}
	if l.n == 0 {
		var zero T
		_, ok := equalValues(zero, zero)
		return ok
	}
	return true
}

// CompareLen orders lists by length only, returning -1, 0 or +1. Contents are
// not compared.
func (l *List[T]) CompareLen(other Lener) int {
	switch n := other.Len(); {
	case l.n < n:
		return -1
	case l.n > n:
		return 1
	default:
		return 0
	}
}

// All iterates over index/value pairs.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.n; i++ {
			if !yield(i, *l.slots[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.n; i++ {
			if !yield(*l.slots[i]) {
				return
			}
		}
	}
}

// Slice returns the elements as a new slice.
func (l *List[T]) Slice() []T {
	s := make([]T, l.n)
	for i := 0; i < l.n; i++ {
		s[i] = *l.slots[i]
	}
	return s
}

// String renders printable elements as "[a, b, c]". Lists of elements with
// no string form render as a placeholder.
func (l *List[T]) String() string {
	if l.n == 0 {
		return "[]"
	}
	s, ok := joinCells(l.slots[:l.n], "[", "]")
	if !ok {
		return "<list (non-printable elements)>"
	}
	return s
}

// SplitString splits s around every occurrence of sep. An empty sep yields
// a single-element list.
func SplitString(s, sep string) *List[string] {
	parts := NewList[string]()
	if sep == "" {
		return parts.Append(s)
	}
	for {
		before, after, found := strings.Cut(s, sep)
		parts.Append(before)
		if !found {
			return parts
		}
		s = after
	}
}

func (l *List[T]) resolve(index int) (int, error) {
	if index < 0 {
		index += l.n
	}
	if index < 0 || index >= l.n {
		return index, newIndexError(index, l.n)
	}
	return index, nil
}

func (l *List[T]) reserve(n int) {
	l.slots = alloc.Grow(l.slots, n)
}

// detach drops slot i without releasing its cell.
func (l *List[T]) detach(i int) {
	copy(l.slots[i:l.n], l.slots[i+1:l.n])
	l.slots[l.n-1] = nil
	l.n--
}
