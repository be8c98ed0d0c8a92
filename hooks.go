package libcsd

import "reflect"

// Cloner is the copy hook. Containers call Clone whenever they take their own
// copy of a value: List.Append, List.Clone, Map.Append and Routine copies.
// Types without it are copied by plain assignment.
type Cloner[T any] interface {
	Clone() T
}

// Releaser is the destruction hook. Containers call Release when a value they
// own is removed, overwritten or cleared. It may be implemented on T or *T.
type Releaser interface {
	Release()
}

// Equaler lets element types define their own equality for List.Equal,
// List.Index and Map.Equal.
type Equaler[T any] interface {
	Equal(T) bool
}

// Lener is anything with a length, used by List.CompareLen.
type Lener interface {
	Len() int
}

func copyOf[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

func release[T any](p *T) {
	if p == nil {
		return
	}
	if r, ok := any(*p).(Releaser); ok {
		r.Release()
		return
	}
	if r, ok := any(p).(Releaser); ok {
		r.Release()
	}
}

// equalValues reports whether a and b are equal, and whether T supports
// equality at all. Values of non-comparable dynamic type never compare equal.
func equalValues[T any](a, b T) (equal, supported bool) {
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equal(b), true
	}
	va, vb := reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()
	if !va.Comparable() || !vb.Comparable() {
		return false, false
	}
	return any(a) == any(b), true
}
