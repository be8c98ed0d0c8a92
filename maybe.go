package libcsd

// Maybe possibly holds a value. Functions that usually produce a value but
// may fail return an empty Maybe instead.
//
//	v := m.Get("answer")
//	if v.IsOK() {
//		n, _ := v.Unpack()
//		...
//	}
//
// Unpack moves the value out: afterwards the Maybe is empty and a second
// Unpack fails with *UnpackError just like unpacking None.
type Maybe[T any] struct {
	value *T
	ok    bool
}

// Some returns a Maybe holding value.
func Some[T any](value T) Maybe[T] {
	return Maybe[T]{value: &value, ok: true}
}

// None returns an empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsOK reports whether a value is present.
func (m Maybe[T]) IsOK() bool { return m.ok }

// Unpack returns the value and empties m.
func (m *Maybe[T]) Unpack() (T, error) {
	if !m.ok {
		var zero T
		return zero, &UnpackError{}
	}
	v := *m.value
	m.value = nil
	m.ok = false
	return v, nil
}

// UnpackOr returns the value, or def when empty. m is empty afterwards.
func (m *Maybe[T]) UnpackOr(def T) T {
	if v, err := m.Unpack(); err == nil {
		return v
	}
	return def
}

// Peek returns the value without consuming it.
func (m Maybe[T]) Peek() (T, bool) {
	if !m.ok {
		var zero T
		return zero, false
	}
	return *m.value, true
}

func (m Maybe[T]) String() string {
	if !m.ok {
		return "None"
	}
	if s, ok := renderCell(m.value); ok {
		return "Some(" + s + ")"
	}
	return "Some(...)"
}
