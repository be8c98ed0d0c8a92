package libcsd

// Unit is the empty argument or result of a Routine.
type Unit struct{}

// Callable is any object that can back a Routine.
type Callable[A, R any] interface {
	Call(A) R
}

// Routine is a type-erased callable taking an A and returning an R. It holds
// either a bare function or a private copy of a Callable object.
//
// Object-backed routines keep value semantics: Wrap and Clone copy the object
// through its Cloner implementation, so a routine copy never shares mutable
// state with the original unless that state is itself a shared handle such
// as a Box. Bare functions are shared as they are; closures keep aliasing
// whatever they capture.
//
// Plain assignment of a Routine aliases the stored object. Use Clone to copy
// and Take to move.
type Routine[A, R any] struct {
	fn      func(A) R
	obj     any
	emplace func(any) any
	invoke  func(any, A) R
	drop    func(any)
}

// Func wraps a bare function.
func Func[A, R any](fn func(A) R) Routine[A, R] {
	return Routine[A, R]{fn: fn}
}

// Wrap stores a copy of c. The concrete type C is erased behind trampolines
// generated here: emplace copies a stored object, invoke restores its type and
// calls it, drop hands it to its Releaser.
//
// Copies are independent only when C is a value type or implements Cloner.
// Without a Cloner, C is copied by assignment: a pointer C is then shared by
// every copy of the routine.
//
//	r := Wrap[int, int](&counter{})
func Wrap[A, R any, C Callable[A, R]](c C) Routine[A, R] {
	emplace := func(src any) any {
		return copyOf(src.(C))
	}
	invoke := func(obj any, arg A) R {
		return obj.(C).Call(arg)
	}
	drop := func(obj any) {
		c := obj.(C)
		release(&c)
	}
	return Routine[A, R]{
		obj:     emplace(c),
		emplace: emplace,
		invoke:  invoke,
		drop:    drop,
	}
}

// Call invokes the routine. An empty routine fails with *NullCallableError.
func (r Routine[A, R]) Call(arg A) (R, error) {
	if r.fn != nil {
		return r.fn(arg), nil
	}
	if r.invoke != nil {
		return r.invoke(r.obj, arg), nil
	}
	var zero R
	return zero, &NullCallableError{Msg: "routine missing callable"}
}

// HasRoutine reports whether Call would invoke something.
func (r Routine[A, R]) HasRoutine() bool {
	return r.fn != nil || r.invoke != nil
}

// Clone returns a copy that owns its own copy of the stored object.
func (r Routine[A, R]) Clone() Routine[A, R] {
	c := r
	if r.emplace != nil {
		c.obj = r.emplace(r.obj)
	}
	return c
}

// Take moves the routine out and leaves r empty.
func (r *Routine[A, R]) Take() Routine[A, R] {
	moved := *r
	*r = Routine[A, R]{}
	return moved
}

// Release releases the stored object when it implements Releaser, on either
// a value or a pointer receiver. The routine is empty afterwards.
func (r *Routine[A, R]) Release() {
	if r.drop != nil {
		r.drop(r.obj)
	}
	*r = Routine[A, R]{}
}
