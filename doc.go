// Package libcsd provides foundational containers: reference-counted boxes,
// a growable list, an insertion-ordered map, an optional value, a
// type-erased callable and a raw byte buffer.
//
// # Containers
//
//   - Box[T]: shared ownership of one heap cell through an atomic count.
//   - List[T]: dynamic array of individually allocated elements.
//   - Map[K, V]: association list of unique keys built on List.
//   - Maybe[T]: presence-tagged value with an unpack-or-fail contract.
//   - Routine[A, R]: bare function or captured callable with value semantics.
//   - Bytes: raw bytes, owned or borrowed from the caller.
//
// # Ownership hooks
//
// Containers own the values stored in them. Two optional interfaces let
// element types take part in that ownership:
//
//   - Cloner[T] is called whenever a container makes its own copy of a value
//     (List.Append, List.Set, Map.Append, List.Clone, Routine.Clone).
//   - Releaser is called whenever a container destroys a value it owns
//     (List.Remove, List.Clear, Map.Update, ...).
//
// *Box[T] implements both, so a List[*Box[T]] holds one reference per
// element and drops it on removal.
//
// # Errors
//
// Every failure is a typed error that unwraps to one sentinel:
//
//	v, err := list.At(10)
//	var ie *libcsd.IndexError
//	if errors.As(err, &ie) {
//		fmt.Println(ie.Index, ie.Min, ie.Max)
//	}
//	if libcsd.KindOf(err) == libcsd.KindIndex { ... }
//
// # Concurrency
//
// Only the Box reference count is synchronized. Lists, maps, routines, bytes
// and maybes must be serialized by the caller when shared across goroutines.
package libcsd
