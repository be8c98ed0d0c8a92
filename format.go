package libcsd

import (
	"fmt"
	"reflect"
	"strings"
)

// render converts v to its display form. It reports false for values that
// have no string conversion: anything that is not a fmt.Stringer, an error,
// or a bool/number/string kind.
func render(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case fmt.Stringer:
		return x.String(), true
	case error:
		return x.Error(), true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprint(v), true
	}
	return "", false
}

// renderCell is render for a heap cell, so that pointer-receiver String
// methods on T are found as well.
func renderCell[T any](p *T) (string, bool) {
	if s, ok := render(any(*p)); ok {
		return s, true
	}
	if s, ok := any(p).(fmt.Stringer); ok {
		return s.String(), true
	}
	return "", false
}

// joinCells renders cells as "open a, b, c close". ok is false as soon as one
// cell is not printable.
func joinCells[T any](cells []*T, open, close string) (string, bool) {
	var b strings.Builder
	b.WriteString(open)
	for i, p := range cells {
		s, ok := renderCell(p)
		if !ok {
			return "", false
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s)
	}
	b.WriteString(close)
	return b.String(), true
}
