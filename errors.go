package libcsd

import (
	"errors"
	"fmt"
)

// Kind classifies every error produced by this module.
type Kind int

const (
	KindNone Kind = iota
	KindIndex
	KindUnpack
	KindNullCallable
	KindMemory
	KindInvalidOperation
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindUnpack:
		return "unpack"
	case KindNullCallable:
		return "null callable"
	case KindMemory:
		return "memory"
	case KindInvalidOperation:
		return "invalid operation"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return "none"
	}
}

// Sentinels matched with errors.Is. Each typed error below unwraps to one of them.
var (
	ErrIndex            = errors.New("index out of bounds")
	ErrUnpack           = errors.New("unpack from empty maybe")
	ErrNullCallable     = errors.New("null callable")
	ErrMemory           = errors.New("memory constraint")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// IndexError reports an out of bounds access after negative-index resolution,
// or a key missing from a Map.
type IndexError struct {
	Index     int
	Key       string
	Keyed     bool
	HasBounds bool
	Min       int
	Max       int
}

func newIndexError(index, length int) *IndexError {
	return &IndexError{Index: index, HasBounds: true, Min: 0, Max: length - 1}
}

func newKeyError(key any) *IndexError {
	s, ok := render(key)
	if !ok {
		s = fmt.Sprintf("%v", key)
	}
	return &IndexError{Key: s, Keyed: true}
}

func (e *IndexError) Error() string {
	if e.Keyed {
		return fmt.Sprintf("key %s is not present", e.Key)
	}
	msg := fmt.Sprintf("index %d is out of bounds", e.Index)
	if e.HasBounds {
		msg += fmt.Sprintf(" for a range of [%d, %d]", e.Min, e.Max)
	}
	return msg
}

func (e *IndexError) Unwrap() error { return ErrIndex }

// UnpackError is returned by Maybe.Unpack when no value is present.
type UnpackError struct{}

func (e *UnpackError) Error() string {
	return "tried to unpack the value from Maybe, but no value was present"
}

func (e *UnpackError) Unwrap() error { return ErrUnpack }

// NullCallableError is returned when calling a Routine that holds nothing.
type NullCallableError struct {
	Msg string
}

func (e *NullCallableError) Error() string {
	if e.Msg == "" {
		return "null callable"
	}
	return e.Msg
}

func (e *NullCallableError) Unwrap() error { return ErrNullCallable }

// MemoryError reports an allocation that cannot be satisfied, such as growing
// a borrowed Bytes past its fixed size.
type MemoryError struct {
	Msg string
}

func (e *MemoryError) Error() string { return e.Msg }

func (e *MemoryError) Unwrap() error { return ErrMemory }

// InvalidOperationError reports an operation the receiver cannot carry out.
type InvalidOperationError struct {
	Msg string
}

func (e *InvalidOperationError) Error() string { return e.Msg }

func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

// InvalidArgumentError reports an argument the operation cannot accept.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string { return e.Msg }

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// KindOf returns the Kind of err, looking through wrapping.
// Errors from outside this module report KindNone.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrIndex):
		return KindIndex
	case errors.Is(err, ErrUnpack):
		return KindUnpack
	case errors.Is(err, ErrNullCallable):
		return KindNullCallable
	case errors.Is(err, ErrMemory):
		return KindMemory
	case errors.Is(err, ErrInvalidOperation):
		return KindInvalidOperation
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return KindNone
	}
}
