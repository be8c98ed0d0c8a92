package libcsd

import (
	"bytes"
	"fmt"
)

// Bytes is a contiguous array of raw bytes. It either owns its storage or
// borrows a caller-supplied buffer; a borrowed buffer is never reallocated,
// so it cannot grow past the size it was handed over with.
//
// Bytes are not copied implicitly. Use Copy to get an owning duplicate.
type Bytes struct {
	buf      []byte
	borrowed bool
}

// NewBytes returns an owning buffer of n zero bytes.
func NewBytes(n int) *Bytes {
	if n < 0 {
		n = 0
	}
	return &Bytes{buf: make([]byte, n)}
}

// Borrow returns a Bytes backed by buf. Writes go straight to buf.
func Borrow(buf []byte) *Bytes {
	return &Bytes{buf: buf, borrowed: true}
}

// UseStaticBuffer switches b to borrow buf, dropping any owned storage.
func (b *Bytes) UseStaticBuffer(buf []byte) {
	b.buf = buf
	b.borrowed = true
}

// Size returns the number of usable bytes.
func (b *Bytes) Size() int { return len(b.buf) }

// Owned reports whether b owns its storage.
func (b *Bytes) Owned() bool { return !b.borrowed }

// Alloc resizes the buffer to n bytes, keeping the first min(old, n) bytes.
// A borrowed buffer accepts any n up to its size and stays unchanged; larger
// requests fail with *MemoryError.
func (b *Bytes) Alloc(n int) error {
	if n < 0 {
		return &InvalidArgumentError{Msg: fmt.Sprintf("bytes: negative size %d", n)}
	}
	if b.borrowed {
		if n > len(b.buf) {
			return &MemoryError{Msg: "bytes: cannot alloc() more space in a user-provided memory area"}
		}
		return nil
	}
	if n == len(b.buf) && b.buf != nil {
		return nil
	}
	grown := make([]byte, n)
	copy(grown, b.buf)
	b.buf = grown
	return nil
}

// Zero sets every byte to zero.
func (b *Bytes) Zero() { clear(b.buf) }

// Copy returns an owning copy, whatever the mode of b.
func (b *Bytes) Copy() *Bytes {
	c := NewBytes(len(b.buf))
	c.CopyFrom(b.buf)
	return c
}

// CopyFrom copies src into the start of the buffer, clamped to Size.
// It returns the number of bytes copied.
func (b *Bytes) CopyFrom(src []byte) int { return copy(b.buf, src) }

// CopyTo copies the start of the buffer into dst, clamped to both sizes.
func (b *Bytes) CopyTo(dst []byte) int { return copy(dst, b.buf) }

// At returns the byte at index.
func (b *Bytes) At(index int) (byte, error) {
	if index < 0 || index >= len(b.buf) {
		return 0, newIndexError(index, len(b.buf))
	}
	return b.buf[index], nil
}

// Put stores v at index.
func (b *Bytes) Put(index int, v byte) error {
	if index < 0 || index >= len(b.buf) {
		return newIndexError(index, len(b.buf))
	}
	b.buf[index] = v
	return nil
}

// Raw exposes the underlying storage.
func (b *Bytes) Raw() []byte { return b.buf }

// AsString returns the contents up to the first NUL byte.
func (b *Bytes) AsString() string {
	if i := bytes.IndexByte(b.buf, 0); i >= 0 {
		return string(b.buf[:i])
	}
	return string(b.buf)
}

// Release drops owned storage. A borrowed buffer is detached, not touched.
func (b *Bytes) Release() {
	b.buf = nil
	b.borrowed = false
}

func (b *Bytes) String() string {
	return fmt.Sprintf("<bytes %p size=%d>", b.buf, len(b.buf))
}
