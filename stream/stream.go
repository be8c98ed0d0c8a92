// Package stream is a byte stream assembled from Routines. Each direction
// has a single-byte hook and a batch hook; a Stream needs only one of the two
// to be usable in that direction, and falls back to the other one as needed.
package stream

import (
	"errors"
	"fmt"
	"io"

	libcsd "github.com/bellrise/libcsd"
)

// Result is what a read or batch-write hook yields.
type Result[T any] struct {
	Value T
	Err   error
}

// Hook types.
type (
	ReadSingle  = libcsd.Routine[libcsd.Unit, Result[byte]]
	WriteSingle = libcsd.Routine[byte, error]
	ReadBatch   = libcsd.Routine[int, Result[*libcsd.Bytes]]
	WriteBatch  = libcsd.Routine[*libcsd.Bytes, Result[int]]
	OpenCheck   = libcsd.Routine[libcsd.Unit, bool]
)

var (
	errNotReadable = &libcsd.InvalidOperationError{Msg: "stream is not readable"}
	errNotWritable = &libcsd.InvalidOperationError{Msg: "stream is not writable"}
)

var (
	_ io.ByteReader = (*Stream)(nil)
	_ io.ByteWriter = (*Stream)(nil)
)

// Stream reads and writes bytes through its hooks. The zero value has no
// hooks and is neither open, readable nor writable.
type Stream struct {
	readSingle  ReadSingle
	writeSingle WriteSingle
	readBatch   ReadBatch
	writeBatch  WriteBatch
	isOpen      OpenCheck

	scratch [1]byte
}

// New returns a stream with no hooks.
func New() *Stream {
	return &Stream{}
}

// SetReadSingle installs a copy of r as the single-byte read hook.
func (s *Stream) SetReadSingle(r ReadSingle) *Stream {
	hook := r.Clone()
	s.readSingle.Release()
	s.readSingle = hook
	return s
}

// SetWriteSingle installs a copy of r as the single-byte write hook.
func (s *Stream) SetWriteSingle(r WriteSingle) *Stream {
	hook := r.Clone()
	s.writeSingle.Release()
	s.writeSingle = hook
	return s
}

// SetReadBatch installs a copy of r as the batch read hook. It receives the
// number of bytes wanted and may return fewer.
func (s *Stream) SetReadBatch(r ReadBatch) *Stream {
	hook := r.Clone()
	s.readBatch.Release()
	s.readBatch = hook
	return s
}

// SetWriteBatch installs a copy of r as the batch write hook. It returns the
// number of bytes written.
func (s *Stream) SetWriteBatch(r WriteBatch) *Stream {
	hook := r.Clone()
	s.writeBatch.Release()
	s.writeBatch = hook
	return s
}

// SetIsOpen installs a copy of r as the open check.
func (s *Stream) SetIsOpen(r OpenCheck) *Stream {
	hook := r.Clone()
	s.isOpen.Release()
	s.isOpen = hook
	return s
}

// IsOpen reports the open check, or false when none is set.
func (s *Stream) IsOpen() bool {
	open, err := s.isOpen.Call(libcsd.Unit{})
	return err == nil && open
}

// IsReadable reports whether the stream is open and has a read hook.
func (s *Stream) IsReadable() bool {
	return s.IsOpen() && (s.readSingle.HasRoutine() || s.readBatch.HasRoutine())
}

// IsWritable reports whether the stream is open and has a write hook.
func (s *Stream) IsWritable() bool {
	return s.IsOpen() && (s.writeSingle.HasRoutine() || s.writeBatch.HasRoutine())
}

// ReadByte reads one byte, preferring the single-byte hook. An empty batch
// read is reported as io.EOF.
func (s *Stream) ReadByte() (byte, error) {
	if !s.IsReadable() {
		return 0, errNotReadable
	}
	if s.readSingle.HasRoutine() {
		res, err := s.readSingle.Call(libcsd.Unit{})
		if err != nil {
			return 0, err
		}
		return res.Value, res.Err
	}

	res, err := s.readBatch.Call(1)
	if err != nil {
		return 0, err
	}
	if res.Value == nil || res.Value.Size() == 0 {
		if res.Err != nil {
			return 0, res.Err
		}
		return 0, io.EOF
	}
	return res.Value.At(0)
}

// WriteByte writes one byte, preferring the single-byte hook. Through the
// batch hook the byte is passed in a borrowed one-byte buffer.
func (s *Stream) WriteByte(c byte) error {
	if !s.IsWritable() {
		return errNotWritable
	}
	if s.writeSingle.HasRoutine() {
		werr, err := s.writeSingle.Call(c)
		if err != nil {
			return err
		}
		return werr
	}

	s.scratch[0] = c
	res, err := s.writeBatch.Call(libcsd.Borrow(s.scratch[:]))
	if err != nil {
		return err
	}
	if res.Err != nil {
		return res.Err
	}
	if res.Value != 1 {
		return io.ErrShortWrite
	}
	return nil
}

// Read reads up to n bytes. Without a batch hook it calls the single-byte
// hook until n bytes arrive or it fails; bytes read before an io.EOF are
// returned without error.
func (s *Stream) Read(n int) (*libcsd.Bytes, error) {
	if n <= 0 {
		return nil, &libcsd.InvalidArgumentError{Msg: fmt.Sprintf("stream: cannot read %d bytes", n)}
	}
	if !s.IsReadable() {
		return nil, errNotReadable
	}
	if s.readBatch.HasRoutine() {
		res, err := s.readBatch.Call(n)
		if err != nil {
			return nil, err
		}
		return res.Value, res.Err
	}

	buf := libcsd.NewBytes(n)
	for i := 0; i < n; i++ {
		res, err := s.readSingle.Call(libcsd.Unit{})
		if err == nil {
			err = res.Err
		}
		if err != nil {
			_ = buf.Alloc(i)
			if errors.Is(err, io.EOF) && i > 0 {
				return buf, nil
			}
			return buf, err
		}
		_ = buf.Put(i, res.Value)
	}
	return buf, nil
}

// Write writes the contents of b and returns the number of bytes written.
// Without a batch hook it writes byte by byte and stops at the first error.
func (s *Stream) Write(b *libcsd.Bytes) (int, error) {
	if b == nil {
		return 0, &libcsd.InvalidArgumentError{Msg: "stream: nil buffer"}
	}
	if !s.IsWritable() {
		return 0, errNotWritable
	}
	if s.writeBatch.HasRoutine() {
		res, err := s.writeBatch.Call(b)
		if err != nil {
			return 0, err
		}
		return res.Value, res.Err
	}

	for i, c := range b.Raw() {
		werr, err := s.writeSingle.Call(c)
		if err == nil {
			err = werr
		}
		if err != nil {
			return i, err
		}
	}
	return b.Size(), nil
}

// Clone returns a stream with copies of every hook.
func (s *Stream) Clone() *Stream {
	return &Stream{
		readSingle:  s.readSingle.Clone(),
		writeSingle: s.writeSingle.Clone(),
		readBatch:   s.readBatch.Clone(),
		writeBatch:  s.writeBatch.Clone(),
		isOpen:      s.isOpen.Clone(),
	}
}

// Release releases every hook. The stream is closed afterwards.
func (s *Stream) Release() {
	s.readSingle.Release()
	s.writeSingle.Release()
	s.readBatch.Release()
	s.writeBatch.Release()
	s.isOpen.Release()
}
