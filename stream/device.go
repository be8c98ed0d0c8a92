//go:generate mockgen -package $GOPACKAGE -source $GOFILE -destination device_mock.go

package stream

import (
	"io"

	libcsd "github.com/bellrise/libcsd"
)

// Device is a byte device a Stream can be built on.
type Device interface {
	io.ReadWriter
	IsOpen() bool
}

// Option configures FromDevice.
type Option func(*deviceConfig)

type deviceConfig struct {
	read  bool
	write bool
}

// WithReadOnly leaves the write hooks unset.
func WithReadOnly() Option {
	return func(c *deviceConfig) {
		c.write = false
	}
}

// WithWriteOnly leaves the read hooks unset.
func WithWriteOnly() Option {
	return func(c *deviceConfig) {
		c.read = false
	}
}

// FromDevice returns a stream whose batch hooks and open check call d.
// Single-byte access goes through the batch hooks.
func FromDevice(d Device, opts ...Option) *Stream {
	c := deviceConfig{read: true, write: true}
	for _, opt := range opts {
		opt(&c)
	}

	s := New()
	s.SetIsOpen(libcsd.Func(func(libcsd.Unit) bool { return d.IsOpen() }))
	if c.read {
		r := &deviceReader{d: d}
		s.SetReadBatch(libcsd.Func(r.read))
	}
	if c.write {
		s.SetWriteBatch(libcsd.Func(func(b *libcsd.Bytes) Result[int] {
			n, err := d.Write(b.Raw())
			return Result[int]{Value: n, Err: err}
		}))
	}
	return s
}

// deviceReader performs one Read of up to n bytes per call. An error that
// arrives with data is kept and returned by the next call without touching
// the device.
type deviceReader struct {
	d       io.Reader
	pending error
}

func (r *deviceReader) read(n int) Result[*libcsd.Bytes] {
	buf := libcsd.NewBytes(n)
	if err := r.pending; err != nil {
		r.pending = nil
		return Result[*libcsd.Bytes]{Value: buf, Err: err}
	}
	got, err := r.d.Read(buf.Raw())
	_ = buf.Alloc(got)
	if got > 0 {
		r.pending = err
		return Result[*libcsd.Bytes]{Value: buf}
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return Result[*libcsd.Bytes]{Value: buf, Err: err}
}
