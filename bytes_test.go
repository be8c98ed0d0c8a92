package libcsd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	libcsd "github.com/bellrise/libcsd"
)

func TestBytesAllocPreservesPrefix(t *testing.T) {
	b := libcsd.NewBytes(4)
	b.CopyFrom([]byte("abcd"))

	require.NoError(t, b.Alloc(8))
	assert.Equal(t, 8, b.Size())
	assert.Equal(t, []byte("abcd\x00\x00\x00\x00"), b.Raw())

	require.NoError(t, b.Alloc(2))
	assert.Equal(t, "ab", b.AsString())

	err := b.Alloc(-1)
	assert.ErrorIs(t, err, libcsd.ErrInvalidArgument)
}

func TestBytesBorrowed(t *testing.T) {
	buf := make([]byte, 4)
	b := libcsd.Borrow(buf)
	assert.False(t, b.Owned())

	require.NoError(t, b.Put(1, 'x'))
	assert.Equal(t, byte('x'), buf[1], "writes land in the caller's buffer")

	require.NoError(t, b.Alloc(2))
	assert.Equal(t, 4, b.Size(), "shrinking a borrowed buffer is a no-op")

	err := b.Alloc(5)
	require.Error(t, err)
	var me *libcsd.MemoryError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, libcsd.KindMemory, libcsd.KindOf(err))
	assert.Equal(t, 4, b.Size())
}

func TestBytesUseStaticBuffer(t *testing.T) {
	b := libcsd.NewBytes(16)
	assert.True(t, b.Owned())
	static := []byte("hello")
	b.UseStaticBuffer(static)
	assert.False(t, b.Owned())
	assert.Equal(t, "hello", b.AsString())
}

func TestBytesCopyIsOwning(t *testing.T) {
	buf := []byte("data")
	b := libcsd.Borrow(buf)
	c := b.Copy()
	assert.True(t, c.Owned())
	require.NoError(t, c.Put(0, 'D'))
	assert.Equal(t, "data", string(buf))
	assert.Equal(t, "Data", c.AsString())
}

func TestBytesClampedCopies(t *testing.T) {
	b := libcsd.NewBytes(3)
	assert.Equal(t, 3, b.CopyFrom([]byte("abcdef")))
	assert.Equal(t, "abc", b.AsString())

	dst := make([]byte, 2)
	assert.Equal(t, 2, b.CopyTo(dst))
	assert.Equal(t, "ab", string(dst))

	b.Zero()
	assert.Equal(t, []byte{0, 0, 0}, b.Raw())
	assert.Equal(t, "", b.AsString())
}

func TestBytesIndexErrors(t *testing.T) {
	b := libcsd.NewBytes(2)
	_, err := b.At(2)
	assert.ErrorIs(t, err, libcsd.ErrIndex)
	assert.ErrorIs(t, b.Put(-1, 0), libcsd.ErrIndex)
}

func TestBytesRelease(t *testing.T) {
	b := libcsd.NewBytes(8)
	b.Release()
	assert.Equal(t, 0, b.Size())
	assert.True(t, b.Owned())
	assert.Regexp(t, `^<bytes .* size=0>$`, b.String())
}
