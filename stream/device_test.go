package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	libcsd "github.com/bellrise/libcsd"
)

func openDevice(t *testing.T) *MockDevice {
	ctrl := gomock.NewController(t)
	dev := NewMockDevice(ctrl)
	dev.EXPECT().IsOpen().Return(true).AnyTimes()
	return dev
}

func TestFromDevice_Read(t *testing.T) {
	dev := openDevice(t)
	dev.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
		assert.Len(t, p, 8)
		return copy(p, "hello"), nil
	})

	s := FromDevice(dev)
	require.True(t, s.IsReadable())
	buf, err := s.Read(8)
	require.NoError(t, err)
	assert.Equal(t, 5, buf.Size())
	assert.Equal(t, "hello", buf.AsString())
}

func TestFromDevice_ReadHoldsBackErrorWithData(t *testing.T) {
	dev := openDevice(t)
	dev.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
		return copy(p, "ok"), io.EOF
	}).Times(1)

	s := FromDevice(dev)
	buf, err := s.Read(4)
	require.NoError(t, err)
	assert.Equal(t, "ok", buf.AsString())

	_, err = s.ReadByte()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFromDevice_ReadKeepsErrorForNextCall(t *testing.T) {
	flaky := errors.New("flaky")
	dev := openDevice(t)
	gomock.InOrder(
		dev.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return copy(p, "ab"), flaky
		}),
		dev.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return copy(p, "cd"), nil
		}),
	)

	s := FromDevice(dev)
	buf, err := s.Read(4)
	require.NoError(t, err)
	assert.Equal(t, "ab", buf.AsString())

	_, err = s.Read(4)
	assert.ErrorIs(t, err, flaky)

	buf, err = s.Read(4)
	require.NoError(t, err)
	assert.Equal(t, "cd", buf.AsString())
}

func TestFromDevice_ReadNoProgress(t *testing.T) {
	dev := openDevice(t)
	dev.EXPECT().Read(gomock.Any()).Return(0, nil)

	_, err := FromDevice(dev).Read(3)
	assert.ErrorIs(t, err, io.ErrNoProgress)
}

func TestFromDevice_Write(t *testing.T) {
	dev := openDevice(t)
	dev.EXPECT().Write([]byte("out")).Return(3, nil)
	dev.EXPECT().Write([]byte{'!'}).Return(1, nil)

	s := FromDevice(dev)
	n, err := s.Write(libcsd.Borrow([]byte("out")))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, s.WriteByte('!'))
}

func TestFromDevice_WriteError(t *testing.T) {
	dev := openDevice(t)
	broken := errors.New("broken pipe")
	dev.EXPECT().Write(gomock.Any()).Return(0, broken)

	assert.ErrorIs(t, FromDevice(dev).WriteByte('x'), broken)
}

func TestFromDevice_Options(t *testing.T) {
	tests := []struct {
		name         string
		opts         []Option
		wantReadable bool
		wantWritable bool
	}{
		{"default", nil, true, true},
		{"read only", []Option{WithReadOnly()}, true, false},
		{"write only", []Option{WithWriteOnly()}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromDevice(openDevice(t), tt.opts...)
			assert.Equal(t, tt.wantReadable, s.IsReadable())
			assert.Equal(t, tt.wantWritable, s.IsWritable())
		})
	}
}

func TestFromDevice_Closed(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := NewMockDevice(ctrl)
	dev.EXPECT().IsOpen().Return(false).AnyTimes()

	s := FromDevice(dev)
	_, err := s.ReadByte()
	assert.ErrorIs(t, err, libcsd.ErrInvalidOperation)
	assert.ErrorIs(t, s.WriteByte('x'), libcsd.ErrInvalidOperation)
}
