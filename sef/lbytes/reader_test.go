package lbytes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sampan/sef/serr"
)

func TestReader_ReadUint32(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
	)

	resultInt1, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(50594051), resultInt1)

	resultInt2, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(1312301580), resultInt2)

	_, err = reader.ReadUint32()
	assert.Error(t, err)
}

func TestReader_ReadUint16(t *testing.T) {
	reader := NewBytesReader([]byte{0x46, 0x48})

	result, err := reader.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x4846), result)
}

func TestReader_FromEnd(t *testing.T) {
	reader := NewBytesReader(make([]byte, 100))

	position, err := reader.FromEnd(8, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(92), position)

	position, err = reader.FromEnd(100, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(0), position)

	_, err = reader.FromEnd(101, 4)
	assert.Equal(t, serr.KindOutOfBounds, serr.KindOf(err))

	// reading 4 bytes 2 bytes before the end would cross the end
	_, err = reader.FromEnd(2, 4)
	assert.Equal(t, serr.KindOutOfBounds, serr.KindOf(err))
}

func TestReader_ReadBytesAtEnd(t *testing.T) {
	reader := NewBytesReader([]byte("JPEGDATA-SEFT"))

	bs, err := reader.ReadBytesAtEnd(4, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("SEFT"), bs)

	bs, err = reader.ReadBytesAtEnd(13, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("JPEG"), bs)

	bs, err = reader.ReadBytesAtEnd(0, 0)
	require.NoError(t, err)
	assert.Empty(t, bs)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, []byte{0x65, 0, 0, 0}, EncodeUint32(101))
	assert.Equal(t, []byte{5, 0}, EncodeUint16(5))
}
