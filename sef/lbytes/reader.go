package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"sampan/sef/serr"
)

func NewReader(source io.ReadSeeker, size int64) *Reader {
	return &Reader{
		source: source,
		size:   size,
	}
}

func NewBytesReader(bs []byte) *Reader {
	return NewReader(bytes.NewReader(bs), int64(len(bs)))
}

func (b *Reader) Size() int64 {
	return b.size
}

// FromEnd converts a distance counted back from the end of the source into an
// absolute position, making sure that length bytes starting there lie inside
// the source.
func (b *Reader) FromEnd(distance int64, length int64) (int64, error) {
	if length < 0 || distance < length || distance > b.size {
		return 0, serr.ErrOutOfBounds{
			Distance: distance,
			Length:   length,
			Size:     b.size,
		}
	}
	return b.size - distance, nil
}

// SeekEnd moves the reader distance bytes before the end of the source, where
// length bytes are about to be read.
func (b *Reader) SeekEnd(distance int64, length int64) error {
	position, err := b.FromEnd(distance, length)
	if err != nil {
		return err
	}
	if _, err := b.source.Seek(position, io.SeekStart); err != nil {
		return errors.Wrapf(err, "lbytes.SeekEnd error seeking to %d", position)
	}
	return nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// io.ReadFull returns io.EOF on an empty read, which is not an error here
	if n == 0 {
		return bs, nil
	}
	if _, err := io.ReadFull(b.source, bs); err != nil {
		return nil, errors.Wrapf(err, "lbytes.ReadBytes error reading %d bytes", n)
	}
	return bs, nil
}

// ReadBytesAtEnd reads n bytes starting distance bytes before the end.
func (b *Reader) ReadBytesAtEnd(distance int64, n int) ([]byte, error) {
	if err := b.SeekEnd(distance, int64(n)); err != nil {
		return nil, err
	}
	return b.ReadBytes(n)
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}
