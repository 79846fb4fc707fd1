package sef

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// EOI is the JPEG end-of-image marker.
var EOI = []byte{0xFF, 0xD9}

type (
	Result struct {
		NumEntries    int64
		FileLength    int64
		PayloadLength int64
		// Written counts the bytes sent to the destination, including an
		// appended EOI.
		Written int64
	}
)

// WriteJPEG copies the first length bytes of source to dst and terminates them
// with EOI unless they already end with it.
func WriteJPEG(dst io.Writer, source io.ReadSeeker, length int64) (int64, error) {
	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return 0, errors.Wrap(err, "sef.WriteJPEG error")
	}
	written, err := io.CopyN(dst, source, length)
	if err != nil {
		return written, errors.Wrap(err, "sef.WriteJPEG error")
	}

	terminated := false
	if length >= int64(len(EOI)) {
		if _, err := source.Seek(length-int64(len(EOI)), io.SeekStart); err != nil {
			return written, errors.Wrap(err, "sef.WriteJPEG error")
		}
		last := make([]byte, len(EOI))
		if _, err := io.ReadFull(source, last); err != nil {
			return written, errors.Wrap(err, "sef.WriteJPEG error")
		}
		terminated = bytes.Equal(last, EOI)
	}
	if !terminated {
		n, err := dst.Write(EOI)
		written += int64(n)
		if err != nil {
			return written, errors.Wrap(err, "sef.WriteJPEG error")
		}
	}

	return written, nil
}

// Strip resolves the payload length of source and writes the JPEG stream to
// dst. Nothing is written when the trailer cannot be resolved.
func Strip(dst io.Writer, source io.ReadSeeker, size int64, force bool) (*Result, error) {
	numEntries, payloadLength, err := PayloadLength(source, size, force)
	if err != nil {
		return nil, err
	}
	result := Result{
		NumEntries:    numEntries,
		FileLength:    size,
		PayloadLength: payloadLength,
	}
	result.Written, err = WriteJPEG(dst, source, payloadLength)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
