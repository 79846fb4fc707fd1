// Package sef reads and strips the Samsung Extended Format trailer that
// Samsung panorama shots append after the JPEG end-of-image marker.
//
// The trailer is addressed from the end of the file:
//
//	[ JPEG ][ entry data ... ][ SEFH header ][ descriptors ][ footer "SEFT" ]
//
// Every descriptor points back at its entry's data; the smallest of those
// offsets is where the JPEG stream ends.
package sef

import (
	"io"

	"sampan/sef/lbytes"
	"sampan/sef/sheader"
	"sampan/sef/strailer"
)

// Decode reads the whole trailer of a source of size bytes.
func Decode(source io.ReadSeeker, size int64, force bool) (*strailer.Trailer, error) {
	return strailer.Decode(lbytes.NewReader(source, size), force)
}

// PayloadLength returns the number of entries of the trailer and the length
// of the JPEG stream in front of it.
func PayloadLength(source io.ReadSeeker, size int64, force bool) (int64, int64, error) {
	return strailer.ReadPayloadLength(lbytes.NewReader(source, size), force)
}

// IsPanorama reports whether the source carries both SEF magic tags. The
// version is not checked.
func IsPanorama(source io.ReadSeeker, size int64) bool {
	_, err := sheader.ReadEntriesCount(lbytes.NewReader(source, size), true)
	return err == nil
}
