// Package serr holds the errors a SEF trailer can fail with.
//
// Every failure of the decoders is one of the variants below, possibly wrapped
// with context by github.com/pkg/errors. Callers branch on KindOf instead of
// parsing messages.
package serr

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	Kind string

	// ErrNotPanorama means a magic tag is missing: the file is simply not a
	// Samsung panorama and is left untouched, even with force.
	ErrNotPanorama struct {
		Tag   string
		Found []byte
	}
	ErrUnsupportedVersion struct {
		Version uint32
	}
	// ErrTypeMismatch is raised when the type stored at an entry's data differs
	// from the type declared by its descriptor.
	ErrTypeMismatch struct {
		Found    uint16
		Expected uint16
	}
	// ErrOutOfBounds means a read was requested Distance bytes before the end of
	// a file of Size bytes, which would start before the file itself.
	ErrOutOfBounds struct {
		Distance int64
		Length   int64
		Size     int64
	}
)

const (
	KindNone               = Kind("")
	KindNotPanorama        = Kind("not_panorama")
	KindUnsupportedVersion = Kind("unsupported_version")
	KindTypeMismatch       = Kind("type_mismatch")
	KindOutOfBounds        = Kind("out_of_bounds")
	// KindIO covers everything that is not a structural failure of the trailer.
	KindIO = Kind("io")
)

func (r ErrNotPanorama) Error() string {
	return fmt.Sprintf("image is not a Samsung panorama: %s tag not found (got %q)", r.Tag, r.Found)
}

func (r ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf(
		"unknown panorama version %d, only versions 101, 103, 105, 106 are supported",
		r.Version,
	)
}

func (r ErrTypeMismatch) Error() string {
	return fmt.Sprintf("image is corrupted, entry types do not match: %d != %d", r.Found, r.Expected)
}

func (r ErrOutOfBounds) Error() string {
	return fmt.Sprintf(
		"trailer points outside the file: %d bytes at %d bytes before the end of a %d bytes file",
		r.Length, r.Distance, r.Size,
	)
}

// KindOf classifies err, looking through any wrapping.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var notPanorama ErrNotPanorama
	var unsupportedVersion ErrUnsupportedVersion
	var typeMismatch ErrTypeMismatch
	var outOfBounds ErrOutOfBounds
	switch {
	case errors.As(err, &notPanorama):
		return KindNotPanorama
	case errors.As(err, &unsupportedVersion):
		return KindUnsupportedVersion
	case errors.As(err, &typeMismatch):
		return KindTypeMismatch
	case errors.As(err, &outOfBounds):
		return KindOutOfBounds
	}
	return KindIO
}

// Message is the text of the variant behind err, without the context added
// by wrapping.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return errors.Cause(err).Error()
}

// IsStructural reports whether err is a trailer failure that only affects the
// file it came from.
func IsStructural(err error) bool {
	kind := KindOf(err)
	return kind != KindNone && kind != KindIO
}
