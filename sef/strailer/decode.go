package strailer

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"sampan/sef/lbytes"
	"sampan/sef/sentry"
	"sampan/sef/sfooter"
	"sampan/sef/sheader"
)

// MinOffset reduces the entries to the smallest data offset. Without entries
// nothing is stripped and the whole file length is returned.
func MinOffset(entries []sentry.Entry, fileLength int64) int64 {
	return lo.Reduce(
		entries,
		func(smallest int64, entry sentry.Entry, _ int) int64 {
			if entry.Inferences.Offset < smallest {
				return entry.Inferences.Offset
			}
			return smallest
		},
		fileLength,
	)
}

func Decode(reader *lbytes.Reader, force bool) (*Trailer, error) {
	trailer := Trailer{FileLength: reader.Size()}

	footer, err := sfooter.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "strailer.Decode error")
	}
	trailer.Footer = *footer

	header, err := sheader.Decode(reader, trailer.Footer, force)
	if err != nil {
		return nil, errors.Wrap(err, "strailer.Decode error")
	}
	trailer.Header = *header

	trailer.Entries, err = sentry.DecodeBlock(reader, int64(header.NumEntries), force)
	if err != nil {
		return nil, errors.Wrap(err, "strailer.Decode error")
	}
	trailer.PayloadLength = MinOffset(trailer.Entries, trailer.FileLength)

	return &trailer, nil
}

// ReadPayloadLength returns the entry count and the payload length without
// keeping the footer and header around.
func ReadPayloadLength(reader *lbytes.Reader, force bool) (int64, int64, error) {
	numEntries, err := sheader.ReadEntriesCount(reader, force)
	if err != nil {
		return 0, 0, errors.Wrap(err, "strailer.ReadPayloadLength error")
	}

	entries, err := sentry.DecodeBlock(reader, numEntries, force)
	if err != nil {
		return numEntries, 0, errors.Wrap(err, "strailer.ReadPayloadLength error")
	}

	return numEntries, MinOffset(entries, reader.Size()), nil
}
