package sfooter

import (
	"github.com/pkg/errors"
	"sampan/sef/lbytes"
	"sampan/sef/serr"
)

func createMagicNumberReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return lbytes.CreateMagicReadFunction(
		reader,
		MagicNumberBytes,
		func(found []byte) error {
			return serr.ErrNotPanorama{Tag: string(MagicNumberBytes), Found: found}
		},
	)
}

// Decode reads the last DefaultFooterSize bytes of the source. A source too
// short to hold a footer cannot be a panorama.
func Decode(reader *lbytes.Reader) (*Footer, error) {
	if reader.Size() < DefaultFooterSize {
		return nil, serr.ErrNotPanorama{Tag: string(MagicNumberBytes)}
	}
	if err := reader.SeekEnd(DefaultFooterSize, DefaultFooterSize); err != nil {
		return nil, errors.Wrap(err, "sfooter.Decode error")
	}

	readMagicNumber := createMagicNumberReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	footerInstructions := []lbytes.Instruction{
		{Key: "trailer_length", ReadFunction: readUint32},
		{Key: "magic_number", ReadFunction: readMagicNumber},
	}

	footer, err := lbytes.ExecuteInstructions[Footer](footerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "sfooter.Decode error")
	}

	return footer, nil
}

// HeaderDistance is how far before the end of the file the trailer header
// starts.
func (r Footer) HeaderDistance() int64 {
	return DefaultFooterSize + int64(r.TrailerLength)
}
