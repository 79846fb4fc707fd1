package sheader

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"sampan/sef/lbytes"
	"sampan/sef/serr"
	"sampan/sef/sfooter"
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

func IsSupportedVersion(version uint32) bool {
	return lo.Contains(SupportedVersions, version)
}

// Decode reads the header the footer points to. Unless force is set, the
// version has to be one of SupportedVersions.
func Decode(reader *lbytes.Reader, footer sfooter.Footer, force bool) (*Header, error) {
	if err := reader.SeekEnd(footer.HeaderDistance(), DefaultHeaderSize); err != nil {
		return nil, errors.Wrap(err, "sheader.Decode error")
	}

	readMagicNumber := createMagicNumberReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "magic_number", ReadFunction: readMagicNumber},
		{Key: "version", ReadFunction: readUint32},
		{Key: "num_entries", ReadFunction: readUint32},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "sheader.Decode error")
	}
	if !force && !IsSupportedVersion(header.Version) {
		return nil, serr.ErrUnsupportedVersion{Version: header.Version}
	}

	return header, nil
}

// ReadEntriesCount decodes the footer and the header of the trailer and
// returns the number of entries it declares.
func ReadEntriesCount(reader *lbytes.Reader, force bool) (int64, error) {
	footer, err := sfooter.Decode(reader)
	if err != nil {
		return 0, err
	}
	header, err := Decode(reader, *footer, force)
	if err != nil {
		return 0, err
	}
	return int64(header.NumEntries), nil
}
