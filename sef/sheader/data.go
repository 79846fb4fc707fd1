package sheader

type (
	Header struct {
		MagicNumber []byte `json:"magic_number"`
		Version     uint32 `json:"version"`
		NumEntries  uint32 `json:"num_entries"`
	}
)

const (
	DefaultHeaderSize = 12
)

var (
	// MagicNumberBytes is "SEFH".
	MagicNumberBytes  = []byte{83, 69, 70, 72}
	SupportedVersions = []uint32{101, 103, 105, 106}
)
