package sfooter

type (
	// Footer is the fixed record that closes every SEF trailer.
	Footer struct {
		TrailerLength uint32 `json:"trailer_length"`
		MagicNumber   []byte `json:"magic_number"`
	}
)

const (
	DefaultFooterSize = 8
)

var (
	// MagicNumberBytes is "SEFT".
	MagicNumberBytes = []byte{83, 69, 70, 84}
)
