package sfooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sampan/sef/lbytes"
	"sampan/sef/serr"
)

func TestDecode(t *testing.T) {
	bs := append([]byte("jpeg payload"), Encode(Footer{TrailerLength: 24})...)

	footer, err := Decode(lbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.Equal(t, uint32(24), footer.TrailerLength)
	assert.Equal(t, MagicNumberBytes, footer.MagicNumber)
	assert.Equal(t, int64(32), footer.HeaderDistance())
}

func TestDecode_NotPanorama(t *testing.T) {
	tests := map[string][]byte{
		"plain jpeg": {0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0, 0xFF, 0xD9},
		"too short":  []byte("SEFT"),
		"empty":      {},
		"lower case": append(lbytes.EncodeUint32(24), []byte("seft")...),
	}

	for name, bs := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(lbytes.NewBytesReader(bs))
			assert.Equal(t, serr.KindNotPanorama, serr.KindOf(err))
		})
	}
}

func TestCalculateTrailerLength(t *testing.T) {
	assert.Equal(t, uint32(12), CalculateTrailerLength(0))
	assert.Equal(t, uint32(24), CalculateTrailerLength(1))
	assert.Equal(t, uint32(48), CalculateTrailerLength(3))
}
