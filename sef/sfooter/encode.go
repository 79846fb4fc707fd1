package sfooter

import (
	"sampan/sef/lbytes"
)

func Encode(footer Footer) []byte {
	bs := make([]byte, 0, DefaultFooterSize)
	bs = append(bs, lbytes.EncodeUint32(footer.TrailerLength)...)
	bs = append(bs, MagicNumberBytes...)
	return bs
}

// CalculateTrailerLength returns the trailer_length of a trailer holding
// numEntries descriptors: the header plus every descriptor.
func CalculateTrailerLength(numEntries int) uint32 {
	return uint32(12 + numEntries*12)
}
