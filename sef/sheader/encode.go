package sheader

import (
	"sampan/sef/lbytes"
)

func Encode(header Header) []byte {
	bs := make([]byte, 0, DefaultHeaderSize)
	bs = append(bs, MagicNumberBytes...)
	bs = append(bs, lbytes.EncodeUint32(header.Version)...)
	bs = append(bs, lbytes.EncodeUint32(header.NumEntries)...)
	return bs
}
