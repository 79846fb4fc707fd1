package strailer

import (
	"sampan/sef/sentry"
	"sampan/sef/sfooter"
	"sampan/sef/sheader"
)

// Encode lays out the header, the descriptors and the footer of a trailer.
// The trailer length and the entry count are derived from entries.
func Encode(version uint32, entries []sentry.Entry) []byte {
	trailerLength := sfooter.CalculateTrailerLength(len(entries))
	bs := make([]byte, 0, sfooter.DefaultFooterSize+int(trailerLength))
	bs = append(bs, sheader.Encode(sheader.Header{Version: version, NumEntries: uint32(len(entries))})...)
	bs = append(bs, sentry.EncodeBlock(entries)...)
	bs = append(bs, sfooter.Encode(sfooter.Footer{TrailerLength: trailerLength})...)
	return bs
}
