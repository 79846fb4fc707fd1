package sentry

import (
	"sampan/sef/lbytes"
)

func EncodeEntry(entry Entry) []byte {
	bs := make([]byte, 0, DefaultEntrySize)
	bs = append(bs, 0, 0)
	bs = append(bs, lbytes.EncodeUint16(entry.Type)...)
	bs = append(bs, lbytes.EncodeUint32(entry.DataOffset)...)
	bs = append(bs, lbytes.EncodeUint32(entry.DataLength)...)
	return bs
}

func EncodeBlock(entries []Entry) []byte {
	bs := make([]byte, 0, len(entries)*DefaultEntrySize)
	for _, entry := range entries {
		bs = append(bs, EncodeEntry(entry)...)
	}
	return bs
}

// EncodeDataPrefix returns the 4 bytes an entry's data block starts with.
func EncodeDataPrefix(dataType uint16) []byte {
	bs := make([]byte, 0, DefaultDataPrefixSize)
	bs = append(bs, 0, 0)
	bs = append(bs, lbytes.EncodeUint16(dataType)...)
	return bs
}
