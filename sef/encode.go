package sef

import (
	"sampan/sef/sentry"
	"sampan/sef/strailer"
)

type (
	// Block is the data of one trailer entry. Data follows the 4 bytes prefix
	// that repeats the entry type.
	Block struct {
		Type uint16
		Data []byte
	}
)

// Encode appends blocks and a trailer describing them to jpeg.
func Encode(jpeg []byte, version uint32, blocks []Block) []byte {
	bs := append([]byte{}, jpeg...)
	positions := make([]int, 0, len(blocks))
	for _, block := range blocks {
		positions = append(positions, len(bs))
		bs = append(bs, sentry.EncodeDataPrefix(block.Type)...)
		bs = append(bs, block.Data...)
	}

	// data offsets are counted back from the trailer header, which starts
	// right after the last block
	headerPosition := len(bs)
	entries := make([]sentry.Entry, 0, len(blocks))
	for i, block := range blocks {
		entries = append(entries, sentry.Entry{
			Type:       block.Type,
			DataOffset: uint32(headerPosition - positions[i]),
			DataLength: uint32(sentry.DefaultDataPrefixSize + len(block.Data)),
		})
	}

	return append(bs, strailer.Encode(version, entries)...)
}
