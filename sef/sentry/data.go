package sentry

type (
	// Entry is one descriptor of the trailer's entry table.
	//
	//   | unused (2) | type (2) | data offset (4) | data length (4) |
	//
	// The data offset is counted back from the start of the trailer header.
	Entry struct {
		Unused     []byte     `json:"unused"`
		Type       uint16     `json:"type"`
		DataOffset uint32     `json:"data_offset"`
		DataLength uint32     `json:"data_length"`
		Inferences Inferences `json:"inferences"`
	}
	Inferences struct {
		Index int64 `json:"index"`
		// DataType is the type recorded in front of the entry's data. It equals
		// Type in every well-formed file.
		DataType      uint16 `json:"data_type"`
		OffsetFromEnd int64  `json:"offset_from_end"`
		// Offset is the absolute position of the entry's data in the file.
		Offset int64 `json:"offset"`
	}
	// DataPrefix is the start of an entry's data block.
	DataPrefix struct {
		Unused []byte `json:"unused"`
		Type   uint16 `json:"type"`
	}
)

const (
	DefaultEntrySize      = 12
	DefaultDataPrefixSize = 4
	// DefaultFixedSize is the footer (8) plus the trailer header (12).
	DefaultFixedSize = 20
)
