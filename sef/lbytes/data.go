package lbytes

import (
	"io"
)

type (
	// Reader reads little-endian values from a source of known size. Positions
	// are usually given as a distance counted back from the end of the source.
	Reader struct {
		source io.ReadSeeker
		size   int64
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)
