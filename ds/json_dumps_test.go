package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpJSON(t *testing.T) {
	value := struct {
		Version uint32 `json:"version"`
		Magic   []byte `json:"magic"`
	}{
		Version: 106,
		Magic:   []byte("SEFH"),
	}
	assert.Equal(t, `{"version":106,"magic":"U0VGSA=="}`, DumpJSON(value))
}
