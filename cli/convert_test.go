package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sampan/sef"
	"sampan/sef/serr"
)

func createJPEG(n int) []byte {
	bs := make([]byte, n)
	bs[0], bs[1] = 0xFF, 0xD8
	bs[n-2], bs[n-1] = 0xFF, 0xD9
	return bs
}

func createPanorama(jpeg []byte, version uint32) []byte {
	return sef.Encode(
		jpeg,
		version,
		[]sef.Block{
			{Type: 0x0a01, Data: bytes.Repeat([]byte{1}, 300)},
			{Type: 0x0ba1, Data: bytes.Repeat([]byte{2}, 700)},
		},
	)
}

func writeFile(t *testing.T, dir string, name string, bs []byte) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, bs, 0644))
	return path
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	jpeg := createJPEG(2000)
	input := writeFile(t, dir, "pano.jpg", createPanorama(jpeg, 106))
	output := filepath.Join(dir, "out.jpg")

	result, err := ConvertFile(context.Background(), input, output, ConvertOptions{})
	require.NoError(t, err)
	assert.NoError(t, result.Err)
	assert.True(t, result.Written)
	assert.Equal(t, int64(2), result.NumEntries)
	assert.Equal(t, int64(2000), result.Extracted)
	assert.Equal(t, int64(2000+8+1000+44), result.Total)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, jpeg, written)
}

func TestConvertFile_InPlace(t *testing.T) {
	dir := t.TempDir()
	jpeg := createJPEG(1500)
	jpeg[1499] = 0
	input := writeFile(t, dir, "pano.jpg", createPanorama(jpeg, 101))

	result, err := ConvertFile(context.Background(), input, input, ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), result.Extracted)

	written, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Len(t, written, 1502)
	assert.Equal(t, sef.EOI, written[1500:])
}

func TestConvertFile_DryRun(t *testing.T) {
	dir := t.TempDir()
	file := createPanorama(createJPEG(1000), 103)
	input := writeFile(t, dir, "pano.jpg", file)

	result, err := ConvertFile(context.Background(), input, "", ConvertOptions{DryRun: true})
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Equal(t, int64(1000), result.Extracted)

	unchanged, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, file, unchanged)
}

func TestConvertFile_Skipped(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]struct {
		file  []byte
		force bool
		kind  serr.Kind
	}{
		"plain jpeg":        {createJPEG(500), false, serr.KindNotPanorama},
		"plain jpeg forced": {createJPEG(500), true, serr.KindNotPanorama},
		"unknown version":   {createPanorama(createJPEG(500), 7), false, serr.KindUnsupportedVersion},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			input := writeFile(t, dir, "in.jpg", test.file)
			output := filepath.Join(dir, "skipped.jpg")

			result, err := ConvertFile(context.Background(), input, output, ConvertOptions{Force: test.force})
			require.NoError(t, err)
			assert.Equal(t, test.kind, serr.KindOf(result.Err))
			assert.Equal(t, result.Total, result.Extracted)
			assert.False(t, result.Written)
			assert.NoFileExists(t, output)
		})
	}
}

func TestConvertFile_MissingInput(t *testing.T) {
	_, err := ConvertFile(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"), "out.jpg", ConvertOptions{})
	assert.Error(t, err)
	assert.Equal(t, serr.KindIO, serr.KindOf(err))
}

func TestPrintFileResult(t *testing.T) {
	buf := bytes.Buffer{}
	PrintFileResult(&buf, FileResult{Input: "in.jpg", Output: "out.jpg", Total: 4_000_000, Extracted: 1_000_000})
	assert.Equal(t, "in.jpg -> out.jpg\n  Extracting 1.0 of 4.0 MB (25 %)\n", buf.String())
}
