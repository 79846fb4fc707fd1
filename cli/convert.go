package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"sampan/logging"
	"sampan/sef"
	"sampan/sef/serr"
)

type (
	ConvertOptions struct {
		DryRun bool
		Force  bool
	}
	// FileResult is the outcome of one input. A file whose trailer could not
	// be resolved keeps Err and counts as fully extracted.
	FileResult struct {
		Input      string
		Output     string
		NumEntries int64
		Total      int64
		Extracted  int64
		Written    bool
		Err        error
	}
)

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// ConvertFile strips the trailer of input into output. Only I/O failures are
// returned as errors; trailer failures are logged and kept in the result.
// output may equal input.
func ConvertFile(ctx context.Context, input string, output string, options ConvertOptions) (FileResult, error) {
	logger := logging.FromContext(ctx).With("input", input)
	result := FileResult{Input: input, Output: output}

	if !CheckExistence(input) {
		return result, errors.Errorf("cannot open file %s: source file does not exist", input)
	}
	file, err := os.Open(input)
	if err != nil {
		return result, errors.Wrapf(err, "cannot open file %s", input)
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return result, errors.Wrapf(err, "cannot stat file %s", input)
	}
	result.Total = stat.Size()
	result.Extracted = result.Total

	numEntries, payloadLength, err := sef.PayloadLength(file, result.Total, options.Force)
	if err != nil {
		if !serr.IsStructural(err) {
			return result, errors.Wrapf(err, "cannot read file %s", input)
		}
		result.Err = err
		kind := serr.KindOf(err)
		if kind == serr.KindNotPanorama {
			logger.Info("skipping file", "kind", kind, "err", serr.Message(err))
		} else {
			logger.Warn("skipping file", "kind", kind, "err", serr.Message(err))
		}
		return result, nil
	}
	result.NumEntries = numEntries
	result.Extracted = payloadLength
	logger.Debug("resolved trailer", "entries", numEntries, "payload_length", payloadLength)

	if options.DryRun {
		return result, nil
	}

	// the whole payload is buffered so that output may overwrite input
	buf := bytes.Buffer{}
	buf.Grow(int(payloadLength) + len(sef.EOI))
	if _, err := sef.WriteJPEG(&buf, file, payloadLength); err != nil {
		return result, errors.Wrapf(err, "cannot read file %s", input)
	}
	if err := file.Close(); err != nil {
		return result, errors.Wrapf(err, "cannot close file %s", input)
	}
	if err := os.WriteFile(output, buf.Bytes(), stat.Mode().Perm()); err != nil {
		return result, errors.Wrapf(err, "cannot write file %s", output)
	}
	result.Written = true

	return result, nil
}

func megabytes(n int64) float64 {
	return float64(n) / 1_000_000
}

func percent(part int64, whole int64) float64 {
	if whole == 0 {
		return 100
	}
	return 100 * float64(part) / float64(whole)
}

func PrintFileResult(w io.Writer, result FileResult) {
	output := result.Output
	if output == "" {
		output = "(dry run)"
	}
	_, _ = fmt.Fprintf(
		w,
		"%s -> %s\n  Extracting %.1f of %.1f MB (%.0f %%)\n",
		result.Input,
		output,
		megabytes(result.Extracted),
		megabytes(result.Total),
		percent(result.Extracted, result.Total),
	)
}
