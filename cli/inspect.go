package cli

import (
	"context"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"sampan/ds"
	"sampan/logging"
	"sampan/sef"
	"sampan/sef/serr"
	"sampan/sef/strailer"
)

type (
	Inspection struct {
		Input   string            `json:"input"`
		Trailer *strailer.Trailer `json:"trailer,omitempty"`
		Kind    serr.Kind         `json:"kind,omitempty"`
		Error   string            `json:"error,omitempty"`
	}
)

func InspectFile(ctx context.Context, input string, force bool) (Inspection, error) {
	inspection := Inspection{Input: input}
	file, err := os.Open(input)
	if err != nil {
		return inspection, errors.Wrapf(err, "cannot open file %s", input)
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return inspection, errors.Wrapf(err, "cannot stat file %s", input)
	}

	trailer, err := sef.Decode(file, stat.Size(), force)
	if err != nil {
		if !serr.IsStructural(err) {
			return inspection, errors.Wrapf(err, "cannot read file %s", input)
		}
		inspection.Kind = serr.KindOf(err)
		inspection.Error = serr.Message(err)
		return inspection, nil
	}
	logging.FromContext(ctx).Debug(
		"decoded trailer",
		"input", input,
		"header", ds.DumpJSON(trailer.Header),
		"entries", len(trailer.Entries),
	)
	inspection.Trailer = trailer

	return inspection, nil
}

// StartInspecting prints the decoded trailer of every input as a JSON array.
func StartInspecting(ctx context.Context, cmd InspectCmd, out io.Writer) error {
	inspections := make([]Inspection, 0, len(cmd.Inputs))
	for _, input := range cmd.Inputs {
		inspection, err := InspectFile(ctx, input, cmd.Force)
		if err != nil {
			return err
		}
		inspections = append(inspections, inspection)
	}
	bs, err := json.MarshalIndent(inspections, "", "  ")
	if err != nil {
		return errors.Wrap(err, "StartInspecting error")
	}
	bs = append(bs, '\n')
	_, err = out.Write(bs)
	return err
}
