package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"sampan/sef/serr"
)

func TestStripCmd_Validate(t *testing.T) {
	tests := map[string]struct {
		cmd   StripCmd
		valid bool
	}{
		"output":            {StripCmd{Output: "o.jpg"}, true},
		"in place":          {StripCmd{InPlace: true}, true},
		"dry run":           {StripCmd{DryRun: true}, true},
		"nothing":           {StripCmd{}, false},
		"output + in place": {StripCmd{Output: "o.jpg", InPlace: true}, false},
		"output + dry run":  {StripCmd{Output: "o.jpg", DryRun: true}, false},
		"negative jobs":     {StripCmd{InPlace: true, Jobs: -1}, false},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.cmd.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

type RunTestSuite struct {
	Dir    string
	Config string
	Inputs []string
	JPEG   []byte
	R      *require.Assertions
	suite.Suite
}

func (suite *RunTestSuite) SetupTest() {
	suite.R = suite.Require()
	suite.Dir = suite.T().TempDir()
	// an empty explicit config keeps the user's own config out of the tests
	suite.Config = writeFile(suite.T(), suite.Dir, "config.yaml", []byte("log:\n  level: error\n"))
	suite.JPEG = createJPEG(4000)
	suite.Inputs = []string{
		writeFile(suite.T(), suite.Dir, "pano.jpg", createPanorama(suite.JPEG, 106)),
		writeFile(suite.T(), suite.Dir, "plain.jpg", createJPEG(700)),
	}
}

func (suite *RunTestSuite) TestStrip_DryRun() {
	out := bytes.Buffer{}
	report := filepath.Join(suite.Dir, "report.json")
	args := Args{
		Config: suite.Config,
		Strip:  &StripCmd{Inputs: suite.Inputs, DryRun: true, Report: report},
	}

	suite.R.NoError(Run(context.Background(), args, &out))
	suite.R.Contains(out.String(), "pano.jpg -> (dry run)")
	suite.R.Contains(out.String(), "---\nExtracted")
	suite.R.FileExists(report)

	loaded := Report{}
	bs, err := os.ReadFile(report)
	suite.R.NoError(err)
	suite.R.NoError(json.Unmarshal(bs, &loaded))
	suite.R.Equal(int64(4000+700), loaded.ExtractedBytes)
}

func (suite *RunTestSuite) TestStrip_Output() {
	output := filepath.Join(suite.Dir, "out.jpg")
	args := Args{
		Config: suite.Config,
		Strip:  &StripCmd{Inputs: suite.Inputs[:1], Output: output, Silent: true},
	}

	out := bytes.Buffer{}
	suite.R.NoError(Run(context.Background(), args, &out))
	suite.R.Empty(out.String())

	written, err := os.ReadFile(output)
	suite.R.NoError(err)
	suite.R.Equal(suite.JPEG, written)
}

func (suite *RunTestSuite) TestInspect() {
	out := bytes.Buffer{}
	args := Args{
		Config:  suite.Config,
		Inspect: &InspectCmd{Inputs: suite.Inputs},
	}
	suite.R.NoError(Run(context.Background(), args, &out))

	inspections := []Inspection{}
	suite.R.NoError(json.Unmarshal(out.Bytes(), &inspections))
	suite.R.Len(inspections, 2)
	suite.R.NotNil(inspections[0].Trailer)
	suite.R.Equal(int64(4000), inspections[0].Trailer.PayloadLength)
	suite.R.Len(inspections[0].Trailer.Entries, 2)
	suite.R.Nil(inspections[1].Trailer)
	suite.R.Equal(serr.KindNotPanorama, inspections[1].Kind)
}

func (suite *RunTestSuite) TestMissingConfig() {
	args := Args{
		Config: filepath.Join(suite.Dir, "missing.yaml"),
		Strip:  &StripCmd{Inputs: suite.Inputs, DryRun: true},
	}
	suite.R.Error(Run(context.Background(), args, &bytes.Buffer{}))
}

func TestRun(t *testing.T) {
	suite.Run(t, new(RunTestSuite))
}
