package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"sampan/logging"
	"sampan/ui"
)

type (
	Args struct {
		Strip       *StripCmd       `arg:"subcommand:strip" help:"strip the Samsung trailer from JPEG files"`
		Inspect     *InspectCmd     `arg:"subcommand:inspect" help:"print the decoded trailer of JPEG files as JSON"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the panoramas of a folder"`
		Config      string          `arg:"--config,env:SAMPAN_CONFIG" help:"path to a YAML config file" placeholder:"config.yaml"`
		LogLevel    string          `arg:"--log-level,env:SAMPAN_LOG_LEVEL" help:"debug, info, warn or error" placeholder:"LEVEL"`
		LogFormat   string          `arg:"--log-format,env:SAMPAN_LOG_FORMAT" help:"text or json" placeholder:"FORMAT"`
		LogFile     string          `arg:"--log-file,env:SAMPAN_LOG_FILE" help:"write logs to a rotated file instead of stderr" placeholder:"FILE"`
	}
	StripCmd struct {
		Inputs []string `arg:"positional,required" help:"JPEG files to strip; wildcards are expanded by the shell" placeholder:"INPUT"`
		Output string   `arg:"-o,--output" help:"output file name" placeholder:"OUTPUT"`
		// InPlace and DryRun conflict with Output, see Validate
		InPlace bool   `arg:"-i,--in-place" help:"overwrite the input files, ensure you have a backup"`
		DryRun  bool   `arg:"-d,--dry-run" help:"run without writing any output"`
		Silent  bool   `arg:"-s,--silent,env:SAMPAN_SILENT" help:"do not print any information"`
		Force   bool   `arg:"-f,--force,env:SAMPAN_FORCE" help:"convert even when the version is unsupported or the entry types do not match; files that are not Samsung panoramas are never touched"`
		Jobs    int    `arg:"-j,--jobs,env:SAMPAN_JOBS" help:"number of files processed at once with --in-place or --dry-run" placeholder:"N"`
		Report  string `arg:"--report" help:"write a JSON report of the run" placeholder:"report.json"`
	}
	InspectCmd struct {
		Inputs []string `arg:"positional,required" help:"JPEG files to inspect" placeholder:"INPUT"`
		Force  bool     `arg:"-f,--force" help:"decode even when the version is unsupported or the entry types do not match"`
	}
	InteractiveCmd struct {
		Dir   string `arg:"positional" help:"folder to browse, the current one by default" placeholder:"DIR"`
		Force bool   `arg:"-f,--force" help:"skip the version and entry type checks"`
	}
)

var Version = "dev"

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Strips unnecessary information from Samsung panorama images.\n",
			"Samsung cameras append a proprietary trailer after the JPEG data of panorama shots.",
			"sampan finds where the JPEG data ends and drops everything after it.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (Args) Version() string {
	return "sampan " + Version
}

func (cmd StripCmd) Validate() error {
	switch {
	case cmd.Output != "" && (cmd.InPlace || cmd.DryRun):
		return errors.New("--output cannot be used together with --in-place or --dry-run")
	case cmd.Output == "" && !cmd.InPlace && !cmd.DryRun:
		return errors.New("--output is required unless --in-place or --dry-run is set")
	case cmd.Jobs < 0:
		return errors.New("--jobs must be positive")
	}
	return nil
}

// StartStripping converts every input of cmd and prints the progress to out.
func StartStripping(ctx context.Context, cmd StripCmd, cfg Config, out io.Writer) ([]FileResult, error) {
	cfg.ApplyStrip(&cmd)
	if cmd.Jobs > 1 && !cmd.InPlace && !cmd.DryRun {
		// every input is written to the same output
		logging.FromContext(ctx).Debug("ignoring --jobs with a shared output", "jobs", cmd.Jobs)
		cmd.Jobs = 1
	}

	startedAt := time.Now()
	jobs := CreateJobs(cmd.Inputs, cmd.Output, cmd.InPlace, cmd.DryRun)
	options := BatchOptions{
		Convert: ConvertOptions{DryRun: cmd.DryRun, Force: cmd.Force},
		Jobs:    cmd.Jobs,
		Silent:  cmd.Silent,
	}
	results, err := RunBatch(ctx, jobs, options, out)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(startedAt)

	if !cmd.Silent {
		PrintSummary(out, Fold(results), elapsed)
	}
	if cmd.Report != "" {
		if err := SaveReport(CreateReport(startedAt, elapsed, results), cmd.Report); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Run executes the subcommand selected in args.
func Run(ctx context.Context, args Args, out io.Writer) error {
	cfg, err := LoadConfig(args.Config)
	if err != nil {
		return err
	}
	logger, closer := logging.New(cfg.LoggingOptions(args))
	defer closer.Close()
	ctx = logging.WithContext(ctx, logger)

	switch {
	case args.Strip != nil:
		_, err := StartStripping(ctx, *args.Strip, cfg, out)
		return err
	case args.Inspect != nil:
		return StartInspecting(ctx, *args.Inspect, out)
	case args.Interactive != nil:
		return ui.Start(ctx, args.Interactive.Dir, args.Interactive.Force || cfg.Force)
	}
	return nil
}

func Start() {
	if err := LoadDotEnv(".env"); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
	}

	args := Args{}
	parser := arg.MustParse(&args)
	if args.Strip == nil && args.Inspect == nil && args.Interactive == nil {
		parser.WriteHelp(os.Stdout)
		return
	}
	if args.Strip != nil {
		if err := args.Strip.Validate(); err != nil {
			parser.Fail(err.Error())
		}
	}

	if err := Run(context.Background(), args, os.Stdout); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
