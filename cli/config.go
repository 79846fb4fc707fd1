package cli

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"sampan/logging"
)

type (
	// Config is the optional YAML file (~/.config/sampan/config.yaml). Its
	// values only apply to flags left unset on the command line.
	Config struct {
		Force  bool      `yaml:"force"`
		Silent bool      `yaml:"silent"`
		Jobs   int       `yaml:"jobs"`
		Report string    `yaml:"report"`
		Log    LogConfig `yaml:"log"`
	}
	LogConfig struct {
		Level  string              `yaml:"level"`
		Format string              `yaml:"format"`
		File   logging.FileOptions `yaml:"file"`
	}
)

func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sampan", "config.yaml")
}

// LoadConfig reads the config file at path. An empty path falls back to
// DefaultConfigPath, which may be missing; an explicit path may not.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, errors.Wrapf(err, "LoadConfig error reading %s", path)
	}
	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "LoadConfig error parsing %s", path)
	}
	return cfg, nil
}

// LoadDotEnv loads .env from the working directory so that its variables
// feed the env bindings of Args. A missing file is fine.
func LoadDotEnv(path string) error {
	if !CheckExistence(path) {
		return nil
	}
	return errors.Wrap(godotenv.Load(path), "LoadDotEnv error")
}

func (cfg Config) ApplyStrip(cmd *StripCmd) {
	cmd.Force = cmd.Force || cfg.Force
	cmd.Silent = cmd.Silent || cfg.Silent
	if cmd.Jobs == 0 {
		cmd.Jobs = cfg.Jobs
	}
	if cmd.Jobs < 1 {
		cmd.Jobs = 1
	}
	if cmd.Report == "" {
		cmd.Report = cfg.Report
	}
}

func (cfg Config) LoggingOptions(args Args) logging.Options {
	options := logging.Options{
		Level:  args.LogLevel,
		Format: args.LogFormat,
		File:   cfg.Log.File,
	}
	if options.Level == "" {
		options.Level = cfg.Log.Level
	}
	if options.Format == "" {
		options.Format = cfg.Log.Format
	}
	if args.LogFile != "" {
		options.File.Path = args.LogFile
	}
	return options
}
