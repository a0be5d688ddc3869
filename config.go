package logwatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	defaultFnamePattern    = `.*\.log$`
	defaultIntervalSeconds = 1
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)

// LoggerConfig selects the operational logger's level and format.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config carries everything needed to build a Watcher. Words are joined
// into an alternation for the line pattern unless LinePattern is set
// explicitly.
type Config struct {
	Paths           []string     `yaml:"paths"`
	FnamePattern    string       `yaml:"fname_pattern"`
	Words           []string     `yaml:"words"`
	LinePattern     string       `yaml:"line_pattern"`
	IntervalSeconds int          `yaml:"interval_seconds"`
	FromEnd         bool         `yaml:"from_end"`
	Logger          LoggerConfig `yaml:"logger"`
}

// DefaultConfig returns the configuration used when no file and no flags are
// given: watch *.log files under the current directory, polling once a
// second.
func DefaultConfig() Config {
	return Config{
		Paths:           []string{"."},
		FnamePattern:    defaultFnamePattern,
		IntervalSeconds: defaultIntervalSeconds,
		Logger: LoggerConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// LoadConfig reads a YAML config file, layered over the defaults. Keys
// missing from the file keep their default values.
func LoadConfig(fsys afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Compile validates the config and builds the two patterns the Watcher
// needs.
func (c Config) Compile() (fname, line *regexp.Regexp, err error) {
	if c.IntervalSeconds <= 0 {
		return nil, nil, fmt.Errorf("interval must be positive, got %d", c.IntervalSeconds)
	}
	fname, err = regexp.Compile(c.FnamePattern)
	if err != nil {
		return nil, nil, fmt.Errorf("filename pattern: %w", err)
	}
	expr := c.LinePattern
	if expr == "" {
		if len(c.Words) == 0 {
			return nil, nil, errors.New("no words to watch for: give words as arguments or set them in the config file")
		}
		expr = strings.Join(c.Words, "|")
	}
	line, err = regexp.Compile(expr)
	if err != nil {
		return nil, nil, fmt.Errorf("line pattern: %w", err)
	}
	return fname, line, nil
}
