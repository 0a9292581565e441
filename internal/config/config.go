// Package config provides configuration for regect.
//
// Settings come from four layers, each overriding the previous one:
// built-in defaults, a TOML or YAML file, REGECT_* environment
// variables, and command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/regect/internal/config/loader"
	"github.com/dshills/regect/internal/pattern"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "REGECT_"

// Config holds all settings.
type Config struct {
	Pattern PatternConfig `toml:"pattern" yaml:"pattern"`
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// PatternConfig controls pattern compilation.
type PatternConfig struct {
	// Engine is "std" or "coregex".
	Engine string `toml:"engine" yaml:"engine"`
	// CaseInsensitive adds the (?i) flag to every pattern.
	CaseInsensitive bool `toml:"case_insensitive" yaml:"case_insensitive"`
	// Initial is the pattern shown at startup.
	Initial string `toml:"initial" yaml:"initial"`
}

// ThemeConfig selects a built-in theme and optionally overrides its colors.
// Colors are "#rrggbb", "#rgb", a color name, or "default".
type ThemeConfig struct {
	Name            string `toml:"name" yaml:"name"`
	MatchForeground string `toml:"match_foreground" yaml:"match_foreground"`
	MatchBackground string `toml:"match_background" yaml:"match_background"`
	Banner          string `toml:"banner" yaml:"banner"`
}

// LoggingConfig controls the diagnostic log file.
type LoggingConfig struct {
	// Level is debug, info, warn, or error.
	Level string `toml:"level" yaml:"level"`
	// File is the log file path. Empty means the default state directory;
	// "off" disables logging.
	File string `toml:"file" yaml:"file"`
	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int `toml:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `toml:"max_backups" yaml:"max_backups"`
	// MaxAgeDays is how long rotated files are kept.
	MaxAgeDays int `toml:"max_age_days" yaml:"max_age_days"`
	// Compress gzips rotated files.
	Compress bool `toml:"compress" yaml:"compress"`
}

// LogFileOff disables the log file.
const LogFileOff = "off"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pattern: PatternConfig{
			Engine: string(pattern.EngineStd),
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// DefaultPaths returns the config files looked for when no path is given,
// in order of preference.
func DefaultPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	base := filepath.Join(dir, "regect")
	return []string{
		filepath.Join(base, "config.toml"),
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "config.yml"),
	}
}

// DefaultLogFile returns the log path used when none is configured.
func DefaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "regect", "regect.log")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "regect", "regect.log")
	}
	return filepath.Join(os.TempDir(), "regect.log")
}

// Options controls Load.
type Options struct {
	// Path is an explicit config file. It must exist.
	Path string
	// SearchPaths are tried in order when Path is empty; missing files are skipped.
	SearchPaths []string
	// FS overrides the file system.
	FS loader.FileSystem
	// Env overrides environment lookup.
	Env func(string) (string, bool)
}

// Load builds a configuration from defaults, the config file, and the
// environment, then validates it. It also returns the file that was
// read, or "" when none was.
func Load(opts Options) (*Config, string, error) {
	cfg := Default()

	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}
	files := loader.NewFileLoaderWithFS(fsys)

	var used string
	switch {
	case opts.Path != "":
		if err := files.LoadInto(opts.Path, cfg); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, "", fmt.Errorf("%w: %s", ErrFileNotFound, opts.Path)
			}
			return nil, "", err
		}
		used = opts.Path
	default:
		for _, p := range opts.SearchPaths {
			if !files.Exists(p) {
				continue
			}
			if err := files.LoadInto(p, cfg); err != nil {
				return nil, "", err
			}
			used = p
			break
		}
	}

	env := loader.NewEnvLoader(EnvPrefix)
	if opts.Env != nil {
		env.WithLookup(opts.Env)
	}
	if err := cfg.applyEnv(env.Load()); err != nil {
		return nil, "", err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, used, nil
}

// applyEnv applies overrides keyed by config path.
func (c *Config) applyEnv(values map[string]string) error {
	for path, val := range values {
		switch path {
		case "pattern.engine":
			c.Pattern.Engine = val
		case "pattern.case_insensitive":
			b, err := loader.ParseBool(val)
			if err != nil {
				return &ValidationError{Path: path, Value: val, Message: "expected a boolean"}
			}
			c.Pattern.CaseInsensitive = b
		case "theme.name":
			c.Theme.Name = val
		case "logging.level":
			c.Logging.Level = val
		case "logging.file":
			c.Logging.File = val
		}
	}
	return nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := pattern.ParseEngine(c.Pattern.Engine); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "pattern.engine",
			Value:   c.Pattern.Engine,
			Message: fmt.Sprintf("must be one of %s", engineNames()),
		})
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Value:   c.Logging.Level,
			Message: "must be debug, info, warn, or error",
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errs = append(errs, &ValidationError{Path: "logging.max_size_mb", Value: c.Logging.MaxSizeMB, Message: "must not be negative"})
	}
	if c.Logging.MaxBackups < 0 {
		errs = append(errs, &ValidationError{Path: "logging.max_backups", Value: c.Logging.MaxBackups, Message: "must not be negative"})
	}
	if c.Logging.MaxAgeDays < 0 {
		errs = append(errs, &ValidationError{Path: "logging.max_age_days", Value: c.Logging.MaxAgeDays, Message: "must not be negative"})
	}

	if _, err := c.BuildTheme(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// PatternOptions converts the pattern settings for the validator.
// Call Validate first; an unknown engine falls back to std.
func (c *Config) PatternOptions() pattern.Options {
	engine, err := pattern.ParseEngine(c.Pattern.Engine)
	if err != nil {
		engine = pattern.EngineStd
	}
	return pattern.Options{
		Engine:          engine,
		CaseInsensitive: c.Pattern.CaseInsensitive,
	}
}

// LogFile returns the resolved log path, or "" when logging is off.
func (c *Config) LogFile() string {
	switch c.Logging.File {
	case LogFileOff:
		return ""
	case "":
		return DefaultLogFile()
	default:
		return c.Logging.File
	}
}

func engineNames() string {
	names := make([]string, 0, len(pattern.Engines()))
	for _, e := range pattern.Engines() {
		names = append(names, e.String())
	}
	return strings.Join(names, ", ")
}
