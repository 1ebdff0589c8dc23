// Package config loads nbtedit settings from nbtedit.yaml and NBTEDIT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/signadot/nbtedit/format"
	"github.com/signadot/nbtedit/nbt"
)

const (
	fileName = "nbtedit"
	fileType = "yaml"
	dirName  = "nbtedit"

	KeyColor       = "color"
	KeyCompression = "compression"
	KeyFormat      = "format"
	KeyLogLevel    = "log_level"
	KeyLogFile     = "log_file"
	KeyJournal     = "journal"
)

var ErrConfig = errors.New("config error")

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func ParseColorMode(v string) (ColorMode, error) {
	switch strings.ToLower(v) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "true":
		return ColorAlways, nil
	case "never", "off", "false":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("%w: bad color mode %q", ErrConfig, v)
}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Enabled reports whether output to f should be coloured.  In auto mode
// that is when f is a terminal.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type Config struct {
	Color       ColorMode
	Compression nbt.Compression
	Format      format.Format
	LogLevel    slog.Level
	LogFile     string
	Journal     bool

	// File is the config file read, empty if none was found.
	File string
}

// file is the on-disk form of Config.
type file struct {
	Color       string `yaml:"color"`
	Compression string `yaml:"compression"`
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file,omitempty"`
	Journal     bool   `yaml:"journal"`
}

var defaults = file{
	Color:       "auto",
	Compression: "auto",
	Format:      "text",
	LogLevel:    "info",
}

// Dir returns the directory searched for nbtedit.yaml:
// $XDG_CONFIG_HOME/nbtedit, else ~/.config/nbtedit.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return filepath.Join(base, dirName), nil
}

// Load reads configuration.  If path is empty, nbtedit.yaml is looked up
// in Dir and a missing file is not an error; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyColor, defaults.Color)
	v.SetDefault(KeyCompression, defaults.Compression)
	v.SetDefault(KeyFormat, defaults.Format)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyJournal, false)
	v.SetEnvPrefix("NBTEDIT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(fileType)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType(fileType)
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &nf) {
			return nil, fmt.Errorf("%w: reading config: %w", ErrConfig, err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LogFile: v.GetString(KeyLogFile),
		Journal: v.GetBool(KeyJournal),
		File:    v.ConfigFileUsed(),
	}
	var err error
	if cfg.Color, err = ParseColorMode(v.GetString(KeyColor)); err != nil {
		return nil, err
	}
	if cfg.Compression, err = nbt.ParseCompression(v.GetString(KeyCompression)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if cfg.Format, err = format.ParseFormat(v.GetString(KeyFormat)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// YAML renders cfg in the form Load reads.
func (c *Config) YAML() ([]byte, error) {
	f := file{
		Color:       c.Color.String(),
		Compression: c.Compression.String(),
		Format:      c.Format.String(),
		LogLevel:    strings.ToLower(c.LogLevel.String()),
		LogFile:     c.LogFile,
		Journal:     c.Journal,
	}
	return yaml.Marshal(f)
}

// WriteDefault writes a default nbtedit.yaml into dir unless one exists,
// returning the file's path.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, fileName+"."+fileType)
	_, err := os.Stat(path)
	if err == nil {
		return path, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfig, err)
	}
	d, err := yaml.Marshal(defaults)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfig, err)
	}
	d = append([]byte("# nbtedit configuration\n"), d...)
	if err := os.WriteFile(path, d, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return path, nil
}
