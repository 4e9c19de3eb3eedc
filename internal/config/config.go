// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/quill/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	HistoryCapacity int    `toml:"history_capacity"`
	WordStops       string `toml:"word_stops"`
	SentenceStops   string `toml:"sentence_stops"`
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	Theme           string `toml:"theme"` // TOML theme file, "" for the built-in theme
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			HistoryCapacity: DefaultHistoryCapacity,
			WordStops:       DefaultWordStops,
			SentenceStops:   DefaultSentenceStops,
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
		},
	}
}

// DefaultPath returns ~/.config/quill/config.toml, or "" when the user
// config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, DefaultConfigFileName)
}

// decodeFile overlays the TOML file at path onto cfg. A missing file is not
// an error; found is false then. Undecoded keys are returned so the caller
// can report them once the logger is up.
func decodeFile(path string, cfg *Config) (unknown []string, found bool, err error) {
	metadata, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	for _, key := range metadata.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, true, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.HistoryCapacity <= 0 {
		c.Editor.HistoryCapacity = defaults.Editor.HistoryCapacity
	}
	if c.Editor.WordStops == "" {
		c.Editor.WordStops = defaults.Editor.WordStops
	}
	if c.Editor.SentenceStops == "" {
		c.Editor.SentenceStops = defaults.Editor.SentenceStops
	}
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // Allow 0
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Result is what Load produced, including the notes it could not log yet.
type Result struct {
	Config      *Config
	Path        string   // File that was read, "" if none
	UnknownKeys []string // Keys in the file the config doesn't know
}

// Load merges defaults, the config file and flag overrides, then validates.
// path overrides the file location; "" means the -config flag or the
// default location. flags may be nil.
// The logger is usually not initialised yet, so Load doesn't log.
func Load(path string, flags *Flags) (*Result, error) {
	cfg := NewDefaultConfig()
	if path == "" && flags != nil {
		path = flags.ConfigPath()
	}
	if path == "" {
		path = DefaultPath()
	}

	res := &Result{Config: cfg}
	if path != "" {
		unknown, found, err := decodeFile(path, cfg)
		if err != nil {
			return nil, err
		}
		if found {
			res.Path = path
			res.UnknownKeys = unknown
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return res, nil
}
