// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// Flags holds values parsed from command-line flags.
// Only flags that were actually set override the configuration.
type Flags struct {
	fs *flag.FlagSet

	configFilePath  string
	Version         bool
	Day             string
	logLevel        string
	logFilePath     string
	historyCapacity int
	tabWidth        int
	scrollOff       int
	systemClipboard bool
	themePath       string
	enableTags      string
	disableTags     string
	enablePkgs      string
	disablePkgs     string
	enableFiles     string
	disableFiles    string
	DebugLog        bool
}

// NewFlags defines the command-line flags on a fresh FlagSet.
// output receives usage and parse errors; nil discards them.
func NewFlags(name string, output io.Writer) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	if output == nil {
		output = io.Discard
	}
	f.fs.SetOutput(output)

	f.fs.StringVar(&f.configFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.fs.BoolVar(&f.Version, "version", false, "Show version information and exit")
	f.fs.StringVar(&f.Day, "day", "", "Journal day to open, as YYYY-MM-DD (default today)")
	f.fs.StringVar(&f.logLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.fs.StringVar(&f.logFilePath, "logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.fs.IntVar(&f.historyCapacity, "history", 0, "Undo/redo steps kept per day - Overrides config file")
	f.fs.IntVar(&f.tabWidth, "tabwidth", 0, "Display width of a tab - Overrides config file")
	f.fs.IntVar(&f.scrollOff, "scrolloff", -1, "Lines of context above/below cursor - Overrides config file")
	f.fs.BoolVar(&f.systemClipboard, "system-clipboard", SystemClipboard, "Use the system clipboard - Overrides config file")
	f.fs.StringVar(&f.themePath, "theme", "", "Path to a TOML theme file - Overrides config file")
	f.fs.StringVar(&f.enableTags, "log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.fs.StringVar(&f.disableTags, "log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.fs.StringVar(&f.enablePkgs, "log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.fs.StringVar(&f.disablePkgs, "log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.fs.StringVar(&f.enableFiles, "log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.fs.StringVar(&f.disableFiles, "log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.fs.BoolVar(&f.DebugLog, "debug-log", false, "Trace the decisions of the log filter")
	return f
}

// Parse parses args (without the program name) and validates -day.
func (f *Flags) Parse(args []string) error {
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	if f.Day != "" {
		if _, err := time.Parse(DayLayout, f.Day); err != nil {
			return fmt.Errorf("invalid -day %q: %w", f.Day, err)
		}
	}
	return nil
}

// Args returns the non-flag arguments.
func (f *Flags) Args() []string {
	return f.fs.Args()
}

// ConfigPath returns the -config value.
func (f *Flags) ConfigPath() string {
	return f.configFilePath
}

// ApplyOverrides updates cfg with the flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	// Visit only processes flags that were actually set
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.logLevel != "" {
				cfg.Logger.LogLevel = f.logLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = f.logFilePath
		case "history":
			if f.historyCapacity > 0 {
				cfg.Editor.HistoryCapacity = f.historyCapacity
			}
		case "tabwidth":
			if f.tabWidth > 0 {
				cfg.Editor.TabWidth = f.tabWidth
			}
		case "scrolloff":
			if f.scrollOff >= 0 {
				cfg.Editor.ScrollOff = f.scrollOff
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.systemClipboard
		case "theme":
			cfg.Editor.Theme = f.themePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(f.enableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(f.disableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(f.enablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(f.disablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(f.enableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(f.disableFiles)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
