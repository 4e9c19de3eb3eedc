// cmd/quill/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	stlog "log" // Standard log for FATAL errors before logger is ready
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/quill/internal/app"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/journal"
	"github.com/bethropolis/quill/internal/logger"
)

var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(config.AppName, os.Stderr)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		stlog.Fatalf("%v", err)
	}
	if flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	res, err := config.Load("", flags)
	if err != nil {
		stlog.Fatalf("Failed to load config: %v", err)
	}
	cfg := res.Config

	// --- Logger Initialization ---
	logOutput, closeLog, err := openLogOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	logger.Init(cfg.Logger, logOutput)
	logger.SetDebugFilter(flags.DebugLog)

	logger.Infof("Starting %s %s", config.AppName, version)
	if res.Path != "" {
		logger.Debugf("Config file: %s", res.Path)
	}
	for _, key := range res.UnknownKeys {
		logger.Warnf("Unknown config key %q in %s", key, res.Path)
	}

	day := time.Now()
	if flags.Day != "" {
		day, err = journal.ParseKey(flags.Day, time.Local)
		if err != nil {
			stlog.Fatalf("%v", err)
		}
	}

	// --- Create and Run App ---
	quillApp, err := app.NewApp(app.Options{Config: cfg, Day: day})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		closeLog()
		os.Exit(1)
	}

	if err := quillApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}

// openLogOutput resolves the configured log destination. "" is the default
// file in the user cache directory and "-" is stderr.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stderr, func() {}, nil
	}
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		path = filepath.Join(dir, config.ConfigDirName, config.DefaultLogFileName)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
