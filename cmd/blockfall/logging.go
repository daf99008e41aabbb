package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogger returns the logger selected by --log-level and --log-file.
// The terminal belongs to the game, so logs never go to stderr.
func setupLogger() (*log.Logger, io.Closer, error) {
	if flagLogLevel == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	path := flagLogFile
	if strings.HasPrefix(path, "~") {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, nil, fmt.Errorf("cannot expand home directory: %w", homeErr)
		}
		path = filepath.Join(home, path[1:])
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(path), 0o755); mkdirErr != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", mkdirErr)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger, f, nil
}
