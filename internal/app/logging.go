package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/five82/templog/internal/config"
)

// setupFileLogging points the global logger at the diagnostic log file. The
// TUI owns stdout, so nothing may be written to the terminal while it runs.
func setupFileLogging(cfg config.Config) (io.Closer, error) {
	path := cfg.DiagnosticLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	setLogger(file, cfg.LogLevel)
	return file, nil
}

// setupConsoleLogging logs human-readable lines to w.
func setupConsoleLogging(w io.Writer, cfg config.Config) {
	setLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}, cfg.LogLevel)
}

func setLogger(w io.Writer, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
