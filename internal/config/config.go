package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Config captures the settings templog reads at startup.
type Config struct {
	LogFile   string
	TailLines int
	Location  *time.Location
	LogLevel  zerolog.Level
	LogDir    string
}

const (
	defaultConfigPath = "~/.config/templog/config.toml"
	defaultLogDir     = "~/.local/state/templog"
	defaultTimezone   = "Local"
	defaultLogLevel   = zerolog.InfoLevel
)

// Environment variables that override the config file.
const (
	EnvFile      = "TEMPLOG_FILE"
	EnvTailLines = "TEMPLOG_TAIL_LINES"
	EnvTimezone  = "TEMPLOG_TIMEZONE"
	EnvLogLevel  = "TEMPLOG_LOG_LEVEL"
	EnvLogDir    = "TEMPLOG_LOG_DIR"
)

type rawConfig struct {
	LogFile   string `toml:"log_file"`
	TailLines int    `toml:"tail_lines"`
	Timezone  string `toml:"timezone"`
	LogLevel  string `toml:"log_level"`
	LogDir    string `toml:"log_dir"`
}

// Load locates and parses the config file, falling back to defaults when it
// is missing, then applies environment overrides (optionally from .env).
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw rawConfig
	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	_ = godotenv.Load(".env")
	if err := applyEnv(&raw); err != nil {
		return Config{}, err
	}

	return build(raw)
}

// DiagnosticLogPath returns the file the TUI writes its diagnostic log to.
func (c Config) DiagnosticLogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/templog.log")
	}
	return filepath.Join(c.LogDir, "templog.log")
}

func applyEnv(raw *rawConfig) error {
	if v := strings.TrimSpace(os.Getenv(EnvFile)); v != "" {
		raw.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTailLines)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTailLines, err)
		}
		raw.TailLines = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimezone)); v != "" {
		raw.Timezone = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		raw.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogDir)); v != "" {
		raw.LogDir = v
	}
	return nil
}

func build(raw rawConfig) (Config, error) {
	cfg := Config{LogLevel: defaultLogLevel}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		expanded, err := expandPath(logFile)
		if err != nil {
			return Config{}, fmt.Errorf("log_file: %w", err)
		}
		cfg.LogFile = expanded
	}

	if raw.TailLines < 0 {
		return Config{}, fmt.Errorf("tail_lines must be >= 0, got %d", raw.TailLines)
	}
	cfg.TailLines = raw.TailLines

	tz := strings.TrimSpace(raw.Timezone)
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("timezone: %w", err)
	}
	cfg.Location = loc

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return Config{}, fmt.Errorf("log_level: %w", err)
		}
		cfg.LogLevel = parsed
	}

	cfg.LogDir = strings.TrimSpace(raw.LogDir)
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
