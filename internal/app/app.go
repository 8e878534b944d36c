package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/five82/templog/internal/config"
	"github.com/five82/templog/internal/prefs"
	"github.com/five82/templog/internal/state"
	"github.com/five82/templog/internal/ui"
)

// Options configure the interactive viewer.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/templog/prefs.toml
	File       string // empty falls back to config log_file, then the last file opened
}

// Run boots the templog TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closer, err := setupFileLogging(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	file, err := resolveFile(opts.File, cfg, userPrefs)
	if err != nil {
		return err
	}
	log.Info().Str("file", file).Str("tz", cfg.Location.String()).Msg("starting viewer")

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     &state.Store{},
		Config:    cfg,
		File:      file,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	})
}

// resolveFile picks the file to open on start: the argument, then the
// configured log_file, then the last file opened. Empty means start with the
// empty chart.
func resolveFile(arg string, cfg config.Config, p prefs.Prefs) (string, error) {
	for _, candidate := range []string{arg, cfg.LogFile, p.LastFile} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		expanded, err := config.ExpandPath(candidate)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", candidate, err)
		}
		return expanded, nil
	}
	return "", nil
}
