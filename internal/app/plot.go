package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/five82/templog/internal/config"
	"github.com/five82/templog/internal/logtail"
	"github.com/five82/templog/internal/plot"
	"github.com/five82/templog/internal/reading"
)

const (
	defaultTextWidth  = 100
	defaultTextHeight = 20
)

// PlotOptions configure a one-shot render of a log file.
type PlotOptions struct {
	ConfigPath string
	File       string
	Output     string // .png or .svg; empty writes a text chart to Stdout
	Width      int
	Height     int
	Stdout     io.Writer
	Stderr     io.Writer
}

// Plot reads File and renders it once, either as an image or as text.
func Plot(ctx context.Context, opts PlotOptions) error {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	setupConsoleLogging(stderr, cfg)

	file := opts.File
	if file == "" {
		file = cfg.LogFile
	}
	if file == "" {
		return fmt.Errorf("no log file given")
	}
	if file, err = config.ExpandPath(file); err != nil {
		return err
	}

	text, err := logtail.ReadText(file, cfg.TailLines)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	readings := reading.ParseIn(text, cfg.Location)
	log.Info().Str("file", file).Int("readings", len(readings)).Msg("parsed temperature log")

	if opts.Output == "" {
		width, height := opts.Width, opts.Height
		if width <= 0 {
			width = defaultTextWidth
		}
		if height <= 0 {
			height = defaultTextHeight
		}
		return plot.RenderText(stdout, readings, width, height)
	}

	return writeImage(opts.Output, readings, opts.Width, opts.Height)
}

func writeImage(path string, readings []reading.Reading, width, height int) (err error) {
	format, err := plot.FormatFromPath(path)
	if err != nil {
		return err
	}
	if len(readings) < 2 {
		return plot.ErrTooFewReadings
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if err := plot.RenderImage(out, readings, plot.Options{Format: format, Width: width, Height: height}); err != nil {
		return err
	}
	log.Info().Str("output", path).Str("format", string(format)).Msg("wrote plot")
	return nil
}
