package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/five82/templog/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if len(args) > 0 {
		switch args[0] {
		case "plot":
			return runPlot(ctx, args[1:], stdout, stderr)
		case "version":
			fmt.Fprintf(stdout, "templog %s\n", buildVersion())
			return 0
		}
	}
	return runViewer(ctx, args, stderr)
}

func runViewer(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("templog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "override config path (optional)")
	prefsPath := fs.String("prefs", "", "override preferences path (optional)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: templog [-config path] [-prefs path] [file]")
		fmt.Fprintln(stderr, "       templog plot [-config path] [-o out.png|out.svg] [-width N] [-height N] file")
		fmt.Fprintln(stderr, "       templog version")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	opts := app.Options{ConfigPath: *configPath, PrefsPath: *prefsPath, File: fs.Arg(0)}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(stderr, "templog: %v\n", err)
		return 1
	}
	return 0
}

func runPlot(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("templog plot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "override config path (optional)")
	output := fs.String("o", "", "write a .png or .svg image instead of a text chart")
	width := fs.Int("width", 0, "chart width (pixels for images, columns for text)")
	height := fs.Int("height", 0, "chart height (pixels for images, rows for text)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "templog plot: expected a single log file")
		return 2
	}

	err := app.Plot(ctx, app.PlotOptions{
		ConfigPath: *configPath,
		File:       fs.Arg(0),
		Output:     *output,
		Width:      *width,
		Height:     *height,
		Stdout:     stdout,
		Stderr:     stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "templog: %v\n", err)
		return 1
	}
	return 0
}

func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}
