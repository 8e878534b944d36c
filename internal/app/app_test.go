package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/templog/internal/config"
	"github.com/five82/templog/internal/logtail"
	"github.com/five82/templog/internal/plot"
	"github.com/five82/templog/internal/prefs"
)

const sampleLog = `2024-01-15_14:30:00 temp=20.0'C
2024-01-15_14:31:00 temp=21.5'C
not a reading
2024-01-15_14:32:00 temp=23.0'C
`

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{config.EnvFile, config.EnvTailLines, config.EnvTimezone, config.EnvLogLevel, config.EnvLogDir} {
		t.Setenv(key, "")
	}
	return home
}

func writeLog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "temperature.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestResolveFile_Order(t *testing.T) {
	cfg := config.Config{LogFile: "/var/log/config.log"}
	p := prefs.Prefs{LastFile: "/var/log/last.log"}

	tests := []struct {
		name string
		arg  string
		cfg  config.Config
		p    prefs.Prefs
		want string
	}{
		{"argument wins", "/tmp/arg.log", cfg, p, "/tmp/arg.log"},
		{"config next", "", cfg, p, "/var/log/config.log"},
		{"last file", "  ", config.Config{}, p, "/var/log/last.log"},
		{"nothing", "", config.Config{}, prefs.Prefs{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFile(tt.arg, tt.cfg, tt.p)
			if err != nil {
				t.Fatalf("resolveFile returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("resolveFile = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveFile_ExpandsTilde(t *testing.T) {
	home := isolate(t)

	got, err := resolveFile("~/temps.log", config.Config{}, prefs.Prefs{})
	if err != nil {
		t.Fatalf("resolveFile returned error: %v", err)
	}
	if want := filepath.Join(home, "temps.log"); got != want {
		t.Fatalf("resolveFile = %q, want %q", got, want)
	}
}

func TestPlot_TextToStdout(t *testing.T) {
	home := isolate(t)
	path := writeLog(t, home, sampleLog)

	var stdout, stderr bytes.Buffer
	err := Plot(context.Background(), PlotOptions{
		ConfigPath: filepath.Join(home, "none.toml"),
		File:       path,
		Width:      80,
		Height:     12,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})
	if err != nil {
		t.Fatalf("Plot returned error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"23.0°C", "20.0°C", "2024-01-15 14:30:00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("text chart missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(stderr.String(), "parsed temperature log") {
		t.Fatalf("stderr = %q, want parse log line", stderr.String())
	}
}

func TestPlot_WritesPNG(t *testing.T) {
	home := isolate(t)
	path := writeLog(t, home, sampleLog)
	out := filepath.Join(home, "chart.png")

	err := Plot(context.Background(), PlotOptions{
		ConfigPath: filepath.Join(home, "none.toml"),
		File:       path,
		Output:     out,
		Width:      400,
		Height:     300,
		Stderr:     &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Plot returned error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatalf("output is not a PNG")
	}
}

func TestPlot_Errors(t *testing.T) {
	home := isolate(t)
	good := writeLog(t, home, sampleLog)
	configPath := filepath.Join(home, "none.toml")

	single := filepath.Join(home, "single.log")
	if err := os.WriteFile(single, []byte("2024-01-15_14:30:00 temp=20.0'C\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Run("missing file", func(t *testing.T) {
		err := Plot(context.Background(), PlotOptions{ConfigPath: configPath, File: filepath.Join(home, "nope.log"), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
		var readErr *logtail.ReadError
		if !errors.As(err, &readErr) {
			t.Fatalf("Plot error = %v, want *logtail.ReadError", err)
		}
	})

	t.Run("no file", func(t *testing.T) {
		err := Plot(context.Background(), PlotOptions{ConfigPath: configPath, Stderr: &bytes.Buffer{}})
		if err == nil {
			t.Fatalf("Plot returned nil error without a file")
		}
	})

	t.Run("bad extension", func(t *testing.T) {
		err := Plot(context.Background(), PlotOptions{ConfigPath: configPath, File: good, Output: filepath.Join(home, "chart.gif"), Stderr: &bytes.Buffer{}})
		if err == nil || !strings.Contains(err.Error(), "unsupported image extension") {
			t.Fatalf("Plot error = %v, want unsupported extension", err)
		}
	})

	t.Run("too few readings", func(t *testing.T) {
		out := filepath.Join(home, "single.png")
		err := Plot(context.Background(), PlotOptions{ConfigPath: configPath, File: single, Output: out, Stderr: &bytes.Buffer{}})
		if !errors.Is(err, plot.ErrTooFewReadings) {
			t.Fatalf("Plot error = %v, want ErrTooFewReadings", err)
		}
		if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
			t.Fatalf("output file should not be created, stat err = %v", statErr)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Plot(ctx, PlotOptions{ConfigPath: configPath, File: good, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Plot error = %v, want context.Canceled", err)
		}
	})
}

func TestSetupFileLogging_CreatesLog(t *testing.T) {
	home := isolate(t)
	cfg := config.Config{LogDir: filepath.Join(home, "state", "templog")}

	closer, err := setupFileLogging(cfg)
	if err != nil {
		t.Fatalf("setupFileLogging returned error: %v", err)
	}
	defer func() { _ = closer.Close() }()

	if _, err := os.Stat(cfg.DiagnosticLogPath()); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}
