// Package app is the composition root for templog.
//
// It loads configuration and preferences, sets up diagnostic logging and
// hands off to either the interactive viewer or the one-shot plot renderer.
//
// # Viewer
//
//	Run()
//	  ├─> config.Load()        TOML + .env + TEMPLOG_* overrides
//	  ├─> setupFileLogging()   zerolog to <log_dir>/templog.log
//	  ├─> prefs.Load()         theme and last opened file
//	  ├─> resolveFile()        argument → log_file → last file
//	  └─> ui.Run()             Bubble Tea program (blocks)
//
// The viewer never writes diagnostics to the terminal; the TUI owns it.
//
// # Plot
//
//	Plot()
//	  ├─> config.Load()
//	  ├─> setupConsoleLogging() zerolog console writer on stderr
//	  ├─> logtail.ReadText()
//	  ├─> reading.ParseIn()
//	  └─> plot.RenderImage()    when Output is .png or .svg
//	      plot.RenderText()     otherwise, to Stdout
//
// # Errors
//
// Configuration and file read failures are returned to the caller, which
// prints them and exits non-zero. Malformed log lines are never errors; the
// parser skips them.
package app
