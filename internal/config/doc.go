// Package config loads templog's configuration.
//
// # Resolution Order
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/templog/config.toml
//  3. If the file doesn't exist, start from defaults
//  4. Load .env from the working directory if present
//  5. Apply TEMPLOG_* environment variables over the file values
//
// # TOML Format
//
//	log_file   = "~/temperature.log"
//	tail_lines = 0
//	timezone   = "Local"
//	log_level  = "info"
//	log_dir    = "~/.local/state/templog"
//
// Every field is optional. log_file names the log opened when no file is given
// on the command line. tail_lines limits reads to the last N lines (0 reads the
// whole file). timezone is an IANA name used to interpret log timestamps.
// log_level and log_dir control the diagnostic log.
//
// # Environment
//
//   - TEMPLOG_FILE
//   - TEMPLOG_TAIL_LINES
//   - TEMPLOG_TIMEZONE
//   - TEMPLOG_LOG_LEVEL
//   - TEMPLOG_LOG_DIR
//
// # Error Handling
//
// A missing config file is NOT an error. Load fails on unreadable files, TOML
// syntax errors, negative tail_lines, unknown time zones and unknown log levels,
// whether they come from the file or the environment.
package config
