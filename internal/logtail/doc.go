// Package logtail reads temperature log files from disk.
//
// # Overview
//
// Read returns the lines of a file, optionally only the last N of them. The
// tail mode uses a ring buffer so memory stays O(maxLines) regardless of file
// size:
//
//  1. Allocate ring buffer of size maxLines
//  2. For each line in file, store it at the current index and advance
//     (wrapping at maxLines)
//  3. Return the buffer starting at the oldest retained line
//
// ReadText joins the lines back into text for the parser.
//
// # Errors
//
// Every failure, including a missing file, is a *ReadError carrying the path.
// The underlying error is preserved, so callers can still test it:
//
//	text, err := logtail.ReadText(path, 0)
//	if errors.Is(err, fs.ErrNotExist) {
//		// file was removed
//	}
//
// Lines longer than 1 MiB fail the read rather than being truncated.
package logtail
