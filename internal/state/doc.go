// Package state holds the temperature log currently loaded by templog.
//
// # Overview
//
// File reads run inside Bubble Tea commands, off the UI goroutine. The Store
// is where those reads meet the UI: a command calls LoadFile, and the UI
// receives the returned Snapshot in a message.
//
//	Command goroutine:             UI (Update):
//	┌──────────────────┐          ┌──────────────────┐
//	│ logtail.ReadText │          │                  │
//	│ reading.ParseIn  │          │                  │
//	│ store.Load()     │─────────→│ loadedMsg        │
//	│  or store.Fail() │ (mutex)  │ zoom.New(...)    │
//	└──────────────────┘          └──────────────────┘
//
// # Load Semantics
//
//   - Load replaces the readings wholesale and assigns a new SessionID. It
//     never merges with the previous file.
//   - Fail on the path already loaded (a refresh) keeps the readings and only
//     records LastError.
//   - Fail on a different path (opening a new file) clears the readings, so a
//     failed open shows an empty chart rather than the previous file.
//
// Snapshots are copies. The Readings slice and LastError are cloned so the UI
// can hold a snapshot while another load runs.
package state
