package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/five82/templog/internal/logtail"
	"github.com/five82/templog/internal/reading"
)

// Snapshot represents the loaded file as seen by the UI.
type Snapshot struct {
	SessionID   string // changes on every successful load
	Path        string
	Readings    []reading.Reading
	Loaded      bool
	LoadedAt    time.Time
	LastAttempt time.Time
	LastError   error
}

// Store coordinates concurrent loads and UI reads of the current file.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Load replaces the stored readings with a freshly parsed file.
func (s *Store) Load(path string, readings []reading.Reading) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot = Snapshot{
		SessionID:   uuid.New().String(),
		Path:        path,
		Readings:    cloneReadings(readings),
		Loaded:      true,
		LoadedAt:    now,
		LastAttempt: now,
	}
	return s.cloneLocked()
}

// Fail records a read failure for path. A failed refresh of the loaded file
// keeps its readings; a failure on any other path leaves an empty sequence.
func (s *Store) Fail(path string, err error) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if path != s.snapshot.Path {
		s.snapshot = Snapshot{Path: path}
	}
	s.snapshot.LastError = err
	s.snapshot.LastAttempt = time.Now()
	return s.cloneLocked()
}

// LoadFile reads and parses the file at path and records the outcome.
func (s *Store) LoadFile(path string, tailLines int, loc *time.Location) (Snapshot, error) {
	text, err := logtail.ReadText(path, tailLines)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("read temperature log")
		return s.Fail(path, err), err
	}
	readings := reading.ParseIn(text, loc)
	snap := s.Load(path, readings)
	log.Info().
		Str("session", snap.SessionID).
		Str("path", path).
		Int("readings", len(readings)).
		Msg("loaded temperature log")
	return snap, nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneLocked()
}

func (s *Store) cloneLocked() Snapshot {
	snap := s.snapshot
	snap.Readings = cloneReadings(s.snapshot.Readings)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneReadings(items []reading.Reading) []reading.Reading {
	if len(items) == 0 {
		return nil
	}
	dup := make([]reading.Reading, len(items))
	copy(dup, items)
	return dup
}
