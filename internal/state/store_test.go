package state

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/five82/templog/internal/logtail"
	"github.com/five82/templog/internal/reading"
)

func sampleReadings() []reading.Reading {
	ts := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	return []reading.Reading{
		{Timestamp: ts, Celsius: 20, Index: 0},
		{Timestamp: ts.Add(time.Minute), Celsius: 21.5, Index: 1},
	}
}

func TestStore_LoadAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	loaded := s.Load("/tmp/a.log", sampleReadings())

	snap := s.Snapshot()
	if !snap.Loaded || snap.Path != "/tmp/a.log" {
		t.Fatalf("snapshot = %#v, want loaded /tmp/a.log", snap)
	}
	if len(snap.Readings) != 2 || snap.Readings[1].Celsius != 21.5 {
		t.Fatalf("snapshot readings = %#v, want 2 readings", snap.Readings)
	}
	if snap.SessionID == "" || snap.SessionID != loaded.SessionID {
		t.Fatalf("SessionID = %q, want %q", snap.SessionID, loaded.SessionID)
	}
	if snap.LoadedAt.Before(before) {
		t.Fatalf("LoadedAt = %v, want >= %v", snap.LoadedAt, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Readings[0].Celsius = 999
	snap2 := s.Snapshot()
	if snap2.Readings[0].Celsius != 20 {
		t.Fatalf("Snapshot should clone readings; got %v want 20", snap2.Readings[0].Celsius)
	}
}

func TestStore_ReloadReplacesReadingsAndSession(t *testing.T) {
	var s Store

	first := s.Load("/tmp/a.log", sampleReadings())
	second := s.Load("/tmp/a.log", sampleReadings()[:1])

	if len(second.Readings) != 1 {
		t.Fatalf("reload kept %d readings, want 1", len(second.Readings))
	}
	if first.SessionID == second.SessionID {
		t.Fatalf("reload reused session id %q", first.SessionID)
	}
}

func TestStore_FailedRefreshKeepsPreviousData(t *testing.T) {
	var s Store

	s.Load("/tmp/a.log", sampleReadings())
	prev := s.Snapshot()

	origErr := errors.New("boom")
	s.Fail("/tmp/a.log", origErr)

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.Readings, prev.Readings) {
		t.Fatalf("readings changed on error: got %#v want %#v", snap.Readings, prev.Readings)
	}
	if snap.SessionID != prev.SessionID {
		t.Fatalf("SessionID changed on error: got %q want %q", snap.SessionID, prev.SessionID)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_FailedOpenOfOtherFileClears(t *testing.T) {
	var s Store

	s.Load("/tmp/a.log", sampleReadings())
	snap := s.Fail("/tmp/b.log", errors.New("permission denied"))

	if snap.Loaded || len(snap.Readings) != 0 {
		t.Fatalf("snapshot = %#v, want empty after failed open", snap)
	}
	if snap.Path != "/tmp/b.log" {
		t.Fatalf("Path = %q, want /tmp/b.log", snap.Path)
	}
}

func TestStore_LoadFile(t *testing.T) {
	var s Store
	path := filepath.Join(t.TempDir(), "temperature.log")
	content := "2024-01-15_14:30:00 temp=20.0'C\nbad line\n2024-01-15_14:31:00 temp=21.5'C\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	snap, err := s.LoadFile(path, 0, time.UTC)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if len(snap.Readings) != 2 || snap.Readings[1].Index != 1 {
		t.Fatalf("readings = %#v, want 2 indexed readings", snap.Readings)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	snap, err = s.LoadFile(path, 0, time.UTC)
	var readErr *logtail.ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("LoadFile error = %v, want *logtail.ReadError", err)
	}
	if len(snap.Readings) != 2 {
		t.Fatalf("failed refresh dropped readings: %#v", snap.Readings)
	}
}

func TestStore_LoadFileSkipsOversizedLine(t *testing.T) {
	var s Store
	path := filepath.Join(t.TempDir(), "temperature.log")
	content := "2024-01-15_14:30:00 temp=20.0'C\n" + strings.Repeat("x", 2<<20) + "\n2024-01-15_14:31:00 temp=21.5'C\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	snap, err := s.LoadFile(path, 0, time.UTC)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if !snap.Loaded || len(snap.Readings) != 2 {
		t.Fatalf("snapshot = loaded %v with %d readings, want 2", snap.Loaded, len(snap.Readings))
	}
	if snap.Readings[0].Celsius != 20.0 || snap.Readings[1].Celsius != 21.5 {
		t.Fatalf("readings out of order: %#v", snap.Readings)
	}
}

func TestStore_LoadFileEmptyIsNotError(t *testing.T) {
	var s Store
	path := filepath.Join(t.TempDir(), "empty.log")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	snap, err := s.LoadFile(path, 0, time.UTC)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if !snap.Loaded || len(snap.Readings) != 0 {
		t.Fatalf("snapshot = %#v, want loaded and empty", snap)
	}
}
