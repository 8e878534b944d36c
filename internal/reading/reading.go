// Package reading parses temperature logs into timestamped readings.
package reading

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// TimestampLayout is the layout of the first field of a log line.
const TimestampLayout = "2006-01-02_15:04:05"

// LabelLayout renders a reading's timestamp for axis labels and tooltips.
const LabelLayout = "2006-01-02 15:04:05"

const (
	tempPrefix = "temp="
	tempSuffix = "'C"
)

// Reasons a line is rejected.
var (
	ErrFieldCount  = errors.New("expected timestamp and temperature fields")
	ErrTimestamp   = errors.New("invalid timestamp")
	ErrTemperature = errors.New("invalid temperature")
)

// Reading is one parsed log entry.
type Reading struct {
	Timestamp time.Time
	Celsius   float64
	// Index is the position of the reading among all parsed readings of the
	// file. It never changes once assigned and anchors nested zooms.
	Index int
}

// Label returns the human-readable timestamp.
func (r Reading) Label() string {
	return r.Timestamp.Format(LabelLayout)
}

// Parse converts log text into readings using the local time zone.
func Parse(text string) []Reading {
	return ParseIn(text, time.Local)
}

// ParseIn converts log text into readings, interpreting timestamps in loc.
// Malformed lines are skipped. Index is assigned by position in the output.
func ParseIn(text string, loc *time.Location) []Reading {
	if loc == nil {
		loc = time.Local
	}
	readings := make([]Reading, 0, strings.Count(text, "\n")+1)
	skipped := 0
	for lineNum, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseLine(line, loc)
		if err != nil {
			skipped++
			log.Debug().Err(err).Int("line", lineNum+1).Str("text", line).Msg("skipping invalid line")
			continue
		}
		r.Index = len(readings)
		readings = append(readings, r)
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("parsed", len(readings)).Msg("parsed temperature log")
	}
	return readings
}

// ParseLine parses a single non-blank line. The returned reading has Index 0;
// callers assign it.
func ParseLine(line string, loc *time.Location) (Reading, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Reading{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}
	if loc == nil {
		loc = time.Local
	}

	ts, err := time.ParseInLocation(TimestampLayout, fields[0], loc)
	if err != nil {
		return Reading{}, fmt.Errorf("%w %q", ErrTimestamp, fields[0])
	}

	celsius, err := parseTemperature(fields[1])
	if err != nil {
		return Reading{}, err
	}

	return Reading{Timestamp: ts, Celsius: celsius}, nil
}

// parseTemperature extracts the value from a temp=<float>'C token.
func parseTemperature(token string) (float64, error) {
	_, value, ok := strings.Cut(token, "=")
	if !ok || !strings.HasPrefix(token, tempPrefix) {
		return 0, fmt.Errorf("%w %q", ErrTemperature, token)
	}
	value, ok = strings.CutSuffix(value, tempSuffix)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrTemperature, token)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w %q", ErrTemperature, token)
	}
	return v, nil
}

// Values returns the temperatures of readings in order.
func Values(readings []Reading) []float64 {
	out := make([]float64, len(readings))
	for i, r := range readings {
		out[i] = r.Celsius
	}
	return out
}

// Bounds returns the minimum and maximum temperature. ok is false for an
// empty slice.
func Bounds(readings []Reading) (lo, hi float64, ok bool) {
	if len(readings) == 0 {
		return 0, 0, false
	}
	lo, hi = readings[0].Celsius, readings[0].Celsius
	for _, r := range readings[1:] {
		lo = math.Min(lo, r.Celsius)
		hi = math.Max(hi, r.Celsius)
	}
	return lo, hi, true
}
