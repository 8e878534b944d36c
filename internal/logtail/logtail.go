package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// maxLineBytes bounds a single line. Longer lines are dropped, not returned.
const maxLineBytes = 1024 * 1024

// ReadError reports that a log file could not supply text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadText returns the contents of the file at path joined by newlines. When
// maxLines is positive only the last maxLines lines are returned.
func ReadText(path string, maxLines int) (string, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Read returns the lines of the file at path. When maxLines is positive only
// the last maxLines lines are kept. Lines longer than maxLineBytes are skipped.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	if maxLines <= 0 {
		var lines []string
		err := eachLine(file, path, func(line string) {
			lines = append(lines, line)
		})
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	err = eachLine(file, path, func(line string) {
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	})
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// eachLine calls fn for every line in r with the line ending removed.
func eachLine(r io.Reader, path string, fn func(string)) error {
	reader := bufio.NewReaderSize(r, 64*1024)
	var buf []byte
	oversized := false
	lineNo := 0
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !oversized {
			buf = append(buf, chunk...)
			if len(buf) > maxLineBytes {
				oversized = true
				buf = buf[:0]
			}
		}
		if isPrefix {
			continue
		}

		lineNo++
		if oversized {
			log.Debug().Str("path", path).Int("line", lineNo).Msg("skipped oversized line")
			oversized = false
		} else {
			fn(string(buf))
		}
		buf = buf[:0]
	}
}
