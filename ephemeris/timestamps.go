package ephemeris

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/exp/mmap"

	"github.com/echoflaresat/sunvec/timescale"
)

// ErrBadTimestamp is returned by ReadTimestamps for an unparseable line.
var ErrBadTimestamp = errors.New("bad timestamp")

// ReadTimestamps reads one instant per line (RFC3339, "jd:<float>" or "now").
// Blank lines and lines starting with '#' are skipped. Reading stops with
// ErrTooManySamples as soon as the file yields more than MaxSamples instants.
func ReadTimestamps(path string, now time.Time) ([]time.Time, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return parseTimestamps(io.NewSectionReader(reader, 0, int64(reader.Len())), path, now, MaxSamples)
}

func parseTimestamps(r io.Reader, name string, now time.Time, limit int) ([]time.Time, error) {
	var times []time.Time
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(times) == limit {
			return nil, fmt.Errorf("%w: %s has more than %d", ErrTooManySamples, name, limit)
		}
		t, err := timescale.ParseInstant(line, now, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrBadTimestamp, name, lineNo, err)
		}
		times = append(times, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return times, nil
}
