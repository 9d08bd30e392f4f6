package ephemeris

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "times.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadTimestamps(t *testing.T) {
	now := time.Date(2025, 5, 5, 12, 0, 0, 0, time.UTC)
	path := writeFile(t, `# solstices
2024-06-20T20:51:00Z

  2024-12-21T09:20:00Z
jd:2451545.0
now
`)

	times, err := ReadTimestamps(path, now)
	require.NoError(t, err)
	require.Len(t, times, 4)
	assert.True(t, time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC).Equal(times[0]))
	assert.True(t, time.Date(2024, 12, 21, 9, 20, 0, 0, time.UTC).Equal(times[1]))
	assert.True(t, time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC).Equal(times[2]))
	assert.True(t, now.Equal(times[3]))
}

func TestReadTimestampsEmptyFile(t *testing.T) {
	times, err := ReadTimestamps(writeFile(t, ""), time.Now())
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestReadTimestampsBadLine(t *testing.T) {
	path := writeFile(t, "2024-06-20T20:51:00Z\nyesterday\n")

	_, err := ReadTimestamps(path, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadTimestamp))
	assert.Contains(t, err.Error(), ":2:")
}

func TestReadTimestampsMissingFile(t *testing.T) {
	_, err := ReadTimestamps(filepath.Join(t.TempDir(), "absent.txt"), time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseTimestampsStopsAtLimit(t *testing.T) {
	now := time.Date(2025, 5, 5, 12, 0, 0, 0, time.UTC)

	// The fourth line is never parsed once the limit is reached.
	input := "jd:2451545.0\n# skipped\njd:2451546.0\njd:2451547.0\nnot a timestamp\n"
	_, err := parseTimestamps(strings.NewReader(input), "times.txt", now, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManySamples))
	assert.False(t, errors.Is(err, ErrBadTimestamp))
	assert.Contains(t, err.Error(), "more than 2")

	times, err := parseTimestamps(strings.NewReader("jd:2451545.0\njd:2451546.0\n\n# end\n"), "times.txt", now, 2)
	require.NoError(t, err)
	assert.Len(t, times, 2)
}
