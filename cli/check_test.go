package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckJSON(t *testing.T) {
	for _, instant := range []string{"1950-06-01T00:00:00Z", "2010-01-01T00:00:00Z", "2049-09-23T12:00:00Z"} {
		t.Run(instant, func(t *testing.T) {
			out, err := execute(t, "check", "--time", instant, "--format", "json")
			require.NoError(t, err)

			var res CheckResult
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.True(t, res.OK)
			assert.Less(t, res.ECI, 0.02)
			assert.Less(t, res.ECEF, 0.03)
			assert.Equal(t, 0.05, res.Tolerance)
		})
	}
}

func TestCheckToleranceExceeded(t *testing.T) {
	out, err := execute(t, "check", "--time", "2010-01-01T00:00:00Z", "--tolerance", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToleranceExceeded))
	// The report is still written before failing.
	assert.Contains(t, out, "FAIL")
}

func TestCheckToleranceExceededIsLogged(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "sunvec.log")
	_, err := execute(t, "--log-level", "warn", "--log-file", logPath,
		"check", "--time", "2010-01-01T00:00:00Z", "--tolerance", "0")
	require.ErrorIs(t, err, ErrToleranceExceeded)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"WARN"`)
	assert.Contains(t, string(content), "model separation exceeds tolerance")
	assert.NotContains(t, string(content), "models compared")
}
