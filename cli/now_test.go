package cli

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/echoflaresat/sunvec/earth"
	"github.com/echoflaresat/sunvec/render"
	"github.com/echoflaresat/sunvec/timescale"
)

func TestNowJSON(t *testing.T) {
	out, err := execute(t, "now", "--time", "2000-01-01T12:00:00Z", "--format", "json")
	require.NoError(t, err)

	var res NowResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert.Equal(t, "almanac", res.Model)
	assert.Equal(t, timescale.J2000, float64(res.JD))
	assert.True(t, time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC).Equal(res.Time))

	want := earth.SunDirectionECI(timescale.J2000)
	assert.InDelta(t, want.X, res.ECI.X, 1e-12)
	assert.InDelta(t, want.Y, res.ECI.Y, 1e-12)
	assert.InDelta(t, want.Z, res.ECI.Z, 1e-12)

	assert.Equal(t, render.FromECEF(res.ECEF), res.Render)
	assert.InDelta(t, 1.0, res.Render.Vec3().Norm(), 1e-9)
	assert.InDelta(t, 100.0, res.Light.Norm(), 1e-9)
	assert.InDelta(t, earth.GMST(timescale.J2000), res.GMST, 1e-9)

	// Sun near the December solstice declination.
	assert.InDelta(t, -23.0, res.Subsolar.Lat, 0.2)
}

func TestNowOffset(t *testing.T) {
	out, err := execute(t, "now", "--time", "jd:2451545.0", "--offset", "6h", "--format", "json")
	require.NoError(t, err)

	var res NowResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, timescale.J2000+0.25, float64(res.JD), 1e-9)
}

func TestNowYAML(t *testing.T) {
	out, err := execute(t, "now", "-t", "2024-06-21T00:00:00Z", "--format", "yaml", "--model", "meeus")
	require.NoError(t, err)

	var res NowResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "meeus", res.Model)
	assert.Greater(t, res.ECI.Z, 0.39)
	assert.InDelta(t, 23.44, res.Subsolar.Lat, 0.05)
}

func TestNowText(t *testing.T) {
	out, err := execute(t, "now", "--time", "jd:2451545.0")
	require.NoError(t, err)

	assert.Contains(t, out, "time     2000-01-01T12:00:00Z\n")
	assert.Contains(t, out, "jd       2451545.000000\n")
	assert.Contains(t, out, "model    almanac\n")
	for _, key := range []string{"gmst", "eci", "ecef", "render", "light", "subsolar"} {
		assert.Contains(t, out, "\n"+key+" ")
	}
}

func TestNowDefaultsToWallClock(t *testing.T) {
	before := time.Now().Add(-time.Second)
	out, err := execute(t, "now", "--format", "json")
	require.NoError(t, err)

	var res NowResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.WithinDuration(t, before, res.Time, time.Minute)
}

func TestNowInvalidTime(t *testing.T) {
	_, err := execute(t, "now", "--time", "yesterday")
	require.Error(t, err)
	assert.True(t, errors.Is(err, timescale.ErrInvalidInstant))
}

func TestNowObserver(t *testing.T) {
	out, err := execute(t, "now", "--time", "2024-06-21T12:00:00Z", "--lat", "23.44", "--lon", "0", "--format", "json")
	require.NoError(t, err)

	var res NowResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.Observer)
	assert.Greater(t, res.Observer.Illumination, 0.99)
	assert.False(t, res.Observer.InShadow)
	assert.InDelta(t, earth.Radius, res.Observer.Position.Norm(), 1e-6)

	out, err = execute(t, "now", "--time", "2024-06-21T12:00:00Z", "--lat", "-23.44", "--lon", "180", "--alt", "500", "--format", "yaml")
	require.NoError(t, err)

	res = NowResult{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.Observer)
	assert.Less(t, res.Observer.Illumination, -0.99)
	assert.True(t, res.Observer.InShadow)
	assert.Equal(t, -23.44, res.Observer.Lat)
	assert.Equal(t, 500.0, res.Observer.AltKm)
}

func TestNowWithoutObserver(t *testing.T) {
	out, err := execute(t, "now", "--time", "jd:2451545.0", "--format", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "observer")
}
