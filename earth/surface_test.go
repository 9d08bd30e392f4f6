package earth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceNormal(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     DirectionECEF
	}{
		{"prime meridian", 0, 0, DirectionECEF{X: 1}},
		{"90 east", 0, 90, DirectionECEF{Y: 1}},
		{"north pole", 90, 0, DirectionECEF{Z: 1}},
		{"antimeridian", 0, 180, DirectionECEF{X: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SurfaceNormal(tt.lat, tt.lon)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-12)
		})
	}
}

func TestSubsolarPointJuneSolstice(t *testing.T) {
	jd := jdOf(2024, 6, 21, 12, 0)
	lat, lon := SubsolarPoint(SunDirectionECEF(jd))

	assert.InDelta(t, 23.44, lat, 0.05)
	// Local noon at Greenwich, give or take the equation of time.
	assert.InDelta(t, 0.0, lon, 1.0)
}

func TestSubsolarPointRoundTrip(t *testing.T) {
	sun := SunDirectionECEF(jdOf(2019, 10, 3, 4, 30))
	lat, lon := SubsolarPoint(sun)

	assert.GreaterOrEqual(t, lon, -180.0)
	assert.LessOrEqual(t, lon, 180.0)
	assert.InDelta(t, 1.0, Illumination(SurfaceNormal(lat, lon), sun), 1e-12)
	assert.InDelta(t, -1.0, Illumination(SurfaceNormal(-lat, lon+180), sun), 1e-12)
}

func TestIsDaylight(t *testing.T) {
	noonUTC := jdOf(2024, 3, 20, 12, 0)

	assert.True(t, IsDaylight(0, 0, noonUTC), "Gulf of Guinea at noon UTC")
	assert.False(t, IsDaylight(0, 180, noonUTC), "Pacific antimeridian at noon UTC")
	assert.True(t, IsDaylight(89, 90, jdOf(2024, 6, 21, 0, 0)), "polar day")
	assert.False(t, IsDaylight(-89, 90, jdOf(2024, 6, 21, 0, 0)), "polar night")
}
