package vectors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"axis", Vec3{0, 0, 5}, Vec3{0, 0, 1}},
		{"negative", Vec3{-3, 0, 4}, Vec3{-0.6, 0, 0.8}},
		{"zero stays zero", Vec3{}, Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.InDelta(t, tt.want.X, got.X, 1e-15)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-15)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-15)
		})
	}
}

func TestCrossIsOrthogonal(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 4}
	c := a.Cross(b)

	assert.InDelta(t, 0, c.Dot(a), 1e-12)
	assert.InDelta(t, 0, c.Dot(b), 1e-12)
	assert.Equal(t, Vec3{0, 0, 1}, Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0}))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Vec3{1, -2, 3}.IsFinite())
	assert.False(t, Vec3{math.NaN(), 0, 0}.IsFinite())
	assert.False(t, Vec3{0, math.Inf(-1), 0}.IsFinite())
	assert.False(t, Vec3{0, 0, math.Inf(1)}.IsFinite())
}

func TestAngleTo(t *testing.T) {
	x := Vec3{1, 0, 0}

	assert.InDelta(t, 0, x.AngleTo(x.Scale(3)), 1e-12)
	assert.InDelta(t, math.Pi/2, x.AngleTo(Vec3{0, 2, 0}), 1e-12)
	assert.InDelta(t, math.Pi, x.AngleTo(Vec3{-1, 0, 0}), 1e-12)
	assert.Equal(t, 0.0, x.AngleTo(Vec3{}))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, Distance(Vec3{1, 1, 1}, Vec3{4, 5, 1}), 1e-12)
}
