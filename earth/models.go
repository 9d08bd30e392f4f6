package earth

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/echoflaresat/sunvec/timescale"
	"github.com/echoflaresat/sunvec/vectors"
)

// ErrUnknownModel is returned by LookupModel for unregistered names.
var ErrUnknownModel = errors.New("unknown solar model")

// Model computes Sun directions for a Julian Date.
type Model interface {
	Name() string
	SunDirectionECI(jd timescale.JulianDate) DirectionECI
	SunDirectionECEF(jd timescale.JulianDate) DirectionECEF
}

// Almanac is the low-order series implemented by SunDirectionECI and
// SunDirectionECEF.
type Almanac struct{}

func (Almanac) Name() string { return "almanac" }

func (Almanac) SunDirectionECI(jd timescale.JulianDate) DirectionECI {
	return SunDirectionECI(jd)
}

func (Almanac) SunDirectionECEF(jd timescale.JulianDate) DirectionECEF {
	return SunDirectionECEF(jd)
}

// Meeus is an independent reference built on github.com/soniakeys/meeus:
// apparent RA/Dec of date (aberration and nutation included) rotated by
// apparent sidereal time.
//
// The UTC Julian Date is passed where Meeus expects dynamical time; the
// ~70 s offset moves the Sun by under 0.001°.
type Meeus struct{}

func (Meeus) Name() string { return "meeus" }

func (Meeus) SunDirectionECI(jd timescale.JulianDate) DirectionECI {
	ra, dec := solar.ApparentEquatorial(float64(jd))

	v := vectors.Vec3{
		X: dec.Cos() * ra.Cos(),
		Y: dec.Cos() * ra.Sin(),
		Z: dec.Sin(),
	}
	return eciFromVec(v.Normalize())
}

func (m Meeus) SunDirectionECEF(jd timescale.JulianDate) DirectionECEF {
	gast := sidereal.Apparent(float64(jd))
	return ECIToECEFWithAngle(m.SunDirectionECI(jd), gast.Angle().Rad())
}

var models = map[string]Model{
	Almanac{}.Name(): Almanac{},
	Meeus{}.Name():   Meeus{},
}

// ModelNames lists the registered model names in sorted order.
func ModelNames() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupModel returns the model registered under name (case-insensitive).
func LookupModel(name string) (Model, error) {
	m, ok := models[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownModel, name, ModelNames())
	}
	return m, nil
}

// AngularSeparation returns the angle between two directions in degrees.
func AngularSeparation(a, b vectors.Vec3) float64 {
	return RadToDeg(a.AngleTo(b))
}
