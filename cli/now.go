package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/echoflaresat/sunvec/earth"
	"github.com/echoflaresat/sunvec/ephemeris"
	"github.com/echoflaresat/sunvec/logger"
	"github.com/echoflaresat/sunvec/timescale"
	"github.com/echoflaresat/sunvec/vectors"
)

// NowResult is the output of the now command.
type NowResult struct {
	ephemeris.Sample `yaml:",inline"`

	Model    string       `json:"model" yaml:"model"`
	GMST     float64      `json:"gmst_deg" yaml:"gmst_deg"`
	Subsolar LatLon       `json:"subsolar" yaml:"subsolar"`
	Light    vectors.Vec3 `json:"light" yaml:"light"`
	Observer *Observer    `json:"observer,omitempty" yaml:"observer,omitempty"`
}

// Observer describes the Sun as seen from a point given with --lat/--lon/--alt.
type Observer struct {
	LatLon `yaml:",inline"`

	AltKm        float64      `json:"alt_km" yaml:"alt_km"`
	Position     vectors.Vec3 `json:"position_km" yaml:"position_km"`
	Illumination float64      `json:"illumination" yaml:"illumination"` // cosine of the solar zenith angle
	InShadow     bool         `json:"in_shadow" yaml:"in_shadow"`
}

// LatLon is a geodetic point in degrees.
type LatLon struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

type nowOptions struct {
	timeStr string
	offset  time.Duration
	lat     float64
	lon     float64
	altKm   float64
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &nowOptions{}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the Sun direction for one instant",
		Long: `Print the Sun direction for one instant in every frame.

--time accepts RFC3339 ("2024-06-21T00:00:00Z"), a Julian Date ("jd:2451545.0")
or "now" (the default). --offset shifts the instant, e.g. --offset 6h.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.timeStr, "time", "t", "", "instant (RFC3339, jd:<float> or now)")
	cmd.Flags().DurationVar(&opts.offset, "offset", 0, "offset added to the instant")
	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "observer latitude in degrees")
	cmd.Flags().Float64Var(&opts.lon, "lon", 0, "observer longitude in degrees")
	cmd.Flags().Float64Var(&opts.altKm, "alt", 0, "observer altitude in km")

	return cmd
}

func runNow(rootOpts *RootOptions, opts *nowOptions, cmd *cobra.Command) error {
	instant, err := timescale.ParseInstant(opts.timeStr, time.Now(), opts.offset)
	if err != nil {
		return err
	}

	s := ephemeris.Compute(rootOpts.model, instant)
	lat, lon := earth.SubsolarPoint(s.ECEF)
	result := NowResult{
		Model:    rootOpts.model.Name(),
		Sample:   s,
		GMST:     earth.GMST(s.JD),
		Subsolar: LatLon{Lat: lat, Lon: lon},
		Light:    s.Render.LightPosition(rootOpts.cfg.LightDistance),
	}
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") || cmd.Flags().Changed("alt") {
		result.Observer = newObserver(opts.lat, opts.lon, opts.altKm, s.ECEF)
	}

	logger.Debug("sample computed",
		zap.Time("time", s.Time),
		zap.Float64("jd", float64(s.JD)),
		zap.String("model", result.Model),
	)

	return rootOpts.formatter(cmd).Write(result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"time     %s\njd       %.6f\nmodel    %s\ngmst     %.6f\neci      %s\necef     %s\nrender   %s\nlight    %s\nsubsolar %+.4f %+.4f\n",
			s.Time.Format(time.RFC3339Nano),
			float64(s.JD),
			result.Model,
			result.GMST,
			triple(s.ECI.X, s.ECI.Y, s.ECI.Z),
			triple(s.ECEF.X, s.ECEF.Y, s.ECEF.Z),
			triple(s.Render.X, s.Render.Y, s.Render.Z),
			triple(result.Light.X, result.Light.Y, result.Light.Z),
			lat, lon,
		)
		if err != nil || result.Observer == nil {
			return err
		}
		o := result.Observer
		_, err = fmt.Fprintf(w, "observer %+.4f %+.4f %.1fkm illumination %+.6f shadow %t\n",
			o.Lat, o.Lon, o.AltKm, o.Illumination, o.InShadow)
		return err
	})
}

func newObserver(latDeg, lonDeg, altKm float64, sun earth.DirectionECEF) *Observer {
	pos := earth.Position(latDeg, lonDeg, altKm)
	return &Observer{
		LatLon:       LatLon{Lat: latDeg, Lon: lonDeg},
		AltKm:        altKm,
		Position:     pos,
		Illumination: earth.Illumination(earth.SurfaceNormal(latDeg, lonDeg), sun),
		InShadow:     earth.InShadow(pos, sun),
	}
}
