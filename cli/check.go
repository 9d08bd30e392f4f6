package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/echoflaresat/sunvec/earth"
	"github.com/echoflaresat/sunvec/ephemeris"
	"github.com/echoflaresat/sunvec/logger"
	"github.com/echoflaresat/sunvec/timescale"
)

// ErrToleranceExceeded is returned by check when the models disagree by more
// than --tolerance.
var ErrToleranceExceeded = errors.New("model separation exceeds tolerance")

// CheckResult is the output of the check command. Separations are in degrees.
type CheckResult struct {
	Time      time.Time            `json:"time" yaml:"time"`
	JD        timescale.JulianDate `json:"jd" yaml:"jd"`
	ECI       float64              `json:"eci_sep_deg" yaml:"eci_sep_deg"`
	ECEF      float64              `json:"ecef_sep_deg" yaml:"ecef_sep_deg"`
	Tolerance float64              `json:"tolerance_deg" yaml:"tolerance_deg"`
	OK        bool                 `json:"ok" yaml:"ok"`
}

type checkOptions struct {
	timeStr   string
	tolerance float64
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare the almanac series against the Meeus reference",
		Long: `Compute the Sun direction with the low-order almanac series and with the
full Meeus apparent position, and print their angular separation in degrees.

Exits non-zero when either separation exceeds --tolerance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.timeStr, "time", "t", "", "instant (RFC3339, jd:<float> or now)")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 0.05, "maximum allowed separation in degrees")

	return cmd
}

func runCheck(rootOpts *RootOptions, opts *checkOptions, cmd *cobra.Command) error {
	instant, err := timescale.ParseInstant(opts.timeStr, time.Now(), 0)
	if err != nil {
		return err
	}

	almanac := ephemeris.Compute(earth.Almanac{}, instant)
	reference := ephemeris.Compute(earth.Meeus{}, instant)

	result := CheckResult{
		Time:      almanac.Time,
		JD:        almanac.JD,
		ECI:       earth.AngularSeparation(almanac.ECI.Vec3(), reference.ECI.Vec3()),
		ECEF:      earth.AngularSeparation(almanac.ECEF.Vec3(), reference.ECEF.Vec3()),
		Tolerance: opts.tolerance,
	}
	result.OK = result.ECI <= opts.tolerance && result.ECEF <= opts.tolerance

	logger.Debug("models compared",
		zap.Float64("jd", float64(result.JD)),
		zap.Float64("eci_sep_deg", result.ECI),
		zap.Float64("ecef_sep_deg", result.ECEF),
	)

	err = rootOpts.formatter(cmd).Write(result, func(w io.Writer) error {
		status := "ok"
		if !result.OK {
			status = "FAIL"
		}
		_, err := fmt.Fprintf(w, "time  %s\njd    %.6f\neci   %.6f°\necef  %.6f°\n%s (tolerance %g°)\n",
			result.Time.Format(time.RFC3339Nano), float64(result.JD), result.ECI, result.ECEF, status, result.Tolerance)
		return err
	})
	if err != nil {
		return err
	}

	if !result.OK {
		logger.Warn("model separation exceeds tolerance",
			zap.Time("time", result.Time),
			zap.Float64("eci_sep_deg", result.ECI),
			zap.Float64("ecef_sep_deg", result.ECEF),
			zap.Float64("tolerance_deg", opts.tolerance),
		)
		return fmt.Errorf("%w: eci %.6f°, ecef %.6f°, tolerance %g°", ErrToleranceExceeded, result.ECI, result.ECEF, opts.tolerance)
	}
	return nil
}
