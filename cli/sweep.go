package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/echoflaresat/sunvec/ephemeris"
	"github.com/echoflaresat/sunvec/logger"
	"github.com/echoflaresat/sunvec/timescale"
)

// SweepResult is the output of the sweep command.
type SweepResult struct {
	Model   string               `json:"model" yaml:"model"`
	Samples []ephemeris.Sample   `json:"samples" yaml:"samples"`
	Cache   ephemeris.CacheStats `json:"cache" yaml:"cache"`
}

type sweepOptions struct {
	start string
	end   string
	step  time.Duration
	file  string
}

var errSweepInput = errors.New("sweep needs either --file or --start and --end")

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &sweepOptions{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Print Sun directions for many instants",
		Long: `Print Sun directions for an inclusive time range or a list of instants.

Use --start/--end/--step for a range, or --file for a file with one instant
per line (RFC3339, jd:<float> or now; blank lines and # comments are ignored).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "first instant")
	cmd.Flags().StringVar(&opts.end, "end", "", "last instant (inclusive)")
	cmd.Flags().DurationVar(&opts.step, "step", time.Hour, "spacing between instants")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "file with one instant per line")
	cmd.MarkFlagsMutuallyExclusive("file", "start")
	cmd.MarkFlagsMutuallyExclusive("file", "end")

	return cmd
}

func (o *sweepOptions) times(now time.Time) ([]time.Time, error) {
	if o.file != "" {
		return ephemeris.ReadTimestamps(o.file, now)
	}
	if o.start == "" || o.end == "" {
		return nil, errSweepInput
	}
	start, err := timescale.ParseInstant(o.start, now, 0)
	if err != nil {
		return nil, fmt.Errorf("--start: %w", err)
	}
	end, err := timescale.ParseInstant(o.end, now, 0)
	if err != nil {
		return nil, fmt.Errorf("--end: %w", err)
	}
	return ephemeris.Range(start, end, o.step)
}

func runSweep(rootOpts *RootOptions, opts *sweepOptions, cmd *cobra.Command) error {
	times, err := opts.times(time.Now())
	if err != nil {
		return err
	}

	cache, err := ephemeris.NewCache(rootOpts.cfg.CacheSize, rootOpts.model)
	if err != nil {
		return err
	}
	if len(times) > rootOpts.cfg.CacheSize {
		logger.Sugar.Warnf("sweep of %d instants exceeds cache size %d; repeated instants may be recomputed",
			len(times), rootOpts.cfg.CacheSize)
	}

	samples, err := ephemeris.Sweep(cmd.Context(), cache, times, ephemeris.SweepOptions{
		Workers: rootOpts.cfg.Workers,
		Logger:  logger.Log,
	})
	if err != nil {
		return err
	}

	result := SweepResult{
		Model:   rootOpts.model.Name(),
		Samples: samples,
		Cache:   cache.Stats(),
	}
	logger.Info("sweep finished",
		zap.Int("samples", len(samples)),
		zap.Uint64("hits", result.Cache.Hits),
		zap.Uint64("misses", result.Cache.Misses),
		zap.Int("entries", cache.Len()),
	)

	return rootOpts.formatter(cmd).Write(result, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tJD\tECI\tECEF\tRENDER")
		for _, s := range samples {
			fmt.Fprintf(tw, "%s\t%.6f\t%s\t%s\t%s\n",
				s.Time.Format(time.RFC3339Nano),
				float64(s.JD),
				triple(s.ECI.X, s.ECI.Y, s.ECI.Z),
				triple(s.ECEF.X, s.ECEF.Y, s.ECEF.Z),
				triple(s.Render.X, s.Render.Y, s.Render.Z),
			)
		}
		return tw.Flush()
	})
}
