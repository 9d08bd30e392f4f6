// Package cli implements the sunvec command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/echoflaresat/sunvec/config"
	"github.com/echoflaresat/sunvec/earth"
	"github.com/echoflaresat/sunvec/logger"
)

// RootOptions holds global flags for all commands. Empty values fall back
// to the config file.
type RootOptions struct {
	ConfigPath string
	Format     string
	LogLevel   string
	LogFile    string
	Model      string

	// Resolved by the root command before any subcommand runs.
	cfg   *config.Config
	model earth.Model
}

// NewRootCommand creates the root command for the sunvec CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sunvec",
		Short: "Sun direction ephemeris",
		Long: `Compute the direction of the Sun as seen from Earth's centre.

Directions are unit vectors in the inertial (ECI), Earth-fixed (ECEF) and
render (y-up) frames, derived from a UTC instant.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ./sunvec.yaml or the user config dir)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "also write JSON logs to this file")
	cmd.PersistentFlags().StringVar(&opts.Model, "model", "", fmt.Sprintf("solar model %v", earth.ModelNames()))

	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// resolve loads the config, applies flag overrides and starts the logger.
func (o *RootOptions) resolve() error {
	if o.Format != "" && !isValidFormat(o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if o.Model != "" {
		cfg.Model = o.Model
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Logging.File = o.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}

	model, err := earth.LookupModel(cfg.Model)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.model = model

	logger.Debug("config resolved",
		zap.String("model", model.Name()),
		zap.String("format", cfg.Output.Format),
		zap.Int("workers", cfg.Workers),
		zap.Int("cache_size", cfg.CacheSize),
	)
	return nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.cfg.Output.Format, Writer: cmd.OutOrStdout()}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
