package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/echoflaresat/sunvec/config"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatText, config.FormatJSON, config.FormatYAML}

// OutputFormatter writes command results as text, JSON or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Write encodes data for the json and yaml formats and calls text otherwise.
func (f *OutputFormatter) Write(data any, text func(w io.Writer) error) error {
	switch f.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case config.FormatYAML:
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText, "":
		return text(f.Writer)
	default:
		return fmt.Errorf("invalid format %q: must be one of %v", f.Format, ValidFormats)
	}
}

// triple formats a direction for text output.
func triple(x, y, z float64) string {
	return fmt.Sprintf("%+.9f %+.9f %+.9f", x, y, z)
}
