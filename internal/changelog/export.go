package changelog

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Export formats supported by Export.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export writes the structured changelog to w in the given format.
func Export(c *Changelog, format string, w io.Writer) error {
	switch format {
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q (expected %s or %s)", format, FormatYAML, FormatJSON)
	}
}
