package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"

	"github.com/cbout22/makegen/internal/layout"
)

// Format selects how a manifest is encoded.
type Format string

const (
	FormatText Format = "text"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats returns all supported output formats.
func Formats() []Format {
	return []Format{FormatText, FormatTOML, FormatJSON, FormatYAML}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	switch f {
	case FormatText, FormatTOML, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q: must be one of %v", s, Formats())
}

// Encode writes the manifest to w in the given format.
func (m *Manifest) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatText:
		return m.encodeText(w)
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(m); err != nil {
			return errors.Wrap(err, "encoding manifest as toml")
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return errors.Wrap(err, "encoding manifest as json")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return errors.Wrap(err, "encoding manifest as yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "encoding manifest as yaml")
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func (m *Manifest) encodeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tKIND\tMODE\tSIZE\tSHA256")
	for _, e := range m.Entries {
		size, sum := "-", "-"
		if e.Kind == layout.KindFile {
			size = fmt.Sprintf("%d", e.Size)
			sum = e.Checksum
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Path, e.Kind, e.Mode, size, sum)
	}
	return tw.Flush()
}
