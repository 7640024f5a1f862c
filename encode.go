package linkaudit

import (
	"encoding/json"
	"io"
	"strings"
)

// Format is an output serialization format.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the Format named by s.
// Returns EINVALID for unknown formats.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", Errorf(EINVALID, "unknown format %q (want text, json or yaml)", s)
}

// EncodeJSON writes v as indented JSON followed by a newline.
// URLs are written verbatim, without HTML escaping of &, < and >.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
