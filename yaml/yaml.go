// Package yaml encodes linkaudit values as YAML using gopkg.in/yaml.v3.
// Keys follow the yaml struct tags, which mirror the JSON field names.
package yaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes v to w as a YAML document with two-space indentation.
func Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
