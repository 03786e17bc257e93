// Package configschema loads a gqlfmt config file into a
// [go.jacobcolvin.com/gqlfmt/gqlfmt.FormatOptions] and generates a JSON Schema
// document describing that type, for editor/IDE integration. It is the Go
// analogue of the reference module's YAML-driven schema tooling, narrowed
// from "infer a schema from arbitrary YAML data" to "describe one known Go
// struct," since gqlfmt's configuration shape is fixed rather than
// user-authored.
package configschema

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/gqlfmt/gqlfmt"
)

// DiagnosticError reports one or more problems found while decoding a
// config file: unrecognized keys or invalid enum values. The core gqlfmt
// package never produces or consumes this type; it only ever sees an
// already-validated [gqlfmt.FormatOptions].
type DiagnosticError struct {
	Path  string
	Cause error
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Cause)
}

func (e *DiagnosticError) Unwrap() error {
	return e.Cause
}

// Load reads and strict-decodes the YAML config file at path into a
// [gqlfmt.FormatOptions], starting from [gqlfmt.DefaultFormatOptions] so
// fields the file omits keep their documented defaults. Unknown keys
// produce a [DiagnosticError] rather than being silently dropped.
func Load(path string, data []byte) (gqlfmt.FormatOptions, error) {
	opts := gqlfmt.DefaultFormatOptions()

	err := yaml.UnmarshalWithOptions(data, &opts, yaml.Strict())
	if err != nil {
		return gqlfmt.FormatOptions{}, &DiagnosticError{Path: path, Cause: err}
	}

	return opts, nil
}

// Schema generates a JSON Schema (via reflection over
// [gqlfmt.FormatOptions]) suitable for editor/IDE completion of
// `.gqlfmt.yaml`/`.gqlfmt.yml` files.
func Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[gqlfmt.FormatOptions](nil)
	if err != nil {
		return nil, fmt.Errorf("generating config schema: %w", err)
	}

	schema.ID = "https://go.jacobcolvin.com/gqlfmt/config.schema.json"
	schema.Title = "gqlfmt configuration"
	schema.Description = "Formatting options for the gqlfmt GraphQL formatter."

	return schema, nil
}

// DefaultConfigNames are the file names Load's callers search for in a
// project directory, in priority order.
var DefaultConfigNames = []string{".gqlfmt.yaml", ".gqlfmt.yml"}

// IsDefaultConfigName reports whether name matches one of
// [DefaultConfigNames], case-insensitively.
func IsDefaultConfigName(name string) bool {
	for _, n := range DefaultConfigNames {
		if strings.EqualFold(name, n) {
			return true
		}
	}

	return false
}
