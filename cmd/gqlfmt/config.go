package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/gqlfmt/configschema"
	"go.jacobcolvin.com/gqlfmt/gqlfmt"
)

// loadOptions locates and loads a config file starting from dir and walking
// up to the filesystem root, returning the documented defaults if none is
// found.
func loadOptions(dir string) (gqlfmt.FormatOptions, error) {
	path, err := findConfig(dir)
	if err != nil {
		return gqlfmt.FormatOptions{}, err
	}

	if path == "" {
		return gqlfmt.DefaultFormatOptions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return gqlfmt.FormatOptions{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return configschema.Load(path, data)
}

func findConfig(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		for _, name := range configschema.DefaultConfigNames {
			candidate := filepath.Join(abs, name)

			_, err := os.Stat(candidate)
			if err == nil {
				return candidate, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("stat %s: %w", candidate, err)
			}
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", nil
		}

		abs = parent
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect gqlfmt configuration",
	}

	cmd.AddCommand(newConfigSchemaCmd())

	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for .gqlfmt.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := configschema.Schema()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(schema)
		},
	}
}
