package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/gqlfmt/gqlfmt"
)

var errFormatCheckFailed = errors.New("one or more files are not formatted")

func newFormatCmd() *cobra.Command {
	var (
		write bool
		list  bool
		check bool
	)

	cmd := &cobra.Command{
		Use:   "format [flags] <file.graphql|-> ...",
		Short: "Format GraphQL documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := false

			for _, path := range args {
				fileChanged, err := formatOne(cmd, path, write, list, check)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				changed = changed || fileChanged
			}

			if check && changed {
				return errFormatCheckFailed
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to the source file instead of stdout")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "print the names of files that would change")
	cmd.Flags().BoolVar(&check, "check", false, "exit nonzero if any input is not already formatted")

	return cmd
}

func formatOne(cmd *cobra.Command, path string, write, list, check bool) (bool, error) {
	src, err := readInput(path)
	if err != nil {
		return false, err
	}

	dir := "."
	if path != "-" {
		dir = filepath.Dir(path)
	}

	opts, err := loadOptions(dir)
	if err != nil {
		return false, err
	}

	out, err := gqlfmt.FormatText(string(src), opts)
	if err != nil {
		return false, err
	}

	changed := out != string(src)

	switch {
	case list:
		if changed {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	case check:
		// nothing to print; caller inspects the returned bool
	case write && path != "-":
		if changed {
			info, statErr := os.Stat(path)

			mode := os.FileMode(0o644)
			if statErr == nil {
				mode = info.Mode()
			}

			if err := os.WriteFile(path, []byte(out), mode); err != nil {
				return changed, fmt.Errorf("writing %s: %w", path, err)
			}
		}
	default:
		fmt.Fprint(cmd.OutOrStdout(), out)
	}

	return changed, nil
}
