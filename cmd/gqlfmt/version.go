package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/gqlfmt/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := version.Version
			if v == "" {
				v = "dev"
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gqlfmt %s\nrevision %s\n%s %s/%s\n",
				v, version.Revision, version.GoVersion, version.GoOS, version.GoArch)

			return err
		},
	}
}
