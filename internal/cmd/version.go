package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/chronogrog/internal/ux"
	"github.com/felixgeelhaar/chronogrog/internal/version"
)

func (a *app) versionCmd() *cobra.Command {
	var (
		verbose bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print version information including version number, git commit,
build date, Go version, and platform.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			out := cmd.OutOrStdout()

			if jsonOut {
				return ux.JSONFormatter{}.Format(out, info)
			}

			if verbose {
				fmt.Fprintln(out, info.String())
				return nil
			}

			fmt.Fprintf(out, "chronogrog %s\n", info.Short())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed version information")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output version information as JSON")
	return cmd
}
