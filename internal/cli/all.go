package cli

import (
	"github.com/spf13/cobra"
)

func newAllCommand() *cobra.Command {
	opts := mirrorOptions{}
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Benchmark and configure both mirror kinds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runIndex(cmd.Context(), cmd, opts); err != nil {
				return err
			}
			return runPythonInstall(cmd.Context(), cmd, opts)
		},
	}
	addMirrorFlags(cmd, &opts, "mirrors")
	return cmd
}
