package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPythonInstallCommand() *cobra.Command {
	opts := mirrorOptions{}
	cmd := &cobra.Command{
		Use:   "python-install",
		Short: "Benchmark python-build-standalone mirrors and set the fastest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPythonInstall(cmd.Context(), cmd, opts)
		},
	}
	addMirrorFlags(cmd, &opts, "python_install_mirrors")
	return cmd
}

func runPythonInstall(ctx context.Context, cmd *cobra.Command, opts mirrorOptions) error {
	service := newAppService()
	fmt.Println("probing python-install mirrors...")
	bench, err := service.BenchmarkPythonInstallMirrors(ctx, benchRequest(cmd, opts, "python_install_mirrors"))
	if err != nil {
		return err
	}
	printBench(bench)

	if !resolveBool(cmd, opts.Yes, "yes", "yes") && !confirm(cmd, "set as python install mirror?") {
		fmt.Println("aborted")
		return nil
	}
	applied, err := service.ApplyPythonInstallMirror(ctx, bench.Fastest.URL)
	if err != nil {
		return err
	}
	if !applied.Change.Changed {
		fmt.Println("python install mirror unchanged")
		return nil
	}
	fmt.Print(applied.Diff)
	fmt.Printf("python install mirror set in %s\n", applied.Change.Path)
	return nil
}
