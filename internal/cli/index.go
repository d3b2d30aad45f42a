package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"uv-mirror/internal/app"
	"uv-mirror/internal/core"
)

type mirrorOptions struct {
	Mirrors     []string
	Timeout     int
	Concurrency int
	Yes         bool
}

func newIndexCommand() *cobra.Command {
	opts := mirrorOptions{}
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Benchmark PyPI mirrors and set the fastest as default index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIndex(cmd.Context(), cmd, opts)
		},
	}
	addMirrorFlags(cmd, &opts, "index_mirrors")
	return cmd
}

func addMirrorFlags(cmd *cobra.Command, opts *mirrorOptions, mirrorsKey string) {
	cmd.Flags().StringSliceVar(&opts.Mirrors, "mirror", nil, "Mirror URL(s) to probe (overrides the built-in catalog)")
	cmd.Flags().IntVar(&opts.Timeout, "timeout", 5, "Probe timeout in seconds")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 1, "Concurrent probes")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Apply without confirmation")
	_ = viper.BindPFlag(mirrorsKey, cmd.Flags().Lookup("mirror"))
	_ = viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("concurrency", cmd.Flags().Lookup("concurrency"))
	_ = viper.BindPFlag("yes", cmd.Flags().Lookup("yes"))
}

func benchRequest(cmd *cobra.Command, opts mirrorOptions, mirrorsKey string) app.MirrorBenchRequest {
	return app.MirrorBenchRequest{
		Mirrors:     resolveStrings(cmd, opts.Mirrors, mirrorsKey, "mirror"),
		Timeout:     time.Duration(resolveInt(cmd, opts.Timeout, "timeout", "timeout")) * time.Second,
		Concurrency: resolveInt(cmd, opts.Concurrency, "concurrency", "concurrency"),
	}
}

func runIndex(ctx context.Context, cmd *cobra.Command, opts mirrorOptions) error {
	service := newAppService()
	fmt.Println("probing PyPI index mirrors...")
	bench, err := service.BenchmarkIndexMirrors(ctx, benchRequest(cmd, opts, "index_mirrors"))
	if err != nil {
		return err
	}
	printBench(bench)

	if !resolveBool(cmd, opts.Yes, "yes", "yes") && !confirm(cmd, "set as default index?") {
		fmt.Println("aborted")
		return nil
	}
	applied, err := service.ApplyIndexMirror(ctx, bench.Fastest.URL)
	if err != nil {
		return err
	}
	if !applied.Change.Changed {
		fmt.Println("default index unchanged")
		return nil
	}
	fmt.Print(applied.Diff)
	fmt.Printf("default index set in %s\n", applied.Change.Path)
	return nil
}

func printBench(bench app.MirrorBenchResult) {
	for _, result := range bench.Results {
		fmt.Printf(" * %s %s\n", core.HumanSpeed(result.Speed), result.URL)
	}
	for _, failure := range bench.Failures {
		fmt.Printf(" ! %s (%s)\n", failure.Mirror, failure.Reason)
	}
	fmt.Printf("fastest: %s (%s)\n", bench.Fastest.URL, core.HumanSpeed(bench.Fastest.Speed))
}
