package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"uv-mirror/internal/app"
)

func newLockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Operate on uv.lock documents",
	}
	cmd.AddCommand(newLockValidateCommand())
	cmd.AddCommand(newLockInspectCommand())
	cmd.AddCommand(newLockFormatCommand())
	return cmd
}

type lockValidateOptions struct {
	File string
}

func newLockValidateCommand() *cobra.Command {
	opts := lockValidateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a lockfile's structural validity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLockValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "uv.lock", "Lockfile path")
	_ = viper.BindPFlag("lock_file", cmd.Flags().Lookup("file"))
	return cmd
}

func runLockValidate(ctx context.Context, cmd *cobra.Command, opts lockValidateOptions) error {
	service := newAppService()
	result, err := service.LockValidate(ctx, app.LockValidateRequest{
		Path: resolveString(cmd, opts.File, "lock_file", "file"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %s (%d packages, requires-python %s)\n",
		result.Path, result.PackageCount, result.RequiresPython)
	return nil
}

type lockInspectOptions struct {
	File   string
	Format string
}

func newLockInspectCommand() *cobra.Command {
	opts := lockInspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a lockfile's packages and dependency graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLockInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "uv.lock", "Lockfile path")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Report format (text or yaml)")
	_ = viper.BindPFlag("lock_file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("inspect_format", cmd.Flags().Lookup("format"))
	return cmd
}

func runLockInspect(ctx context.Context, cmd *cobra.Command, opts lockInspectOptions) error {
	service := newAppService()
	report, err := service.LockInspect(ctx, app.LockInspectRequest{
		Path: resolveString(cmd, opts.File, "lock_file", "file"),
	})
	if err != nil {
		return err
	}
	format := resolveString(cmd, opts.Format, "inspect_format", "format")
	if format == "yaml" {
		rendered, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		fmt.Print(string(rendered))
		return nil
	}
	fmt.Printf("lockfile: %s\n", report.Path)
	fmt.Printf("version: %d revision: %d\n", report.Version, report.Revision)
	fmt.Printf("requires-python: %s\n", report.RequiresPython)
	fmt.Printf("packages: %d, dependency edges: %d\n", report.PackageCount, report.DependencyEdges)
	for _, pkg := range report.Packages {
		fmt.Printf("- %s %s (%s)\n", pkg.Name, pkg.Version, pkg.Source)
		if len(pkg.Dependencies) > 0 {
			fmt.Printf("  depends on: %s\n", strings.Join(pkg.Dependencies, ", "))
		}
	}
	return nil
}

type lockFormatOptions struct {
	File  string
	Write bool
	Check bool
}

func newLockFormatCommand() *cobra.Command {
	opts := lockFormatOptions{}
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Render a lockfile in canonical form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLockFormat(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "uv.lock", "Lockfile path")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Rewrite the file in place")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Exit nonzero when the file is not canonical")
	_ = viper.BindPFlag("lock_file", cmd.Flags().Lookup("file"))
	return cmd
}

func runLockFormat(ctx context.Context, cmd *cobra.Command, opts lockFormatOptions) error {
	service := newAppService()
	result, err := service.LockFormat(ctx, app.LockFormatRequest{
		Path:  resolveString(cmd, opts.File, "lock_file", "file"),
		Write: opts.Write,
	})
	if err != nil {
		return err
	}
	if result.Canonical {
		fmt.Printf("already canonical: %s\n", result.Path)
		return nil
	}
	if opts.Check {
		fmt.Print(result.Diff)
		return app.NonCanonicalError(result.Path)
	}
	if opts.Write {
		fmt.Printf("rewrote: %s\n", result.Path)
		return nil
	}
	fmt.Print(string(result.Output))
	return nil
}
