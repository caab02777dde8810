package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssmix"
	"github.com/yacobolo/cssmix/internal/report"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Rewrite linear-gradient declarations for older browsers",
	Long: `Copy stylesheets from the source directory to the output directory,
replacing each linear-gradient() background with a fallback colour,
a -webkit- legacy gradient and the modern declaration.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runExpand,
}

func init() {
	addSourceFlags(expandCmd)
	f := expandCmd.Flags()
	f.String("output-dir", "public/css", "Output directory for expanded stylesheets")
	f.Bool("watch", false, "Re-run when stylesheets change")
}

// addSourceFlags registers the flags shared by expand and check
func addSourceFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("source", "web/styles", "Source stylesheet directory")
	f.StringSlice("include", []string{"**/*.css"}, "Glob patterns for stylesheets to include")
	f.StringSlice("properties", cssmix.DefaultProperties, "Declarations to rewrite")
}

func runExpand(cmd *cobra.Command, _ []string) error {
	config := buildConfig()
	quiet := getBool("quiet", false)
	opts := buildReportOptions()
	out := cmd.OutOrStdout()

	if getBool("watch", false) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		config.Logger.Info("watching", "source", config.SourceDir, "output", config.OutputDir)
		return cssmix.Watch(ctx, config, func(result *cssmix.ExpandResult, err error) {
			if err != nil {
				config.Logger.Error("expand failed", "err", err)
			}
			if result != nil && !quiet {
				_ = report.WriteOutput(out, result, report.OutputIssues, opts)
			}
		})
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := cssmix.Expand(ctx, config)
	if result == nil {
		return fmt.Errorf("expand failed: %w", err)
	}

	if !quiet {
		fmt.Fprintf(out, "Expanded stylesheets into %s\n", config.OutputDir)
		if werr := report.WriteOutput(out, result, report.OutputIssues, opts); werr != nil {
			return werr
		}
	}

	if err != nil {
		return fmt.Errorf("expand failed: %w", err)
	}
	if result.ErrorCount > 0 {
		return fmt.Errorf("%d invalid gradient(s) left unchanged", result.ErrorCount)
	}
	return nil
}
