package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssmix"
	"github.com/yacobolo/cssmix/internal/report"
)

// errCheckFailed signals a failing check whose report was already printed
var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report invalid linear-gradient declarations",
	Long: `Scan stylesheets for linear-gradient() declarations and report the ones
that cannot be expanded, without writing anything.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	addSourceFlags(checkCmd)
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.String("output-format", "issues", "Output format: issues|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (gradient) suffix on issues")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	config := buildConfig()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := cssmix.Check(ctx, config)
	if result == nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if !getBool("quiet", false) {
		format := report.DetermineOutputFormat(getString("output-format", "issues"))
		if werr := report.WriteOutput(cmd.OutOrStdout(), result, format, buildReportOptions()); werr != nil {
			return werr
		}
	}

	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	// Default "Soft Gate" mode: only errors fail; strict fails on any issue
	if result.ErrorCount > 0 || (getBool("strict", false) && len(result.Issues) > 0) {
		return errCheckFailed
	}
	return nil
}
