// Package main provides the cssmix CLI for expanding and checking CSS gradients.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/cssmix/internal/report"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// check has already printed its report
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, report.RenderStyle(report.StyleRed, "Error: "+err.Error(), report.ShouldUseColors(false)))
		}
		os.Exit(1)
	}
}
