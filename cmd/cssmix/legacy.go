package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssmix"
)

var legacyCmd = &cobra.Command{
	Use:   "legacy <direction>",
	Short: "Print the legacy -webkit- equivalent of a gradient direction",
	Example: `  cssmix legacy to top right
  cssmix legacy 42deg`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := cssmix.ParseDirection(strings.Join(args, " "))
		if err != nil {
			return err
		}
		legacy, err := cssmix.LegacyDirection(d)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), legacy)
		return nil
	},
}
