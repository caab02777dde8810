package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssmix"
)

var angleCmd = &cobra.Command{
	Use:   "angle <value>",
	Short: "Convert an angle between deg, grad, turn and rad",
	Example: `  cssmix angle 90deg --to rad
  cssmix angle 0.25turn`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")

		a, err := cssmix.ParseAngle(args[0])
		if err != nil {
			return err
		}
		converted, err := a.To(cssmix.Unit(strings.ToLower(to)))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), converted)
		return nil
	},
}

func init() {
	angleCmd.Flags().String("to", string(cssmix.Deg), "Target unit: deg|grad|turn|rad")
}
