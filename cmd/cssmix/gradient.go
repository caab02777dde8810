package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssmix"
)

var gradientCmd = &cobra.Command{
	Use:   "gradient <arguments>",
	Short: "Print the cross-browser declarations for a linear gradient",
	Example: `  cssmix gradient "to right, #E47D7D 0%, #C195D3 50%, #4FB4E8 100%"
  cssmix gradient "linear-gradient(#31B7D7, #EDAC7D)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		property, _ := cmd.Flags().GetString("property")

		decl, err := gradientDeclarations(strings.Join(args, " "))
		if err != nil {
			return err
		}

		for _, line := range decl.Lines(property) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	gradientCmd.Flags().String("property", "background-image", "Property for the gradient declarations")
}

// gradientDeclarations accepts either a full linear-gradient(...) value or
// just its arguments.
func gradientDeclarations(text string) (cssmix.Declarations, error) {
	text = strings.TrimSpace(text)

	var g cssmix.Gradient
	var err error
	if strings.HasPrefix(strings.ToLower(text), "linear-gradient(") {
		g, err = cssmix.ParseLinearGradient(text)
	} else {
		g, err = cssmix.ParseGradient(text)
	}
	if err != nil {
		return cssmix.Declarations{}, err
	}
	return g.Declarations()
}
