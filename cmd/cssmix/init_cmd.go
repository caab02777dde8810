package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssmix.yaml config file",
	Long:  `Create a .cssmix.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssmix.yaml"); err == nil && !force {
			return fmt.Errorf(".cssmix.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssmix.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .cssmix.yaml")
		return nil
	},
}

const defaultConfig = `# cssmix configuration
# Docs: https://github.com/yacobolo/cssmix

verbose: false

# Stylesheets to expand
source: web/styles
output-dir: public/css
include:
  - "**/*.css"
properties:
  - background
  - background-image

# Reporting (check command)
strict: false
output-format: issues  # issues | json
print-lines: true
print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
