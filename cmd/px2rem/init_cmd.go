package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .px2rem.yaml config file",
	Long:  `Create a .px2rem.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".px2rem.yaml"); err == nil && !force {
			return fmt.Errorf(".px2rem.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".px2rem.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .px2rem.yaml")
		return nil
	},
}

const defaultConfig = `# px2rem configuration
# Every key can also be set as a flag (--rem-unit) or env var (PX2REM_REM_UNIT).

# Conversion settings
base-dpr: 2              # DPR the source CSS was written for
rem-unit: 75             # pixels per rem
rem-precision: 6
force-px-comment: "px"   # /* px */ emits per-DPR pixel variants
keep-comment: "no"       # /* no */ leaves the declaration untouched

# Files
source: .
include:
  - "**/*.css"
output-dir: ""           # empty writes next to each source file
mode: all                # rem | three | all
dpr: 2                   # target DPR for mode three
output-format: text      # text | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
