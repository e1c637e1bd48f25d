package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "px2rem",
	Short: "Convert px based CSS to rem and per-DPR pixel stylesheets",
	Long: `Convert CSS written against a reference device pixel ratio.
Pixel lengths become rem units, or are rescaled for 1x, 2x and 3x screens.
Comments after a declaration control it: /* no */ keeps the value as is,
/* px */ emits per-DPR pixel variants under [data-dpr="N"] selectors.`,
	// Default behavior: run generate when no subcommand is given.
	// loadConfig is called here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	f := rootCmd.PersistentFlags()
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.Bool("quiet", false, "Suppress all output (exit code only)")
	f.Bool("color", false, "Force color output")
	f.String("config", ".px2rem.yaml", "Config file path")

	// Conversion settings
	f.Float64("base-dpr", 2, "DPR the source CSS was written for")
	f.Float64("rem-unit", 75, "Pixels per rem")
	f.Int("rem-precision", 6, "Decimal places kept in converted lengths")
	f.String("force-px-comment", "px", "Comment text that forces per-DPR pixel output")
	f.String("keep-comment", "no", "Comment text that leaves a declaration untouched")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
