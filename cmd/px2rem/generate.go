package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/px2rem"
	"github.com/yacobolo/px2rem/internal/runner"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Convert CSS files to rem and per-DPR pixel stylesheets",
	Long: `Scan a source directory for CSS files and write converted stylesheets.
Mode rem writes <name>.rem.css, mode three writes <name>.<dpr>x.css and
mode all writes both the rem stylesheet and the 1x, 2x and 3x stylesheets.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", ".", "Source CSS directory")
	f.StringSlice("include", nil, "Glob patterns for CSS files to include, relative to --source")
	f.String("output-dir", "", "Output directory (default: next to each source file)")
	f.String("mode", "all", "Conversion mode: rem|three|all")
	f.Float64("dpr", 2, "Target DPR for --mode three")
	f.String("output-format", "text", "Report format: text|json")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	quiet := getBoolWithFallback("quiet", false)
	useColors := runner.ShouldUseColors(getBoolWithFallback("color", false))

	log := newLogger(getBoolWithFallback("verbose", false), quiet, useColors)
	defer func() { _ = log.Sync() }()

	conv, err := px2rem.New(px2rem.WithConfig(buildConverterConfig()), px2rem.WithLogger(log))
	if err != nil {
		return err
	}

	config, err := buildRunnerConfig()
	if err != nil {
		return err
	}

	result, runErr := runner.Run(config, conv, log)
	if result == nil {
		return fmt.Errorf("conversion failed: %w", runErr)
	}

	if !quiet {
		format := runner.DetermineOutputFormat(getStringWithFallback("output-format", "text"))
		runner.WriteOutput(cmd.OutOrStdout(), result, format, useColors)
	}

	if runErr != nil {
		// Per-file errors were already reported
		return fmt.Errorf("%d of %d files failed", result.Failed(), len(result.Files))
	}
	return nil
}
