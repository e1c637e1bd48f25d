package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/px2rem"
	"github.com/yacobolo/px2rem/internal/runner"
)

// Config file keys are the flag names, so a setting has the same key in
// .px2rem.yaml, in PX2REM_* environment variables and on the command line.
var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".px2rem.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags: explicitly set flags override, defaults only fill gaps
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (PX2REM_* prefix)
	if err := k.Load(env.Provider("PX2REM_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to its config key:
// PX2REM_BASE_DPR -> base-dpr, PX2REM_OUTPUT_DIR -> output-dir
func envKey(s string) string {
	return strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(s, "PX2REM_")),
		"_", "-",
	)
}

// buildConverterConfig constructs the converter's Config from koanf state.
func buildConverterConfig() px2rem.Config {
	def := px2rem.DefaultConfig()
	return px2rem.Config{
		BaseDpr:        getFloat64WithFallback("base-dpr", def.BaseDpr),
		RemUnit:        getFloat64WithFallback("rem-unit", def.RemUnit),
		RemPrecision:   getIntWithFallback("rem-precision", def.RemPrecision),
		ForcePxComment: getStringWithFallback("force-px-comment", def.ForcePxComment),
		KeepComment:    getStringWithFallback("keep-comment", def.KeepComment),
	}
}

// buildRunnerConfig constructs the runner's Config from koanf state.
func buildRunnerConfig() (runner.Config, error) {
	mode, err := runner.ParseMode(getStringWithFallback("mode", string(runner.ModeAll)))
	if err != nil {
		return runner.Config{}, err
	}

	config := runner.Config{
		SourceDir: getStringWithFallback("source", "."),
		OutputDir: getStringWithFallback("output-dir", ""),
		Mode:      mode,
		Dpr:       getFloat64WithFallback("dpr", 2),
		Includes:  []string{"**/*.css"},
	}
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	}

	return config, nil
}

// getStringWithFallback returns the configured value, or the default when unset or empty.
func getStringWithFallback(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback returns the configured value, or the default when unset.
func getBoolWithFallback(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntWithFallback returns the configured value, or the default when unset.
func getIntWithFallback(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

// getFloat64WithFallback returns the configured value, or the default when unset.
func getFloat64WithFallback(key string, defaultVal float64) float64 {
	if k.Exists(key) {
		return k.Float64(key)
	}
	return defaultVal
}
