package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/px2rem"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/px2rem
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of px2rem",
	Long:  `Print the px2rem version and the default conversion settings (base DPR, rem unit, precision).`,
	Run: func(cmd *cobra.Command, _ []string) {
		def := px2rem.DefaultConfig()
		fmt.Fprintf(cmd.OutOrStdout(), "px2rem %s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "defaults: base-dpr %v, rem-unit %v, rem-precision %d\n",
			def.BaseDpr, def.RemUnit, def.RemPrecision)
	},
}
