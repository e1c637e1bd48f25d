// Package main provides the px2rem CLI tool for converting pixel based CSS
// into rem and per-DPR pixel stylesheets.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
