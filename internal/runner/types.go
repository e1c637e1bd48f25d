// Package runner converts CSS files on disk with a px2rem.Converter and
// reports what was written.
package runner

import "fmt"

// Mode selects which stylesheets are written for each source file.
type Mode string

const (
	// ModeRem writes <name>.rem.css
	ModeRem Mode = "rem"
	// ModeThree writes <name>.<dpr>x.css for the configured DPR
	ModeThree Mode = "three"
	// ModeAll writes the rem stylesheet and the 1x, 2x and 3x stylesheets
	ModeAll Mode = "all"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeRem, ModeThree, ModeAll:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want rem, three or all)", s)
}

// Config holds runner configuration
type Config struct {
	SourceDir string   // "web/styles"
	Includes  []string // ["**/*.css"], relative to SourceDir
	OutputDir string   // Output root; empty writes next to each source file
	Mode      Mode     // rem | three | all
	Dpr       float64  // Target DPR for ModeThree
}

// FileResult describes one converted source file
type FileResult struct {
	Source  string   // Source path
	Outputs []string // Paths written
	Err     error    // Conversion or write failure
}

// Result contains run stats
type Result struct {
	FilesDiscovered int // Files matched by the include patterns
	FilesSkipped    int // Generated or gitignored files left alone
	Files           []FileResult
}

// Converted counts files that were written without error.
func (r *Result) Converted() int {
	n := 0
	for _, f := range r.Files {
		if f.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts files that could not be converted.
func (r *Result) Failed() int {
	return len(r.Files) - r.Converted()
}
