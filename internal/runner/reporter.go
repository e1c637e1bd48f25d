package runner

import (
	"fmt"
	"io"
	"os"
)

// Reporter prints a human readable conversion report
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintResult prints one line per source file followed by a summary
func (r *Reporter) PrintResult(result *Result) {
	for _, f := range result.Files {
		if f.Err != nil {
			fmt.Fprintf(r.w, "%s %s: %v\n",
				RenderStyle(StyleRed, "✗", r.useColors), f.Source, f.Err)
			continue
		}
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "✓", r.useColors), f.Source)
		for _, out := range f.Outputs {
			fmt.Fprintf(r.w, "    -> %s\n", RenderStyle(StyleCyan, out, r.useColors))
		}
	}

	r.PrintSummary(result)
}

// PrintSummary outputs the file count summary
func (r *Reporter) PrintSummary(result *Result) {
	fmt.Fprintln(r.w, "")

	converted, failed := result.Converted(), result.Failed()
	if failed > 0 {
		fmt.Fprintf(r.w, "%s, %s\n",
			pluralizeCount(converted, "file converted", "files converted"),
			RenderStyle(StyleRed, pluralizeCount(failed, "file failed", "files failed"), r.useColors))
	} else {
		fmt.Fprintln(r.w, pluralizeCount(converted, "file converted", "files converted"))
	}

	if result.FilesSkipped > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray,
			fmt.Sprintf("(%s skipped: generated or gitignored)", pluralizeCount(result.FilesSkipped, "file", "files")),
			r.useColors))
	}

	if result.FilesDiscovered == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: no CSS files matched; check --source and --include", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
