package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// generatedPattern matches the file endings written by the runner:
// .rem.css and .<dpr>x.css for any DPR, like .2x.css or .1.5x.css
var generatedPattern = regexp.MustCompile(`\.(rem|\d+(\.\d+)?x)\.css$`)

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGeneratedOutput checks if a file is one of our own outputs
func isGeneratedOutput(path string) bool {
	return generatedPattern.MatchString(path)
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be left out of conversion
//
// Two-layer filtering:
// 1. Pattern check (fast): skip files we generated ourselves
// 2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isGeneratedOutput(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// scanCSSFiles finds all CSS files matching includes under sourceDir
func scanCSSFiles(sourceDir string, includes []string, result *Result) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}

			result.FilesDiscovered++
			if shouldSkipFile(match) {
				result.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}

	return files, nil
}
