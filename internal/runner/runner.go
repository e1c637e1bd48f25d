package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/px2rem"
)

// Run is the main entry point: it scans the source directory, converts
// every matching file and writes the results. Files that fail are recorded
// in the result and their errors combined into the returned error; the
// remaining files are still converted.
func Run(config Config, conv *px2rem.Converter, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("runner")

	if config.Mode == "" {
		config.Mode = ModeAll
	}
	if _, err := ParseMode(string(config.Mode)); err != nil {
		return nil, err
	}
	if len(config.Includes) == 0 {
		config.Includes = []string{"**/*.css"}
	}

	result := &Result{}

	// 1. Scan CSS files
	files, err := scanCSSFiles(config.SourceDir, config.Includes, result)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	log.Debug("Found CSS files",
		zap.Int("discovered", result.FilesDiscovered),
		zap.Int("skipped", result.FilesSkipped),
		zap.Int("to_convert", len(files)))

	// 2. Convert and write each file
	var errs error
	for _, file := range files {
		outputs, err := convertFile(file, config, conv)
		result.Files = append(result.Files, FileResult{Source: file, Outputs: outputs, Err: err})
		if err != nil {
			log.Debug("Conversion failed", zap.String("source", file), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		log.Debug("Converted", zap.String("source", file), zap.Strings("outputs", outputs))
	}

	return result, errs
}

// convertFile converts one source file according to the mode and writes
// every output. Nothing is written when conversion fails.
func convertFile(path string, config Config, conv *px2rem.Converter) ([]string, error) {
	// #nosec G304 - path comes from the configured globs
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	css := string(content)

	sheets := make(map[string]string)
	switch config.Mode {
	case ModeRem:
		out, err := conv.GenerateRem(css)
		if err != nil {
			return nil, err
		}
		sheets["rem"] = out

	case ModeThree:
		dpr := config.Dpr
		if dpr == 0 {
			dpr = 2
		}
		out, err := conv.GenerateThree(css, dpr)
		if err != nil {
			return nil, err
		}
		sheets[dprSuffix(dpr)] = out

	case ModeAll:
		out, err := conv.GenerateAll(css)
		if err != nil {
			return nil, err
		}
		sheets["rem"] = out.Rem
		for dpr, sheet := range out.Pixel {
			sheets[dprSuffix(float64(dpr))] = sheet
		}
	}

	dir, err := outputDir(path, config)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outputs := make([]string, 0, len(sheets))
	for _, suffix := range sortedKeys(sheets) {
		target := filepath.Join(dir, base+"."+suffix+".css")
		if err := os.WriteFile(target, []byte(sheets[suffix]+"\n"), 0o644); err != nil {
			return outputs, fmt.Errorf("write %s: %w", target, err)
		}
		outputs = append(outputs, target)
	}

	return outputs, nil
}

// outputDir mirrors the source layout below OutputDir, or returns the
// source directory when no OutputDir is set
func outputDir(path string, config Config) (string, error) {
	if config.OutputDir == "" {
		return filepath.Dir(path), nil
	}

	rel, err := filepath.Rel(config.SourceDir, filepath.Dir(path))
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", path, err)
	}
	return filepath.Join(config.OutputDir, rel), nil
}

// dprSuffix names a pixel stylesheet: 1 -> "1x", 1.5 -> "1.5x"
func dprSuffix(dpr float64) string {
	return strconv.FormatFloat(dpr, 'f', -1, 64) + "x"
}

// sortedKeys returns the suffixes in a stable order: pixel sheets by DPR, then rem
func sortedKeys(sheets map[string]string) []string {
	keys := make([]string, 0, len(sheets))
	for k := range sheets {
		keys = append(keys, k)
	}
	// "1x" < "2x" < "3x" < "rem" lexically
	sort.Strings(keys)
	return keys
}
