package runner

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// OutputFormat selects how a run is reported
type OutputFormat string

const (
	// OutputText is the per-file list with a summary
	OutputText OutputFormat = "text"
	// OutputJSON is a machine readable report
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to text.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputText
	}
}

// WriteOutput writes the run result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, useColors bool) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	default:
		NewReporter(w, useColors).PrintResult(result)
	}
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Files     []JSONFile  `json:"files"`
}

// JSONSummary contains high-level file counts
type JSONSummary struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesSkipped    int `json:"files_skipped"`
	Converted       int `json:"converted"`
	Failed          int `json:"failed"`
}

// JSONFile describes one source file
type JSONFile struct {
	Source  string   `json:"source"`
	Outputs []string `json:"outputs"`
	Error   string   `json:"error,omitempty"`
}

// WriteJSON writes the run result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *Result) JSONOutput {
	files := make([]JSONFile, len(result.Files))
	for i, f := range result.Files {
		outputs := f.Outputs
		if outputs == nil {
			outputs = []string{}
		}
		files[i] = JSONFile{Source: f.Source, Outputs: outputs}
		if f.Err != nil {
			files[i].Error = f.Err.Error()
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesDiscovered: result.FilesDiscovered,
			FilesSkipped:    result.FilesSkipped,
			Converted:       result.Converted(),
			Failed:          result.Failed(),
		},
		Files: files,
	}
}
