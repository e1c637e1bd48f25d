package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *Result {
	return &Result{
		FilesDiscovered: 4,
		FilesSkipped:    1,
		Files: []FileResult{
			{Source: "web/app.css", Outputs: []string{"web/app.rem.css"}},
			{Source: "web/bad.css", Err: errors.New("css parse error at 1:4: missing '}'")},
			{Source: "web/home.css", Outputs: []string{"web/home.rem.css"}},
		},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		formatFlag string
		expected   OutputFormat
	}{
		{formatFlag: "", expected: OutputText},
		{formatFlag: "text", expected: OutputText},
		{formatFlag: "json", expected: OutputJSON},
		{formatFlag: "yaml", expected: OutputText},
	}

	for _, tt := range tests {
		t.Run(tt.formatFlag, func(t *testing.T) {
			require.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag))
		})
	}
}

func TestWriteOutputText(t *testing.T) {
	var buf bytes.Buffer
	WriteOutput(&buf, sampleResult(), OutputText, false)

	assert.Equal(t, "✓ web/app.css\n"+
		"    -> web/app.rem.css\n"+
		"✗ web/bad.css: css parse error at 1:4: missing '}'\n"+
		"✓ web/home.css\n"+
		"    -> web/home.rem.css\n"+
		"\n"+
		"2 files converted, 1 file failed\n"+
		"(1 file skipped: generated or gitignored)\n", buf.String())
}

func TestPrintSummaryNoFiles(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).PrintSummary(&Result{})

	assert.Equal(t, "\n0 files converted\nHint: no CSS files matched; check --source and --include\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.NotEmpty(t, out.Timestamp)
	assert.Equal(t, JSONSummary{FilesDiscovered: 4, FilesSkipped: 1, Converted: 2, Failed: 1}, out.Summary)

	require.Len(t, out.Files, 3)
	assert.Equal(t, "web/bad.css", out.Files[1].Source)
	assert.Empty(t, out.Files[1].Outputs)
	assert.Contains(t, out.Files[1].Error, "missing '}'")
	assert.Empty(t, out.Files[0].Error)
}

func TestJSONOutputEncodesEmptyOutputsAsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &Result{Files: []FileResult{{Source: "a.css", Err: errors.New("boom")}}}))
	assert.Contains(t, buf.String(), `"outputs": []`)
}

func TestRenderStyleWithoutColors(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 file", pluralizeCount(1, "file", "files"))
	assert.Equal(t, "0 files", pluralizeCount(0, "file", "files"))
	assert.Equal(t, "3 files", pluralizeCount(3, "file", "files"))
}
