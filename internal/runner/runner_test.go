package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yacobolo/px2rem"
)

func newConverter(t *testing.T) *px2rem.Converter {
	t.Helper()
	conv, err := px2rem.New()
	require.NoError(t, err)
	return conv
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestRunModeAll(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "app.css")
	writeFile(t, src, ".a { width: 75px; }")

	result, err := Run(Config{SourceDir: dir}, newConverter(t), nil)
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, src, result.Files[0].Source)
	assert.Equal(t, []string{
		filepath.Join(dir, "app.1x.css"),
		filepath.Join(dir, "app.2x.css"),
		filepath.Join(dir, "app.3x.css"),
		filepath.Join(dir, "app.rem.css"),
	}, result.Files[0].Outputs)

	assert.Equal(t, ".a {\n  width: 1rem;\n}\n", readFile(t, filepath.Join(dir, "app.rem.css")))
	assert.Equal(t, ".a {\n  width: 37.5px;\n}\n", readFile(t, filepath.Join(dir, "app.1x.css")))
	assert.Equal(t, ".a {\n  width: 75px;\n}\n", readFile(t, filepath.Join(dir, "app.2x.css")))
	assert.Equal(t, ".a {\n  width: 112.5px;\n}\n", readFile(t, filepath.Join(dir, "app.3x.css")))
}

func TestRunModeRem(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.css"), ".a { width: 150px; }")

	result, err := Run(Config{SourceDir: dir, Mode: ModeRem}, newConverter(t), nil)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, []string{filepath.Join(dir, "app.rem.css")}, result.Files[0].Outputs)
	assert.Equal(t, ".a {\n  width: 2rem;\n}\n", readFile(t, filepath.Join(dir, "app.rem.css")))

	assert.NoFileExists(t, filepath.Join(dir, "app.2x.css"))
}

func TestRunModeThree(t *testing.T) {
	tests := []struct {
		name   string
		dpr    float64
		output string
		want   string
	}{
		{name: "default dpr", dpr: 0, output: "app.2x.css", want: ".a {\n  width: 10px;\n}\n"},
		{name: "dpr 3", dpr: 3, output: "app.3x.css", want: ".a {\n  width: 15px;\n}\n"},
		{name: "fractional dpr", dpr: 1.5, output: "app.1.5x.css", want: ".a {\n  width: 7.5px;\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "app.css"), ".a { width: 10px; }")

			result, err := Run(Config{SourceDir: dir, Mode: ModeThree, Dpr: tt.dpr}, newConverter(t), nil)
			require.NoError(t, err)
			require.Len(t, result.Files, 1)
			assert.Equal(t, []string{filepath.Join(dir, tt.output)}, result.Files[0].Outputs)
			assert.Equal(t, tt.want, readFile(t, filepath.Join(dir, tt.output)))
		})
	}
}

func TestRunOutputDirMirrorsLayout(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "src")
	outDir := filepath.Join(dir, "out")
	writeFile(t, filepath.Join(srcDir, "pages", "home.css"), ".a { width: 75px; }")

	result, err := Run(Config{SourceDir: srcDir, OutputDir: outDir, Mode: ModeRem}, newConverter(t), nil)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	want := filepath.Join(outDir, "pages", "home.rem.css")
	assert.Equal(t, []string{want}, result.Files[0].Outputs)
	assert.FileExists(t, want)
	assert.NoFileExists(t, filepath.Join(srcDir, "pages", "home.rem.css"))
}

func TestRunSkipsGeneratedOutputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.css"), ".a { width: 75px; }")
	conv := newConverter(t)

	_, err := Run(Config{SourceDir: dir}, conv, nil)
	require.NoError(t, err)

	// Second run sees the four outputs of the first one and leaves them alone
	result, err := Run(Config{SourceDir: dir}, conv, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, result.FilesDiscovered)
	assert.Equal(t, 4, result.FilesSkipped)
	assert.Len(t, result.Files, 1)
}

func TestRunSkipsFractionalDprOutputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.css"), ".a { width: 10px; }")
	conv := newConverter(t)
	config := Config{SourceDir: dir, Mode: ModeThree, Dpr: 1.5}

	_, err := Run(config, conv, nil)
	require.NoError(t, err)

	result, err := Run(config, conv, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.FilesDiscovered)
	assert.Equal(t, 1, result.FilesSkipped)
	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join(dir, "a.css"), result.Files[0].Source)

	assert.NoFileExists(t, filepath.Join(dir, "a.1.5x.1.5x.css"))
}

func TestRunCollectsFileErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.css")
	bad := filepath.Join(dir, "bad.css")
	writeFile(t, good, ".a { width: 75px; }")
	writeFile(t, bad, ".a { width: 75px;")

	core, logs := observer.New(zap.DebugLevel)
	result, err := Run(Config{SourceDir: dir, Mode: ModeRem}, newConverter(t), zap.New(core))
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	var parseErr *px2rem.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "missing '}'", parseErr.Message)

	assert.Equal(t, 1, result.Converted())
	assert.Equal(t, 1, result.Failed())
	assert.FileExists(t, filepath.Join(dir, "good.rem.css"))
	assert.NoFileExists(t, filepath.Join(dir, "bad.rem.css"))

	assert.Equal(t, 1, logs.FilterMessage("Conversion failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("Converted").Len())
}

func TestRunInvalidMode(t *testing.T) {
	_, err := Run(Config{SourceDir: t.TempDir(), Mode: "bogus"}, newConverter(t), nil)
	require.Error(t, err)
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"rem", "three", "all"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}

	_, err := ParseMode("px")
	require.Error(t, err)
}

func TestDprSuffix(t *testing.T) {
	assert.Equal(t, "1x", dprSuffix(1))
	assert.Equal(t, "2x", dprSuffix(2))
	assert.Equal(t, "1.5x", dprSuffix(1.5))
}
