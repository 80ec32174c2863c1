package exec

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudposse/treegen/pkg/filesystem"
	"github.com/cloudposse/treegen/pkg/filetype"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExecuteGenerateFromMarkdown(t *testing.T) {
	work := t.TempDir()
	input := writeInput(t, work, "structure.md", "project/\n├── src/\n│   └── main.rs\n└── README.md\n")
	outDir := filepath.Join(work, "out")

	var out bytes.Buffer
	opts := &Options{OutDir: outDir, Mode: "0644"}
	err := executeGenerate(filesystem.NewOSFileSystem(), &out, []string{input}, opts)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "project", "src", "main.rs"))
	assert.FileExists(t, filepath.Join(outDir, "project", "README.md"))
	assert.Contains(t, out.String(), "Successfully generated the file tree")
	assert.Contains(t, out.String(), outDir)
}

func TestExecuteGenerateMergesInputs(t *testing.T) {
	work := t.TempDir()
	first := writeInput(t, work, "first.yaml", "README.md: \"from first\"\n")
	second := writeInput(t, work, "second.json", `{"README.md": "from second"}`)
	outDir := filepath.Join(work, "out")

	var out bytes.Buffer
	opts := &Options{OutDir: outDir, Mode: "0644"}
	err := executeGenerate(filesystem.NewOSFileSystem(), &out, []string{first, second}, opts)
	require.NoError(t, err)

	// Both inputs declare README.md; the one processed last wins on disk.
	data, err := os.ReadFile(filepath.Join(outDir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "from second", string(data))
}

func TestExecuteGenerateDryRun(t *testing.T) {
	work := t.TempDir()
	input := writeInput(t, work, "structure.yaml", "project:\n  README.md: hello\n")
	outDir := filepath.Join(work, "out")

	var out bytes.Buffer
	opts := &Options{OutDir: outDir, DryRun: true, Verbose: true, Mode: "0644"}
	err := executeGenerate(filesystem.NewOSFileSystem(), &out, []string{input}, opts)
	require.NoError(t, err)

	assert.NoDirExists(t, outDir, "dry-run must not create the output directory")
	assert.Contains(t, out.String(), "[Dry-Run] Create file: "+filepath.Join(outDir, "project", "README.md"))
	assert.Contains(t, out.String(), "Dry-run complete")
}

func TestExecuteGenerateCleanRemovesExistingOutput(t *testing.T) {
	work := t.TempDir()
	input := writeInput(t, work, "structure.yaml", "fresh.txt: \"\"\n")

	outDir := filepath.Join(work, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	stale := filepath.Join(outDir, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	var out bytes.Buffer
	opts := &Options{OutDir: outDir, Clean: true, Mode: "0644"}
	err := executeGenerate(filesystem.NewOSFileSystem(), &out, []string{input}, opts)
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(outDir, "fresh.txt"))
}

func TestExecuteGenerateMissingInput(t *testing.T) {
	work := t.TempDir()

	opts := &Options{OutDir: filepath.Join(work, "out"), Mode: "0644"}
	err := executeGenerate(filesystem.NewOSFileSystem(), &bytes.Buffer{}, []string{filepath.Join(work, "missing.yaml")}, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputNotFound)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestExecuteGenerateUnsupportedExtension(t *testing.T) {
	work := t.TempDir()
	input := writeInput(t, work, "structure.txt", "whatever")

	opts := &Options{OutDir: filepath.Join(work, "out"), Mode: "0644"}
	err := executeGenerate(filesystem.NewOSFileSystem(), &bytes.Buffer{}, []string{input}, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, filetype.ErrUnsupportedExtension)
}

func TestExecuteGenerateInvalidMode(t *testing.T) {
	work := t.TempDir()
	input := writeInput(t, work, "structure.yaml", "a: \"\"\n")

	opts := &Options{OutDir: filepath.Join(work, "out"), Mode: "banana"}
	err := executeGenerate(filesystem.NewOSFileSystem(), &bytes.Buffer{}, []string{input}, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFileMode)
}

func TestParseFileMode(t *testing.T) {
	tests := []struct {
		input    string
		expected os.FileMode
		wantErr  bool
	}{
		{input: "0644", expected: 0o644},
		{input: "0o644", expected: 0o644},
		{input: "755", expected: 0o755},
		{input: " 0600 ", expected: 0o600},
		{input: "", wantErr: true},
		{input: "banana", wantErr: true},
		{input: "0888", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseFileMode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFileMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}
