package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mcncl/jsonpp/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SimpleJSON(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	jsonData := `{"name": "John", "age": 30, "active": true}`

	tmpFile, err := os.CreateTemp("", "test_input_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(jsonData)
	require.NoError(t, err)
	_ = tmpFile.Close()

	CLI.Input = tmpFile.Name()

	ctx := &Context{
		Debug:  false,
		Config: config.NewConfig(),
	}
	err = run(ctx)
	require.NoError(t, err)
}

func TestRun_WithOutputFile(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	jsonData := `{"id":1,"user":{"email":"test@example.com"}}`

	tmpInput, err := os.CreateTemp("", "test_input_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpInput.Name()) }()

	_, err = tmpInput.WriteString(jsonData)
	require.NoError(t, err)
	_ = tmpInput.Close()

	tmpOutput, err := os.CreateTemp("", "test_output_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpOutput.Name()) }()
	_ = tmpOutput.Close()

	CLI.Input = tmpInput.Name()
	CLI.Output = tmpOutput.Name()

	ctx := &Context{
		Debug:  false,
		Config: config.NewConfig(),
	}
	err = run(ctx)
	require.NoError(t, err)

	// Verify output file was created and contains pretty-printed JSON
	outputContent, err := os.ReadFile(tmpOutput.Name())
	require.NoError(t, err)

	outputStr := string(outputContent)
	assert.Contains(t, outputStr, `"id": 1`)
	assert.Contains(t, outputStr, `  "user": {`)
	assert.Contains(t, outputStr, `    "email": "test@example.com"`)
}

func TestRun_CompactOutput(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	tmpInput, err := os.CreateTemp("", "test_input_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpInput.Name()) }()

	_, err = tmpInput.WriteString("{\n  \"a\": 1,\n  \"b\": [true, null]\n}")
	require.NoError(t, err)
	_ = tmpInput.Close()

	tmpOutput, err := os.CreateTemp("", "test_output_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpOutput.Name()) }()
	_ = tmpOutput.Close()

	CLI.Input = tmpInput.Name()
	CLI.Output = tmpOutput.Name()

	cfg := config.NewConfig()
	cfg.Output.Compact = true
	ctx := &Context{
		Debug:  false,
		Config: cfg,
	}
	err = run(ctx)
	require.NoError(t, err)

	outputContent, err := os.ReadFile(tmpOutput.Name())
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[true,null]}`+"\n", string(outputContent))
}

func TestRun_KeyCaseRewrite(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	tmpInput, err := os.CreateTemp("", "test_input_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpInput.Name()) }()

	_, err = tmpInput.WriteString(`{"firstName":"Ada","lastName":"Lovelace"}`)
	require.NoError(t, err)
	_ = tmpInput.Close()

	tmpOutput, err := os.CreateTemp("", "test_output_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpOutput.Name()) }()
	_ = tmpOutput.Close()

	CLI.Input = tmpInput.Name()
	CLI.Output = tmpOutput.Name()

	cfg := config.NewConfig()
	cfg.Output.Compact = true
	cfg.Output.KeyCase = config.KeyCaseSnake
	ctx := &Context{
		Debug:  false,
		Config: cfg,
	}
	err = run(ctx)
	require.NoError(t, err)

	outputContent, err := os.ReadFile(tmpOutput.Name())
	require.NoError(t, err)
	assert.Equal(t, `{"first_name":"Ada","last_name":"Lovelace"}`+"\n", string(outputContent))
}

func TestRun_InvalidJSON(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	tmpFile, err := os.CreateTemp("", "test_invalid_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(`{"invalid": json}`)
	require.NoError(t, err)
	_ = tmpFile.Close()

	CLI.Input = tmpFile.Name()

	ctx := &Context{
		Debug:  false,
		Config: config.NewConfig(),
	}
	err = run(ctx)
	assert.Error(t, err)
}

func TestRun_WriteWithoutFiles(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Paths = nil
	CLI.Write = true

	ctx := &Context{
		Debug:  false,
		Config: config.NewConfig(),
	}
	err := run(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no files to rewrite")
}

func TestRunBatch_WriteInPlace(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte(`{"x":1}`), 0644))
	require.NoError(t, os.WriteFile(b, []byte(`{  "y"  :  [true]  }`), 0644))

	CLI.Paths = []string{a, b}
	CLI.Write = true

	cfg := config.NewConfig()
	cfg.Output.Compact = true
	ctx := &Context{
		Debug:  false,
		Config: cfg,
	}
	err := run(ctx)
	require.NoError(t, err)

	contentA, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`+"\n", string(contentA))

	contentB, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, `{"y":[true]}`+"\n", string(contentB))
}

func TestRunBatch_ReportsFailedFiles(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"ok":true}`), 0644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"ok":`), 0644))

	CLI.Paths = []string{good, bad}
	CLI.Write = true

	ctx := &Context{
		Debug:  false,
		Config: config.NewConfig(),
	}
	err := run(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")

	// The bad file is left untouched.
	content, readErr := os.ReadFile(bad)
	require.NoError(t, readErr)
	assert.Equal(t, `{"ok":`, string(content))
}

func TestReadInput_FromStdin(t *testing.T) {
	// Save original CLI state and stdin
	originalCLI := CLI
	originalStdin := os.Stdin
	defer func() {
		CLI = originalCLI
		os.Stdin = originalStdin
	}()

	// Clear input file to force stdin reading
	CLI.Input = ""

	jsonData := `{"item": "apple"}`
	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		defer func() { _ = w.Close() }()
		_, _ = w.WriteString(jsonData)
	}()

	os.Stdin = r
	defer func() { _ = r.Close() }()

	text, err := readInput()
	require.NoError(t, err)
	assert.Equal(t, jsonData, text)
}

func TestReadInput_NonExistentFile(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Input = "/non/existent/file.json"

	_, err := readInput()
	assert.Error(t, err)
}

func TestWriteOutput_ToFile(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	tmpFile, err := os.CreateTemp("", "test_write_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()
	_ = tmpFile.Close()

	CLI.Output = tmpFile.Name()

	err = writeOutput(`{"done":true}`)
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile.Name())
	require.NoError(t, err)
	assert.Equal(t, `{"done":true}`+"\n", string(content))
}

func TestWriteOutput_FileError(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Output = "/non/existent/dir/output.json"

	err := writeOutput(`{}`)
	assert.Error(t, err)
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Config = ""
	CLI.Indent = 4
	CLI.Compact = true
	CLI.KeyCase = "camel"
	CLI.Jobs = 2

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.True(t, cfg.Output.Compact)
	assert.Equal(t, config.KeyCaseCamel, cfg.Output.KeyCase)
	assert.Equal(t, 2, cfg.Batch.Jobs)
}

func TestLoadConfig_FromFile(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	path := filepath.Join(t.TempDir(), "jsonpp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  indent: 8\n"), 0644))

	CLI.Config = path
	CLI.Indent = -1

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Output.Indent)
}

func TestLoadConfig_InvalidKeyCaseFlag(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Config = ""
	CLI.Indent = -1
	CLI.KeyCase = "kebab"

	_, err := loadConfig()
	assert.Error(t, err)
}
