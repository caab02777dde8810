package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetKoanf()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
	return dir
}

func TestAngleCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"angle", "100grad", "--to", "deg"}, want: "90deg\n"},
		{args: []string{"angle", "180deg", "--to", "TURN"}, want: "0.5turn\n"},
		{args: []string{"angle", "0.25turn", "--to", "deg"}, want: "90deg\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[1], func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	_, err := execute(t, "angle", "45deg", "--to", "px")
	assert.Error(t, err)
}

func TestLegacyCommand(t *testing.T) {
	out, err := execute(t, "legacy", "to", "top", "right")
	require.NoError(t, err)
	assert.Equal(t, "bottom left\n", out)

	out, err = execute(t, "legacy", "42deg")
	require.NoError(t, err)
	assert.Equal(t, "48deg\n", out)

	_, err = execute(t, "legacy", "to", "the", "moon")
	assert.Error(t, err)
}

func TestGradientCommand(t *testing.T) {
	out, err := execute(t, "gradient", "--property", "background-image", "to right, #E47D7D 0%, #4FB4E8 100%")
	require.NoError(t, err)
	assert.Equal(t, "background-color: #E47D7D;\n"+
		"background-image: -webkit-linear-gradient(left, #E47D7D 0%, #4FB4E8 100%);\n"+
		"background-image: linear-gradient(to right, #E47D7D 0%, #4FB4E8 100%);\n", out)

	out, err = execute(t, "gradient", "--property", "background", "linear-gradient(#31B7D7, #EDAC7D)")
	require.NoError(t, err)
	assert.Contains(t, out, "background: -webkit-linear-gradient(-90deg, #31B7D7, #EDAC7D);\n")

	_, err = execute(t, "gradient", "--property", "background", "red")
	assert.Error(t, err)
}

func TestExpandAndCheckCommands(t *testing.T) {
	dir := chdirTemp(t)
	src := filepath.Join(dir, "styles")
	out := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.css"),
		[]byte(".a {\n  background: linear-gradient(to bottom, red, blue);\n}\n"), 0644))

	stdout, err := execute(t, "expand", "--source", src, "--output-dir", out, "--include", "*.css")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Expanded stylesheets into "+out)

	data, err := os.ReadFile(filepath.Join(out, "a.css"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "  background: -webkit-linear-gradient(top, red, blue);\n")

	stdout, err = execute(t, "check", "--source", src, "--include", "*.css", "--output-format", "json")
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	summary := report["summary"].(map[string]any)
	assert.InDelta(t, 1, summary["gradients_expanded"], 0)

	require.NoError(t, os.WriteFile(filepath.Join(src, "bad.css"),
		[]byte(".b {\n  background: linear-gradient(to the moon, red, blue);\n}\n"), 0644))
	_, err = execute(t, "check", "--source", src, "--include", "*.css", "--output-format", "issues")
	assert.ErrorIs(t, err, errCheckFailed)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	chdirTemp(t)

	_, err := execute(t, "init")
	require.NoError(t, err)

	// Verify file was created
	data, err := os.ReadFile(".cssmix.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "source: web/styles")
	assert.Contains(t, string(data), "output-dir: public/css")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdirTemp(t)

	// Create existing file
	require.NoError(t, os.WriteFile(".cssmix.yaml", []byte("existing"), 0644))

	_, err := execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, os.WriteFile(".cssmix.yaml", []byte("existing"), 0644))

	_, err := execute(t, "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(".cssmix.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "properties:")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cssmix dev\n", out)
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "cssmix")
		})
	}

	_, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}
