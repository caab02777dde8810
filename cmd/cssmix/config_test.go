package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssmix"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssmix.yaml")
	configContent := `
verbose: true
source: custom/css
output-dir: custom/output
include:
  - "layers/**/*.css"
properties:
  - background
strict: true
output-format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "custom/css", k.String("source"))
	assert.Equal(t, "custom/output", k.String("output-dir"))
	assert.True(t, k.Bool("strict"))
	assert.Equal(t, "json", k.String("output-format"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config; should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssmix.yaml"))

	config := buildConfig()
	assert.Equal(t, "web/styles", config.SourceDir)
	assert.Equal(t, "public/css", config.OutputDir)
	assert.Equal(t, []string{"**/*.css"}, config.Includes)
	assert.Equal(t, cssmix.DefaultProperties, config.Properties)
	assert.NotNil(t, config.Logger)
}

func TestBuildConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssmix.yaml")
	configContent := `
source: src/css
output-dir: dist/css
include:
  - "**/*.css"
  - "vendor/*.css"
properties:
  - background-image
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildConfig()
	assert.Equal(t, "src/css", config.SourceDir)
	assert.Equal(t, "dist/css", config.OutputDir)
	assert.Equal(t, []string{"**/*.css", "vendor/*.css"}, config.Includes)
	assert.Equal(t, []string{"background-image"}, config.Properties)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssmix.yaml")
	configContent := `
output-dir: from-file
strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("CSSMIX_OUTPUT_DIR", "from-env")
	t.Setenv("CSSMIX_STRICT", "true")
	t.Setenv("CSSMIX_INCLUDE", "a/*.css, b/*.css")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("output-dir"))
	assert.True(t, k.Bool("strict"))

	config := buildConfig()
	assert.Equal(t, "from-env", config.OutputDir)
	assert.Equal(t, []string{"a/*.css", "b/*.css"}, config.Includes)
}

func TestBuildReportOptions_Defaults(t *testing.T) {
	resetKoanf()

	opts := buildReportOptions()
	assert.False(t, opts.UseColors)
	assert.True(t, opts.PrintLines)
	assert.True(t, opts.PrintLinterName)
}

func TestGetHelpers(t *testing.T) {
	resetKoanf()

	// No keys set - should return defaults
	assert.Equal(t, "default", getString("missing", "default"))
	assert.Equal(t, []string{"x"}, getStrings("missing", []string{"x"}))
	assert.False(t, getBool("missing", false))
	assert.True(t, getBool("missing", true))

	require.NoError(t, k.Set("empty-list", ""))
	assert.Equal(t, []string{"x"}, getStrings("empty-list", []string{"x"}))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Empty(t, splitList(""))
}
