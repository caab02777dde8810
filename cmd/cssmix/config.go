package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssmix"
	"github.com/yacobolo/cssmix/internal/report"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssmix.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence; defaults only fill keys nobody set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// CSSMIX_OUTPUT_DIR -> output-dir, CSSMIX_VERBOSE -> verbose
	if err := k.Load(env.Provider("CSSMIX_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSMIX_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig() cssmix.Config {
	return cssmix.Config{
		SourceDir:  getString("source", "web/styles"),
		OutputDir:  getString("output-dir", "public/css"),
		Includes:   getStrings("include", []string{"**/*.css"}),
		Properties: getStrings("properties", cssmix.DefaultProperties),
		Logger:     newLogger(getBool("verbose", false), getBool("quiet", false)),
	}
}

// buildReportOptions constructs reporter options from koanf state.
func buildReportOptions() report.Options {
	return report.Options{
		UseColors:       getBool("color", false),
		PrintLines:      getBool("print-lines", true),
		PrintLinterName: getBool("print-linter-name", true),
	}
}

func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

func getStrings(key string, defaultVal []string) []string {
	// env vars arrive as a single comma separated string
	if v, ok := k.Get(key).(string); ok {
		if list := splitList(v); len(list) > 0 {
			return list
		}
		return defaultVal
	}
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// splitList splits comma-separated values into a slice
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
