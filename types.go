package cssmix

import "github.com/charmbracelet/log"

// Config holds expander configuration
type Config struct {
	SourceDir  string      // "web/styles"
	OutputDir  string      // "public/css"; Expand mirrors SourceDir here
	Includes   []string    // ["**/*.css"]
	Properties []string    // declarations to rewrite (default: background, background-image)
	Logger     *log.Logger // nil disables logging
}

// DefaultProperties are the declarations Expand rewrites when
// Config.Properties is empty.
var DefaultProperties = []string{"background", "background-image"}

// ExpandResult contains expansion stats and issues
type ExpandResult struct {
	FilesScanned      int
	FilesSkipped      int // ignored by .gitignore
	FilesWritten      int
	GradientsFound    int
	GradientsExpanded int
	ErrorCount        int
	Issues            []Issue
	Warnings          []string
}

// FileResult is the outcome of rewriting a single stylesheet
type FileResult struct {
	Content           string
	GradientsFound    int
	GradientsExpanded int
	Issues            []Issue
}
