package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/cssmix"
)

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputIssues shows issues in golangci-lint format plus a short summary
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat maps a flag value to a format. Unknown values fall
// back to issues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *cssmix.ExpandResult, format OutputFormat, opts Options) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)
	default:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
		return nil
	}
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues       int `json:"total_issues"`
	Errors            int `json:"errors"`
	Warnings          int `json:"warnings"`
	FilesScanned      int `json:"files_scanned"`
	FilesWritten      int `json:"files_written"`
	GradientsFound    int `json:"gradients_found"`
	GradientsExpanded int `json:"gradients_expanded"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the result as indented JSON
func WriteJSON(w io.Writer, result *cssmix.ExpandResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts ExpandResult to JSONOutput
func buildJSONOutput(result *cssmix.ExpandResult) JSONOutput {
	var errors, warnings int
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		switch issue.Severity {
		case cssmix.SeverityError:
			errors++
		case cssmix.SeverityWarning:
			warnings++
		}

		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	resultWarnings := result.Warnings
	if resultWarnings == nil {
		resultWarnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:       len(result.Issues),
			Errors:            errors,
			Warnings:          warnings,
			FilesScanned:      result.FilesScanned,
			FilesWritten:      result.FilesWritten,
			GradientsFound:    result.GradientsFound,
			GradientsExpanded: result.GradientsExpanded,
		},
		Issues:   jsonIssues,
		Warnings: resultWarnings,
	}
}
