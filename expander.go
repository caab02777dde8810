package cssmix

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"go.uber.org/multierr"
)

// declPattern matches a single-line declaration: indent, property, value and
// an optional terminating semicolon.
var declPattern = regexp.MustCompile(`^(\s*)([A-Za-z-]+)\s*:\s*([^;]*?)\s*;?\s*$`)

// ErrNoOutputDir is returned by Expand when Config.OutputDir is empty
var ErrNoOutputDir = errors.New("output directory is required")

// Expand rewrites the stylesheets matched by config into config.OutputDir.
//
// Every stylesheet is mirrored, changed or not. Read and write failures do
// not stop the run; they are combined into the returned error alongside a
// result describing the files that did succeed.
func Expand(ctx context.Context, config Config) (*ExpandResult, error) {
	if config.OutputDir == "" {
		return nil, ErrNoOutputDir
	}
	return run(ctx, config, true)
}

// Check scans the stylesheets matched by config and reports issues without
// writing anything.
func Check(ctx context.Context, config Config) (*ExpandResult, error) {
	return run(ctx, config, false)
}

func run(ctx context.Context, config Config, write bool) (*ExpandResult, error) {
	logger := loggerOrDiscard(config.Logger)
	result := &ExpandResult{}

	// 1. Scan stylesheets
	files, stats, err := scanStylesheets(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped
	logger.Debug("found stylesheets", "count", len(files), "skipped", stats.FilesSkipped)

	// 2. Rewrite each file
	var errs error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, multierr.Append(errs, err)
		}

		logger.Debug("processing", "file", file)

		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("read %s: %w", file, err))
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to read %s: %v", file, err))
			continue
		}

		fr := ExpandString(string(content), file, config.Properties)
		result.GradientsFound += fr.GradientsFound
		result.GradientsExpanded += fr.GradientsExpanded
		result.Issues = append(result.Issues, fr.Issues...)

		if !write {
			continue
		}

		// 3. Mirror into the output directory
		target, err := outputPath(config.SourceDir, config.OutputDir, file)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := writeFile(target, fr.Content); err != nil {
			errs = multierr.Append(errs, err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to write %s: %v", target, err))
			continue
		}
		result.FilesWritten++
		if fr.GradientsExpanded > 0 {
			logger.Info("expanded", "file", target, "gradients", fr.GradientsExpanded)
		}
	}

	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			result.ErrorCount++
		}
	}

	return result, errs
}

// ExpandString rewrites one stylesheet in memory. filename is only used for
// issue positions. A nil properties slice means DefaultProperties.
//
// A declaration alone on its line is replaced by three lines at the same
// indentation. Declarations sharing a line with others, as in one-line rules
// or minified CSS, are replaced in place by three declarations joined with
// "; ".
func ExpandString(content, filename string, properties []string) FileResult {
	if len(properties) == 0 {
		properties = DefaultProperties
	}
	wanted := make(map[string]bool, len(properties))
	for _, p := range properties {
		wanted[strings.ToLower(p)] = true
	}

	newline := "\n"
	if strings.Contains(content, "\r\n") {
		newline = "\r\n"
	}
	lines := strings.Split(content, newline)

	var fr FileResult
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		m := declPattern.FindStringSubmatch(line)
		if m == nil || !wanted[strings.ToLower(m[2])] || strings.ContainsAny(m[3], "{}") {
			if strings.Contains(strings.ToLower(line), linearGradientFunc) {
				line = expandInline(line, i+1, filename, wanted, &fr)
			}
			out = append(out, line)
			continue
		}
		indent, property, value := m[1], m[2], m[3]

		if _, _, ok := findLinearGradient(value); !ok || alreadyExpanded(out) {
			out = append(out, line)
			continue
		}

		pos := IssuePos{Filename: filename, Line: i + 1, Column: strings.Index(line, value) + 1}
		decls, ok := expandDeclaration(property, value, line, pos, &fr)
		if !ok {
			out = append(out, line)
			continue
		}
		for _, d := range decls {
			out = append(out, indent+d+";")
		}
	}

	fr.Content = strings.Join(out, newline)
	return fr
}

// expandDeclaration expands one declaration value holding a linear-gradient.
// pos.Column is the column of the value. It returns the replacement
// declarations without terminating semicolons, or records an issue in fr and
// returns false.
func expandDeclaration(property, value, line string, pos IssuePos, fr *FileResult) ([]string, bool) {
	start, end, ok := findLinearGradient(value)
	if !ok {
		return nil, false
	}
	fr.GradientsFound++
	pos.Column += start

	if end < 0 {
		fr.Issues = append(fr.Issues, newIssue(SeverityWarning, IssueMultiLine, pos, line))
		return nil, false
	}

	important := ""
	if rest := strings.TrimSpace(value[:start] + value[end:]); rest != "" {
		// "! important" is legal CSS
		if !strings.EqualFold(strings.Join(strings.Fields(rest), ""), "!important") {
			fr.Issues = append(fr.Issues, newIssue(SeverityWarning, IssueLayered, pos, line))
			return nil, false
		}
		important = " !important"
	}

	decl, err := expandGradient(value[start:end])
	if err != nil {
		fr.Issues = append(fr.Issues, newIssue(SeverityError, fmt.Sprintf(IssueInvalidGradient, err), pos, line))
		return nil, false
	}

	lines := decl.Lines(property)
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, ";") + important
	}
	fr.GradientsExpanded++
	return lines, true
}

// expandInline rewrites the declarations of a line that holds more than a
// single declaration. A gradient found outside any declaration is reported.
func expandInline(line string, lineNo int, filename string, wanted map[string]bool, fr *FileResult) string {
	code, spans := lineDeclarations(line)

	var b strings.Builder
	last := 0
	covered := false
	for i, span := range spans {
		if _, _, ok := findLinearGradient(span.value); !ok {
			continue
		}
		covered = true
		if !wanted[strings.ToLower(span.property)] {
			continue
		}
		// a legacy declaration right before means an earlier run produced this one
		if i > 0 && strings.Contains(strings.ToLower(spans[i-1].value), "-webkit-linear-gradient(") {
			continue
		}

		pos := IssuePos{Filename: filename, Line: lineNo, Column: span.valueStart + 1}
		decls, ok := expandDeclaration(span.property, span.value, line, pos, fr)
		if !ok {
			continue
		}
		b.WriteString(line[last:span.start])
		b.WriteString(strings.Join(decls, "; "))
		last = span.end
	}

	if !covered {
		if start, _, ok := findLinearGradient(code); ok {
			pos := IssuePos{Filename: filename, Line: lineNo, Column: start + 1}
			fr.Issues = append(fr.Issues, newIssue(SeverityWarning, IssueUnrecognized, pos, line))
		}
	}

	if last == 0 {
		return line
	}
	b.WriteString(line[last:])
	return b.String()
}

func expandGradient(text string) (Declarations, error) {
	g, err := ParseLinearGradient(text)
	if err != nil {
		return Declarations{}, err
	}
	return g.Declarations()
}

// alreadyExpanded reports whether the previous non-blank line is a legacy
// gradient, which means the current declaration was produced by an earlier run.
func alreadyExpanded(out []string) bool {
	for i := len(out) - 1; i >= 0; i-- {
		prev := strings.TrimSpace(out[i])
		if prev == "" {
			continue
		}
		return strings.Contains(strings.ToLower(prev), "-webkit-linear-gradient(")
	}
	return false
}

func newIssue(severity, text string, pos IssuePos, line string) Issue {
	return Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{line},
		Pos:         pos,
	}
}

// outputPath maps a source file into the output directory
func outputPath(sourceDir, outputDir, file string) (string, error) {
	rel, err := filepath.Rel(sourceDir, file)
	if err != nil {
		return "", fmt.Errorf("relative path for %s: %w", file, err)
	}
	if escapesDir(rel) {
		return "", fmt.Errorf("%s is outside source directory %s", file, sourceDir)
	}
	return filepath.Join(outputDir, rel), nil
}

// escapesDir reports whether a filepath.Rel result leaves its base directory.
// Names that merely start with ".." (like "..drafts") stay inside.
func escapesDir(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func loggerOrDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}
