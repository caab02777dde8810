package cssmix

// Issue represents a single problem found in a stylesheet, in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "gradient"
	Text        string   `json:"Text"`        // "invalid gradient direction \"to the moon\""
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of stylesheet with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/hero.css"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 21 (1-based, start of linear-gradient)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LinterName tags every issue reported by the expander
const LinterName = "gradient"

// Issue message templates
const (
	IssueInvalidGradient = "invalid linear-gradient: %v"
	IssueMultiLine       = "linear-gradient spans several lines and was left unchanged"
	IssueLayered         = "layered background with linear-gradient was left unchanged"
	IssueUnrecognized    = "linear-gradient outside a recognised declaration was left unchanged"
)
