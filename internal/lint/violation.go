package lint

// Violation represents a single lint finding.
type Violation struct {
	File     string
	Line     int
	RuleName string
	Severity Severity
	Message  string
}
