package lint

// Severity indicates how a rule's violations are reported.
type Severity string

// Severity levels. Ignore suppresses a rule entirely; a Violation
// handed to a formatter always carries Error or Warning.
const (
	Error   Severity = "error"
	Warning Severity = "warning"
	Ignore  Severity = "ignore"
)

// ParseSeverity converts a config-file string to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(s) {
	case Error, Warning, Ignore:
		return Severity(s), true
	}
	return "", false
}
