package requiresuitedocumentation

import (
	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule verifies that a suite has a Documentation setting.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "RequireSuiteDocumentation" }

// Level implements rule.Rule.
func (r *Rule) Level() rule.Level { return rule.SuiteLevel }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Warning }

// CheckSuite implements rule.SuiteRule.
func (r *Rule) CheckSuite(s *lint.Suite) []lint.Violation {
	if s.Documentation != "" {
		return nil
	}
	return []lint.Violation{{
		Line:    s.Line,
		Message: "no suite documentation",
	}}
}
