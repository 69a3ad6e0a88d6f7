package requiretestdocumentation

import (
	"fmt"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule verifies that a testcase has a [Documentation] setting.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "RequireTestDocumentation" }

// Level implements rule.Rule.
func (r *Rule) Level() rule.Level { return rule.TestCaseLevel }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Warning }

// CheckTestCase implements rule.TestCaseRule.
func (r *Rule) CheckTestCase(tc *lint.TestCase) []lint.Violation {
	if tc.Documentation != "" {
		return nil
	}
	return []lint.Violation{{
		Line:    tc.Line,
		Message: fmt.Sprintf("no documentation for testcase '%s'", tc.Name),
	}}
}
