package periodintestname

import (
	"fmt"
	"strings"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule warns about periods in a testcase name, which robot treats as
// path separators in the test's longname.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "PeriodInTestName" }

// Level implements rule.Rule.
func (r *Rule) Level() rule.Level { return rule.TestCaseLevel }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Warning }

// CheckTestCase implements rule.TestCaseRule.
func (r *Rule) CheckTestCase(tc *lint.TestCase) []lint.Violation {
	if !strings.Contains(tc.Name, ".") {
		return nil
	}
	return []lint.Violation{{
		Line:    tc.Line,
		Message: fmt.Sprintf("'.' in testcase name '%s'", tc.Name),
	}}
}
