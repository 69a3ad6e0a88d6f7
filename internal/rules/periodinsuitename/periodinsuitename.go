package periodinsuitename

import (
	"fmt"
	"strings"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule warns about periods in the suite name. Robot uses "." as a
// path separator in the longname of a suite, so a "." in the name
// itself leads to ambiguity.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "PeriodInSuiteName" }

// Level implements rule.Rule.
func (r *Rule) Level() rule.Level { return rule.SuiteLevel }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Warning }

// CheckSuite implements rule.SuiteRule.
func (r *Rule) CheckSuite(s *lint.Suite) []lint.Violation {
	if !strings.Contains(s.Name, ".") {
		return nil
	}
	return []lint.Violation{{
		Line:    s.Line,
		Message: fmt.Sprintf("'.' in suite name '%s'", s.Name),
	}}
}
