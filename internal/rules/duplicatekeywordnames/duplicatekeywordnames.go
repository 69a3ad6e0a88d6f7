package duplicatekeywordnames

import (
	"fmt"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule verifies that no two user keywords in one file share a name.
// Names are compared in normalized form, the same way testcase names
// are.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "DuplicateKeywordNames" }

// Level implements rule.Rule.
func (r *Rule) Level() rule.Level { return rule.SuiteLevel }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Error }

// CheckSuite implements rule.SuiteRule.
func (r *Rule) CheckSuite(s *lint.Suite) []lint.Violation {
	var violations []lint.Violation
	seen := make(map[string]bool, len(s.Keywords))

	for _, kw := range s.Keywords {
		name := lint.NormalizeName(kw.Name)
		if seen[name] {
			violations = append(violations, lint.Violation{
				Line:    kw.Line,
				Message: fmt.Sprintf("duplicate keyword name '%s'", kw.Name),
			})
		}
		seen[name] = true
	}
	return violations
}
