package duplicatetestnames

import (
	"fmt"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule verifies that no two testcases in one suite share a name.
// Names are normalized before comparison, so "Smoke Test",
// "Smoke_Test" and "SmokeTest" all collide, matching how robot
// resolves them.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "DuplicateTestNames" }

// Level implements rule.Rule.
func (r *Rule) Level() rule.Level { return rule.SuiteLevel }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Error }

// CheckSuite implements rule.SuiteRule.
func (r *Rule) CheckSuite(s *lint.Suite) []lint.Violation {
	var violations []lint.Violation
	seen := make(map[string]bool, len(s.TestCases))

	for _, tc := range s.TestCases {
		name := lint.NormalizeName(tc.Name)
		if seen[name] {
			violations = append(violations, lint.Violation{
				Line:    tc.Line,
				Message: fmt.Sprintf("duplicate testcase name '%s'", tc.Name),
			})
		}
		seen[name] = true
	}
	return violations
}
