package invalidtable

import (
	"fmt"
	"regexp"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// validTableRe matches the table names robot recognizes, singular or
// plural, with the optional "test"/"user" prefixes.
var validTableRe = regexp.MustCompile(`(?i)^(settings?|metadata|(test )?cases?|tasks?|(user )?keywords?|variables?)`)

// Rule verifies that every table header names a table robot
// recognizes. A typo like "*** Test Case ***" vs "*** Tset Cases ***"
// silently discards the whole table, so a misspelled header deserves
// a report rather than a silent no-op.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "InvalidTable" }

// Level implements rule.Rule.
func (r *Rule) Level() rule.Level { return rule.SuiteLevel }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Warning }

// CheckSuite implements rule.SuiteRule.
func (r *Rule) CheckSuite(s *lint.Suite) []lint.Violation {
	var violations []lint.Violation
	for _, table := range s.Tables {
		if !validTableRe.MatchString(table.Name) {
			violations = append(violations, lint.Violation{
				Line:    table.Line,
				Message: fmt.Sprintf("unknown table name '%s'", table.Name),
			})
		}
	}
	return violations
}
