package toomanytestcases

import (
	"fmt"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func init() {
	rule.Register(&Rule{MaxTestCases: 10})
}

// Rule warns when a suite holds more than MaxTestCases testcases;
// large suites are usually better split by feature.
type Rule struct {
	MaxTestCases int
}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "TooManyTestCases" }

// Level implements rule.Rule.
func (r *Rule) Level() rule.Level { return rule.SuiteLevel }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Warning }

// ApplySettings implements rule.Configurable.
func (r *Rule) ApplySettings(settings map[string]any) error {
	for k, v := range settings {
		switch k {
		case "max_testcases":
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("max_testcases must be an integer, got %T", v)
			}
			if n < 1 {
				return fmt.Errorf("max_testcases must be at least 1, got %d", n)
			}
			r.MaxTestCases = n
		default:
			return fmt.Errorf("unknown setting %q", k)
		}
	}
	return nil
}

// DefaultSettings implements rule.Configurable.
func (r *Rule) DefaultSettings() map[string]any {
	return map[string]any{"max_testcases": 10}
}

// PrimaryParam implements rule.Configurable.
func (r *Rule) PrimaryParam() string { return "max_testcases" }

// CheckSuite implements rule.SuiteRule.
func (r *Rule) CheckSuite(s *lint.Suite) []lint.Violation {
	if len(s.TestCases) <= r.MaxTestCases {
		return nil
	}
	return []lint.Violation{{
		Line:    s.Line,
		Message: fmt.Sprintf("too many testcases (%d > %d) in suite '%s'", len(s.TestCases), r.MaxTestCases, s.Name),
	}}
}
