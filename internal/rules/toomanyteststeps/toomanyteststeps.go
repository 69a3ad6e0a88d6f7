package toomanyteststeps

import (
	"fmt"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func init() {
	rule.Register(&Rule{MaxSteps: 10})
}

// Rule flags testcases with more than MaxSteps steps. A testcase with
// exactly MaxSteps steps is fine; the comparison is strictly greater.
type Rule struct {
	MaxSteps int
}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "TooManyTestSteps" }

// Level implements rule.Rule.
func (r *Rule) Level() rule.Level { return rule.TestCaseLevel }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Error }

// ApplySettings implements rule.Configurable.
func (r *Rule) ApplySettings(settings map[string]any) error {
	for k, v := range settings {
		switch k {
		case "max_steps":
			n, ok := toInt(v)
			if !ok {
				return fmt.Errorf("max_steps must be an integer, got %T", v)
			}
			if n < 1 {
				return fmt.Errorf("max_steps must be at least 1, got %d", n)
			}
			r.MaxSteps = n
		default:
			return fmt.Errorf("unknown setting %q", k)
		}
	}
	return nil
}

// DefaultSettings implements rule.Configurable.
func (r *Rule) DefaultSettings() map[string]any {
	return map[string]any{"max_steps": 10}
}

// PrimaryParam implements rule.Configurable.
func (r *Rule) PrimaryParam() string { return "max_steps" }

// CheckTestCase implements rule.TestCaseRule.
func (r *Rule) CheckTestCase(tc *lint.TestCase) []lint.Violation {
	if len(tc.Steps) <= r.MaxSteps {
		return nil
	}
	return []lint.Violation{{
		Line:    tc.Line,
		Message: fmt.Sprintf("testcase '%s' has too many steps (%d > %d)", tc.Name, len(tc.Steps), r.MaxSteps),
	}}
}

// toInt converts a value to int. Supports int and int64 (YAML decodes
// small numbers as int).
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
