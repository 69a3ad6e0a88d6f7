package toomanyarguments

import (
	"fmt"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func init() {
	rule.Register(&Rule{MaxArgs: 10})
}

// Rule warns when a single step passes more than MaxArgs arguments to
// its keyword; such steps usually want a variable or a wrapper
// keyword.
type Rule struct {
	MaxArgs int
}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "TooManyArguments" }

// Level implements rule.Rule.
func (r *Rule) Level() rule.Level { return rule.StepLevel }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Warning }

// ApplySettings implements rule.Configurable.
func (r *Rule) ApplySettings(settings map[string]any) error {
	for k, v := range settings {
		switch k {
		case "max_args":
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("max_args must be an integer, got %T", v)
			}
			if n < 1 {
				return fmt.Errorf("max_args must be at least 1, got %d", n)
			}
			r.MaxArgs = n
		default:
			return fmt.Errorf("unknown setting %q", k)
		}
	}
	return nil
}

// DefaultSettings implements rule.Configurable.
func (r *Rule) DefaultSettings() map[string]any {
	return map[string]any{"max_args": 10}
}

// PrimaryParam implements rule.Configurable.
func (r *Rule) PrimaryParam() string { return "max_args" }

// CheckStep implements rule.StepRule.
func (r *Rule) CheckStep(st *lint.Step) []lint.Violation {
	if len(st.Args) <= r.MaxArgs {
		return nil
	}
	return []lint.Violation{{
		Line:    st.Line,
		Message: fmt.Sprintf("step '%s' has too many arguments (%d > %d)", st.Name, len(st.Args), r.MaxArgs),
	}}
}
