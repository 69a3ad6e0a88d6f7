package rule

import (
	"fmt"
	"testing"

	"github.com/guykisel/robotframework-lint/internal/lint"
)

// tunableRule is a Configurable TestCaseRule used to verify cloning.
type tunableRule struct {
	Max int
}

func (r *tunableRule) Name() string                   { return "Tunable" }
func (r *tunableRule) Level() Level                   { return TestCaseLevel }
func (r *tunableRule) DefaultSeverity() lint.Severity { return lint.Warning }

func (r *tunableRule) CheckTestCase(_ *lint.TestCase) []lint.Violation { return nil }

func (r *tunableRule) ApplySettings(settings map[string]any) error {
	for k, v := range settings {
		if k != "max" {
			return fmt.Errorf("unknown setting %q", k)
		}
		n, ok := v.(int)
		if !ok {
			return fmt.Errorf("max must be an integer, got %T", v)
		}
		r.Max = n
	}
	return nil
}

func (r *tunableRule) DefaultSettings() map[string]any { return map[string]any{"max": 10} }
func (r *tunableRule) PrimaryParam() string            { return "max" }

func TestCloneRule_ConfigurableGetsDefaults(t *testing.T) {
	original := &tunableRule{Max: 99} // configured away from default

	clone := CloneRule(original)
	tr, ok := clone.(*tunableRule)
	if !ok {
		t.Fatalf("clone is %T, want *tunableRule", clone)
	}
	if tr == original {
		t.Fatal("clone is the same instance as the original")
	}
	if tr.Max != 10 {
		t.Errorf("clone Max = %d, want default 10", tr.Max)
	}
}

func TestCloneRule_MutatingCloneLeavesOriginal(t *testing.T) {
	original := &stubSuiteRule{name: "Immutable", severity: lint.Error}

	clone := CloneRule(original).(*stubSuiteRule)
	clone.severity = lint.Warning

	if original.severity != lint.Error {
		t.Error("mutating the clone changed the original rule")
	}
}
