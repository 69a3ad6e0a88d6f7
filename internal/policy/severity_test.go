package policy

import (
	"errors"
	"testing"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

// plainRule is a minimal suite-level rule for policy tests.
type plainRule struct {
	name     string
	severity lint.Severity
}

func (r *plainRule) Name() string                   { return r.name }
func (r *plainRule) Level() rule.Level              { return rule.SuiteLevel }
func (r *plainRule) DefaultSeverity() lint.Severity { return r.severity }

func (r *plainRule) CheckSuite(_ *lint.Suite) []lint.Violation { return nil }

func newTestRegistry(t *testing.T, rules ...rule.Rule) *rule.Registry {
	t.Helper()
	reg := rule.NewRegistry()
	for _, rl := range rules {
		if err := reg.Add(rl); err != nil {
			t.Fatalf("Add(%s): %v", rl.Name(), err)
		}
	}
	return reg
}

func TestResolve_DefaultWithNoDirectives(t *testing.T) {
	rl := &plainRule{name: "RuleX", severity: lint.Warning}
	reg := newTestRegistry(t, rl)

	p, err := NewSeverityPolicy(reg, nil)
	if err != nil {
		t.Fatalf("NewSeverityPolicy: %v", err)
	}

	if got := p.Resolve(rl); got != lint.Warning {
		t.Errorf("Resolve = %v, want default %v", got, lint.Warning)
	}
}

func TestResolve_SpecificBeatsWildcardRegardlessOfOrder(t *testing.T) {
	ruleX := &plainRule{name: "RuleX", severity: lint.Warning}
	ruleY := &plainRule{name: "RuleY", severity: lint.Warning}
	reg := newTestRegistry(t, ruleX, ruleY)

	orders := [][]Directive{
		{{Rule: Wildcard, Severity: lint.Ignore}, {Rule: "RuleX", Severity: lint.Error}},
		{{Rule: "RuleX", Severity: lint.Error}, {Rule: Wildcard, Severity: lint.Ignore}},
	}

	for i, directives := range orders {
		p, err := NewSeverityPolicy(reg, directives)
		if err != nil {
			t.Fatalf("order %d: NewSeverityPolicy: %v", i, err)
		}

		if got := p.Resolve(ruleX); got != lint.Error {
			t.Errorf("order %d: RuleX resolved to %v, want %v", i, got, lint.Error)
		}
		if got := p.Resolve(ruleY); got != lint.Ignore {
			t.Errorf("order %d: RuleY resolved to %v, want %v", i, got, lint.Ignore)
		}
	}
}

func TestResolve_LastWinsAmongEqualSpecificity(t *testing.T) {
	rl := &plainRule{name: "RuleX", severity: lint.Warning}
	reg := newTestRegistry(t, rl)

	p, err := NewSeverityPolicy(reg, []Directive{
		{Rule: "RuleX", Severity: lint.Ignore},
		{Rule: "RuleX", Severity: lint.Error},
	})
	if err != nil {
		t.Fatalf("NewSeverityPolicy: %v", err)
	}

	if got := p.Resolve(rl); got != lint.Error {
		t.Errorf("Resolve = %v, want last directive %v", got, lint.Error)
	}
}

func TestNewSeverityPolicy_UnknownRule(t *testing.T) {
	reg := newTestRegistry(t, &plainRule{name: "RuleX", severity: lint.Warning})

	_, err := NewSeverityPolicy(reg, []Directive{{Rule: "Nonexistent", Severity: lint.Error}})

	var unknown *rule.UnknownRuleError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownRuleError, got %v", err)
	}
	if unknown.Name != "Nonexistent" {
		t.Errorf("unknown rule name = %q, want %q", unknown.Name, "Nonexistent")
	}
}

func TestResolve_IsPure(t *testing.T) {
	rl := &plainRule{name: "RuleX", severity: lint.Warning}
	reg := newTestRegistry(t, rl)

	p, err := NewSeverityPolicy(reg, []Directive{{Rule: Wildcard, Severity: lint.Error}})
	if err != nil {
		t.Fatalf("NewSeverityPolicy: %v", err)
	}

	first := p.Resolve(rl)
	for i := 0; i < 5; i++ {
		if got := p.Resolve(rl); got != first {
			t.Fatalf("Resolve changed between calls: %v then %v", first, got)
		}
	}
}
