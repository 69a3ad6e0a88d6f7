// Package policy resolves the effective severity and configuration of
// each rule for one run from layered command-line and config-file
// directives.
package policy

import (
	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

// Wildcard targets every rule in a severity directive.
const Wildcard = "all"

// Directive overrides the severity of one rule, or of all rules.
type Directive struct {
	Rule     string // rule name or Wildcard
	Severity lint.Severity
}

// SeverityPolicy resolves the effective severity of a rule for this
// run. Built once at startup and read-only afterwards, so it may be
// shared across concurrent evaluations.
type SeverityPolicy struct {
	directives []Directive
}

// NewSeverityPolicy builds a policy from directives in supply order.
// Every named rule must exist in the registry; an unknown name fails
// with rule.UnknownRuleError before any file is scanned.
func NewSeverityPolicy(reg *rule.Registry, directives []Directive) (*SeverityPolicy, error) {
	for _, d := range directives {
		if d.Rule == Wildcard {
			continue
		}
		if _, err := reg.Get(d.Rule); err != nil {
			return nil, err
		}
	}
	ds := make([]Directive, len(directives))
	copy(ds, directives)
	return &SeverityPolicy{directives: ds}, nil
}

// Resolve returns the effective severity for a rule. A directive
// naming the rule beats a Wildcard directive regardless of supply
// order; among directives of equal specificity the last one wins.
// With no matching directive the rule's default severity applies.
func (p *SeverityPolicy) Resolve(rl rule.Rule) lint.Severity {
	var specific, wildcard *lint.Severity
	for i := range p.directives {
		d := p.directives[i]
		switch d.Rule {
		case rl.Name():
			specific = &d.Severity
		case Wildcard:
			wildcard = &d.Severity
		}
	}
	if specific != nil {
		return *specific
	}
	if wildcard != nil {
		return *wildcard
	}
	return rl.DefaultSeverity()
}
