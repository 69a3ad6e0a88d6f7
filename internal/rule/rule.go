package rule

import "github.com/guykisel/robotframework-lint/internal/lint"

// Level is the structural node type a rule is invoked on.
type Level string

// Structural levels.
const (
	SuiteLevel    Level = "suite"
	TestCaseLevel Level = "testcase"
	StepLevel     Level = "step"
)

// Rule is a single lint rule bound to one structural level. Every rule
// additionally implements the check interface matching its Level
// (SuiteRule, TestCaseRule, or StepRule); the registry enforces this
// at registration time so the engine can dispatch without runtime
// type probing beyond a single assertion.
type Rule interface {
	Name() string
	Level() Level
	DefaultSeverity() lint.Severity
}

// SuiteRule is a Rule invoked once per suite node.
type SuiteRule interface {
	Rule
	CheckSuite(s *lint.Suite) []lint.Violation
}

// TestCaseRule is a Rule invoked once per testcase.
type TestCaseRule interface {
	Rule
	CheckTestCase(tc *lint.TestCase) []lint.Violation
}

// StepRule is a Rule invoked once per step.
type StepRule interface {
	Rule
	CheckStep(st *lint.Step) []lint.Violation
}

// Configurable is implemented by rules that have user-tunable settings.
type Configurable interface {
	ApplySettings(settings map[string]any) error
	DefaultSettings() map[string]any

	// PrimaryParam names the parameter set by the "Rule:value"
	// shorthand of --configure. Empty when the rule has no primary
	// parameter and only accepts the "Rule:param=value" form.
	PrimaryParam() string
}
