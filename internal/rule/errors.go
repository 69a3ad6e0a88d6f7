package rule

import "fmt"

// DuplicateRuleError reports a name registered twice.
type DuplicateRuleError struct {
	Name string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("rule %q is already registered", e.Name)
}

// UnknownRuleError reports a lookup for a rule that is not in the
// registry. Surfaced to the user when a --configure, --ignore,
// --warning or --error directive names a nonexistent rule.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.Name)
}
