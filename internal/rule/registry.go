package rule

import "fmt"

// Registry holds a catalog of rules. Iteration order is registration
// order, so violation output is reproducible across runs.
type Registry struct {
	rules  []Rule
	byName map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Rule)}
}

// Add registers a rule. It fails with a DuplicateRuleError when the
// name is taken, and rejects rules whose declared Level does not match
// the check interface they implement.
func (r *Registry) Add(rl Rule) error {
	if _, exists := r.byName[rl.Name()]; exists {
		return &DuplicateRuleError{Name: rl.Name()}
	}
	if err := checkLevel(rl); err != nil {
		return err
	}
	r.rules = append(r.rules, rl)
	r.byName[rl.Name()] = rl
	return nil
}

// Get returns the rule with the given name, or an UnknownRuleError.
func (r *Registry) Get(name string) (Rule, error) {
	rl, ok := r.byName[name]
	if !ok {
		return nil, &UnknownRuleError{Name: name}
	}
	return rl, nil
}

// All returns a copy of the rules in registration order.
func (r *Registry) All() []Rule {
	result := make([]Rule, len(r.rules))
	copy(result, r.rules)
	return result
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// checkLevel verifies that the rule implements the check interface
// matching its declared level.
func checkLevel(rl Rule) error {
	switch rl.Level() {
	case SuiteLevel:
		if _, ok := rl.(SuiteRule); !ok {
			return fmt.Errorf("rule %q declares level %s but does not implement SuiteRule", rl.Name(), rl.Level())
		}
	case TestCaseLevel:
		if _, ok := rl.(TestCaseRule); !ok {
			return fmt.Errorf("rule %q declares level %s but does not implement TestCaseRule", rl.Name(), rl.Level())
		}
	case StepLevel:
		if _, ok := rl.(StepRule); !ok {
			return fmt.Errorf("rule %q declares level %s but does not implement StepRule", rl.Name(), rl.Level())
		}
	default:
		return fmt.Errorf("rule %q declares invalid level %q", rl.Name(), rl.Level())
	}
	return nil
}

var defaultRegistry = NewRegistry()

// Register adds a rule to the process-wide registry. It panics on
// error: rules register from init(), where a duplicate name or a
// level mismatch is a programmer error.
func Register(rl Rule) {
	if err := defaultRegistry.Add(rl); err != nil {
		panic(err)
	}
}

// Default returns the process-wide registry populated by init()
// registration.
func Default() *Registry {
	return defaultRegistry
}
