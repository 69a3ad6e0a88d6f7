package policy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guykisel/robotframework-lint/internal/rule"
)

// InvalidConfigurationError reports a --configure directive or a
// config-file setting that cannot be applied: unknown rule or
// parameter, a value that fails type conversion, or a value outside
// the parameter's valid range.
type InvalidConfigurationError struct {
	Rule   string
	Param  string
	Value  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid configuration %s:%s=%s: %s", e.Rule, e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid configuration for rule %s: %s", e.Rule, e.Reason)
}

// ConfigureDirective is one parsed --configure value.
type ConfigureDirective struct {
	Rule  string
	Param string // empty selects the rule's primary parameter
	Value string
}

// ParseConfigure parses "RuleName:value" or "RuleName:param=value".
func ParseConfigure(s string) (ConfigureDirective, error) {
	name, rest, ok := strings.Cut(s, ":")
	if !ok || name == "" || rest == "" {
		return ConfigureDirective{}, &InvalidConfigurationError{
			Rule:   s,
			Reason: "expected RuleName:value or RuleName:param=value",
		}
	}

	if param, value, hasEq := strings.Cut(rest, "="); hasEq {
		return ConfigureDirective{Rule: name, Param: param, Value: value}, nil
	}
	return ConfigureDirective{Rule: name, Value: rest}, nil
}

// ConfigureRules produces the configured rule set for one run, in
// registry order. File settings (from the YAML config) are applied
// first, then CLI directives on top; repeated directives for the same
// (rule, parameter) pair apply last-wins. Rules without settings are
// returned as-is; configured rules are clones, so the registered
// prototypes stay untouched and the returned set is safe to reuse
// across every file of the run.
func ConfigureRules(reg *rule.Registry, fileSettings map[string]map[string]any, directives []ConfigureDirective) ([]rule.Rule, error) {
	overrides, err := collectOverrides(reg, directives)
	if err != nil {
		return nil, err
	}

	for name := range fileSettings {
		if _, err := reg.Get(name); err != nil {
			return nil, err
		}
	}

	var out []rule.Rule
	for _, rl := range reg.All() {
		settings := mergeSettings(fileSettings[rl.Name()], overrides[rl.Name()])
		if len(settings) == 0 {
			out = append(out, rl)
			continue
		}

		clone := rule.CloneRule(rl)
		c, ok := clone.(rule.Configurable)
		if !ok {
			return nil, &InvalidConfigurationError{Rule: rl.Name(), Reason: "rule has no configurable parameters"}
		}
		if err := c.ApplySettings(settings); err != nil {
			return nil, &InvalidConfigurationError{Rule: rl.Name(), Reason: err.Error()}
		}
		out = append(out, clone)
	}
	return out, nil
}

// collectOverrides validates CLI directives and folds them into
// per-rule setting maps, last-wins per parameter.
func collectOverrides(reg *rule.Registry, directives []ConfigureDirective) (map[string]map[string]any, error) {
	overrides := make(map[string]map[string]any)
	for _, d := range directives {
		rl, err := reg.Get(d.Rule)
		if err != nil {
			return nil, err
		}

		c, ok := rl.(rule.Configurable)
		if !ok {
			return nil, &InvalidConfigurationError{Rule: d.Rule, Reason: "rule has no configurable parameters"}
		}

		param := d.Param
		if param == "" {
			param = c.PrimaryParam()
			if param == "" {
				return nil, &InvalidConfigurationError{
					Rule:   d.Rule,
					Reason: "rule has no primary parameter; use RuleName:param=value",
				}
			}
		}

		def, ok := c.DefaultSettings()[param]
		if !ok {
			return nil, &InvalidConfigurationError{Rule: d.Rule, Param: param, Value: d.Value, Reason: "unknown parameter"}
		}

		value, err := convertValue(d.Value, def)
		if err != nil {
			return nil, &InvalidConfigurationError{Rule: d.Rule, Param: param, Value: d.Value, Reason: err.Error()}
		}

		if overrides[d.Rule] == nil {
			overrides[d.Rule] = make(map[string]any)
		}
		overrides[d.Rule][param] = value
	}
	return overrides, nil
}

// convertValue converts a CLI string to the Go type of the parameter's
// default value.
func convertValue(s string, def any) (any, error) {
	switch def.(type) {
	case int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("must be an integer")
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("must be a boolean")
		}
		return b, nil
	case string:
		return s, nil
	}
	return nil, fmt.Errorf("unsupported parameter type %T", def)
}

// mergeSettings layers CLI overrides on top of file settings.
func mergeSettings(file, cli map[string]any) map[string]any {
	if len(file) == 0 && len(cli) == 0 {
		return nil
	}
	merged := make(map[string]any, len(file)+len(cli))
	for k, v := range file {
		merged[k] = v
	}
	for k, v := range cli {
		merged[k] = v
	}
	return merged
}
