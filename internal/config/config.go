package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/policy"
)

// Config is the top-level configuration loaded from .rflint.yml.
type Config struct {
	Rules  map[string]RuleCfg `yaml:"rules"`
	Ignore []string           `yaml:"ignore"`
}

// RuleCfg is a YAML union: a bool (false disables the rule), a
// severity string, or a mapping of settings.
type RuleCfg struct {
	Severity lint.Severity // empty when the rule's default applies
	Settings map[string]any
}

// UnmarshalYAML implements custom YAML unmarshalling for RuleCfg.
// It handles three forms:
//   - false                -> severity ignore
//   - "error" | "warning" | "ignore" -> severity override
//   - {key: val, ...}      -> settings, default severity
func (r *RuleCfg) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			if !b {
				r.Severity = lint.Ignore
			}
			return nil
		}

		var s string
		if err := value.Decode(&s); err == nil {
			sev, ok := lint.ParseSeverity(s)
			if !ok {
				return fmt.Errorf("invalid severity %q (valid: error, warning, ignore)", s)
			}
			r.Severity = sev
			return nil
		}
	}

	if value.Kind == yaml.MappingNode {
		var m map[string]any
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid rule config: %w", err)
		}
		r.Settings = m
		return nil
	}

	return fmt.Errorf("rule config must be a bool, a severity string, or a mapping, got %v", value.Kind)
}

// MarshalYAML emits the most compact form for each RuleCfg shape.
func (r RuleCfg) MarshalYAML() (any, error) {
	if len(r.Settings) > 0 {
		return r.Settings, nil
	}
	if r.Severity == lint.Ignore {
		return false, nil
	}
	if r.Severity != "" {
		return string(r.Severity), nil
	}
	return true, nil
}

// SeverityDirectives converts the config's severity overrides into
// policy directives, sorted by rule name so the resulting policy is
// identical across runs. The caller appends CLI directives after
// these, so CLI overrides of equal specificity win.
func (c *Config) SeverityDirectives() []policy.Directive {
	names := make([]string, 0, len(c.Rules))
	for name, rc := range c.Rules {
		if rc.Severity != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	directives := make([]policy.Directive, 0, len(names))
	for _, name := range names {
		directives = append(directives, policy.Directive{Rule: name, Severity: c.Rules[name].Severity})
	}
	return directives
}

// Settings returns the per-rule setting maps from the config file.
func (c *Config) Settings() map[string]map[string]any {
	out := make(map[string]map[string]any)
	for name, rc := range c.Rules {
		if len(rc.Settings) > 0 {
			out[name] = rc.Settings
		}
	}
	return out
}
