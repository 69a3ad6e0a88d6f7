package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/guykisel/robotframework-lint/internal/rule"
)

const configFileName = ".rflint.yml"

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .rflint.yml config file. It stops searching when it encounters a
// .git directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// A .git directory marks the repository root; do not search
		// further up.
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// DumpDefaults returns a Config listing every registered rule with its
// default settings populated, for `rflint init` to write as a starting
// config file.
func DumpDefaults(reg *rule.Registry) *Config {
	all := reg.All()
	rules := make(map[string]RuleCfg, len(all))
	for _, rl := range all {
		rc := RuleCfg{Severity: rl.DefaultSeverity()}
		if c, ok := rl.(rule.Configurable); ok {
			rc.Settings = c.DefaultSettings()
		}
		rules[rl.Name()] = rc
	}
	return &Config{Rules: rules}
}
