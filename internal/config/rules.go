package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RuleConfig toggles individual pattern-validation rules and lets their
// default severity be overridden. The zero value enables every rule at
// its spec-defined severity.
type RuleConfig struct {
	Subkind          RuleOverride `yaml:"subkind"`
	Role             RuleOverride `yaml:"role"`
	Phase            RuleOverride `yaml:"phase"`
	Relator          RuleOverride `yaml:"relator"`
	Mode             RuleOverride `yaml:"mode"`
	RoleMixin        RuleOverride `yaml:"roleMixin"`
	GensetHomogeneity RuleOverride `yaml:"gensetHomogeneity"`
}

// RuleOverride controls whether a rule runs and whether its errors should
// be downgraded to warnings.
type RuleOverride struct {
	Disabled   bool `yaml:"disabled"`
	AsWarning  bool `yaml:"asWarning"`
}

// DefaultRuleConfig enables every rule at its spec-defined severity.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{}
}

// LoadRuleConfig reads a YAML rule-override file. An empty path is not
// an error: it simply yields the default configuration. A path that
// cannot be read or parsed is returned as an error.
func LoadRuleConfig(path string) (RuleConfig, error) {
	cfg := DefaultRuleConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
