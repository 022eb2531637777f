// Package config loads declarative rulesets for the CLI: which rule fires
// on which match pattern, and how logging behaves.
package config

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"xml-digester/convert"
)

// Rule binding kinds accepted in a ruleset file.
const (
	RuleCreateBag     = "create-bag"
	RuleSetBody       = "set-body"
	RuleSetAttributes = "set-attributes"
)

// Config holds one CLI ruleset.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Rules   []RuleBinding `mapstructure:"rules"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// RuleBinding binds one rule to a match pattern.
type RuleBinding struct {
	// Pattern is the element path the rule fires on; "*/suffix" patterns
	// match any path ending with the suffix.
	Pattern string `mapstructure:"pattern"`
	// Rule is one of create-bag, set-body, set-attributes.
	Rule string `mapstructure:"rule"`
	// Property fixes the target property for set-body; empty derives it
	// from the matched element's name.
	Property string `mapstructure:"property"`
	// Schema declares bag properties for create-bag: name -> type name.
	Schema map[string]string `mapstructure:"schema"`
	// AttachTo names the parent property a created bag attaches to when its
	// element closes.
	AttachTo string `mapstructure:"attach_to"`
	// IgnoreMissing makes set-attributes skip unmatched attributes.
	IgnoreMissing bool `mapstructure:"ignore_missing"`
}

// Load reads and validates a ruleset file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("logging.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading ruleset %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing ruleset %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid ruleset %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Rules) == 0 {
		return fmt.Errorf("ruleset declares no rules")
	}

	for i, b := range c.Rules {
		if b.Pattern == "" {
			return fmt.Errorf("rule %d: pattern is required", i)
		}

		switch b.Rule {
		default:
			return fmt.Errorf("rule %d: unknown rule kind %q", i, b.Rule)
		case RuleCreateBag:
			if len(b.Schema) == 0 {
				return fmt.Errorf("rule %d (%s): create-bag needs a schema", i, b.Pattern)
			}
			for name, typeName := range b.Schema {
				if _, ok := convert.TypeByName(typeName); !ok {
					return fmt.Errorf("rule %d (%s): property %q has unknown type %q",
						i, b.Pattern, name, typeName)
				}
			}
		case RuleSetBody, RuleSetAttributes:
			if len(b.Schema) != 0 {
				return fmt.Errorf("rule %d (%s): schema is only valid for create-bag", i, b.Pattern)
			}
		}
	}
	return nil
}

// Level maps the configured logging level onto slog, defaulting to info.
func (c *Config) Level() slog.Level {
	switch c.Logging.Level {
	default:
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
}
