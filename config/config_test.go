package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xml-digester/config"
)

func writeRuleset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ruleset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidRuleset(t *testing.T) {
	t.Parallel()

	path := writeRuleset(t, `
rules:
  - pattern: person
    rule: create-bag
    schema:
      name: string
      age: int
  - pattern: "*/name"
    rule: set-body
  - pattern: person
    rule: set-attributes
    ignore_missing: true
  - pattern: person/born
    rule: set-body
    property: birthday
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level, "logging level defaults to info")
	require.Len(t, cfg.Rules, 4)
	assert.Equal(t, config.RuleCreateBag, cfg.Rules[0].Rule)
	assert.Equal(t, map[string]string{"name": "string", "age": "int"}, cfg.Rules[0].Schema)
	assert.True(t, cfg.Rules[2].IgnoreMissing)
	assert.Equal(t, "birthday", cfg.Rules[3].Property)
}

func TestLoadShippedExample(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join("..", "examples", "ruleset.yaml"))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.NotEmpty(t, cfg.Rules)
}

func TestLoadRejectsBadRulesets(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		yaml    string
		wantErr string
	}{
		"no rules": {
			yaml:    "logging:\n  level: info\n",
			wantErr: "declares no rules",
		},
		"missing pattern": {
			yaml:    "rules:\n  - rule: set-body\n",
			wantErr: "pattern is required",
		},
		"unknown rule kind": {
			yaml:    "rules:\n  - pattern: a\n    rule: frobnicate\n",
			wantErr: `unknown rule kind "frobnicate"`,
		},
		"create-bag without schema": {
			yaml:    "rules:\n  - pattern: a\n    rule: create-bag\n",
			wantErr: "needs a schema",
		},
		"unknown schema type": {
			yaml:    "rules:\n  - pattern: a\n    rule: create-bag\n    schema:\n      x: complex128\n",
			wantErr: `unknown type "complex128"`,
		},
		"schema on set-body": {
			yaml:    "rules:\n  - pattern: a\n    rule: set-body\n    schema:\n      x: int\n",
			wantErr: "only valid for create-bag",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeRuleset(t, tc.yaml))
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLevelMapping(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	} {
		cfg := &config.Config{Logging: config.LoggingConfig{Level: name}}
		assert.Equal(t, want, cfg.Level(), "level %q", name)
	}
}
