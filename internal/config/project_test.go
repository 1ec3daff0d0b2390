package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophp-lang/corephp/internal/config"
)

func TestParseProjectConfigAppliesDefaultsWhenIncludeOmitted(t *testing.T) {
	cfg, err := config.ParseProjectConfig([]byte(`strict: true`), "inline")
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"**/*.php"}, cfg.Include)
}

func TestParseProjectConfigRespectsExplicitInclude(t *testing.T) {
	cfg, err := config.ParseProjectConfig([]byte("include:\n  - \"src/**/*.php\"\n"), "inline")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/**/*.php"}, cfg.Include)
}

func TestParseProjectConfigRejectsInvalidYAML(t *testing.T) {
	_, err := config.ParseProjectConfig([]byte("strict: [this is not a bool"), "inline")
	assert.Error(t, err)
}

func TestFindProjectConfigWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".phpparse.yaml"), []byte("strict: true\n"), 0o644))

	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))

	found, err := config.FindProjectConfig(child)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".phpparse.yaml"), found)
}

func TestLoadReturnsDefaultedConfigWhenNoneFound(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.php"}, cfg.Include)
	assert.False(t, cfg.Strict)
}

func TestLoadFindsAndParsesNearestConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".phpparse.yaml"), []byte("php_version: \"8.3\"\n"), 0o644))

	cfg, err := config.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "8.3", cfg.PHPVersion)
}
