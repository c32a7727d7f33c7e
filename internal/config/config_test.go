package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ara-lang/forest/internal/config"
	"github.com/ara-lang/forest/internal/report"
)

func TestLoadDefaultsWhenNoConfigFilePresent(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir, "", config.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.Source)
	assert.Equal(t, report.ColorAuto, cfg.Reporting.Color)
	assert.Equal(t, report.StyleDefault, cfg.Reporting.Style)
	assert.Greater(t, cfg.Threads, 0)
}

func TestLoadReadsTOMLConfig(t *testing.T) {
	dir := t.TempDir()
	toml := `
root = "."
source = "lib"
definitions = ["defs"]
cache = ".forest-cache"
threads = 2
log-level = "debug"

[reporting]
color = "always"
ascii = true
style = "compact"

[analyzer]
ignore = ["RedundantUse"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".forest.toml"), []byte(toml), 0o644))

	cfg, err := config.Load(dir, "", config.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "lib", cfg.Source)
	assert.Equal(t, []string{"defs"}, cfg.Definitions)
	assert.Equal(t, ".forest-cache", cfg.Cache)
	assert.Equal(t, 2, cfg.Threads)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, report.ColorAlways, cfg.Reporting.Color)
	assert.True(t, cfg.Reporting.ASCII)
	assert.Equal(t, report.StyleCompact, cfg.Reporting.Style)
	assert.Equal(t, []string{"RedundantUse"}, cfg.Analyzer.Ignore)
}

func TestLoadReadsKDLConfigWhenTOMLAbsent(t *testing.T) {
	dir := t.TempDir()
	kdl := `
source "lib"
threads 3
reporting {
    color "never"
    ascii true
    style "comfortable"
}
analyzer {
    ignore "RedundantUse" "NoDuplicateParameter"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".forest.kdl"), []byte(kdl), 0o644))

	cfg, err := config.Load(dir, "", config.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "lib", cfg.Source)
	assert.Equal(t, 3, cfg.Threads)
	assert.Equal(t, report.ColorNever, cfg.Reporting.Color)
	assert.True(t, cfg.Reporting.ASCII)
	assert.Equal(t, report.StyleComfortable, cfg.Reporting.Style)
	assert.ElementsMatch(t, []string{"RedundantUse", "NoDuplicateParameter"}, cfg.Analyzer.Ignore)
}

func TestOverridesTakePrecedenceOverFile(t *testing.T) {
	dir := t.TempDir()
	toml := `
root = "."
source = "src"

[reporting]
color = "never"
style = "default"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".forest.toml"), []byte(toml), 0o644))

	cfg, err := config.Load(dir, "", config.Overrides{
		Color:        "always",
		Style:        "comfortable",
		ASCIISet:     true,
		ASCII:        true,
		AppendIgnore: []string{"UnreachableCode"},
	})
	require.NoError(t, err)

	assert.Equal(t, report.ColorAlways, cfg.Reporting.Color)
	assert.Equal(t, report.StyleComfortable, cfg.Reporting.Style)
	assert.True(t, cfg.Reporting.ASCII)
	assert.Contains(t, cfg.Analyzer.Ignore, "UnreachableCode")
}

func TestLoadRejectsUnknownColor(t *testing.T) {
	dir := t.TempDir()
	_, err := config.Load(dir, "", config.Overrides{Color: "rainbow"})
	assert.Error(t, err)
}
