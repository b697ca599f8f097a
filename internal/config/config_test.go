package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "_rerooted.tre", cfg.OutputSuffix)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Empty(t, cfg.ReportFile)
	require.NoError(t, cfg.Validate())
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", `
output_suffix: .rooted.nwk
report_file: runs.csv
log_level: debug
log_format: json
log_max_backups: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ".rooted.nwk", cfg.OutputSuffix)
	require.Equal(t, "runs.csv", cfg.ReportFile)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 5, cfg.LogMaxBackups)
	// Untouched fields keep their defaults.
	require.Equal(t, 30, cfg.LogMaxAgeDays)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, dir, "bad.yaml", "output_suffix: [unclosed\n")
		_, err := Load(path)
		require.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, dir, "invalid.yaml", "log_level: loud\n")
		_, err := Load(path)
		require.ErrorContains(t, err, "unknown log_level")
	})
}

func TestLoadSearchesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultSuffix, cfg.OutputSuffix)

	writeConfig(t, dir, ".reroot.yaml", "output_suffix: .hidden\n")
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, ".hidden", cfg.OutputSuffix)

	writeConfig(t, dir, "reroot.yaml", "output_suffix: .visible\n")
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, ".visible", cfg.OutputSuffix)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "c.yaml", "log_level: warn\n")
	t.Setenv("REROOT_LOG_LEVEL", "error")
	t.Setenv("REROOT_OUTPUT_SUFFIX", ".env.tre")
	t.Setenv("REROOT_LOG_FILE", "/tmp/reroot.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
	require.Equal(t, ".env.tre", cfg.OutputSuffix)
	require.Equal(t, "/tmp/reroot.log", cfg.LogFile)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty suffix", func(c *Config) { c.OutputSuffix = "" }, "must not be empty"},
		{"suffix with separator", func(c *Config) { c.OutputSuffix = "/out.tre" }, "path separator"},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }, "unknown log_format"},
		{"upper case level is fine", func(c *Config) { c.LogLevel = "DEBUG" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}
