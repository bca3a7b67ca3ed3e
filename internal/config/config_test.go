package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMainConfig_Defaults(t *testing.T) {
	cfg, err := LoadMainConfig(writeConfig(t, "{}\n"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "./input", cfg.InputDir)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "uuid", cfg.IDStrategy)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.True(t, cfg.ShouldContinueOnError())
	assert.True(t, cfg.ShouldArchive())
}

func TestLoadMainConfig_Values(t *testing.T) {
	cfg, err := LoadMainConfig(writeConfig(t, `
input_dir: /data/in
output_dir: /data/out
output_format: XML
id_strategy: sequential
id_prefix: item-
log_level: DEBUG
log_format: json
max_concurrency: 2
continue_on_error: false
archive_on_success: false
max_file_bytes: 1048576
`))

	require.NoError(t, err)
	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, "/data/out", cfg.OutputDir)
	assert.Equal(t, "xml", cfg.OutputFormat)
	assert.Equal(t, "sequential", cfg.IDStrategy)
	assert.Equal(t, "item-", cfg.IDPrefix)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 2, cfg.MaxConcurrency)
	assert.False(t, cfg.ShouldContinueOnError())
	assert.False(t, cfg.ShouldArchive())
	assert.Equal(t, int64(1048576), cfg.MaxFileBytes)
}

func TestLoadMainConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"format":      "output_format: csv\n",
		"strategy":    "id_strategy: snowflake\n",
		"level":       "log_level: loud\n",
		"log format":  "log_format: xml\n",
		"concurrency": "max_concurrency: -1\n",
		"max bytes":   "max_file_bytes: -5\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadMainConfig(writeConfig(t, content))
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoadMainConfig_BadYAML(t *testing.T) {
	_, err := LoadMainConfig(writeConfig(t, "input_dir: [unclosed\n"))

	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault_ExistingFile(t *testing.T) {
	cfg, err := LoadOrDefault(writeConfig(t, "output_format: xml\n"))

	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.OutputFormat)
}
