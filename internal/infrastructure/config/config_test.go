package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Nil(t, cfg.Cutoff())
	assert.Equal(t, "", cfg.File)
	assert.Equal(t, "debug", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "rssreader/1.0", cfg.UserAgent)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
}

func TestLoad_Flags(t *testing.T) {
	tmpDir := t.TempDir()
	list := filepath.Join(tmpDir, "feeds.csv")

	cfg, err := Load([]string{"-d", "2020-12-30", "-f", list, "--format", "json", "--timeout", "5s"})
	require.NoError(t, err)

	require.NotNil(t, cfg.Cutoff())
	assert.Equal(t, civil.Date{Year: 2020, Month: 12, Day: 30}, *cfg.Cutoff())
	assert.Equal(t, list, cfg.File)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_InvalidDate(t *testing.T) {
	_, err := Load([]string{"--date", "30/12/2020"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestLoad_InvalidFormat(t *testing.T) {
	_, err := Load([]string{"--format", "xml"})
	require.Error(t, err)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `date: "2021-01-01"
format: text
log_level: debug
user_agent: " custom-agent/2.0 "
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	cfg, err := Load([]string{"--config", configPath})
	require.NoError(t, err)

	require.NotNil(t, cfg.Cutoff())
	assert.Equal(t, civil.Date{Year: 2021, Month: 1, Day: 1}, *cfg.Cutoff())
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "custom-agent/2.0", cfg.UserAgent)
}

func TestLoad_FlagsOverrideConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("format: text\n"), 0600))

	cfg, err := Load([]string{"--config", configPath, "--format", "json"})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_EmptyConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, nil, 0600))

	cfg, err := Load([]string{"--config", configPath})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Format)
}

func TestLoad_CorruptConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	_ = os.WriteFile(configPath, []byte("invalid_yaml: ["), 0600)

	_, err := Load([]string{"--config", configPath})
	if err == nil {
		t.Error("Expected error for corrupt config read, got nil")
	}
}
