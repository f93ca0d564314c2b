package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webskel/webskel/util/conf"
)

type serverConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
}

type testConfig struct {
	LogLevel string       `conf:"log_level"`
	Server   serverConfig `conf:"server"`
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: conf.DefaultConfig{
			"log_level":   "info",
			"server.host": "",
			"server.port": 3000,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestParse_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("WEBSKEL__LOG_LEVEL", "debug")
	t.Setenv("WEBSKEL__SERVER__PORT", "4000")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: conf.DefaultConfig{
			"log_level":   "info",
			"server.port": 3000,
		},
		EnvPrefix: "WEBSKEL__",
	})

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4000, cfg.Server.Port)
}

func TestParse_DotenvFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.env")

	err := os.WriteFile(name, []byte("log_level=warn\n"), 0o644)
	require.NoError(t, err)

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		FileName: name,
	})

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParse_MissingFileIsNotFatal(t *testing.T) {
	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: conf.DefaultConfig{"log_level": "info"},
		FileName: "does-not-exist.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestMergeDefaults(t *testing.T) {
	merged := conf.MergeDefaults("server",
		map[string]any{"host": ""},
		map[string]any{"port": 3000},
	)

	assert.Equal(t, map[string]any{
		"server.host": "",
		"server.port": 3000,
	}, merged)
}
