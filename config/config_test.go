package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	assert.Equal(t, 1000, v.GetInt("prime.initial_sieve_limit"))
	assert.Equal(t, "", v.GetString("kb.path"))
	assert.False(t, v.GetBool("log.json"))
}

func TestLoadUsesDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Prime.InitialSieveLimit)
	assert.False(t, cfg.Log.JSON)

	// Load caches the config
	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg, again)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "primelogic.toml")
	contents := `[prime]
initial_sieve_limit = 5000

[log]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Prime.InitialSieveLimit)
	assert.True(t, cfg.Log.JSON)
	// Unset sections fall back to defaults
	assert.Equal(t, "", cfg.KB.Path)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
