package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"NOTEDB_NAME", "NOTEDB_DIR", "NOTEDB_LOG_FILE", "NOTEDB_VERBOSE"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, cfg.Name)
	assert.Equal(t, DefaultDir, cfg.Dir)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "mydatabase.db", cfg.DBPath())
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "notedb.yaml")
	data := "name: notes\ndir: /var/lib/notedb\nlog_file: /tmp/notedb.log\nverbose: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "notes", cfg.Name)
	assert.Equal(t, "/tmp/notedb.log", cfg.LogFile)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, filepath.Join("/var/lib/notedb", "notes.db"), cfg.DBPath())
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "notedb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unterminated\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "notedb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: fromfile\n"), 0644))

	t.Setenv("NOTEDB_NAME", "fromenv")
	t.Setenv("NOTEDB_DIR", "data")
	t.Setenv("NOTEDB_VERBOSE", "1")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Name)
	assert.Equal(t, filepath.Join("data", "fromenv.db"), cfg.DBPath())
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigOverridesBeforeValidate(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTEDB_NAME", "a/b")

	_, err := LoadConfig("")
	assert.Error(t, err)

	cfg, err := LoadConfig("", func(c *Config) { c.Name = "good" })
	require.NoError(t, err)
	assert.Equal(t, "good.db", cfg.DBPath())

	_, err = LoadConfig("", func(c *Config) { c.Name = "../escape" })
	assert.Error(t, err)
}

func TestLoadConfigInvalidVerbose(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTEDB_VERBOSE", "sometimes")
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, name := range []string{"", "..", "a/b", `a\b`} {
		cfg := &Config{Name: name}
		assert.Error(t, cfg.Validate(), "name %q", name)
	}
	assert.NoError(t, (&Config{Name: "notes.v2"}).Validate())
}
