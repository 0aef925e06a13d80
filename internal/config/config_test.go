package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FirstRunWritesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EngineSQLite, cfg.Engine)

	wantDB, err := DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, wantDB, cfg.SQLitePath)

	configPath, err := Path()
	require.NoError(t, err)
	assert.FileExists(t, configPath)
}

func TestLoad_RoundTripsSavedConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, EnsureDir())
	saved := &Config{Engine: EngineMemory}
	require.NoError(t, Save(saved))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EngineMemory, loaded.Engine)
}

func TestLoad_ExpandsTildeInSQLitePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, EnsureDir())
	configPath, err := Path()
	require.NoError(t, err)
	body := "engine = \"sqlite\"\nsqlite_path = \"~/data/crewdesk.sqlite\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "crewdesk.sqlite"), cfg.SQLitePath)
}

func TestLoad_RejectsUnknownEngine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, EnsureDir())
	require.NoError(t, Save(&Config{Engine: "postgres"}))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage engine")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Engine: EngineMemory}).Validate())
	assert.NoError(t, (&Config{Engine: EngineSQLite}).Validate())
	assert.Error(t, (&Config{Engine: "redis"}).Validate())
}
