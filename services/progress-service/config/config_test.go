package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":50053", cfg.GRPCPort)
	assert.Equal(t, "postgres", cfg.Storage)
	assert.Equal(t, "daily-questions", cfg.DailyQuestionProgram)
	assert.False(t, cfg.SeedCatalog)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("DB_NAME=couplepath\nSTORAGE=memory\nSEED_CATALOG=true\n"), 0o600))
	t.Setenv("GRPC_PORT", ":6000")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "couplepath", cfg.DBName)
	assert.Equal(t, "memory", cfg.Storage)
	assert.True(t, cfg.SeedCatalog)
	assert.Equal(t, ":6000", cfg.GRPCPort)
	assert.Contains(t, cfg.DSN(), "dbname=couplepath")
}
