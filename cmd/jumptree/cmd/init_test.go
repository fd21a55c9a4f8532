package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcusj6/JumpSearchTree/pkg/config"
)

func TestInitCommandWritesConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "jumptree_init_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "jumptree.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"init", "--config", configPath, "--workload-dir", filepath.Join(tmpDir, "workloads")})
	require.NoError(t, rootCmd.Execute())

	assert.FileExists(t, configPath)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Security.APIKey)
	assert.NotEqual(t, "auto", cfg.Security.APIKey)
	assert.Equal(t, filepath.Join(tmpDir, "workloads"), cfg.WorkloadDir)
}

func TestInitCommandRespectsForceFlag(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "jumptree_init_force_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "jumptree.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"init", "--config", configPath})
	require.NoError(t, rootCmd.Execute())

	first, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	out.Reset()
	rootCmd.SetArgs([]string{"init", "--config", configPath})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "already exists")

	unchanged, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, first.Security.APIKey, unchanged.Security.APIKey)

	out.Reset()
	rootCmd.SetArgs([]string{"init", "--config", configPath, "--force"})
	require.NoError(t, rootCmd.Execute())

	regenerated, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.NotEqual(t, first.Security.APIKey, regenerated.Security.APIKey)
}
