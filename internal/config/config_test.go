package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/pathseq/pkg/pathseq"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvNoOmit, EnvVerbose, EnvLogFile} {
		t.Setenv(k, "")
	}
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `no_omit: true
script_extension: run
reserved_directories:
  - .git
  - node_modules
verbose: true
log_file: /var/log/pathseq.log
read_batch: 32
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.NoOmit)
	assert.Equal(t, "run", cfg.ScriptExtension)
	assert.Equal(t, []string{".git", "node_modules"}, cfg.ReservedDirectories)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/var/log/pathseq.log", cfg.LogFile)
	assert.Equal(t, 32, cfg.ReadBatch)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "{{invalid")

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, pathseq.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := (&ProjectConfig{}).Flags()
		assert.Equal(t, pathseq.DefaultFlags(), f)
	})

	t.Run("overrides", func(t *testing.T) {
		f := (&ProjectConfig{
			NoOmit:              true,
			ScriptExtension:     "run",
			ReservedDirectories: []string{"vendor"},
			ReadBatch:           8,
		}).Flags()
		assert.True(t, f.NoOmit)
		assert.Equal(t, "run", f.Extension())
		assert.Equal(t, 8, f.Batch())
		assert.False(t, f.IsReserved(".git"))
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvNoOmit: "true", EnvVerbose: "0", EnvLogFile: "run.log"}
	cfg := &ProjectConfig{Verbose: true}

	require.NoError(t, cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))
	assert.True(t, cfg.NoOmit)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "run.log", cfg.LogFile)
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	cfg := &ProjectConfig{}
	err := cfg.ApplyEnv(func(k string) (string, bool) {
		if k == EnvNoOmit {
			return "sometimes", true
		}
		return "", false
	})
	assert.ErrorIs(t, err, pathseq.ErrInvalidConfig)
	assert.Contains(t, err.Error(), EnvNoOmit)
}

func TestResolve(t *testing.T) {
	t.Run("defaults without files", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Resolve(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, &ProjectConfig{}, cfg)
	})

	t.Run("dotenv overrides file", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeFile(t, dir, ConfigFileName, "verbose: false\n")
		writeFile(t, dir, EnvFileName, "PATHSEQ_VERBOSE=true\nPATHSEQ_NO_OMIT=yes\n")

		_, err := Resolve(dir)
		require.ErrorIs(t, err, pathseq.ErrInvalidConfig)

		writeFile(t, dir, EnvFileName, "PATHSEQ_VERBOSE=true\nPATHSEQ_NO_OMIT=1\n")
		cfg, err := Resolve(dir)
		require.NoError(t, err)
		assert.True(t, cfg.Verbose)
		assert.True(t, cfg.NoOmit)
	})

	t.Run("empty process env falls back to dotenv", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeFile(t, dir, EnvFileName, "PATHSEQ_NO_OMIT=true\nPATHSEQ_LOG_FILE=run.log\n")

		cfg, err := Resolve(dir)
		require.NoError(t, err)
		assert.True(t, cfg.NoOmit)
		assert.Equal(t, "run.log", cfg.LogFile)
	})

	t.Run("process env wins over dotenv", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvVerbose, "false")
		dir := t.TempDir()
		writeFile(t, dir, EnvFileName, "PATHSEQ_VERBOSE=true\n")

		cfg, err := Resolve(dir)
		require.NoError(t, err)
		assert.False(t, cfg.Verbose)
	})

	t.Run("invalid flags", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeFile(t, dir, ConfigFileName, "script_extension: .peru\n")

		_, err := Resolve(dir)
		assert.ErrorIs(t, err, pathseq.ErrInvalidConfig)
	})
}
