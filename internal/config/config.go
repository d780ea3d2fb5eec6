// Package config loads project settings from pathseq.yaml, a .env file and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pathseq/pkg/pathseq"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ProjectConfig struct {
	NoOmit              bool     `yaml:"no_omit"`
	ScriptExtension     string   `yaml:"script_extension,omitempty"`
	ReservedDirectories []string `yaml:"reserved_directories,omitempty"`
	Verbose             bool     `yaml:"verbose"`
	LogFile             string   `yaml:"log_file,omitempty"`
	ReadBatch           int      `yaml:"read_batch,omitempty"`
}

const (
	ConfigFileName = "pathseq.yaml"
	EnvFileName    = ".env"
)

// Environment variables that override file settings.
const (
	EnvNoOmit  = "PATHSEQ_NO_OMIT"
	EnvVerbose = "PATHSEQ_VERBOSE"
	EnvLogFile = "PATHSEQ_LOG_FILE"
)

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", ConfigFileName, err, pathseq.ErrInvalidConfig)
	}
	return &cfg, nil
}

// Resolve loads the configuration that applies in dir. A missing
// pathseq.yaml yields defaults. Variables from the process environment take
// precedence over those in dir/.env, which take precedence over the file.
func Resolve(dir string) (*ProjectConfig, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		cfg, err = &ProjectConfig{}, nil
	}
	if err != nil {
		return nil, err
	}

	dotenv, err := godotenv.Read(filepath.Join(dir, EnvFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", EnvFileName, err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Flags().Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigFileName, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings with the variables lookup reports.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	for _, b := range []struct {
		key string
		dst *bool
	}{
		{EnvNoOmit, &c.NoOmit},
		{EnvVerbose, &c.Verbose},
	} {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q is not a boolean: %w", b.key, v, pathseq.ErrInvalidConfig)
		}
		*b.dst = parsed
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	return nil
}

// Flags converts the settings used by scans.
func (c *ProjectConfig) Flags() pathseq.Flags {
	f := pathseq.DefaultFlags()
	f.NoOmit = c.NoOmit
	if c.ScriptExtension != "" {
		f.ScriptExtension = c.ScriptExtension
	}
	if c.ReservedDirectories != nil {
		f.ReservedDirectories = c.ReservedDirectories
	}
	if c.ReadBatch != 0 {
		f.ReadBatch = c.ReadBatch
	}
	return f
}
