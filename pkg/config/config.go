/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// jumptreeDefaultK and jumptreeDefaultB mirror jumptree.DefaultK/DefaultB.
// Duplicated here rather than imported to keep pkg/config free of a
// dependency on pkg/jumptree; config is loaded before any tree exists.
const (
	jumptreeDefaultK = 5
	jumptreeDefaultB = 4
)

// Config represents the JumpTree process configuration.
type Config struct {
	K           int      `yaml:"k"`
	B           int      `yaml:"b"`
	WorkloadDir string   `yaml:"workload_dir"`
	Port        int      `yaml:"port"`
	Bind        string   `yaml:"bind"`
	Security    Security `yaml:"security"`
	Logging     Logging  `yaml:"logging"`
}

// Security contains security-related configuration for the HTTP control
// surface.
type Security struct {
	APIKey string `yaml:"api_key"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		K:           jumptreeDefaultK,
		B:           jumptreeDefaultB,
		WorkloadDir: "./workloads",
		Port:        8080,
		Bind:        "127.0.0.1",
		Security: Security{
			APIKey: "auto",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig reads and parses the YAML config at configPath, then checks
// it against validate before handing it back, so a config with b < 2 or
// k < 1 is rejected at load time. (pkg/bptree itself raises any b below
// 4 to 4, so such a value would not panic there.)
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := *DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return &config, nil
}

// validate enforces the numeric invariants a JumpTree actually needs:
// b is a branching factor (a tree of b=1 can't split), and k is a height
// bound the policy layer rebuilds toward. Neither the YAML decoder nor
// the struct tags catch a zero or negative value on their own.
func validate(config *Config) error {
	if config.K < 1 {
		return fmt.Errorf("k must be at least 1, got %d", config.K)
	}
	if config.B < 2 {
		return fmt.Errorf("b must be at least 2, got %d", config.B)
	}
	return nil
}

// SaveConfig marshals config to YAML and writes it to configPath,
// creating any missing parent directory along the way. File permissions
// are 0600: the API key embedded in Security.APIKey is a bearer
// credential for the whole HTTP control surface, not something any other
// local user needs to read.
func SaveConfig(config *Config, configPath string) error {
	if err := validate(config); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key.
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig produces a fresh Config seeded with a random API key —
// "jumptree init"'s job — and saves it to configPath. Unlike the stock
// DefaultConfig, the API key here is never the placeholder "auto": a
// freshly bootstrapped server should be able to start serving immediately
// without a separate key-generation step.
func BootstrapConfig(configPath string, workloadDir string) (*Config, error) {
	config := DefaultConfig()
	if workloadDir != "" {
		config.WorkloadDir = workloadDir
	}

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Security.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns where "jumptree init" writes its config
// file when the caller doesn't name one explicitly: the XDG-style
// per-user config directory, falling back to the working directory if
// the OS can't tell us where the user's home is.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./jumptree.yaml"
	}
	return filepath.Join(homeDir, ".config", "jumptree", "config.yaml")
}

// ConfigExists reports whether a file is already present at configPath.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
