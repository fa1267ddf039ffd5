// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
		Raw     bool   `yaml:"raw"`
	} `yaml:"defaults"`

	// Engine tables. These extend the built-in vocabularies so new OCR
	// typo sightings and noise phrases are config additions, not code
	// changes.
	Engine struct {
		NoisePhrases  []string            `yaml:"noise_phrases"`
		LabelVariants map[string][]string `yaml:"label_variants"`
		Countries     []string            `yaml:"countries"`
	} `yaml:"engine"`

	// Web server settings
	Server struct {
		Port           string `yaml:"port"`
		MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	} `yaml:"server"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.Format = "text"
	config.Server.Port = "8080"
	config.Server.MaxUploadBytes = 10 << 20 // 10 MB

	// If no config file specified, return defaults
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Re-apply defaults the file left empty
	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Server.MaxUploadBytes <= 0 {
		config.Server.MaxUploadBytes = 10 << 20
	}

	return config, nil
}

// LoadConfigOrDefault loads the configuration file or returns defaults on
// any error. Used by entry points that must not fail on a bad config.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// FindConfigFile searches standard locations for a configuration file
func FindConfigFile() string {
	candidates := []string{
		".cnic-scan.yaml",
		".cnic-scan.yml",
		"cnic-scan.yaml",
		"cnic-scan.yml",
	}

	// Current directory first
	for _, name := range candidates {
		if fileExists(name) {
			return name
		}
	}

	// Then the user's home directory
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range candidates {
			path := filepath.Join(home, name)
			if fileExists(path) {
				return path
			}
		}
	}

	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
