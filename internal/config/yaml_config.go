package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the optional config.yaml file used
// to seed projects and their reference competitors on startup. Hierarchical
// data like this is easier to manage in YAML than env vars.
type YAMLConfig struct {
	Projects []ProjectConfig `yaml:"projects"`
}

// ProjectConfig defines a seeded project in the YAML config.
type ProjectConfig struct {
	Name        string   `yaml:"name"`
	Domain      string   `yaml:"domain"`
	Keywords    []string `yaml:"keywords,omitempty"`
	Competitors []string `yaml:"competitors,omitempty"` // reference competitor domains
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
