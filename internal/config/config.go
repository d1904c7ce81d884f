// Package config loads the server configuration from a YAML file,
// filling unset fields from struct-tag defaults.
package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// DefaultConfigName is looked up in the working directory when no
// explicit path is given.
const DefaultConfigName = ".cutplan.yaml"

// Config holds the HTTP server settings.
type Config struct {
	// Listen is the address the server binds to.
	Listen string `yaml:"listen" default:":3001"`

	// AllowedOrigins restricts CORS. Empty allows every origin.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// DefaultKerf is applied when a request omits the kerf field.
	DefaultKerf uint32 `yaml:"default_kerf" default:"0"`
}

// Default returns the configuration with no file applied.
func Default() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the configuration at path. An empty path falls back to
// DefaultConfigName in the working directory; if that file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultConfigName
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
