package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the API server settings. It can be loaded from a YAML file
// or built in code; zero values fall back to the defaults.
type Config struct {
	// Addr is the HTTP listen address for the API server.
	Addr string `yaml:"addr"`

	// MaxUploadBytes caps the size of an uploaded CAD file. Uploads over
	// the cap are rejected with 413 before any decoding happens.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// MaxFileBytes is passed through to the analyzer's extraction cap.
	// 0 keeps the analyzer default.
	MaxFileBytes int `yaml:"max_file_bytes"`
}

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		MaxUploadBytes: 512 << 20, // 512 MiB
	}
}

// LoadConfig reads a YAML config file and fills unset fields from the
// defaults.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config for values that cannot work at runtime.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr is required")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config: max_upload_bytes must not be negative")
	}
	if c.MaxFileBytes < 0 {
		return fmt.Errorf("config: max_file_bytes must not be negative")
	}
	return nil
}
