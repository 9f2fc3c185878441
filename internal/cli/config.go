package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the CLI's codec knobs, loaded from an optional YAML file
type Config struct {
	// TableSize is the dynamic table maximum size in octets; 0 selects the
	// draft-07 default of 4096
	TableSize uint32 `yaml:"table_size"`

	// Huffman controls whether encoded string literals may be Huffman-coded
	Huffman bool `yaml:"huffman"`

	// EmptyThreshold tunes the encoder's reference-set emptying heuristic
	EmptyThreshold float64 `yaml:"empty_threshold"`

	// Listen is the inspector endpoint address for the serve command
	Listen string `yaml:"listen"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		TableSize:      0,
		Huffman:        true,
		EmptyThreshold: 0.5,
		Listen:         "127.0.0.1:8089",
	}
}

// LoadConfig reads a YAML config file, falling back to defaults when path is
// empty or the file does not exist
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.EmptyThreshold < 0 {
		return nil, fmt.Errorf("empty_threshold must not be negative, got %v", cfg.EmptyThreshold)
	}

	return cfg, nil
}
