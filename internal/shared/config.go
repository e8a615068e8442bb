package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Owner  OwnerConfig   `toml:"owner"`
	Albums []AlbumConfig `toml:"albums"`
}

// OwnerConfig names the person the configured collection belongs to.
type OwnerConfig struct {
	Name string `toml:"name"`
}

// AlbumConfig is one album entry in the configured collection. Entry order
// in the file is the collection's order.
type AlbumConfig struct {
	Title  string `toml:"title"`
	Artist string `toml:"artist"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, ErrInvalidInput)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the loaded configuration for entries the collection types
// cannot represent. An empty album list is allowed (it renders to nothing).
func (c *Config) Validate() error {
	if c.Owner.Name == "" {
		return fmt.Errorf("owner name is required: %w", ErrInvalidConfig)
	}
	for i, a := range c.Albums {
		if a.Title == "" || a.Artist == "" {
			return fmt.Errorf("albums[%d] needs both title and artist: %w", i, ErrInvalidConfig)
		}
	}
	return nil
}
