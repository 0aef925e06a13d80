package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Storage engine names accepted in the config file.
const (
	EngineMemory = "memory"
	EngineSQLite = "sqlite"
)

// Config is the on-disk configuration, read from
// ~/.crewdesk/config.toml.
type Config struct {
	Engine     string `toml:"engine"`
	SQLitePath string `toml:"sqlite_path"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	path, _ := DatabasePath()
	return &Config{
		Engine:     EngineSQLite,
		SQLitePath: path,
	}
}

// Dir returns the crewdesk home directory.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".crewdesk"), nil
}

// Path returns the location of the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DatabasePath returns the default sqlite database location.
func DatabasePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crewdesk.sqlite"), nil
}

// EnsureDir creates the crewdesk home directory if it is missing.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// Load reads the config file, writing one with defaults on first run.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := EnsureDir(); err != nil {
			return nil, err
		}
		if err := Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, err
	}
	cfg.SQLitePath = expandPath(cfg.SQLitePath)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config file.
func Save(cfg *Config) error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate rejects unknown engines.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineMemory, EngineSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage engine %q", c.Engine)
	}
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
