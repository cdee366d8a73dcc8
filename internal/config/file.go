package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileConfig are the settings read from the optional config file. Flags
// override these; these override the built-in defaults.
type FileConfig struct {
	ServerURL      string `mapstructure:"server_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	LogLevel       string `mapstructure:"log_level"`
}

// DefaultFileConfig returns the built-in defaults.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		ServerURL:      "http://localhost:8000",
		TimeoutSeconds: 10,
		LogLevel:       "info",
	}
}

// LoadFile loads the config file at path, or at ~/.fryctl/config.json when
// path is empty. A missing file yields the defaults; FRYCTL_* environment
// variables override file values.
func LoadFile(path string) (*FileConfig, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ".fryctl", "config.json")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("FRYCTL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultFileConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
