// Package config loads the blogist client configuration from an optional
// dotenv file and BLOGIST_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIURL      string        `mapstructure:"BLOGIST_API_URL"`
	SessionPath string        `mapstructure:"BLOGIST_SESSION_PATH"`
	JWTSecret   string        `mapstructure:"BLOGIST_JWT_SECRET"`
	Timeout     time.Duration `mapstructure:"BLOGIST_TIMEOUT"`
	LogLevel    string        `mapstructure:"BLOGIST_LOG_LEVEL"`
	LogPretty   bool          `mapstructure:"BLOGIST_LOG_PRETTY"`
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".blogist", "session.db")
}

// Load reads the file at path when it is non-empty. Environment variables
// take precedence over the file, and the file over the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("BLOGIST_API_URL", "http://localhost:3000")
	v.SetDefault("BLOGIST_SESSION_PATH", defaultSessionPath())
	v.SetDefault("BLOGIST_JWT_SECRET", "")
	v.SetDefault("BLOGIST_TIMEOUT", 30*time.Second)
	v.SetDefault("BLOGIST_LOG_LEVEL", "warn")
	v.SetDefault("BLOGIST_LOG_PRETTY", true)

	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("BLOGIST_API_URL must not be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("BLOGIST_TIMEOUT must be positive, got %s", cfg.Timeout)
	}

	return &cfg, nil
}
