package devserver

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Addr         string        `env:"DEVSERVER_ADDR, default=:3000"`
	Environment  string        `env:"ENVIRONMENT, default=development"`
	Version      string        `env:"VERSION, default=dev"`
	DatabasePath string        `env:"DEVSERVER_DB, default=:memory:"`
	JWTSecret    string        `env:"JWT_SECRET, default=dev-secret"`
	TokenTTL     time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel     string        `env:"LOG_LEVEL, default=info"`

	// LoginBurst login attempts are allowed per client address, refilled at
	// LoginRate per second.
	LoginRate  float64 `env:"LOGIN_RATE, default=0.2"`
	LoginBurst int     `env:"LOGIN_BURST, default=5"`
}

// LoadConfig reads the dev server configuration from the environment.
func LoadConfig(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load devserver config: %w", err)
	}
	return &cfg, nil
}
