package devserver

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestConfig returns a configuration suitable for tests: in-memory
// database and a login limiter that never trips.
func TestConfig() *Config {
	return &Config{
		Addr:         "127.0.0.1:0",
		Environment:  "testing",
		Version:      "test",
		DatabasePath: ":memory:",
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
		LogLevel:     "error",
		LoginRate:    1000,
		LoginBurst:   1000,
	}
}

// NewTestApplication builds an Application over a fresh in-memory store.
func NewTestApplication(t *testing.T, cfg *Config) *Application {
	t.Helper()

	if cfg == nil {
		cfg = TestConfig()
	}

	store, err := NewStore(cfg.DatabasePath)
	if err != nil {
		t.Fatalf("could not open devserver store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(cfg, store, zerolog.Nop())
}

// NewTestServer starts an httptest server running the full backend.
func NewTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	app := NewTestApplication(t, nil)
	ts := httptest.NewServer(app.Routes())
	t.Cleanup(ts.Close)

	return ts
}
