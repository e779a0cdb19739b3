// Package devserver is a self-contained implementation of the blog REST
// backend. It is used as the stub server in tests and for local
// development of the client.
package devserver

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

type Application struct {
	config  *Config
	logger  zerolog.Logger
	store   *Store
	tokens  *tokenIssuer
	limiter *loginLimiter
}

func New(cfg *Config, store *Store, logger zerolog.Logger) *Application {
	return &Application{
		config:  cfg,
		logger:  logger,
		store:   store,
		tokens:  newTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		limiter: newLoginLimiter(cfg.LoginRate, cfg.LoginBurst),
	}
}

// Serve listens on the configured address until SIGINT/SIGTERM.
func (app *Application) Serve() error {
	srv := &http.Server{
		Addr:         app.config.Addr,
		Handler:      app.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		s := <-quit

		app.logger.Info().Str("signal", s.String()).Msg("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	done := make(chan struct{})
	defer close(done)
	go app.pruneVisitors(done, time.Minute, 10*time.Minute)

	app.logger.Info().Str("addr", srv.Addr).Str("env", app.config.Environment).Msg("starting server")

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info().Str("addr", srv.Addr).Msg("stopped server")

	return nil
}

// pruneVisitors forgets idle login limiter entries every interval until done
// is closed.
func (app *Application) pruneVisitors(done <-chan struct{}, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			app.limiter.prune(idle)
		}
	}
}
