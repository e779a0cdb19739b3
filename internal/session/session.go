// Package session holds the signed-in identity of the client and persists
// its bearer token between runs.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sushihentaime/blogistui/internal/apiclient"
	"github.com/sushihentaime/blogistui/internal/storage"
	"github.com/sushihentaime/blogistui/pkg/logger"
)

// TokenKey is the storage key the bearer token is persisted under.
const TokenKey = "token"

// Session is created once at startup and shared by every view. A Session
// either holds a token and a decoded user, or neither.
type Session struct {
	mu    sync.RWMutex
	store storage.Storage
	dec   decoder
	log   zerolog.Logger

	token string
	user  *apiclient.User
}

type Option func(*Session)

// WithSecret enables signature verification of tokens.
func WithSecret(secret string) Option {
	return func(s *Session) {
		if secret != "" {
			s.dec.secret = []byte(secret)
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.dec.now = now
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

func New(store storage.Storage, opts ...Option) *Session {
	s := &Session{
		store: store,
		dec:   decoder{now: time.Now},
		log:   logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads a previously persisted token. A token that no longer
// decodes (or has expired) is discarded and the session starts signed out.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.store.Get(ctx, TokenKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read session token: %w", err)
	}

	user, err := s.dec.decode(token)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding stored session token")
		if rmErr := s.store.Remove(ctx, TokenKey); rmErr != nil {
			return fmt.Errorf("remove stale session token: %w", rmErr)
		}
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	s.log.Debug().Str("user_id", user.ID).Msg("session restored")
	return nil
}

// Login decodes token and, when it carries a usable identity, persists it.
// On failure nothing is stored and the session is left signed out.
func (s *Session) Login(ctx context.Context, token string) error {
	user, err := s.dec.decode(token)
	if err != nil {
		s.log.Warn().Err(err).Msg("rejecting session token")
		s.clear()
		if rmErr := s.store.Remove(ctx, TokenKey); rmErr != nil {
			return errors.Join(err, rmErr)
		}
		return err
	}

	if err := s.store.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	s.log.Info().Str("user_id", user.ID).Msg("signed in")
	return nil
}

// Logout clears the in-memory identity even if the storage call fails.
func (s *Session) Logout(ctx context.Context) error {
	s.clear()

	if err := s.store.Remove(ctx, TokenKey); err != nil {
		return fmt.Errorf("remove session token: %w", err)
	}

	s.log.Info().Msg("signed out")
	return nil
}

func (s *Session) clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token implements apiclient.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *apiclient.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
