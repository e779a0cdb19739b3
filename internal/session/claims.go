package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sushihentaime/blogistui/internal/apiclient"
)

// Placeholder identity for tokens that carry no profile claims.
const (
	PlaceholderUsername = "User"
	PlaceholderEmail    = "user@example.com"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token has expired")
)

// Claims are the token claims the client understands. Only sub is required.
type Claims struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// decoder turns a bearer token into a user identity. With a secret the
// HS256 signature is verified; without one the claims are read as-is and
// only the expiry is checked.
type decoder struct {
	secret []byte
	now    func() time.Time
}

func (d *decoder) decode(token string) (*apiclient.User, error) {
	var claims Claims

	if len(d.secret) > 0 {
		parser := jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(d.now),
		)
		_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
			return d.secret, nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return nil, ErrExpiredToken
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		if claims.ExpiresAt != nil && d.now().After(claims.ExpiresAt.Time) {
			return nil, ErrExpiredToken
		}
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	user := &apiclient.User{
		ID:        claims.Subject,
		Username:  claims.Username,
		Email:     claims.Email,
		CreatedAt: d.now().UTC(),
	}
	if user.Username == "" {
		user.Username = PlaceholderUsername
	}
	if user.Email == "" {
		user.Email = PlaceholderEmail
	}
	if claims.IssuedAt != nil {
		user.CreatedAt = claims.IssuedAt.Time.UTC()
	}

	return user, nil
}
