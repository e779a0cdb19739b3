package views

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/blogistui/internal/devserver"
)

func TestHeader(t *testing.T) {
	env, _ := setupTestEnv(t)
	header := NewHeader(env)

	var buf bytes.Buffer
	require.NoError(t, header.Render(&buf))
	assert.Equal(t, "Medium  |  Sign in  |  Get started\n", buf.String())

	signUp(t, env, "alice")

	buf.Reset()
	require.NoError(t, header.Render(&buf))
	assert.Equal(t, "Medium  |  Write  |  alice  |  Sign out\n", buf.String())

	route, err := header.Logout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RouteHome, route)
	assert.False(t, env.Session.IsAuthenticated())
	assert.Empty(t, env.Session.Token())
}

func TestHeaderWithSubjectOnlyToken(t *testing.T) {
	env, _ := setupTestEnv(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "11111111-1111-1111-1111-111111111111",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(devserver.TestConfig().JWTSecret))
	require.NoError(t, err)
	require.NoError(t, env.Session.Login(context.Background(), token))

	var buf bytes.Buffer
	require.NoError(t, NewHeader(env).Render(&buf))
	assert.Equal(t, "Medium  |  Write  |  User  |  Sign out\n", buf.String())
}
