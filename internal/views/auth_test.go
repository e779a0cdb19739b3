package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/blogistui/internal/common"
)

func TestRegisterValidation(t *testing.T) {
	env, log := setupTestEnv(t)

	testCases := []struct {
		name       string
		username   string
		email      string
		password   string
		wantFields map[string]string
	}{
		{
			name:     "all missing",
			wantFields: map[string]string{
				"username": "must be provided",
				"email":    "must be provided",
				"password": "must be provided",
			},
		},
		{
			name:       "short username",
			username:   "al",
			email:      "al@example.com",
			password:   testPassword,
			wantFields: map[string]string{"username": "must be at least 3 characters long"},
		},
		{
			name:       "bad email",
			username:   "alice",
			email:      "alice",
			password:   testPassword,
			wantFields: map[string]string{"email": "must be a valid email address"},
		},
		{
			name:       "short password",
			username:   "alice",
			email:      "alice@example.com",
			password:   "short",
			wantFields: map[string]string{"password": "must be at least 8 characters long"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page := NewRegister(env)
			route, err := page.Submit(context.Background(), tc.username, tc.email, tc.password)
			assert.Empty(t, route)

			var ve common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantFields, page.Fields)
		})
	}

	assert.Equal(t, 0, log.total())
	assert.False(t, env.Session.IsAuthenticated())
}

func TestRegisterServerRejection(t *testing.T) {
	env, _ := setupTestEnv(t)
	signUp(t, env, "alice")
	require.NoError(t, env.Session.Logout(context.Background()))

	page := NewRegister(env)
	_, err := page.Submit(context.Background(), "alice", "other@example.com", testPassword)
	assert.Error(t, err)
	assert.Equal(t, "username this username is already taken", page.Err)
	assert.False(t, env.Session.IsAuthenticated())

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	assert.Contains(t, buf.String(), "username this username is already taken")
}

func TestLogin(t *testing.T) {
	env, _ := setupTestEnv(t)
	signUp(t, env, "alice")
	require.NoError(t, env.Session.Logout(context.Background()))

	page := NewLogin(env)

	_, err := page.Submit(context.Background(), "alice@example.com", "Wrong_1234!")
	assert.Error(t, err)
	assert.Equal(t, "invalid authentication credentials", page.Err)
	assert.False(t, env.Session.IsAuthenticated())

	route, err := page.Submit(context.Background(), "alice@example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, RouteHome, route)
	assert.Empty(t, page.Err)
	require.True(t, env.Session.IsAuthenticated())
	assert.Equal(t, "alice", env.Session.User().Username)
}

func TestLoginValidation(t *testing.T) {
	env, log := setupTestEnv(t)

	page := NewLogin(env)
	_, err := page.Submit(context.Background(), "not-an-email", "")
	assert.Error(t, err)
	assert.Equal(t, map[string]string{
		"email":    "must be a valid email address",
		"password": "must be provided",
	}, page.Fields)
	assert.Equal(t, 0, log.total())

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	assert.Equal(t, "Sign in\nemail must be a valid email address\npassword must be provided\n", buf.String())
}

func TestAuthWithoutTokenGoesToLogin(t *testing.T) {
	env, _ := setupFailingEnv(t, 201, `{"message":"User registered"}`)
	require.NoError(t, env.Session.Logout(context.Background()))

	route, err := NewRegister(env).Submit(context.Background(), "alice", "alice@example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, RouteLogin, route)
	assert.False(t, env.Session.IsAuthenticated())
}

func TestAuthWithUndecodableToken(t *testing.T) {
	env, _ := setupFailingEnv(t, 200, `{"message":"Login successful","token":"garbage"}`)
	require.NoError(t, env.Session.Logout(context.Background()))

	page := NewLogin(env)
	route, err := page.Submit(context.Background(), "alice@example.com", testPassword)
	assert.Error(t, err)
	assert.Empty(t, route)
	assert.Equal(t, "Failed to sign in", page.Err)
	assert.False(t, env.Session.IsAuthenticated())
}
