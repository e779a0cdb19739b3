package views

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/blogistui/internal/apiclient"
	"github.com/sushihentaime/blogistui/internal/devserver"
	"github.com/sushihentaime/blogistui/internal/session"
	"github.com/sushihentaime/blogistui/internal/storage"
)

const testPassword = "Test_1234!"

// requestLog counts outgoing requests by "METHOD path".
type requestLog struct {
	mu   sync.Mutex
	seen []string
}

func (l *requestLog) hook(req *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen = append(l.seen, req.Method+" "+req.URL.Path)
}

func (l *requestLog) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}

func (l *requestLog) count(method, path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, s := range l.seen {
		if s == method+" "+path {
			n++
		}
	}
	return n
}

type mockConfirmer struct {
	mock.Mock
}

func (m *mockConfirmer) Confirm(prompt string) bool {
	args := m.Called(prompt)
	return args.Bool(0)
}

func newTestEnv(t *testing.T, baseURL string, opts ...session.Option) (*Env, *requestLog) {
	t.Helper()

	sess := session.New(storage.NewMemory(), append([]session.Option{session.WithLogger(zerolog.Nop())}, opts...)...)
	log := &requestLog{}
	client := apiclient.New(baseURL,
		apiclient.WithTokenSource(sess),
		apiclient.WithRequestHook(log.hook),
		apiclient.WithTimeout(5*time.Second),
	)

	env := NewEnv(sess, client)
	env.Logger = zerolog.Nop()
	return env, log
}

// setupTestEnv wires the pages to a fresh in-process backend.
func setupTestEnv(t *testing.T) (*Env, *requestLog) {
	ts := devserver.NewTestServer(t)
	return newTestEnv(t, ts.URL, session.WithSecret(devserver.TestConfig().JWTSecret))
}

// setupFailingEnv wires the pages to a backend that answers every request
// with status and body, and signs the session in with a locally minted token.
func setupFailingEnv(t *testing.T, status int, body string) (*Env, *requestLog) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	env, log := newTestEnv(t, ts.URL)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "11111111-1111-1111-1111-111111111111",
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("unused"))
	require.NoError(t, err)
	require.NoError(t, env.Session.Login(context.Background(), token))

	return env, log
}

func signUp(t *testing.T, env *Env, username string) {
	t.Helper()

	route, err := NewRegister(env).Submit(context.Background(), username, username+"@example.com", testPassword)
	require.NoError(t, err)
	require.Equal(t, RouteHome, route)
	require.True(t, env.Session.IsAuthenticated())
}

func createPost(t *testing.T, env *Env, title, content string) apiclient.Blog {
	t.Helper()

	res, err := env.Client.CreateBlog(context.Background(), apiclient.CreateBlogPayload{
		Title:    title,
		Content:  content,
		AuthorID: env.Session.User().ID,
	})
	require.NoError(t, err)
	return res.Blog
}
