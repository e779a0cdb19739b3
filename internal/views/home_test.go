package views

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeAnonymousMakesNoRequest(t *testing.T) {
	env, log := setupTestEnv(t)

	home := NewHome(env)
	require.NoError(t, home.Load(context.Background()))
	assert.Equal(t, 0, log.total())
	assert.Empty(t, home.Err)

	var buf bytes.Buffer
	require.NoError(t, home.Render(&buf))
	assert.Contains(t, buf.String(), "Human stories & ideas")
	assert.Contains(t, buf.String(), "Start reading")
}

func TestHomeListsStories(t *testing.T) {
	env, _ := setupTestEnv(t)
	signUp(t, env, "alice")

	long := strings.Repeat("é", 250)
	createPost(t, env, "Short one", "brief")
	createPost(t, env, "Long one", long)

	home := NewHome(env)
	require.NoError(t, home.Load(context.Background()))
	require.Len(t, home.Blogs, 2)
	assert.False(t, home.Loading)

	var buf bytes.Buffer
	require.NoError(t, home.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "Latest Stories")
	assert.Contains(t, out, "Short one")
	assert.Contains(t, out, "Long one")
	assert.Contains(t, out, strings.Repeat("é", 200)+"...")
	assert.NotContains(t, out, strings.Repeat("é", 201))
	assert.Contains(t, out, home.Blogs[0].CreatedAt.Format("Jan 2, 2006"))
}

func TestHomeEmptyList(t *testing.T) {
	env, _ := setupTestEnv(t)
	signUp(t, env, "alice")

	home := NewHome(env)
	require.NoError(t, home.Load(context.Background()))
	assert.NotNil(t, home.Blogs)

	var buf bytes.Buffer
	require.NoError(t, home.Render(&buf))
	assert.Contains(t, buf.String(), "No stories yet.")
}

func TestHomeFetchFailure(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			env, log := setupFailingEnv(t, status, `{"error":"nope"}`)

			home := NewHome(env)
			assert.Error(t, home.Load(context.Background()))
			assert.Equal(t, "Failed to fetch blogs", home.Err)
			assert.Equal(t, 1, log.count(http.MethodGet, "/api/blogs"))

			var buf bytes.Buffer
			require.NoError(t, home.Render(&buf))
			assert.Equal(t, "Failed to fetch blogs\n", buf.String())
		})
	}
}
