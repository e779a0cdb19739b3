package views

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/blogistui/internal/apiclient"
	"github.com/sushihentaime/blogistui/internal/common"
)

func TestEditPost(t *testing.T) {
	env, log := setupTestEnv(t)
	signUp(t, env, "alice")
	blog := createPost(t, env, "Before", "Old body")

	page := NewEditPost(env)
	require.NoError(t, page.Load(context.Background(), blog.ID))
	assert.Equal(t, "Before", page.Title)
	assert.Equal(t, "Old body", page.Content)

	puts := log.count(http.MethodPut, "/api/blogs/"+blog.ID)
	_, err := page.Submit(context.Background(), "", "New body")
	var ve common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, puts, log.count(http.MethodPut, "/api/blogs/"+blog.ID))

	route, err := page.Submit(context.Background(), "After", "New body")
	require.NoError(t, err)
	assert.Equal(t, BlogRoute(blog.ID), route)
	assert.Equal(t, "After", page.Blog.Title)

	res, err := env.Client.GetBlog(context.Background(), blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", res.Blog.Title)
	assert.Equal(t, "New body", res.Blog.Content)
}

func TestEditPostOnlyAuthor(t *testing.T) {
	env, _ := setupTestEnv(t)
	signUp(t, env, "alice")
	blog := createPost(t, env, "Alice's", "body")

	require.NoError(t, env.Session.Logout(context.Background()))
	signUp(t, env, "bob")

	page := NewEditPost(env)
	require.NoError(t, page.Load(context.Background(), blog.ID))

	_, err := page.Submit(context.Background(), "Bob's now", "body")
	assert.ErrorIs(t, err, ErrNotAuthor)
}

func TestEditPostFailures(t *testing.T) {
	env, _ := setupTestEnv(t)
	signUp(t, env, "alice")

	page := NewEditPost(env)
	assert.Error(t, page.Load(context.Background(), "00000000-0000-0000-0000-000000000000"))
	assert.Equal(t, "Blog post not found", page.Err)

	_, err := page.Submit(context.Background(), "t", "c")
	assert.ErrorIs(t, err, ErrNoPost)

	failing, _ := setupFailingEnv(t, http.StatusInternalServerError, `{"error":"boom"}`)
	page = NewEditPost(failing)
	assert.Error(t, page.Load(context.Background(), "b1"))
	assert.Equal(t, "Failed to fetch blog post", page.Err)

	page.Blog = &apiclient.Blog{ID: "b1", AuthorID: failing.Session.User().ID}
	_, err = page.Submit(context.Background(), "Title", "Body")
	assert.Error(t, err)
	assert.Equal(t, "Failed to update post. Please try again.", page.Err)
}
