package devserver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func createTestUser(t *testing.T, store *Store, username string) *User {
	u, err := store.InsertUser(context.Background(), username, username+"@example.com", []byte("hash"))
	require.NoError(t, err)
	return u
}

func TestStoreUsers(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, store, "alice")

	got, err := store.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, []byte("hash"), got.PasswordHash)

	got, err = store.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = store.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = store.InsertUser(ctx, "alice", "other@example.com", []byte("hash"))
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = store.InsertUser(ctx, "other", "alice@example.com", []byte("hash"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestStoreBlogs(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	first, err := store.InsertBlog(ctx, "First", "one", alice.ID)
	require.NoError(t, err)
	second, err := store.InsertBlog(ctx, "Second", "two", alice.ID)
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		got, err := store.GetBlog(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "First", got.Title)
		assert.True(t, got.CreatedAt.Equal(first.CreatedAt))

		_, err = store.GetBlog(ctx, "missing")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		blogs, err := store.ListBlogsByAuthor(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, blogs, 2)
		assert.Equal(t, second.ID, blogs[0].ID)
		assert.Equal(t, first.ID, blogs[1].ID)

		blogs, err = store.ListBlogsByAuthor(ctx, bob.ID)
		require.NoError(t, err)
		assert.NotNil(t, blogs)
		assert.Empty(t, blogs)
	})

	t.Run("update requires ownership", func(t *testing.T) {
		_, err := store.UpdateBlog(ctx, first.ID, bob.ID, "Hijacked", "x")
		assert.ErrorIs(t, err, ErrRecordNotFound)

		got, err := store.UpdateBlog(ctx, first.ID, alice.ID, "Renamed", "updated")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	})

	t.Run("delete requires ownership", func(t *testing.T) {
		err := store.DeleteBlog(ctx, second.ID, bob.ID)
		assert.ErrorIs(t, err, ErrRecordNotFound)

		require.NoError(t, store.DeleteBlog(ctx, second.ID, alice.ID))

		err = store.DeleteBlog(ctx, second.ID, alice.ID)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}
