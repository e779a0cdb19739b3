package common

import (
	"testing"
	"time"
)

func setupTestEnvironment(t *testing.T) (*Cache, func()) {
	t.Helper()

	cache := NewCache(0)

	cleanup := func() {
		cache.Flush()
	}

	return cache, cleanup
}

func TestCache_Set(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")

	if _, ok := cache.Get("key"); !ok {
		t.Error("expected key to be set")
	}
}

func TestCache_SetWithExpiration(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value", time.Nanosecond)
	time.Sleep(time.Millisecond)

	if _, ok := cache.Get("key"); ok {
		t.Error("expected key to be expired")
	}
}

func TestCache_GetString(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("str", "value")
	cache.Set("num", 42)

	if s, ok := cache.GetString("str"); !ok || s != "value" {
		t.Errorf("expected %q, got %q (ok=%v)", "value", s, ok)
	}

	if _, ok := cache.GetString("num"); ok {
		t.Error("expected non-string value to be rejected")
	}
}

func TestCache_Delete(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")
	cache.Delete("key")

	if _, ok := cache.Get("key"); ok {
		t.Error("expected key to be deleted")
	}
}

func TestCache_Flush(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")
	cache.Flush()

	if _, ok := cache.Get("key"); ok {
		t.Error("expected cache to be flushed")
	}
}
