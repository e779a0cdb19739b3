package storage

import (
	"context"
	"time"

	"github.com/sushihentaime/blogistui/internal/common"
)

// Memory keeps values in process memory. Values survive as long as the
// Memory value does, which is enough to simulate a reload in tests.
type Memory struct {
	c *common.Cache
}

func NewMemory() *Memory {
	return &Memory{c: common.NewCache(10 * time.Minute)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	v, ok := m.c.GetString(key)
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.c.Set(key, value)
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

func (m *Memory) Close() error {
	m.c.Flush()
	return nil
}
