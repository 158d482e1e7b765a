package kv

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	ns := uuid.NewString()

	_, ok, err := s.Get(ctx, ns, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, ns, "k", "v1"))
	require.NoError(t, s.Set(ctx, ns, "k", "v2"))

	v, ok, err := s.Get(ctx, ns, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", v)

	_, ok, err = s.Get(ctx, uuid.NewString(), "k")
	require.NoError(t, err)
	assert.False(t, ok, "namespaces must be isolated")

	require.NoError(t, s.Delete(ctx, ns, "k"))
	require.NoError(t, s.Delete(ctx, ns, "k"))
	_, ok, err = s.Get(ctx, ns, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestGormStore_SQLite(t *testing.T) {
	s, err := OpenGorm(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s)
}

func TestGormStore_Postgres(t *testing.T) {
	dsn := os.Getenv("KV_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("KV_TEST_DATABASE_URL is required for tests")
	}
	s, err := OpenGorm(context.Background(), "postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("KV_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("KV_TEST_REDIS_ADDR is required for tests")
	}
	s, err := OpenRedis(context.Background(), RedisOptions{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s)
}

func TestOpenGorm_UnknownDriver(t *testing.T) {
	_, err := OpenGorm(context.Background(), "mysql", "dsn")
	require.Error(t, err)
}

func TestBucket_EmptyNamespace(t *testing.T) {
	b := Namespaced(NewMemoryStore(), "")
	_, _, err := b.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrEmptyNamespace)
	assert.ErrorIs(t, b.Set(context.Background(), "k", "v"), ErrEmptyNamespace)
}
