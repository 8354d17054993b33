package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/motif/pkg/adapters/redis"
	"github.com/aretw0/motif/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redis.Option) *redis.Store {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...)
}

func TestRedisStore_Contract(t *testing.T) {
	store := newTestStore(t)
	ports.RunKVStoreContract(t, store)
}

func TestRedisStore_NamespaceIsolation(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	a := redis.NewFromClient(client, redis.WithNamespace("a:"))
	b := redis.NewFromClient(client, redis.WithNamespace("b:"))
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, "animation-group-1", []byte("x")))
	require.NoError(t, b.Set(ctx, "animation-group-2", []byte("y")))

	keys, err := a.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"animation-group-1"}, keys)

	// Raw key carries the namespace.
	assert.True(t, mr.Exists("a:animation-group-1"))
}
