package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/motif/internal/store"
	"github.com/aretw0/motif/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/motif/pkg/adapters/redis"
	"github.com/aretw0/motif/pkg/domain"
	"github.com/aretw0/motif/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGroup() *domain.AnimationGroup {
	g := domain.NewAnimationGroup("g-100", "Logo", "Caption")
	g.Easing = domain.EasingEaseInAndOut
	g.Keyframes = []domain.Keyframe{
		domain.NewKeyframe("k0", "l1", 0),
		domain.NewKeyframe("k1", "l1", 2),
	}
	return g
}

func TestGroupStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.NewStore())

	original := sampleGroup()
	require.NoError(t, s.Create(ctx, original))

	loaded, err := s.Get(ctx, "g-100")
	require.NoError(t, err)

	// Field-for-field equality after the persistence round-trip.
	assert.Equal(t, original, loaded)
}

func TestGroupStore_GetMissing(t *testing.T) {
	s := store.New(memory.NewStore())
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}

func TestGroupStore_UpdateKeyframe(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	s := store.New(kv)
	require.NoError(t, s.Create(ctx, sampleGroup()))

	updated, err := s.UpdateKeyframe(ctx, "g-100", "k1", domain.KeyframeProperties{
		Opacity: domain.Float(0.5),
		X:       domain.Float(40),
	})
	require.NoError(t, err)

	kf, ok := updated.Keyframe("k1")
	require.True(t, ok)
	assert.Equal(t, 0.5, *kf.Properties.Opacity)
	assert.Equal(t, 40.0, *kf.Properties.X)
	assert.Nil(t, kf.Properties.Scale, "replaced properties, not merged")

	// The mutation round-tripped through storage.
	reloaded, err := s.Get(ctx, "g-100")
	require.NoError(t, err)
	assert.Equal(t, updated, reloaded)
}

func TestGroupStore_UpdateKeyframe_UnknownID(t *testing.T) {
	// An unknown keyframe id returns the group unchanged, without error.
	ctx := context.Background()
	s := store.New(memory.NewStore())
	original := sampleGroup()
	require.NoError(t, s.Create(ctx, original))

	updated, err := s.UpdateKeyframe(ctx, "g-100", "missing", domain.KeyframeProperties{
		Opacity: domain.Float(0),
	})
	require.NoError(t, err)
	assert.Equal(t, original.Keyframes, updated.Keyframes)
}

func TestGroupStore_ListAll(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	s := store.New(kv)

	g1 := domain.NewAnimationGroup("g-1", "Logo")
	g2 := domain.NewAnimationGroup("g-2", "Caption")
	require.NoError(t, s.Create(ctx, g1))
	require.NoError(t, s.Create(ctx, g2))

	// Foreign keys in the same space are ignored by the prefix filter.
	require.NoError(t, kv.Set(ctx, "plugin-settings", []byte(`{}`)))

	groups, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	ids := []string{groups[0].ID, groups[1].ID}
	assert.ElementsMatch(t, []string{"g-1", "g-2"}, ids)
}

func TestGroupStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.NewStore())
	require.NoError(t, s.Create(ctx, sampleGroup()))

	require.NoError(t, s.Delete(ctx, "g-100"))
	_, err := s.Get(ctx, "g-100")
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)

	assert.NoError(t, s.Delete(ctx, "g-100"), "deleting a missing group is a no-op")
}

func TestGroupStore_CreateOverwritesCollidingID(t *testing.T) {
	// Ids come from a timestamp source upstream; collisions are caller
	// responsibility and simply overwrite.
	ctx := context.Background()
	s := store.New(memory.NewStore())

	first := domain.NewAnimationGroup("g-1", "Logo")
	second := domain.NewAnimationGroup("g-1", "Caption")
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))

	loaded, err := s.Get(ctx, "g-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Caption"}, loaded.LayerNames)
}

func TestGroupStore_OnRedis(t *testing.T) {
	// The same store logic against the Redis adapter, prefix scan included.
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	var kv ports.KVStore = redisAdapter.NewFromClient(client)

	ctx := context.Background()
	s := store.New(kv)
	original := sampleGroup()
	require.NoError(t, s.Create(ctx, original))

	groups, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, original, groups[0])
}
