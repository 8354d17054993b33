package middleware_test

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/aretw0/motif/pkg/adapters/memory"
	"github.com/aretw0/motif/pkg/persistence/middleware"
	"github.com/aretw0/motif/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestEncryptionMiddleware_Contract(t *testing.T) {
	// An encrypted store must still behave like a plain KVStore.
	store := middleware.Chain(memory.NewStore(),
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: newKey(t)}),
	)
	ports.RunKVStoreContract(t, store)
}

func TestEncryptionMiddleware_ValuesAreOpaqueAtRest(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewStore()
	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: newKey(t)})(backend)

	payload := []byte(`{"id":"fade-in","keyframes":[]}`)
	require.NoError(t, store.Set(ctx, "animation-group-fade-in", payload))

	// The backend sees ciphertext, not the payload.
	raw, err := backend.Get(ctx, "animation-group-fade-in")
	require.NoError(t, err)
	assert.NotEqual(t, payload, raw)
	assert.NotContains(t, string(raw), "fade-in")

	// The wrapped view round-trips.
	got, err := store.Get(ctx, "animation-group-fade-in")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewStore()

	oldKey := newKey(t)
	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: oldKey})(backend)
	require.NoError(t, oldStore.Set(ctx, "k", []byte("written with the old key")))

	// A rotated store decrypts old entries through the fallback list.
	rotated := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    newKey(t),
		FallbackKeys: [][]byte{oldKey},
	})(backend)

	got, err := rotated.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("written with the old key"), got)
}

func TestEncryptionMiddleware_WrongKeyFails(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewStore()

	writer := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: newKey(t)})(backend)
	require.NoError(t, writer.Set(ctx, "k", []byte("secret")))

	reader := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: newKey(t)})(backend)
	_, err := reader.Get(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decryption failed")
}

func TestNewEncryptionMiddleware_RejectsShortKey(t *testing.T) {
	assert.Panics(t, func() {
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short")})
	})
}

func TestChain_Order(t *testing.T) {
	// Chain with no middleware returns the store unchanged.
	backend := memory.NewStore()
	assert.Equal(t, ports.KVStore(backend), middleware.Chain(backend))
}
