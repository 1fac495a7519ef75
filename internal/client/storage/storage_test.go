package storage

import (
	"context"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMem(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore_ReadMissing(t *testing.T) {
	_, err := openMem(t).Read(context.Background(), "cart")

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_WriteReadClear(t *testing.T) {
	ctx := context.Background()
	store := openMem(t)

	require.NoError(t, store.Write(ctx, "cart", []byte(`[]`)))
	require.NoError(t, store.Write(ctx, "cart", []byte(`[{"quantity":1}]`)))

	data, err := store.Read(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":1}]`, string(data))

	require.NoError(t, store.Clear(ctx, "cart"))
	require.NoError(t, store.Clear(ctx, "cart"))

	_, err = store.Read(ctx, "cart")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_FileBucket(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(ctx, "file://"+dir)
	require.NoError(t, err)
	require.NoError(t, store.Write(ctx, "session", []byte(`{"value":"abc"}`)))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, "file://"+dir)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Read(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, `{"value":"abc"}`, string(data))
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "nosuchscheme://bucket")

	assert.Error(t, err)
}
