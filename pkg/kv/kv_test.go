package kv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisStore(mr.Addr(), "", ""), mr
}

func TestRedisStorePutGet(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	exists, err := store.Put(ctx, []byte("k"), []byte("v1"), false)
	require.NoError(t, err)
	assert.False(t, exists)

	// Without overwrite the original value stays.
	exists, err = store.Put(ctx, []byte("k"), []byte("v2"), false)
	require.NoError(t, err)
	assert.True(t, exists)
	v, err := store.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	_, err = store.Put(ctx, []byte("k"), []byte("v2"), true)
	require.NoError(t, err)
	v, err = store.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}

func TestRedisStoreGetMissing(t *testing.T) {
	store, _ := testStore(t)
	v, err := store.Get(context.Background(), []byte("nope"))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRedisStoreDelExists(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	_, err := store.Put(ctx, []byte("k"), []byte("v"), true)
	require.NoError(t, err)

	ok, err := store.Exists(ctx, []byte("k"))
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Del(ctx, []byte("k")))
	ok, err = store.Exists(ctx, []byte("k"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreList(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	for _, k := range []string{"job/1", "job/2", "other"} {
		_, err := store.Put(ctx, []byte(k), []byte("v"), true)
		require.NoError(t, err)
	}

	keys, err := store.List(ctx, []byte("job/"))
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]byte{[]byte("job/1"), []byte("job/2")}, keys)
}

func TestRedisStorePinRuntimeEnvURI(t *testing.T) {
	store, mr := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.PinRuntimeEnvURI(ctx, "gcs://pkg.zip", 600))
	key := pinPrefix + "gcs://pkg.zip"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 600*time.Second, mr.TTL(key))
}
