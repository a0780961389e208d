package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProfile struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	prev := GetClient()
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() {
		SetClient(prev)
		mr.Close()
	})

	return mr
}

func TestAside_LoadsAndCaches(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	loads := 0
	load := func(dest *cachedProfile) func() error {
		return func() error {
			loads++
			*dest = cachedProfile{ID: 7, Name: "ada"}
			return nil
		}
	}

	var first cachedProfile
	require.NoError(t, Aside(ctx, UserKey(7), &first, UserTTL, load(&first)))
	assert.Equal(t, "ada", first.Name)
	assert.Equal(t, 1, loads)

	var second cachedProfile
	require.NoError(t, Aside(ctx, UserKey(7), &second, UserTTL, load(&second)))
	assert.Equal(t, "ada", second.Name)
	assert.Equal(t, 1, loads, "second read should be served from cache")
}

func TestAside_LoaderErrorNotCached(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	var dest cachedProfile
	sentinel := errors.New("store down")
	err := Aside(ctx, UserKey(8), &dest, UserTTL, func() error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestAside_NoClientDegradesToLoad(t *testing.T) {
	prev := GetClient()
	SetClient(nil)
	t.Cleanup(func() { SetClient(prev) })

	var dest cachedProfile
	require.NoError(t, Aside(context.Background(), UserKey(9), &dest, UserTTL, func() error {
		dest = cachedProfile{ID: 9, Name: "lin"}
		return nil
	}))
	assert.Equal(t, uint(9), dest.ID)
}

func TestInvalidateUser(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	var dest cachedProfile
	require.NoError(t, Aside(ctx, UserKey(3), &dest, UserTTL, func() error {
		dest = cachedProfile{ID: 3, Name: "kit"}
		return nil
	}))
	require.True(t, mr.Exists(UserKey(3)))

	InvalidateUser(ctx, 3)
	assert.False(t, mr.Exists(UserKey(3)))
}
