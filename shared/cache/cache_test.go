package cache_test

import (
	"context"
	"shareit/infras/otel/mocks"
	"shareit/shared/cache"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedBooking struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), mr
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	require.NoError(t, c.Save(ctx, "booking:get:1", cachedBooking{ID: "1", Status: "WAITING"}, 60))

	var got cachedBooking
	require.NoError(t, c.Get(ctx, "booking:get:1", &got))
	assert.Equal(t, cachedBooking{ID: "1", Status: "WAITING"}, got)

	mr.FastForward(61 * time.Second)

	err := c.Get(ctx, "booking:get:1", &got)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_RawString(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t)

	require.NoError(t, c.Save(ctx, "raw", "plain value", 60))

	var got string
	require.NoError(t, c.Get(ctx, "raw", &got))
	assert.Equal(t, "plain value", got)
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := newCache(t)

	var got cachedBooking
	err := c.Get(context.Background(), "missing", &got)

	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_GetCorrupted(t *testing.T) {
	c, mr := newCache(t)
	require.NoError(t, mr.Set("broken", "{not json"))

	var got cachedBooking
	err := c.Get(context.Background(), "broken", &got)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, cache.Nil)
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)
	require.NoError(t, mr.Set("user:get:1", "{}"))

	require.NoError(t, c.Delete(ctx, "user:get:1"))
	assert.False(t, mr.Exists("user:get:1"))
}

func TestRedisCache_Clear(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	for _, key := range []string{"item:get:1", "item:get:2", "item:search:a", "user:get:1"} {
		require.NoError(t, mr.Set(key, "{}"))
	}

	for i := range 250 {
		require.NoError(t, mr.Set("item:bulk:"+strconv.Itoa(i), "{}"))
	}

	require.NoError(t, c.Clear(ctx, "item:*"))

	assert.Equal(t, []string{"user:get:1"}, mr.Keys())
}

func TestRedisCache_Increment(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	for want := int64(1); want <= 3; want++ {
		got, err := c.Increment(ctx, "limiter:127.0.0.1", 10)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 10*time.Second, mr.TTL("limiter:127.0.0.1"))

	mr.FastForward(11 * time.Second)

	got, err := c.Increment(ctx, "limiter:127.0.0.1", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
