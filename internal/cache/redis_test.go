package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisCache(client, "silverstar:")
}

func TestRedisCache_RoundTrip(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	in := []entry{{Name: "Beef", Slug: "beef"}}
	require.NoError(t, c.SetJSON(ctx, "categories:all", in, time.Minute))
	assert.True(t, mr.Exists("silverstar:categories:all"))

	var out []entry
	hit, err := c.GetJSON(ctx, "categories:all", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, in, out)
}

func TestRedisCache_MissAndExpiry(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	var out []entry
	hit, err := c.GetJSON(ctx, "categories:all", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.SetJSON(ctx, "categories:all", []entry{}, time.Second))
	mr.FastForward(2 * time.Second)

	hit, err = c.GetJSON(ctx, "categories:all", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_Delete(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "categories:all", []entry{}, time.Minute))
	require.NoError(t, c.Delete(ctx, "categories:all"))
	assert.False(t, mr.Exists("silverstar:categories:all"))
}

func TestRedisCache_ServerDown(t *testing.T) {
	mr, c := setupTestRedis(t)
	mr.Close()

	var out []entry
	_, err := c.GetJSON(context.Background(), "categories:all", &out)
	assert.Error(t, err)
}
