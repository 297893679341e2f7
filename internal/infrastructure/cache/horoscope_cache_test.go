package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/logging"
)

func TestDailyKey(t *testing.T) {
	day := time.Date(2025, 1, 9, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "kundlivision:horoscopes:daily:2025-01-09", dailyKey(day))
}

func TestNoopHoroscopeCache(t *testing.T) {
	ctx := context.Background()
	var c NoopHoroscopeCache

	require.NoError(t, c.SetDaily(ctx, time.Now(), []*entities.Horoscope{{Content: "x"}}))
	list, hit, err := c.GetDaily(ctx, time.Now())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, list)
	assert.NoError(t, c.Invalidate(ctx))
}

// Requer um Redis real: REDIS_TEST_URL=redis://localhost:6379/15
func TestRedisHoroscopeCache(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	c := NewRedisHoroscopeCacheWithClient(client, logging.NewNopLogger())
	require.NoError(t, c.Invalidate(ctx))

	day := entities.StartOfDay(time.Now())
	_, hit, err := c.GetDaily(ctx, day)
	require.NoError(t, err)
	assert.False(t, hit)

	lucky := 7
	require.NoError(t, c.SetDaily(ctx, day, []*entities.Horoscope{
		{ID: "h1", ZodiacSign: entities.Leo, Type: entities.HoroscopeDaily, Content: "bright", Date: day, LuckyNumber: &lucky},
	}))

	list, hit, err := c.GetDaily(ctx, day)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, list, 1)
	assert.Equal(t, entities.Leo, list[0].ZodiacSign)
	assert.Equal(t, 7, *list[0].LuckyNumber)

	require.NoError(t, client.Set(ctx, dailyKey(day.AddDate(0, 0, 1)), "not json", time.Minute).Err())
	_, hit, err = c.GetDaily(ctx, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Invalidate(ctx))
	_, hit, err = c.GetDaily(ctx, day)
	require.NoError(t, err)
	assert.False(t, hit)
}
