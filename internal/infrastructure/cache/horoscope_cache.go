package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
)

const (
	dailyKeyPrefix       = "kundlivision:horoscopes:daily:"
	defaultDailyTTL      = time.Hour
	defaultScanBatchSize = 100
)

// RedisHoroscopeCache implementa ports.HoroscopeCache com Redis
type RedisHoroscopeCache struct {
	client     *redis.Client
	ownsClient bool
	ttl        time.Duration
	log        ports.Logger
}

var _ ports.HoroscopeCache = (*RedisHoroscopeCache)(nil)

// NewRedisHoroscopeCache conecta a partir de uma URL redis:// e testa a conexão
func NewRedisHoroscopeCache(url string, log ports.Logger) (*RedisHoroscopeCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	c := NewRedisHoroscopeCacheWithClient(client, log)
	c.ownsClient = true
	return c, nil
}

// NewRedisHoroscopeCacheWithClient usa um cliente existente; quem chama continua dono dele
func NewRedisHoroscopeCacheWithClient(client *redis.Client, log ports.Logger) *RedisHoroscopeCache {
	return &RedisHoroscopeCache{
		client: client,
		ttl:    defaultDailyTTL,
		log:    log.With("component", "horoscope_cache"),
	}
}

func dailyKey(day time.Time) string {
	return dailyKeyPrefix + day.Format(time.DateOnly)
}

func (c *RedisHoroscopeCache) GetDaily(ctx context.Context, day time.Time) ([]*entities.Horoscope, bool, error) {
	key := dailyKey(day)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var horoscopes []*entities.Horoscope
	if err := json.Unmarshal(data, &horoscopes); err != nil {
		// entrada corrompida: remove e trata como miss
		c.log.Warn("discarding corrupted cache entry", "key", key, "error", err)
		_ = c.client.Del(ctx, key).Err()
		return nil, false, nil
	}

	return horoscopes, true, nil
}

func (c *RedisHoroscopeCache) SetDaily(ctx context.Context, day time.Time, horoscopes []*entities.Horoscope) error {
	if horoscopes == nil {
		horoscopes = []*entities.Horoscope{}
	}

	data, err := json.Marshal(horoscopes)
	if err != nil {
		return fmt.Errorf("failed to encode horoscopes: %w", err)
	}

	return c.client.Set(ctx, dailyKey(day), data, c.ttl).Err()
}

// Invalidate remove todas as listas diárias; uma escrita pode mover um horóscopo de dia
func (c *RedisHoroscopeCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, dailyKeyPrefix+"*", defaultScanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache keys: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Close fecha o cliente apenas se ele foi criado aqui
func (c *RedisHoroscopeCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

// NoopHoroscopeCache é usado quando REDIS_URL não está configurado
type NoopHoroscopeCache struct{}

var _ ports.HoroscopeCache = NoopHoroscopeCache{}

func (NoopHoroscopeCache) GetDaily(context.Context, time.Time) ([]*entities.Horoscope, bool, error) {
	return nil, false, nil
}

func (NoopHoroscopeCache) SetDaily(context.Context, time.Time, []*entities.Horoscope) error {
	return nil
}

func (NoopHoroscopeCache) Invalidate(context.Context) error {
	return nil
}
