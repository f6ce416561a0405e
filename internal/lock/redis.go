package lock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shrimpsizemoose/trekker/logger"
)

const (
	DefaultKeyTemplate = "klassrum:lock:{key}"
	DefaultTTL         = 10 * time.Second
	retryInterval      = 25 * time.Millisecond
)

// compare-and-delete, so an expired holder never frees somebody else's lock
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker shares locks between service instances through SET NX PX.
type RedisLocker struct {
	redis       *redis.Client
	keyTemplate string
	ttl         time.Duration
}

func NewRedisLocker(redisURL, keyTemplate string, ttl time.Duration) (*RedisLocker, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisLockerWithClient(client, keyTemplate, ttl), nil
}

func NewRedisLockerWithClient(client *redis.Client, keyTemplate string, ttl time.Duration) *RedisLocker {
	if keyTemplate == "" {
		keyTemplate = DefaultKeyTemplate
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLocker{
		redis:       client,
		keyTemplate: keyTemplate,
		ttl:         ttl,
	}
}

func (l *RedisLocker) redisKey(key string) string {
	return strings.NewReplacer("{key}", key).Replace(l.keyTemplate)
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := l.redisKey(key)
	token := uuid.NewString()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.redis.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", redisKey, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	return func() {
		if err := unlockScript.Run(context.Background(), l.redis, []string{redisKey}, token).Err(); err != nil {
			logger.Error.Printf("Failed to release lock %s: %v", redisKey, err)
		}
	}, nil
}

func (l *RedisLocker) Close() error {
	if l.redis != nil {
		return l.redis.Close()
	}
	return nil
}
