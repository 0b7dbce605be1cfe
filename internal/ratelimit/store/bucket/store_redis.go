package bucket

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"pathwise/internal/ratelimit/models"
)

// bucketKeyPrefix namespaces rate-limit keys in Redis.
const bucketKeyPrefix = "rl:bucket:"

// RedisBucketStore implements BucketStore on a Redis sorted set per key,
// scored by request time. Shared state makes limits hold across replicas.
type RedisBucketStore struct {
	client *redis.Client
}

// NewRedisBucketStore creates a Redis-backed bucket store. The client
// lifecycle is managed by the caller.
func NewRedisBucketStore(client *redis.Client) *RedisBucketStore {
	return &RedisBucketStore{client: client}
}

// Allow checks whether one more request fits the window and records it.
// Expired members are trimmed, the survivor count decides, and the set TTL
// tracks the window so idle keys expire on their own.
func (s *RedisBucketStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error) {
	now := time.Now()
	redisKey := bucketKeyPrefix + key
	cutoff := now.Add(-window).UnixNano()

	pipe := s.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", cutoff))
	countCmd := pipe.ZCard(ctx, redisKey)
	oldestCmd := pipe.ZRangeWithScores(ctx, redisKey, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("rate limit check: %w", err)
	}

	count := int(countCmd.Val())
	if count >= limit {
		resetAt := now.Add(window)
		if oldest := oldestCmd.Val(); len(oldest) > 0 {
			resetAt = time.Unix(0, int64(oldest[0].Score)).Add(window)
		}
		retryAfter := int(time.Until(resetAt).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		return &models.RateLimitResult{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter,
		}, nil
	}

	// Member values need uniqueness; two requests can share a nanosecond.
	member := fmt.Sprintf("%d:%s", now.UnixNano(), uuid.NewString())
	pipe = s.client.Pipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.Expire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("rate limit record: %w", err)
	}

	return &models.RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - count - 1,
		ResetAt:   now.Add(window),
	}, nil
}

// Reset clears the counter for a key.
func (s *RedisBucketStore) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, bucketKeyPrefix+key).Err()
}

// CurrentCount returns the recorded request count for a key. Members past
// the window may still be present until the next Allow trims them.
func (s *RedisBucketStore) CurrentCount(ctx context.Context, key string) (int, error) {
	count, err := s.client.ZCard(ctx, bucketKeyPrefix+key).Result()
	if err != nil {
		return 0, fmt.Errorf("rate limit count: %w", err)
	}
	return int(count), nil
}
