package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CacheKeyPrefix is the Redis key prefix for cached data
	CacheKeyPrefix = "cache:"

	profileListKey    = CacheKeyPrefix + "profiles:all:"
	profileVersionKey = CacheKeyPrefix + "profiles:version"

	MinCacheTTL = 5 * time.Second
	MaxCacheTTL = time.Hour
)

// ProfileCache holds the public profile listing between writes.
//
// GetProfiles reports the listing version current at the time of the call;
// SetProfiles stores under that version, and Invalidate moves to a new one.
// A listing built from a read that raced with a write is therefore stored
// under a version nobody reads again. A negative version means the cache
// is unavailable and SetProfiles is skipped. Implementations must treat
// every backend failure as a miss.
type ProfileCache interface {
	GetProfiles(ctx context.Context) (profiles []ProfileView, version int64, ok bool)
	SetProfiles(ctx context.Context, version int64, profiles []ProfileView)
	Invalidate(ctx context.Context)
}

// RedisProfileCache stores each listing version as one JSON value.
type RedisProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProfileCache clamps ttl to [MinCacheTTL, MaxCacheTTL].
func NewRedisProfileCache(client *redis.Client, ttl time.Duration) *RedisProfileCache {
	if ttl < MinCacheTTL {
		ttl = MinCacheTTL
	}
	if ttl > MaxCacheTTL {
		ttl = MaxCacheTTL
	}
	return &RedisProfileCache{client: client, ttl: ttl}
}

func listKey(version int64) string {
	return profileListKey + strconv.FormatInt(version, 10)
}

func (c *RedisProfileCache) GetProfiles(ctx context.Context) ([]ProfileView, int64, bool) {
	version, err := c.client.Get(ctx, profileVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		version = 0
	} else if err != nil {
		logError("cache.GetProfiles version", err)
		return nil, -1, false
	}

	val, err := c.client.Get(ctx, listKey(version)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logError("cache.GetProfiles", err)
		}
		return nil, version, false
	}

	var profiles []ProfileView
	if err := json.Unmarshal(val, &profiles); err != nil {
		logError("cache.GetProfiles decode", err)
		return nil, version, false
	}
	return profiles, version, true
}

func (c *RedisProfileCache) SetProfiles(ctx context.Context, version int64, profiles []ProfileView) {
	if version < 0 {
		return
	}
	data, err := json.Marshal(profiles)
	if err != nil {
		logError("cache.SetProfiles encode", err)
		return
	}
	if err := c.client.Set(ctx, listKey(version), data, c.ttl).Err(); err != nil {
		logError("cache.SetProfiles", err)
	}
}

func (c *RedisProfileCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, profileVersionKey).Err(); err != nil {
		logError("cache.Invalidate", err)
	}
}

type noCache struct{}

func (noCache) GetProfiles(context.Context) ([]ProfileView, int64, bool) { return nil, -1, false }
func (noCache) SetProfiles(context.Context, int64, []ProfileView)         {}
func (noCache) Invalidate(context.Context)                                {}
