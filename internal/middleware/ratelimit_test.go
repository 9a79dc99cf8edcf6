package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnshRaj112/devconnector-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimit_WindowExpires(t *testing.T) {
	client := testutil.NewRedis(t)
	ctx := context.Background()
	h := RedisRateLimit(client)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	post := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
		req.RemoteAddr = ip + ":4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < RateLimitMaxRequests; i++ {
		require.Equal(t, http.StatusOK, post("10.0.0.1"), "attempt %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1"))
	assert.Equal(t, http.StatusOK, post("10.0.0.2"), "limits are per IP")

	ttl, err := client.PTTL(ctx, RateLimitKeyPrefix+"10.0.0.1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, RateLimitWindow)
}

func TestRedisRateLimit_RearmsKeyWithoutTTL(t *testing.T) {
	client := testutil.NewRedis(t)
	ctx := context.Background()
	key := RateLimitKeyPrefix + "10.0.0.3"
	require.NoError(t, client.Set(ctx, key, 5, 0).Err())

	req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
	req.RemoteAddr = "10.0.0.3:4000"
	rec := httptest.NewRecorder()
	RedisRateLimit(client)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	ttl, err := client.PTTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
