package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AnshRaj112/devconnector-backend/pkg/clientip"
	"github.com/redis/go-redis/v9"
)

const (
	// RateLimitWindow is the fixed window for the shared counter.
	RateLimitWindow = 2 * time.Minute
	// RateLimitMaxRequests is how many credential attempts an IP gets per window.
	RateLimitMaxRequests = 25
	// RateLimitKeyPrefix is the Redis key prefix for rate limiting
	RateLimitKeyPrefix = "ratelimit:"
)

// incrWindow bumps the counter and arms its expiry in one step. A key found
// without a TTL is re-armed so it can never outlive the window.
var incrWindow = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RedisRateLimit counts credential attempts per IP in Redis so the limit holds
// across instances. A nil client disables it, and any Redis error lets the
// request through.
func RedisRateLimit(client *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if client == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isCredentialPost(r) {
				next.ServeHTTP(w, r)
				return
			}

			key := RateLimitKeyPrefix + clientip.RealClientIP(r)
			n, err := incrWindow.Run(r.Context(), client, []string{key}, RateLimitWindow.Milliseconds()).Int64()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			count := int(n)
			if count > RateLimitMaxRequests {
				w.Header().Set("Retry-After", strconv.Itoa(int(RateLimitWindow.Seconds())))
				writeMsg(w, http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(RateLimitMaxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(RateLimitMaxRequests-count))
			next.ServeHTTP(w, r)
		})
	}
}
