package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/AnshRaj112/devconnector-backend/pkg/clientip"
	"golang.org/x/time/rate"
)

// SecurityHeaders sets security-related response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Content-Security-Policy", "default-src 'none'")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = 30 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// IPLimiter keeps one token bucket per client IP. Idle buckets are swept
// periodically.
type IPLimiter struct {
	every rate.Limit
	burst int

	mu        sync.Mutex
	entries   map[string]*limiterEntry
	sweepOnce sync.Once
}

func NewIPLimiter(every rate.Limit, burst int) *IPLimiter {
	return &IPLimiter{every: every, burst: burst, entries: make(map[string]*limiterEntry)}
}

func (l *IPLimiter) Allow(ip string) bool {
	l.sweepOnce.Do(func() { go l.sweep() })

	l.mu.Lock()
	e, ok := l.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.entries[ip] = e
	}
	e.lastUse = time.Now()
	l.mu.Unlock()

	return e.limiter.Allow()
}

func (l *IPLimiter) sweep() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for ip, e := range l.entries {
			if now.Sub(e.lastUse) > limiterIdleTTL {
				delete(l.entries, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit answers 429 once an IP exhausts its bucket. When match is non-nil
// only matching requests are counted.
func RateLimit(l *IPLimiter, match func(*http.Request) bool, msg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if match != nil && !match(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !l.Allow(clientip.RealClientIP(r)) {
				writeMsg(w, http.StatusTooManyRequests, msg)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// credentialPaths are the routes that accept a password.
var credentialPaths = map[string]bool{
	"/api/auth":  true,
	"/api/users": true,
}

func isCredentialPost(r *http.Request) bool {
	return r.Method == http.MethodPost && credentialPaths[r.URL.Path]
}

// GlobalRateLimit allows each IP 1 req/s with a burst of 10.
func GlobalRateLimit() func(http.Handler) http.Handler {
	return RateLimit(NewIPLimiter(rate.Limit(1), 10), nil, "Too many requests. Please slow down.")
}

// LoginRateLimit allows each IP one login or sign-up every 5s with a burst of 2.
func LoginRateLimit() func(http.Handler) http.Handler {
	return RateLimit(NewIPLimiter(rate.Every(5*time.Second), 2), isCredentialPost, "Too many login attempts. Please try again later.")
}

// ProductionSecurity returns middlewares for production: SecurityHeaders → GlobalRateLimit → LoginRateLimit.
func ProductionSecurity() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		SecurityHeaders,
		GlobalRateLimit(),
		LoginRateLimit(),
	}
}
