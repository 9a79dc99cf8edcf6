package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnshRaj112/devconnector-backend/internal/services"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubAuth struct {
	id  primitive.ObjectID
	err error
}

func (s stubAuth) Authenticate(token string) (primitive.ObjectID, error) {
	if token == "" {
		return primitive.NilObjectID, services.ErrNoToken
	}
	return s.id, s.err
}

func okHandler(t *testing.T, want primitive.ObjectID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserID(r.Context())
		require.True(t, ok)
		assert.Equal(t, want, id)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name    string
		token   string
		auth    stubAuth
		status  int
		wantMsg string
	}{
		{"missing token", "", stubAuth{id: id}, http.StatusUnauthorized, "No token supplied."},
		{"bad token", "x", stubAuth{err: &services.Error{Kind: services.KindUnauthorized, Msg: "Invalid token."}}, http.StatusUnauthorized, "Invalid token."},
		{"unclassified error", "x", stubAuth{err: errors.New("boom")}, http.StatusUnauthorized, "Invalid token."},
		{"valid", "good", stubAuth{id: id}, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
			if tt.token != "" {
				req.Header.Set(TokenHeader, tt.token)
			}
			rec := httptest.NewRecorder()
			Auth(tt.auth)(okHandler(t, id)).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.wantMsg != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMsg, body["msg"])
			}
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	_, ok := GetUserID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/profile", nil)
	req.Header.Set("Origin", "http://LOCALHOST:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://LOCALHOST:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), TokenHeader)

	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoginRateLimit(t *testing.T) {
	h := LoginRateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	do := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do(http.MethodPost, "/api/auth"))
	assert.Equal(t, http.StatusOK, do(http.MethodPost, "/api/users"))
	assert.Equal(t, http.StatusTooManyRequests, do(http.MethodPost, "/api/auth"))
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/auth"), "only credential posts are limited")
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestRedisRateLimit_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	h := RedisRateLimit(client)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for i := 0; i < RateLimitMaxRequests+5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRedisRateLimit_NilClient(t *testing.T) {
	next := http.NotFoundHandler()
	rec := httptest.NewRecorder()
	RedisRateLimit(nil)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
