package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnshRaj112/devconnector-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenHeader carries the signed token on private routes.
const TokenHeader = "x-auth-token"

type ctxKey int

const userIDKey ctxKey = iota

// Authenticator resolves a raw token to the user it was issued for.
type Authenticator interface {
	Authenticate(token string) (primitive.ObjectID, error)
}

// Auth rejects requests without a valid token with 401 and otherwise stores
// the caller's id in the request context.
func Auth(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := a.Authenticate(r.Header.Get(TokenHeader))
			if err != nil {
				msg := services.ErrBadToken.Msg
				var serr *services.Error
				if errors.As(err, &serr) && serr.Kind == services.KindUnauthorized {
					msg = serr.Msg
				}
				writeMsg(w, http.StatusUnauthorized, msg)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}

func WithUserID(ctx context.Context, id primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID returns the id stored by Auth.
func GetUserID(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(userIDKey).(primitive.ObjectID)
	return id, ok
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
