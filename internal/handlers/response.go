package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AnshRaj112/devconnector-backend/internal/middleware"
	"github.com/AnshRaj112/devconnector-backend/internal/services"
	"github.com/AnshRaj112/devconnector-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxBodyBytes = 1 << 20

type msgResponse struct {
	Msg string `json:"msg"`
}

type errorsResponse struct {
	Errors []utils.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR [handlers.writeJSON]: %v", err)
	}
}

// writeError maps a service error onto the response contract. Not-found
// conditions answer 400, which existing clients depend on.
func writeError(w http.ResponseWriter, op string, err error) {
	var serr *services.Error
	if !errors.As(err, &serr) {
		serr = &services.Error{Kind: services.KindInternal, Msg: "Server Error", Err: err}
	}

	switch serr.Kind {
	case services.KindValidation:
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: serr.Fields})
	case services.KindConflict, services.KindInvalidCredentials:
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: []utils.FieldError{{Msg: serr.Msg}}})
	case services.KindNotFound:
		writeJSON(w, http.StatusBadRequest, msgResponse{Msg: serr.Msg})
	case services.KindUnauthorized:
		writeJSON(w, http.StatusUnauthorized, msgResponse{Msg: serr.Msg})
	default:
		log.Printf("ERROR [%s]: %v", op, err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
	}
}

// decodeJSON reads the request body into v. It writes the 400 response itself
// and returns false when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: []utils.FieldError{{Msg: "Invalid request body"}}})
		return false
	}
	return true
}

// callerID returns the id placed on the context by middleware.Auth.
func callerID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, msgResponse{Msg: services.ErrNoToken.Msg})
	}
	return id, ok
}
