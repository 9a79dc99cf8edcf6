package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AnshRaj112/devconnector-backend/internal/services"
	"github.com/AnshRaj112/devconnector-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			"validation",
			&services.Error{Kind: services.KindValidation, Fields: []utils.FieldError{{Msg: "Name is required", Param: "name"}}},
			http.StatusBadRequest,
			`{"errors":[{"msg":"Name is required","param":"name"}]}`,
		},
		{"conflict", services.ErrUserExists, http.StatusBadRequest, `{"errors":[{"msg":"User already exists"}]}`},
		{"credentials", services.ErrInvalidCredentials, http.StatusBadRequest, `{"errors":[{"msg":"Invalid Credentials"}]}`},
		{"not found", services.ErrNoProfile, http.StatusBadRequest, `{"msg":"There is no profile for this user."}`},
		{"unauthorized", services.ErrNoToken, http.StatusUnauthorized, `{"msg":"No token supplied."}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, "test", tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestWriteError_InternalIsPlainText(t *testing.T) {
	for _, err := range []error{errors.New("mongo down"), &services.Error{Kind: services.KindInternal, Msg: "Server Error", Err: errors.New("x")}} {
		rec := httptest.NewRecorder()
		writeError(rec, "test", err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Server Error", strings.TrimSpace(rec.Body.String()))
		assert.NotContains(t, rec.Body.String(), "mongo")
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader("{nope"))
	var v map[string]string
	assert.False(t, decodeJSON(rec, req, &v))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Invalid request body"}]}`, rec.Body.String())
}
