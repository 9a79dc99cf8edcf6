package handlers

import (
	"net/http"

	"github.com/AnshRaj112/devconnector-backend/internal/models"
	"github.com/AnshRaj112/devconnector-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type TokenResponse struct {
	Token string `json:"token"`
}

type RegisterResponse struct {
	Msg  string       `json:"msg"`
	User *models.User `json:"user"`
}

// Register handles POST /api/users.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterInput
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		writeError(w, "auth.Register", err)
		return
	}
	writeJSON(w, http.StatusCreated, RegisterResponse{Msg: "User registered", User: user})
}

// Login handles POST /api/auth.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginInput
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		writeError(w, "auth.Login", err)
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// Me handles GET /api/auth.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), id)
	if err != nil {
		writeError(w, "auth.Me", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
