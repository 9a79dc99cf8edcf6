package handlers

import (
	"net/http"

	"github.com/AnshRaj112/devconnector-backend/internal/services"
)

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(w, r)
	if !ok {
		return
	}
	var req services.PostInput
	if !decodeJSON(w, r, &req) {
		return
	}
	post, err := h.postService.Create(r.Context(), id, req)
	if err != nil {
		writeError(w, "post.Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}
