package handlers

import (
	"net/http"

	"github.com/AnshRaj112/devconnector-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(w, r)
	if !ok {
		return
	}
	profile, err := h.profileService.GetMine(r.Context(), id)
	if err != nil {
		writeError(w, "profile.GetMine", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(w, r)
	if !ok {
		return
	}
	var req services.ProfileInput
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := h.profileService.Upsert(r.Context(), id, req)
	if err != nil {
		writeError(w, "profile.Upsert", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.List(r.Context())
	if err != nil {
		writeError(w, "profile.List", err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.GetByUserID(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, "profile.GetByUserID", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(w, r)
	if !ok {
		return
	}
	if err := h.profileService.Delete(r.Context(), id); err != nil {
		writeError(w, "profile.Delete", err)
		return
	}
	writeJSON(w, http.StatusOK, msgResponse{Msg: "User deleted"})
}

func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(w, r)
	if !ok {
		return
	}
	var req services.ExperienceInput
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := h.profileService.AddExperience(r.Context(), id, req)
	if err != nil {
		writeError(w, "profile.AddExperience", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(w, r)
	if !ok {
		return
	}
	profile, err := h.profileService.RemoveExperience(r.Context(), id, chi.URLParam(r, "exp_id"))
	if err != nil {
		writeError(w, "profile.RemoveExperience", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) AddHobby(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(w, r)
	if !ok {
		return
	}
	var req services.HobbyInput
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := h.profileService.AddHobby(r.Context(), id, req)
	if err != nil {
		writeError(w, "profile.AddHobby", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveHobby(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(w, r)
	if !ok {
		return
	}
	profile, err := h.profileService.RemoveHobby(r.Context(), id, chi.URLParam(r, "exp_id"))
	if err != nil {
		writeError(w, "profile.RemoveHobby", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
