package routes

import (
	"net/http"

	"github.com/AnshRaj112/devconnector-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Posts   *handlers.PostHandler
}

// SetupRoutes mounts the API. requireAuth guards every private route.
func SetupRoutes(r chi.Router, h Handlers, requireAuth func(http.Handler) http.Handler) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API Running"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		// Public
		r.Post("/users", h.Auth.Register)
		r.Post("/auth", h.Auth.Login)
		r.Get("/profile", h.Profile.List)
		r.Get("/profile/user/{user_id}", h.Profile.GetByUserID)

		// Private
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/auth", h.Auth.Me)

			r.Get("/profile/me", h.Profile.GetMine)
			r.Post("/profile", h.Profile.Upsert)
			r.Delete("/profile", h.Profile.Delete)
			r.Put("/profile/experience", h.Profile.AddExperience)
			r.Delete("/profile/experience/{exp_id}", h.Profile.RemoveExperience)
			r.Put("/profile/hobbies", h.Profile.AddHobby)
			r.Delete("/profile/hobbies/{exp_id}", h.Profile.RemoveHobby)

			r.Post("/posts", h.Posts.Create)
		})
	})
}
