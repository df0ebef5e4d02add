// internal/app/features/tasks/routes.go
package tasks

import (
	"github.com/go-chi/chi/v5"
	"github.com/teamboard/teamboard/internal/app/system/identity"
)

// Routes mounts the task routes for a team. Mounted under
// /teams/{teamID}/tasks; every route requires an authenticated principal.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(identity.RequireUser)

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Patch("/{taskID}", h.HandleUpdate)
	r.Delete("/{taskID}", h.HandleDelete)

	return r
}
