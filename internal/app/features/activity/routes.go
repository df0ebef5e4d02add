// internal/app/features/activity/routes.go
package activity

import (
	"github.com/go-chi/chi/v5"
	"github.com/teamboard/teamboard/internal/app/system/identity"
)

// Routes mounts the activity feed routes. Mounted under
// /teams/{teamID}/activity.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(identity.RequireUser)

	r.Get("/", h.HandleList)

	return r
}
