// internal/app/features/teams/routes.go
package teams

import (
	"github.com/go-chi/chi/v5"
	"github.com/teamboard/teamboard/internal/app/system/identity"
)

// Routes mounts the team summary routes. Mounted under /teams/{teamID}.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(identity.RequireUser)

	r.Get("/", h.HandleSummary)

	return r
}
